package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member สมาชิกหนึ่งคน
type Member struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	ProfilePicture string             `bson:"profile_picture" json:"profile_picture"` // base64 PNG data URL ไม่เกิน 100x100
	Schedule       []string           `bson:"schedule" json:"schedule"`               // ชื่อวันในสัปดาห์, ว่าง = โชว์เฉพาะโหมด show-all
	Present        int                `bson:"present" json:"present"`                 // จำนวนเช็คชื่อตั้งแต่รีเซ็ตรายเดือนล่าสุด
	CheckinDates   []string           `bson:"checkinDates" json:"checkinDates"`       // "YYYY-MM-DD" ไม่เกิน 1 รายการต่อวัน
}

// LastCheckinDate วันที่เช็คชื่อล่าสุด (ค่าว่างถ้ายังไม่เคยเช็ค)
func (m *Member) LastCheckinDate() string {
	if len(m.CheckinDates) == 0 {
		return ""
	}
	return m.CheckinDates[len(m.CheckinDates)-1]
}

// MemberResponse ข้อมูลสมาชิกที่ส่งกลับ พร้อม field ที่คำนวณแล้ว
type MemberResponse struct {
	Member
	LastCheckinDate string `json:"lastCheckinDate"`
}

// NewMemberResponse สร้าง MemberResponse จาก Member
func NewMemberResponse(m Member) MemberResponse {
	return MemberResponse{Member: m, LastCheckinDate: m.LastCheckinDate()}
}

// CreateMemberRequest ข้อมูลสำหรับสร้างสมาชิกใหม่ (รูปส่งแยกเป็น multipart file)
type CreateMemberRequest struct {
	Username string   `json:"username" form:"username" validate:"required"`
	Email    string   `json:"email" form:"email" validate:"required,email"`
	Schedule []string `json:"schedule" form:"schedule" validate:"dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
}

// UpdateMemberRequest ข้อมูลสำหรับแก้ไขสมาชิก ส่งเฉพาะ field ที่ต้องการเปลี่ยน
type UpdateMemberRequest struct {
	Username *string  `json:"username" form:"username" validate:"omitempty,min=1"`
	Email    *string  `json:"email" form:"email" validate:"omitempty,email"`
	Schedule []string `json:"schedule" form:"schedule" validate:"dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
}

// CheckinLog บันทึกการเช็คชื่อหนึ่งครั้ง อยู่ถาวรไม่ถูกรีเซ็ตรายเดือน
type CheckinLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID  primitive.ObjectID `bson:"memberId" json:"memberId"`
	Date      string             `bson:"date" json:"date" example:"2026-08-29"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
