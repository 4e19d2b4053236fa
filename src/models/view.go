package models

import "strings"

// MobileBreakpoint ความกว้างต่ำสุดของ viewport ที่ยังแสดงผลเป็นตาราง
const MobileBreakpoint = 768

// SummaryRow หนึ่งแถวในตารางสรุปการเช็คชื่อ
type SummaryRow struct {
	ID              string `json:"id"`
	Avatar          string `json:"avatar"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Schedule        string `json:"schedule"` // join ด้วย ", " หรือ "—" ถ้าว่าง
	Present         int    `json:"present"`
	LastCheckinDate string `json:"lastCheckinDate"` // "—" ถ้ายังไม่เคยเช็คชื่อ
}

// SummaryResponse ผลลัพธ์หน้าสรุป เลือกรูปแบบ table/cards ตามความกว้างจอ
type SummaryResponse struct {
	Mode string       `json:"mode"` // "table" หรือ "cards"
	Rows []SummaryRow `json:"rows"`
}

// SummaryMode เลือกรูปแบบการแสดงผลจากความกว้าง viewport
func SummaryMode(width int) string {
	if width > 0 && width < MobileBreakpoint {
		return "cards"
	}
	return "table"
}

// NewSummaryRow สร้างแถวสรุปจากข้อมูลสมาชิก
func NewSummaryRow(m Member) SummaryRow {
	schedule := "—"
	if len(m.Schedule) > 0 {
		schedule = strings.Join(m.Schedule, ", ")
	}
	last := m.LastCheckinDate()
	if last == "" {
		last = "—"
	}
	return SummaryRow{
		ID:              m.ID.Hex(),
		Avatar:          m.ProfilePicture,
		Username:        m.Username,
		Email:           m.Email,
		Schedule:        schedule,
		Present:         m.Present,
		LastCheckinDate: last,
	}
}
