package checkins

import (
	DB "Backend-Verdancy/src/database"
	"Backend-Verdancy/src/models"
	"Backend-Verdancy/src/services/members"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrAlreadyCheckedIn วันนี้เช็คชื่อไปแล้ว ถือเป็น no-op ไม่ใช่ความผิดพลาด
var ErrAlreadyCheckedIn = errors.New("already checked in today")

// Today คืนวันที่ปัจจุบันแบบ "YYYY-MM-DD" (UTC, ไม่มี timezone เหมือนฝั่ง store)
func Today(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

// Weekday ชื่อวันในสัปดาห์ของวันนี้ ใช้กับ schedule filter
func Weekday(now time.Time) string {
	return now.UTC().Weekday().String()
}

// Decision ผลการประเมินการเช็คชื่อหนึ่งครั้ง คำนวณจาก state ที่อ่านมาล่าสุด
type Decision struct {
	Today      string
	Reset      bool     // ต้องล้างยอดรายเดือนก่อนหรือไม่
	AlreadyIn  bool     // วันนี้เช็คไปแล้ว → ไม่ต้องเขียนอะไร
	NewPresent int      // ค่า present หลังเช็คชื่อ
	NewDates   []string // checkinDates หลังเช็คชื่อ
}

// Evaluate ตัดสินการเช็คชื่อจากค่า present และ checkinDates ปัจจุบัน
// วันที่ 1 ของเดือน: ล้างยอดก่อน แล้วค่อยเช็ค ดังนั้นการเช็คชื่อแรกของเดือน
// สำเร็จเสมอและเป็นรายการเดียว แต่ถ้าวันนี้ถูกบันทึกไปแล้ว (หลังล้างยอดรอบแรก)
// จะไม่ล้างซ้ำ เพื่อให้กดสองครั้งในวันเดียวกันได้ผลเท่าเดิมเสมอ
func Evaluate(present int, dates []string, now time.Time) Decision {
	today := Today(now)

	d := Decision{Today: today}
	if now.UTC().Day() == 1 && len(dates) > 0 && dates[len(dates)-1] != today {
		d.Reset = true
		present = 0
		dates = nil
	}

	for _, date := range dates {
		if date == today {
			d.AlreadyIn = true
			return d
		}
	}

	d.NewPresent = present + 1
	d.NewDates = append(append([]string{}, dates...), today)
	return d
}

// IncrementPresent เช็คชื่อสมาชิกหนึ่งคนสำหรับวันนี้
// อ่าน → ประเมิน → เขียน โดยไม่มี transaction ฝั่ง store (last write wins)
// การกดซ้ำเร็ว ๆ ก่อน write แรกเสร็จจึงอาจนับซ้ำได้ เป็นข้อจำกัดที่ยอมรับ
func IncrementPresent(id string) (*models.Member, error) {
	member, err := members.GetMemberByID(id)
	if err != nil {
		log.Println("⚠️ Check-in skipped:", err)
		return nil, err
	}

	d := Evaluate(member.Present, member.CheckinDates, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if d.Reset {
		// ล้างยอดรายเดือนก่อนประเมินขั้นถัดไป (state ในเอกสารและใน memory ตรงกัน)
		_, err = DB.MemberCollection.UpdateOne(ctx,
			bson.M{"_id": member.ID},
			bson.M{"$set": bson.M{"present": 0, "checkinDates": []string{}}},
		)
		if err != nil {
			return nil, err
		}
	}

	if d.AlreadyIn {
		log.Printf("Member %s already checked in today", id)
		return member, ErrAlreadyCheckedIn
	}

	_, err = DB.MemberCollection.UpdateOne(ctx,
		bson.M{"_id": member.ID},
		bson.M{"$set": bson.M{"present": d.NewPresent, "checkinDates": d.NewDates}},
	)
	if err != nil {
		return nil, err
	}

	member.Present = d.NewPresent
	member.CheckinDates = d.NewDates

	appendCheckinLog(ctx, member.ID, d.Today)

	log.Printf("✅ Member %s present incremented to %d (%s)", id, d.NewPresent, d.Today)
	return member, nil
}

// appendCheckinLog เก็บเหตุการณ์เช็คชื่อลง log ถาวร พลาดได้โดยไม่ล้มการเช็คชื่อ
func appendCheckinLog(ctx context.Context, memberID primitive.ObjectID, date string) {
	entry := models.CheckinLog{
		MemberID:  memberID,
		Date:      date,
		Timestamp: time.Now(),
	}
	if _, err := DB.CheckinLogCollection.InsertOne(ctx, entry); err != nil {
		log.Println("⚠️ Failed to append check-in log:", err)
	}
}

// IsCheckedInToday สมาชิกคนนี้เช็คชื่อของวันนี้ไปแล้วหรือยัง
func IsCheckedInToday(m *models.Member, now time.Time) bool {
	return m.LastCheckinDate() == Today(now)
}

// ResetMonthly ล้างยอด present และ checkinDates ของสมาชิกทุกคนที่ยังค้าง
// วันที่ของเดือนก่อน ใช้โดย job รายเดือน (คู่ขนานกับการล้างแบบ lazy ใน Evaluate
// สำหรับสมาชิกที่ไม่ได้เช็คชื่อเลยในเดือนใหม่)
func ResetMonthly(ctx context.Context, now time.Time) (int64, error) {
	monthPrefix := now.UTC().Format("2006-01")

	// สมาชิกที่รายการล่าสุดไม่ใช่ของเดือนนี้
	filter := bson.M{
		"checkinDates.0": bson.M{"$exists": true},
		"checkinDates": bson.M{
			"$not": bson.M{"$elemMatch": bson.M{"$regex": "^" + monthPrefix}},
		},
	}
	update := bson.M{"$set": bson.M{"present": 0, "checkinDates": []string{}}}

	result, err := DB.MemberCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
