package jobs

import (
	"Backend-Verdancy/src/services/checkins"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// HandleMonthlyResetTask ล้างยอด present/checkinDates ของสมาชิกที่ยังค้าง
// รายการเดือนก่อน (คนที่เช็คชื่อเองจะถูกล้างแบบ lazy ใน service อยู่แล้ว)
// เดือนคำนวณตอนรัน ไม่อ่านจาก payload เพราะ task ตามรอบเวลาไม่มี payload
func HandleMonthlyResetTask(ctx context.Context, t *asynq.Task) error {
	now := time.Now()
	month := now.UTC().Format("2006-01")
	if len(t.Payload()) > 0 {
		// task ที่สั่งเองผ่าน admin route จะแนบเดือนตอน enqueue มาด้วย
		var payload MonthlyResetPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}
		month = payload.Month
	}
	log.Println("🎯 Start monthly attendance reset:", month)

	count, err := checkins.ResetMonthly(ctx, now)
	if err != nil {
		log.Println("❌ Monthly reset failed:", err)
		return err
	}

	log.Printf("✅ Monthly reset done for %s: %d member(s) cleared", month, count)
	return nil
}
