package jobs

import (
	DB "Backend-Verdancy/src/database"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// StartWorker รัน asynq worker + scheduler สำหรับ job รายเดือน
// เรียกใน goroutine จาก main เมื่อมี Redis เท่านั้น
func StartWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: DB.RedisURI}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMonthlyReset, HandleMonthlyResetTask)

	// ตั้งเวลา: เที่ยงคืนวันที่ 1 ของทุกเดือน
	// ไม่กำหนด TaskID และไม่ฝังเดือนใน payload เพราะ task เดียวกันถูก enqueue
	// ซ้ำทุกเดือน handler คำนวณเดือนเองตอนรันแทน
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("0 0 1 * *",
		asynq.NewTask(TypeMonthlyReset, nil),
		asynq.MaxRetry(3),
	); err != nil {
		log.Println("❌ Failed to register monthly reset schedule:", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Scheduler stopped:", err)
		}
	}()

	server := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
	if err := server.Run(mux); err != nil {
		log.Println("❌ Worker stopped:", err)
	}
}
