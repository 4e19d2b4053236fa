package services

import (
	DB "Backend-Verdancy/src/database"
	"log"
)

// Init เชื่อมต่อ MongoDB และผูก collection ที่ต้องใช้ทั้งหมด
// เรียกครั้งเดียวจาก main ก่อน start เซิร์ฟเวอร์
func Init() {
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	DB.MemberCollection = DB.GetCollection("VerdancyDB", "members")
	DB.CheckinLogCollection = DB.GetCollection("VerdancyDB", "checkinLogs")
	if DB.MemberCollection == nil || DB.CheckinLogCollection == nil {
		log.Fatal("Failed to get the required collections")
	}

	DB.InitRedis()
	if DB.RedisURI != "" {
		DB.InitAsynq()
	}
}
