package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// AsynqClient enqueue งานเข้า queue เดียวกับที่ scheduler ใช้
// ตอนนี้มีผู้ใช้รายเดียวคือ endpoint สั่งรัน attendance sweep ย้อนหลัง
var AsynqClient *asynq.Client

// InitAsynq เปิด client เฉพาะเมื่อ Redis พร้อมใช้งาน ถ้าไม่พร้อม
// AsynqClient เป็น nil และ endpoint ที่ enqueue ต้องตอบ 503 เอง
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client initialized successfully")
}
