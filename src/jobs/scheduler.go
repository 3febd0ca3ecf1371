package jobs

import (
	"log"
	"os"
	"time"

	"Backend-VentureHR/src/database"

	"github.com/hibiken/asynq"
)

// StartScheduler ลงทะเบียน cron entries
//   - attendance sweep ทุกวัน 22:00 หลังเลิกงาน
//   - salary rollover ทุกวันที่ 1 ตอนตี 1
//
// asynq กันการ enqueue ซ้ำในรอบเดียวกัน และตัว sweep เอง idempotent
// รันซ้ำในวันเดียวกันได้โดย store ไม่เปลี่ยน
func StartScheduler() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Job scheduler will not start.")
		return
	}

	loc := time.Local
	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		&asynq.SchedulerOpts{Location: loc},
	)

	sweepTask, err := NewAttendanceSweepTask("")
	if err != nil {
		log.Fatal("❌ Failed to build sweep task:", err)
	}
	if _, err := scheduler.Register("0 22 * * *", sweepTask); err != nil {
		log.Fatal("❌ Failed to register attendance sweep:", err)
	}

	rolloverTask, err := NewSalaryRolloverTask()
	if err != nil {
		log.Fatal("❌ Failed to build rollover task:", err)
	}
	if _, err := scheduler.Register("0 1 1 * *", rolloverTask); err != nil {
		log.Fatal("❌ Failed to register salary rollover:", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatal("❌ Asynq scheduler failed:", err)
		}
	}()
	log.Println("✅ Job scheduler started")
}
