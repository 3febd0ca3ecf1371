package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"Backend-VentureHR/src/database"
	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services/attendance"
	"Backend-VentureHR/src/services/salaries"

	"github.com/hibiken/asynq"
)

// HandleAttendanceSweepTask ปิดรอบการเข้างานของวัน ใครไม่เช็คอินถูก mark ABSENT
// ใครเช็คอินแต่ไม่เช็คเอาท์ถูกปิดเป็น HALF_DAY
func HandleAttendanceSweepTask(ctx context.Context, t *asynq.Task) error {
	var payload SweepPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Sweep payload decode error:", err)
			return err
		}
	}

	svc := attendance.Default()
	date := svc.Now()
	if payload.Date != "" {
		parsed, err := time.Parse(models.AttendanceDateLayout, payload.Date)
		if err != nil {
			log.Println("❌ Invalid sweep date:", payload.Date)
			return err
		}
		date = parsed
	}

	result, err := svc.Sweep(ctx, date)
	if err != nil {
		var partial *attendance.PartialSweepError
		if errors.As(err, &partial) {
			// บาง employee พลาด แต่รอบ sweep ถือว่าจบแล้ว ไม่ retry ทั้ง batch
			log.Println("⚠️ Sweep finished with failures:", partial.Error())
			return nil
		}
		log.Println("❌ Sweep failed:", err)
		return err
	}

	log.Printf("✅ Attendance sweep %s: absent=%d halfDay=%d unchanged=%d weekend=%v",
		result.Date, result.MarkedAbsent, result.ClosedHalfDay, result.Unchanged, result.Weekend)
	return nil
}

// HandleSalaryRolloverTask ปิดรอบเงินเดือนของเดือนก่อนหน้า
func HandleSalaryRolloverTask(ctx context.Context, t *asynq.Task) error {
	_, err := salaries.RolloverMonthly(time.Now())
	if err != nil {
		log.Println("❌ Salary rollover failed:", err)
	}
	return err
}

// StartWorker เปิด asynq server สำหรับประมวลผล task ที่ scheduler enqueue เข้ามา
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Job worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAttendanceSweep, HandleAttendanceSweepTask)
	mux.HandleFunc(TypeSalaryRollover, HandleSalaryRolloverTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("❌ Asynq worker failed:", err)
		}
	}()
	log.Println("✅ Job worker started")
}
