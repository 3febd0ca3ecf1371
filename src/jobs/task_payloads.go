package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeAttendanceSweep = "attendance:sweep"

type SweepPayload struct {
	Date string `json:"date"` // YYYY-MM-DD, empty = today
}

func NewAttendanceSweepTask(date string) (*asynq.Task, error) {
	payload, err := json.Marshal(SweepPayload{Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAttendanceSweep, payload), nil
}

const TypeSalaryRollover = "salary:rollover"

func NewSalaryRolloverTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeSalaryRollover, nil), nil
}
