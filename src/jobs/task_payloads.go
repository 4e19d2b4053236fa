package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeMonthlyReset = "attendance:monthly-reset"

type MonthlyResetPayload struct {
	Month string `json:"month"` // "YYYY-MM" เดือนที่เริ่มรอบใหม่
}

func NewMonthlyResetTask(now time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(MonthlyResetPayload{Month: now.UTC().Format("2006-01")})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMonthlyReset, payload), nil
}
