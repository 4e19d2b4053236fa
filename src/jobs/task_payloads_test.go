package jobs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// เดือนใน payload ต้องมาจากเวลาตอน enqueue ไม่ใช่ตอน process เริ่ม
func TestNewMonthlyResetTaskUsesEnqueueTime(t *testing.T) {
	decode := func(now time.Time) MonthlyResetPayload {
		task, err := NewMonthlyResetTask(now)
		require.NoError(t, err)
		assert.Equal(t, TypeMonthlyReset, task.Type())

		var payload MonthlyResetPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &payload))
		return payload
	}

	sep := decode(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-09", sep.Month)

	oct := decode(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-10", oct.Month)
}
