package checkins

import (
	"testing"
	"time"

	"Backend-Verdancy/src/models"
	"Backend-Verdancy/test"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Check-in Evaluation Tests")
	defer suiteResult.PrintSummary()

	midMonth := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("TestFirstCheckinOfDay", func(t *testing.T) {
		timer := test.NewTestTimer("First Checkin Of Day")
		defer func() {
			suiteResult.AddResult(test.TestResult{Name: "First Checkin Of Day", Duration: timer.Stop(), Passed: true})
		}()

		d := Evaluate(3, []string{"2026-03-12", "2026-03-13"}, midMonth)

		assert.False(t, d.Reset)
		assert.False(t, d.AlreadyIn)
		assert.Equal(t, "2026-03-15", d.Today)
		assert.Equal(t, 4, d.NewPresent)
		assert.Equal(t, []string{"2026-03-12", "2026-03-13", "2026-03-15"}, d.NewDates)
	})

	t.Run("TestSameDayIsNoOp", func(t *testing.T) {
		timer := test.NewTestTimer("Same Day Is No-Op")
		defer func() {
			suiteResult.AddResult(test.TestResult{Name: "Same Day Is No-Op", Duration: timer.Stop(), Passed: true})
		}()

		first := Evaluate(0, []string{}, midMonth)
		assert.Equal(t, 1, first.NewPresent)

		second := Evaluate(first.NewPresent, first.NewDates, midMonth)
		assert.True(t, second.AlreadyIn)
		assert.False(t, second.Reset)
	})

	t.Run("TestFirstOfMonthResets", func(t *testing.T) {
		timer := test.NewTestTimer("First Of Month Resets")
		defer func() {
			suiteResult.AddResult(test.TestResult{Name: "First Of Month Resets", Duration: timer.Stop(), Passed: true})
		}()

		firstOfMonth := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
		d := Evaluate(17, []string{"2026-03-28", "2026-03-30", "2026-03-31"}, firstOfMonth)

		// ยอดเดือนก่อนถูกล้าง การเช็คชื่อแรกของเดือนสำเร็จเสมอและเป็นรายการเดียว
		assert.True(t, d.Reset)
		assert.False(t, d.AlreadyIn)
		assert.Equal(t, 1, d.NewPresent)
		assert.Equal(t, []string{"2026-04-01"}, d.NewDates)
	})

	t.Run("TestFirstOfMonthSecondClick", func(t *testing.T) {
		timer := test.NewTestTimer("First Of Month Second Click")
		defer func() {
			suiteResult.AddResult(test.TestResult{Name: "First Of Month Second Click", Duration: timer.Stop(), Passed: true})
		}()

		firstOfMonth := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
		first := Evaluate(17, []string{"2026-03-31"}, firstOfMonth)

		// กดซ้ำหลังล้างยอดไปแล้ว ต้องไม่ล้างซ้ำและไม่นับเพิ่ม
		second := Evaluate(first.NewPresent, first.NewDates, firstOfMonth)
		assert.False(t, second.Reset)
		assert.True(t, second.AlreadyIn)
	})

	t.Run("TestFirstOfMonthEmptyHistory", func(t *testing.T) {
		timer := test.NewTestTimer("First Of Month Empty History")
		defer func() {
			suiteResult.AddResult(test.TestResult{Name: "First Of Month Empty History", Duration: timer.Stop(), Passed: true})
		}()

		firstOfMonth := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
		d := Evaluate(0, nil, firstOfMonth)

		assert.False(t, d.Reset)
		assert.Equal(t, 1, d.NewPresent)
		assert.Equal(t, []string{"2026-04-01"}, d.NewDates)
	})

	t.Run("TestPresentMatchesDateCount", func(t *testing.T) {
		timer := test.NewTestTimer("Present Matches Date Count")
		defer func() {
			suiteResult.AddResult(test.TestResult{Name: "Present Matches Date Count", Duration: timer.Stop(), Passed: true})
		}()

		// เช็คชื่อต่อเนื่องหลายวัน present ต้องเท่ากับจำนวนวันเสมอ
		present := 0
		dates := []string{}
		for day := 10; day <= 14; day++ {
			now := time.Date(2026, 3, day, 9, 0, 0, 0, time.UTC)
			d := Evaluate(present, dates, now)
			assert.False(t, d.AlreadyIn)
			present = d.NewPresent
			dates = d.NewDates
		}
		assert.Equal(t, 5, present)
		assert.Len(t, dates, 5)
	})
}

func TestTodayAndWeekday(t *testing.T) {
	now := time.Date(2026, 8, 24, 23, 59, 0, 0, time.UTC) // วันจันทร์

	assert.Equal(t, "2026-08-24", Today(now))
	assert.Equal(t, "Monday", Weekday(now))
}

func TestIsCheckedInToday(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	m := &models.Member{CheckinDates: []string{"2026-08-23", "2026-08-24"}}
	assert.True(t, IsCheckedInToday(m, now))

	m2 := &models.Member{CheckinDates: []string{"2026-08-23"}}
	assert.False(t, IsCheckedInToday(m2, now))

	empty := &models.Member{}
	assert.False(t, IsCheckedInToday(empty, now))
}
