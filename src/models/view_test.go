package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewSummaryRow(t *testing.T) {
	t.Run("TestFullMember", func(t *testing.T) {
		m := Member{
			ID:           primitive.NewObjectID(),
			Username:     "ann",
			Email:        "ann@example.com",
			Schedule:     []string{"Monday", "Friday"},
			Present:      4,
			CheckinDates: []string{"2026-08-21", "2026-08-24"},
		}

		row := NewSummaryRow(m)
		assert.Equal(t, m.ID.Hex(), row.ID)
		assert.Equal(t, "Monday, Friday", row.Schedule)
		assert.Equal(t, 4, row.Present)
		assert.Equal(t, "2026-08-24", row.LastCheckinDate)
	})

	t.Run("TestPlaceholdersWhenEmpty", func(t *testing.T) {
		row := NewSummaryRow(Member{Username: "new"})
		assert.Equal(t, "—", row.Schedule)
		assert.Equal(t, "—", row.LastCheckinDate)
		assert.Equal(t, 0, row.Present)
	})
}

func TestSummaryMode(t *testing.T) {
	assert.Equal(t, "table", SummaryMode(0)) // ไม่ส่ง width มา = ตาราง
	assert.Equal(t, "table", SummaryMode(1024))
	assert.Equal(t, "table", SummaryMode(MobileBreakpoint))
	assert.Equal(t, "cards", SummaryMode(MobileBreakpoint-1))
	assert.Equal(t, "cards", SummaryMode(320))
}

func TestLastCheckinDate(t *testing.T) {
	m := Member{CheckinDates: []string{"2026-08-01", "2026-08-02"}}
	assert.Equal(t, "2026-08-02", m.LastCheckinDate())

	assert.Equal(t, "", (&Member{}).LastCheckinDate())
}
