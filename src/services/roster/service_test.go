package roster

import (
	"errors"
	"testing"
	"time"

	"Backend-Verdancy/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// monday 2026-08-24
var fixedNow = time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T, all []models.Member) {
	t.Helper()

	origFetch, origClock := fetchMembers, clock
	fetchMembers = func() ([]models.Member, error) { return all, nil }
	clock = func() time.Time { return fixedNow }

	mu.Lock()
	cached = nil
	loaded = false
	marks = map[string]mark{}
	mu.Unlock()

	t.Cleanup(func() {
		fetchMembers, clock = origFetch, origClock
	})
}

func testMember(username string, schedule ...string) models.Member {
	return models.Member{
		ID:       primitive.NewObjectID(),
		Username: username,
		Schedule: schedule,
	}
}

func TestRosterFiltering(t *testing.T) {
	monOnly := testMember("mon-only", "Monday")
	unscheduled := testMember("unscheduled")
	monTue := testMember("mon-tue", "Monday", "Tuesday")
	setup(t, []models.Member{monOnly, unscheduled, monTue})

	t.Run("TestTodayModeUsesSchedule", func(t *testing.T) {
		entries, err := Roster(false, "")
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "mon-only", entries[0].Username)
		assert.Equal(t, "mon-tue", entries[1].Username)
	})

	t.Run("TestShowAllBypassesSchedule", func(t *testing.T) {
		entries, err := Roster(true, "")
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("TestSearchRanksExactFirst", func(t *testing.T) {
		setup(t, []models.Member{testMember("ann"), testMember("anna"), testMember("bob")})

		entries, err := Roster(true, "ann")
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, "ann", entries[0].Username)
		assert.Equal(t, "anna", entries[1].Username)
	})
}

func TestRosterFetchError(t *testing.T) {
	setup(t, nil)
	fetchMembers = func() ([]models.Member, error) { return nil, errors.New("store down") }

	_, err := Roster(true, "")
	assert.Error(t, err)
}

func TestCheckinStateMachine(t *testing.T) {
	m := testMember("ann", "Monday")
	setup(t, []models.Member{m})
	id := m.ID.Hex()

	t.Run("TestBeginMarksPending", func(t *testing.T) {
		require.NoError(t, BeginCheckin(id))

		entries, err := Roster(true, "")
		require.NoError(t, err)
		assert.Equal(t, StatePending, entries[0].CheckinState)
		assert.False(t, entries[0].CheckedInToday)
	})

	t.Run("TestDoubleBeginRejected", func(t *testing.T) {
		assert.ErrorIs(t, BeginCheckin(id), ErrCheckinPending)
	})

	t.Run("TestConfirmUpdatesCacheInPlace", func(t *testing.T) {
		updated := m
		updated.Present = 1
		updated.CheckinDates = []string{"2026-08-24"}
		ConfirmCheckin(&updated)

		entries, err := Roster(true, "")
		require.NoError(t, err)
		assert.Equal(t, StateConfirmed, entries[0].CheckinState)
		assert.True(t, entries[0].CheckedInToday)
		assert.Equal(t, 1, entries[0].Present)
		assert.Equal(t, "2026-08-24", entries[0].LastCheckinDate)
	})
}

func TestFailRollsBack(t *testing.T) {
	m := testMember("ann", "Monday")
	setup(t, []models.Member{m})
	id := m.ID.Hex()

	require.NoError(t, BeginCheckin(id))
	FailCheckin(id)

	entries, err := Roster(true, "")
	require.NoError(t, err)
	assert.Equal(t, StateFailed, entries[0].CheckinState)
	assert.False(t, entries[0].CheckedInToday)

	// ล้มเหลวแล้วต้องเริ่มเช็คใหม่ได้
	assert.NoError(t, BeginCheckin(id))
}

func TestRemoveMember(t *testing.T) {
	a := testMember("a", "Monday")
	b := testMember("b", "Monday")
	setup(t, []models.Member{a, b})

	_, err := Roster(true, "")
	require.NoError(t, err)

	RemoveMember(a.ID.Hex())

	entries, err := Roster(true, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Username)
}
