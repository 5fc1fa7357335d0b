package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocesapp/voces-backend/internal/apps/supplies"
	"github.com/vocesapp/voces-backend/internal/apps/tasks"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestBuildCalendarMarks(t *testing.T) {
	selected := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	items := []tasks.Task{
		{Name: "order stock", DueDate: datePtr(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))},
		{Name: "no due date"},
	}
	stock := []supplies.SupplyItem{
		{DrugName: "adrenaline", ExpirationDate: datePtr(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))},
		{DrugName: "no expiration"},
	}

	marks := BuildCalendarMarks(items, stock, selected, time.UTC)

	require.Contains(t, marks, "2026-03-10")
	assert.Equal(t, []string{TagTask}, marks["2026-03-10"].Tags)

	require.Contains(t, marks, "2026-03-20")
	assert.Equal(t, []string{TagExpiration}, marks["2026-03-20"].Tags)

	// The selected day is always present, even with nothing on it.
	require.Contains(t, marks, "2026-03-15")
	assert.True(t, marks["2026-03-15"].Selected)
	assert.Empty(t, marks["2026-03-15"].Tags)

	assert.Len(t, marks, 3)
}

func TestBuildCalendarMarksDeduplicatesTags(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	items := []tasks.Task{
		{Name: "a", DueDate: datePtr(day)},
		{Name: "b", DueDate: datePtr(day)},
	}
	stock := []supplies.SupplyItem{
		{DrugName: "x", ExpirationDate: datePtr(day)},
	}

	marks := BuildCalendarMarks(items, stock, day, time.UTC)

	require.Contains(t, marks, "2026-04-01")
	assert.Equal(t, []string{TagTask, TagExpiration}, marks["2026-04-01"].Tags)
	assert.True(t, marks["2026-04-01"].Selected)
}

func TestBuildCalendarMarksKeepsStoredDatesInViewerZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Date-only columns come back as midnight UTC. A western viewer must
	// still see the item on its stored day, not the evening before.
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	selected := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	marks := BuildCalendarMarks([]tasks.Task{
		{Name: "dated task", DueDate: datePtr(due)},
	}, nil, selected, loc)

	require.Contains(t, marks, "2026-03-10")
	assert.Equal(t, []string{TagTask}, marks["2026-03-10"].Tags)
	assert.NotContains(t, marks, "2026-03-09")
}

func TestBuildCalendarMarksResolvesSelectedDayInLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:30 UTC is still the previous evening in New York, so that is
	// the day the viewer has open.
	selected := time.Date(2026, 3, 11, 2, 30, 0, 0, time.UTC)

	marks := BuildCalendarMarks(nil, nil, selected, loc)

	require.Contains(t, marks, "2026-03-10")
	assert.True(t, marks["2026-03-10"].Selected)
}

func TestBuildCalendarMarksEmptyInputs(t *testing.T) {
	selected := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	marks := BuildCalendarMarks(nil, nil, selected, time.UTC)

	require.Len(t, marks, 1)
	assert.True(t, marks["2026-05-01"].Selected)
}
