package planner

import (
	"time"

	"github.com/vocesapp/voces-backend/internal/apps/supplies"
	"github.com/vocesapp/voces-backend/internal/apps/tasks"
)

const dayKeyFormat = "2006-01-02"

// DayMarks holds what the calendar renders for one day. Tags are
// deduplicated per day, so a day with three due tasks still carries a
// single "task" tag.
type DayMarks struct {
	Tags     []string `json:"tags"`
	Selected bool     `json:"selected,omitempty"`
}

const (
	TagTask       = "task"
	TagExpiration = "expiration"
)

// BuildCalendarMarks buckets task due dates and supply expirations by
// their stored calendar day and marks the selected day. Due and
// expiration dates are date-only columns, so they are keyed exactly as
// stored; shifting them through the viewer's zone would move every
// western viewer's items to the previous day. The location only decides
// which calendar day the selected instant falls on. Items without a
// date are skipped, and the selected day is always present in the
// result, even when nothing falls on it.
func BuildCalendarMarks(items []tasks.Task, stock []supplies.SupplyItem, selected time.Time, loc *time.Location) map[string]DayMarks {
	marks := map[string]DayMarks{}

	addTag := func(day time.Time, tag string) {
		key := day.UTC().Format(dayKeyFormat)
		m := marks[key]
		for _, t := range m.Tags {
			if t == tag {
				marks[key] = m
				return
			}
		}
		m.Tags = append(m.Tags, tag)
		marks[key] = m
	}

	for _, it := range items {
		if it.DueDate == nil {
			continue
		}
		addTag(*it.DueDate, TagTask)
	}
	for _, s := range stock {
		if s.ExpirationDate == nil {
			continue
		}
		addTag(*s.ExpirationDate, TagExpiration)
	}

	selectedKey := selected.In(loc).Format(dayKeyFormat)
	m := marks[selectedKey]
	m.Selected = true
	marks[selectedKey] = m

	return marks
}
