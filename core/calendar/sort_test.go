package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(events []Event) []string {
	res := make([]string, 0, len(events))
	for _, ev := range events {
		res = append(res, ev.ID)
	}
	return res
}

func TestSortEvents(t *testing.T) {
	events := []Event{
		{ID: "late-day", Date: date("2025-01-02"), Time: strPtr("08:00")},
		{ID: "untimed", Date: date("2025-01-01")},
		{ID: "evening", Date: date("2025-01-01"), Time: strPtr("23:59")},
		{ID: "morning", Date: date("2025-01-01"), Time: strPtr("09:00")},
		{ID: "untimed-2", Date: date("2025-01-01")},
	}
	SortEvents(events)

	// untimed sorts as 23:59 and keeps its relative order on ties
	assert.Equal(t, []string{"morning", "untimed", "evening", "untimed-2", "late-day"}, ids(events))
}

func TestSortEvents_timedBeforeUntimed(t *testing.T) {
	events := []Event{
		{ID: "assignment-1", Date: date("2025-01-10")},
		{ID: "quiz-1", Date: date("2025-01-10"), Time: strPtr("14:00")},
	}
	SortEvents(events)
	assert.Equal(t, []string{"quiz-1", "assignment-1"}, ids(events))
}
