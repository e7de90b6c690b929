package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_splitTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		wantDate string
		wantTime *string
	}{
		{name: "midnight is all day", ts: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), wantDate: "2025-01-03"},
		{name: "seconds ignored at midnight", ts: time.Date(2025, 1, 3, 0, 0, 59, 0, time.UTC), wantDate: "2025-01-03"},
		{name: "one minute past", ts: time.Date(2025, 1, 3, 0, 1, 0, 0, time.UTC), wantDate: "2025-01-03", wantTime: strPtr("00:01")},
		{name: "zero padded", ts: time.Date(2025, 1, 3, 9, 5, 0, 0, time.UTC), wantDate: "2025-01-03", wantTime: strPtr("09:05")},
		{name: "late evening", ts: time.Date(2025, 1, 3, 23, 59, 0, 0, time.UTC), wantDate: "2025-01-03", wantTime: strPtr("23:59")},
		{
			name:     "wall clock kept regardless of zone",
			ts:       time.Date(2025, 1, 3, 23, 30, 0, 0, time.FixedZone("AZT", 4*3600)),
			wantDate: "2025-01-03",
			wantTime: strPtr("23:30"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDate, gotTime := splitTimestamp(tt.ts)
			assert.Equal(t, date(tt.wantDate), gotDate)
			assert.Equal(t, tt.wantTime, gotTime)
		})
	}
}

func Test_deadlineEvent(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	ev, ok := deadlineEvent(DeadlineItem{ID: "a1", CourseID: "c1", Title: "Essay", DueDate: &due, IsActive: true}, "History")
	assert.True(t, ok)
	assert.Equal(t, Event{
		ID:          "assignment-a1",
		Title:       "Essay",
		Date:        date("2025-01-10"),
		Type:        EventAssignment,
		CourseID:    "c1",
		CourseTitle: "History",
		Color:       AssignmentColor,
	}, ev)

	_, ok = deadlineEvent(DeadlineItem{ID: "a2", CourseID: "c1", Title: "No due date", IsActive: true}, "History")
	assert.False(t, ok)
}

func Test_publicationEvent(t *testing.T) {
	created := time.Date(2025, 1, 10, 14, 45, 12, 0, time.UTC)
	ev := publicationEvent(PublicationItem{ID: "q1", CourseID: "c1", Title: "Quiz 1", CreatedAt: created}, "Physics")

	assert.Equal(t, "quiz-q1", ev.ID)
	assert.Equal(t, "Quiz 1", ev.Title)
	assert.Equal(t, date("2025-01-10"), ev.Date)
	assert.Equal(t, "14:45", *ev.Time)
	assert.Nil(t, ev.EndTime)
	assert.Equal(t, EventQuiz, ev.Type)
	assert.Equal(t, QuizColor, ev.Color)
	assert.Equal(t, "Physics", ev.CourseTitle)
}

func strPtr(s string) *string { return &s }
