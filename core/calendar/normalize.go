package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// splitTimestamp reads t as a naive wall-clock value.
// Exactly midnight means "no specific time".
func splitTimestamp(t time.Time) (civil.Date, *string) {
	date := civil.DateOf(t)
	if t.Hour() == 0 && t.Minute() == 0 {
		return date, nil
	}
	hhmm := fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	return date, &hhmm
}

func deadlineEvent(item DeadlineItem, courseTitle string) (Event, bool) {
	if item.DueDate == nil {
		return Event{}, false
	}
	date, hhmm := splitTimestamp(*item.DueDate)
	return Event{
		ID:          "assignment-" + item.ID,
		Title:       item.Title,
		Date:        date,
		Time:        hhmm,
		Type:        EventAssignment,
		CourseID:    item.CourseID,
		CourseTitle: courseTitle,
		Color:       AssignmentColor,
	}, true
}

func publicationEvent(item PublicationItem, courseTitle string) Event {
	date, hhmm := splitTimestamp(item.CreatedAt)
	return Event{
		ID:          "quiz-" + item.ID,
		Title:       item.Title,
		Date:        date,
		Time:        hhmm,
		Type:        EventQuiz,
		CourseID:    item.CourseID,
		CourseTitle: courseTitle,
		Color:       QuizColor,
	}
}
