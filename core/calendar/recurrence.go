package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

func weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Occurrences lists every date in [from, to] falling on dayOfWeek (0 = Sunday).
// An out of range dayOfWeek or a reversed window yields nothing.
func Occurrences(dayOfWeek int, from, to civil.Date) []civil.Date {
	if dayOfWeek < 0 || dayOfWeek > 6 || from.After(to) {
		return nil
	}

	diff := (dayOfWeek - int(weekday(from)) + 7) % 7
	var dates []civil.Date
	for cursor := from.AddDays(diff); !cursor.After(to); cursor = cursor.AddDays(7) {
		dates = append(dates, cursor)
	}
	return dates
}

func lessonEvents(slot RecurringSlot, courseTitle string, win Window) []Event {
	dates := Occurrences(slot.DayOfWeek, win.From, win.To)
	events := make([]Event, 0, len(dates))
	for _, date := range dates {
		start, end := slot.StartTime, slot.EndTime
		events = append(events, Event{
			ID:          fmt.Sprintf("schedule-%s-%s", slot.ID, date),
			Title:       courseTitle,
			Date:        date,
			Time:        &start,
			EndTime:     &end,
			Type:        EventLesson,
			CourseID:    slot.CourseID,
			CourseTitle: courseTitle,
			Color:       LessonColor,
			Room:        slot.Room,
		})
	}
	return events
}
