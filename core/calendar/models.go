package calendar

import (
	"time"

	"cloud.google.com/go/civil"
)

// EventType is the kind of source a canonical Event was built from.
type EventType string

const (
	EventLesson     EventType = "lesson"
	EventAssignment EventType = "assignment"
	EventQuiz       EventType = "quiz"
)

// Display colors, fixed per EventType.
const (
	LessonColor     = "#3B82F6"
	AssignmentColor = "#F59E0B"
	QuizColor       = "#10B981"
)

// UnknownCourseTitle is displayed when an event references a course that cannot be found.
const UnknownCourseTitle = "Unknown Course"

// noTimeSortKey places untimed (whole-day) events after every timed event of the same date.
const noTimeSortKey = "23:59"

type (
	// RecurringSlot is one weekly lesson block of a course's timetable.
	RecurringSlot struct {
		ID        string  `db:"id" json:"id"`
		CourseID  string  `db:"course_id" json:"courseId"`
		TeacherID *string `db:"teacher_id" json:"teacherId,omitempty"`
		DayOfWeek int     `db:"day_of_week" json:"dayOfWeek"` // 0 = Sunday, 6 = Saturday
		StartTime string  `db:"start_time" json:"startTime"`  // HH:MM
		EndTime   string  `db:"end_time" json:"endTime"`      // HH:MM
		Room      *string `db:"room" json:"room,omitempty"`
		IsActive  bool    `db:"is_active" json:"isActive"`
	}

	// DeadlineItem is an assignment with an optional due date.
	DeadlineItem struct {
		ID       string     `db:"id" json:"id"`
		CourseID string     `db:"course_id" json:"courseId"`
		Title    string     `db:"title" json:"title"`
		DueDate  *time.Time `db:"due_date" json:"dueDate"` // naive local wall-clock
		IsActive bool       `db:"is_active" json:"isActive"`
	}

	// PublicationItem is a quiz; its creation date is the day it shows up in the calendar.
	PublicationItem struct {
		ID          string    `db:"id" json:"id"`
		CourseID    string    `db:"course_id" json:"courseId"`
		Title       string    `db:"title" json:"title"`
		CreatedAt   time.Time `db:"created_at" json:"createdAt"` // naive local wall-clock
		IsActive    bool      `db:"is_active" json:"isActive"`
		IsPublished bool      `db:"is_published" json:"isPublished"`
	}

	Course struct {
		ID      string `db:"id" json:"id"`
		TitleAz string `db:"title_az" json:"titleAz"`
		TitleRu string `db:"title_ru" json:"titleRu"`
		TitleEn string `db:"title_en" json:"titleEn"`
	}

	// Event is the canonical calendar entry; built per request and never persisted.
	Event struct {
		ID          string     `json:"id"`
		Title       string     `json:"title"`
		Date        civil.Date `json:"date"`
		Time        *string    `json:"time"`    // HH:MM; nil means whole day
		EndTime     *string    `json:"endTime"` // HH:MM
		Type        EventType  `json:"type"`
		CourseID    string     `json:"courseId"`
		CourseTitle string     `json:"courseTitle"`
		Color       string     `json:"color"`
		Room        *string    `json:"room,omitempty"`
	}
)

// Window is an inclusive range of calendar dates.
type Window struct {
	From civil.Date
	To   civil.Date
}

// Start is the first instant of the window, as a naive timestamp.
func (w Window) Start() time.Time {
	return w.From.In(time.UTC)
}

// End is the first instant after the window (exclusive bound), as a naive timestamp.
func (w Window) End() time.Time {
	return w.To.AddDays(1).In(time.UTC)
}

// Contains reports whether the calendar date of naive timestamp t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := civil.DateOf(t)
	return !d.Before(w.From) && !d.After(w.To)
}

// Scope is the set of courses a caller may see events for.
type Scope struct {
	All           bool // every course in the system
	SchedulesOnly bool // only recurring lessons; deadlines and quizzes are skipped
	CourseIDs     []string
}

func (s Scope) IsEmpty() bool {
	return !s.All && len(s.CourseIDs) == 0
}

func (s Scope) Includes(courseID string) bool {
	if s.All {
		return true
	}
	for _, id := range s.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
