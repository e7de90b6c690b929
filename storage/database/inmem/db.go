package inmemdb

import (
	"sync"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

// EnrollmentActive is the only enrollment status that puts a course in a student's scope.
const EnrollmentActive = "active"

type (
	// DB keeps rows in insertion order so reads are deterministic.
	DB struct {
		mutex        sync.RWMutex
		courses      []calendar.Course
		enrollments  []enrollment
		teachings    []teaching
		slots        []calendar.RecurringSlot
		deadlines    []calendar.DeadlineItem
		publications []calendar.PublicationItem
	}

	enrollment struct {
		studentID string
		courseID  string
		status    string
	}

	teaching struct {
		teacherID string
		courseID  string
	}
)

func Open() *DB {
	return &DB{}
}
