package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

type calendarRepository struct {
	db *DB
}

var _ calendar.Repository = (*calendarRepository)(nil)

func NewCalendarRepository(db *DB) calendar.Repository {
	return &calendarRepository{db: db}
}

func (repo *calendarRepository) EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	ids := make([]string, 0)
	for _, e := range repo.db.enrollments {
		if e.studentID == studentID && e.status == EnrollmentActive {
			ids = append(ids, e.courseID)
		}
	}
	return ids, nil
}

func (repo *calendarRepository) TaughtCourseIDs(ctx context.Context, teacherID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	ids := make([]string, 0)
	for _, t := range repo.db.teachings {
		if t.teacherID == teacherID {
			ids = append(ids, t.courseID)
		}
	}
	return ids, nil
}

func (repo *calendarRepository) Courses(ctx context.Context, scope calendar.Scope) ([]calendar.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]calendar.Course, 0)
	for _, c := range repo.db.courses {
		if scope.Includes(c.ID) {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (repo *calendarRepository) RecurringSlots(ctx context.Context, scope calendar.Scope) ([]calendar.RecurringSlot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	slots := make([]calendar.RecurringSlot, 0)
	for _, s := range repo.db.slots {
		if s.IsActive && scope.Includes(s.CourseID) {
			slots = append(slots, s)
		}
	}
	return slots, nil
}

func (repo *calendarRepository) Deadlines(ctx context.Context, scope calendar.Scope, win calendar.Window) ([]calendar.DeadlineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]calendar.DeadlineItem, 0)
	for _, d := range repo.db.deadlines {
		if d.IsActive && d.DueDate != nil && win.Contains(*d.DueDate) && scope.Includes(d.CourseID) {
			items = append(items, d)
		}
	}
	return items, nil
}

func (repo *calendarRepository) Publications(ctx context.Context, scope calendar.Scope, win calendar.Window) ([]calendar.PublicationItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	items := make([]calendar.PublicationItem, 0)
	for _, p := range repo.db.publications {
		if p.IsActive && p.IsPublished && win.Contains(p.CreatedAt) && scope.Includes(p.CourseID) {
			items = append(items, p)
		}
	}
	return items, nil
}

// seeding

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func (db *DB) AddCourse(c calendar.Course) calendar.Course {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	c.ID = newID(c.ID)
	db.courses = append(db.courses, c)
	return c
}

func (db *DB) Enroll(studentID, courseID, status string) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.enrollments = append(db.enrollments, enrollment{studentID: studentID, courseID: courseID, status: status})
}

func (db *DB) AssignTeacher(teacherID, courseID string) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.teachings = append(db.teachings, teaching{teacherID: teacherID, courseID: courseID})
}

func (db *DB) AddSlot(s calendar.RecurringSlot) calendar.RecurringSlot {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	s.ID = newID(s.ID)
	db.slots = append(db.slots, s)
	return s
}

func (db *DB) AddDeadline(d calendar.DeadlineItem) calendar.DeadlineItem {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	d.ID = newID(d.ID)
	db.deadlines = append(db.deadlines, d)
	return d
}

func (db *DB) AddPublication(p calendar.PublicationItem) calendar.PublicationItem {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	p.ID = newID(p.ID)
	db.publications = append(db.publications, p)
	return p
}

// Reset empties every table.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	db.courses = nil
	db.enrollments = nil
	db.teachings = nil
	db.slots = nil
	db.deadlines = nil
	db.publications = nil
}
