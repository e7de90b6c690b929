package testutil

import (
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
	"github.com/trezcool/masomo-calendar/storage/database/inmem"
)

// NewConfig returns a config suitable for tests: in-memory storage, no rollbar.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:   "Masomo",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "test-secret",
	}
}

func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	calendar.InitValidators(validate, translator)
	return validate, translator
}

func NewService(conf *core.Config, repo calendar.Repository, rec calendar.Recorder) *calendar.Service {
	validate, translator := NewValidator()
	return calendar.NewService(repo, conf, validate, translator, rec)
}

// Timestamp parses a naive "2006-01-02 15:04" wall-clock value.
func Timestamp(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		t.Fatalf("Timestamp(%q) failed: %v", s, err)
	}
	return ts
}

func NewID() string {
	return uuid.NewString()
}

func CreateCourse(db *inmemdb.DB, titleAz, titleRu, titleEn string) calendar.Course {
	return db.AddCourse(calendar.Course{TitleAz: titleAz, TitleRu: titleRu, TitleEn: titleEn})
}

func CreateSlot(db *inmemdb.DB, courseID string, dayOfWeek int, start, end string, isActive bool) calendar.RecurringSlot {
	return db.AddSlot(calendar.RecurringSlot{
		CourseID:  courseID,
		DayOfWeek: dayOfWeek,
		StartTime: start,
		EndTime:   end,
		IsActive:  isActive,
	})
}

func CreateDeadline(db *inmemdb.DB, courseID, title string, due *time.Time, isActive bool) calendar.DeadlineItem {
	return db.AddDeadline(calendar.DeadlineItem{CourseID: courseID, Title: title, DueDate: due, IsActive: isActive})
}

func CreatePublication(db *inmemdb.DB, courseID, title string, createdAt time.Time, isActive, isPublished bool) calendar.PublicationItem {
	return db.AddPublication(calendar.PublicationItem{
		CourseID:    courseID,
		Title:       title,
		CreatedAt:   createdAt,
		IsActive:    isActive,
		IsPublished: isPublished,
	})
}

// Fixture is a small academy: two courses, one student enrolled in the first, one teacher of the second.
type Fixture struct {
	Math, Physics calendar.Course
	Student       calendar.Caller
	Teacher       calendar.Caller
	Admin         calendar.Caller
}

func SeedAcademy(t *testing.T, db *inmemdb.DB) Fixture {
	t.Helper()

	fx := Fixture{
		Math:    CreateCourse(db, "Riyaziyyat", "Математика", "Math"),
		Physics: CreateCourse(db, "Fizika", "Физика", ""),
		Student: calendar.Caller{ID: NewID(), Role: calendar.RoleStudent},
		Teacher: calendar.Caller{ID: NewID(), Role: calendar.RoleTeacher},
		Admin:   calendar.Caller{ID: NewID(), Role: calendar.RoleAdmin},
	}
	db.Enroll(fx.Student.ID, fx.Math.ID, inmemdb.EnrollmentActive)
	db.Enroll(fx.Student.ID, fx.Physics.ID, "dropped")
	db.AssignTeacher(fx.Teacher.ID, fx.Physics.ID)

	CreateSlot(db, fx.Math.ID, 3, "09:00", "10:30", true)   // wednesdays
	CreateSlot(db, fx.Math.ID, 5, "11:00", "12:00", false)  // inactive
	CreateSlot(db, fx.Physics.ID, 1, "14:00", "15:00", true) // mondays

	due := Timestamp(t, "2025-01-10 00:00")
	CreateDeadline(db, fx.Math.ID, "Essay", &due, true)
	CreateDeadline(db, fx.Math.ID, "Undated", nil, true)
	CreatePublication(db, fx.Math.ID, "Quiz 1", Timestamp(t, "2025-01-08 09:00"), true, true)
	CreatePublication(db, fx.Math.ID, "Draft quiz", Timestamp(t, "2025-01-08 10:00"), true, false)
	CreatePublication(db, fx.Physics.ID, "Quiz 2", Timestamp(t, "2025-01-20 16:30"), true, true)
	return fx
}
