package sqlxrepos

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
)

const enrollmentActive = "active"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type calendarRepository struct {
	db *sqlx.DB
}

var _ calendar.Repository = (*calendarRepository)(nil)

func NewCalendarRepository(db *sqlx.DB) calendar.Repository {
	return &calendarRepository{db: db}
}

// scoped restricts a query to the scope's courses.
func scoped(b sq.SelectBuilder, column string, scope calendar.Scope) sq.SelectBuilder {
	if scope.All {
		return b
	}
	return b.Where(sq.Eq{column: scope.CourseIDs})
}

func orderBy(ords ...core.DBOrdering) []string {
	clauses := make([]string, 0, len(ords))
	for _, ord := range ords {
		clauses = append(clauses, ord.String())
	}
	return clauses
}

func (repo *calendarRepository) selectInto(ctx context.Context, dest interface{}, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "building query")
	}
	return repo.db.SelectContext(ctx, dest, query, args...)
}

func enrollmentsQuery(studentID string) sq.SelectBuilder {
	return psql.Select("course_id").
		From("enrollment").
		Where(sq.Eq{"student_id": studentID, "status": enrollmentActive}).
		OrderBy(orderBy(core.DBOrdering{Field: "created_at", Ascending: true})...)
}

func (repo *calendarRepository) EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	b := enrollmentsQuery(studentID)

	ids := make([]string, 0)
	if err := repo.selectInto(ctx, &ids, b); err != nil {
		return nil, errors.Wrap(err, "selecting enrollments")
	}
	return ids, nil
}

func teachingsQuery(teacherID string) sq.SelectBuilder {
	return psql.Select("course_id").
		From("course_teacher").
		Where(sq.Eq{"teacher_id": teacherID}).
		OrderBy(orderBy(core.DBOrdering{Field: "created_at", Ascending: true})...)
}

func (repo *calendarRepository) TaughtCourseIDs(ctx context.Context, teacherID string) ([]string, error) {
	b := teachingsQuery(teacherID)

	ids := make([]string, 0)
	if err := repo.selectInto(ctx, &ids, b); err != nil {
		return nil, errors.Wrap(err, "selecting teaching assignments")
	}
	return ids, nil
}

func coursesQuery(scope calendar.Scope) sq.SelectBuilder {
	b := psql.Select("id", "title_az", "title_ru", "title_en").From("course")
	return scoped(b, "id", scope).OrderBy(orderBy(core.DBOrdering{Field: "id", Ascending: true})...)
}

func (repo *calendarRepository) Courses(ctx context.Context, scope calendar.Scope) ([]calendar.Course, error) {
	b := coursesQuery(scope)

	courses := make([]calendar.Course, 0)
	if err := repo.selectInto(ctx, &courses, b); err != nil {
		return nil, errors.Wrap(err, "selecting courses")
	}
	return courses, nil
}

func slotsQuery(scope calendar.Scope) sq.SelectBuilder {
	b := psql.Select("id", "course_id", "teacher_id", "day_of_week", "start_time", "end_time", "room", "is_active").
		From("schedule").
		Where(sq.Eq{"is_active": true})
	return scoped(b, "course_id", scope).OrderBy(orderBy(
		core.DBOrdering{Field: "day_of_week", Ascending: true},
		core.DBOrdering{Field: "start_time", Ascending: true},
		core.DBOrdering{Field: "id", Ascending: true},
	)...)
}

func (repo *calendarRepository) RecurringSlots(ctx context.Context, scope calendar.Scope) ([]calendar.RecurringSlot, error) {
	b := slotsQuery(scope)

	slots := make([]calendar.RecurringSlot, 0)
	if err := repo.selectInto(ctx, &slots, b); err != nil {
		return nil, errors.Wrap(err, "selecting schedules")
	}
	return slots, nil
}

func deadlinesQuery(scope calendar.Scope, win calendar.Window) sq.SelectBuilder {
	b := psql.Select("id", "course_id", "title", "due_date", "is_active").
		From("assignment").
		Where(sq.Eq{"is_active": true}).
		Where(sq.GtOrEq{"due_date": win.Start()}).
		Where(sq.Lt{"due_date": win.End()})
	return scoped(b, "course_id", scope).OrderBy(orderBy(
		core.DBOrdering{Field: "due_date", Ascending: true},
		core.DBOrdering{Field: "id", Ascending: true},
	)...)
}

func (repo *calendarRepository) Deadlines(ctx context.Context, scope calendar.Scope, win calendar.Window) ([]calendar.DeadlineItem, error) {
	b := deadlinesQuery(scope, win)

	items := make([]calendar.DeadlineItem, 0)
	if err := repo.selectInto(ctx, &items, b); err != nil {
		return nil, errors.Wrap(err, "selecting assignments")
	}
	return items, nil
}

func publicationsQuery(scope calendar.Scope, win calendar.Window) sq.SelectBuilder {
	b := psql.Select("id", "course_id", "title", "created_at", "is_active", "is_published").
		From("quiz").
		Where(sq.Eq{"is_active": true, "is_published": true}).
		Where(sq.GtOrEq{"created_at": win.Start()}).
		Where(sq.Lt{"created_at": win.End()})
	return scoped(b, "course_id", scope).OrderBy(orderBy(
		core.DBOrdering{Field: "created_at", Ascending: true},
		core.DBOrdering{Field: "id", Ascending: true},
	)...)
}

func (repo *calendarRepository) Publications(ctx context.Context, scope calendar.Scope, win calendar.Window) ([]calendar.PublicationItem, error) {
	b := publicationsQuery(scope, win)

	items := make([]calendar.PublicationItem, 0)
	if err := repo.selectInto(ctx, &items, b); err != nil {
		return nil, errors.Wrap(err, "selecting quizzes")
	}
	return items, nil
}
