package calendar

import (
	"context"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/masomo-calendar/core"
)

// fetch sources, used as metric labels
const (
	SourceCourses      = "courses"
	SourceSlots        = "slots"
	SourceDeadlines    = "deadlines"
	SourcePublications = "publications"
)

type (
	// Repository is the read side of the course, enrollment, timetable, assignment and quiz stores.
	Repository interface {
		// EnrolledCourseIDs returns the courses a student has an active enrollment in.
		EnrolledCourseIDs(ctx context.Context, studentID string) ([]string, error)
		TaughtCourseIDs(ctx context.Context, teacherID string) ([]string, error)
		Courses(ctx context.Context, scope Scope) ([]Course, error)
		// RecurringSlots returns active slots only.
		RecurringSlots(ctx context.Context, scope Scope) ([]RecurringSlot, error)
		// Deadlines returns active items due within [win.Start(), win.End()).
		Deadlines(ctx context.Context, scope Scope, win Window) ([]DeadlineItem, error)
		// Publications returns active and published items created within [win.Start(), win.End()).
		Publications(ctx context.Context, scope Scope, win Window) ([]PublicationItem, error)
	}

	// Recorder receives aggregation metrics.
	Recorder interface {
		ObserveTimeline(role Role, elapsed time.Duration, events []Event)
		FetchFailed(source string)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
		rec        Recorder

		adminSchedulesOnly bool
		fetchTimeout       time.Duration
	}

	sources struct {
		courses      []Course
		slots        []RecurringSlot
		deadlines    []DeadlineItem
		publications []PublicationItem
	}
)

type nopRecorder struct{}

func (nopRecorder) ObserveTimeline(Role, time.Duration, []Event) {}
func (nopRecorder) FetchFailed(string)                            {}

func NewService(
	repo Repository,
	conf *core.Config,
	validate *validator.Validate,
	translator ut.Translator,
	rec Recorder,
) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Service{
		repo:               repo,
		validate:           validate,
		translator:         translator,
		rec:                rec,
		adminSchedulesOnly: conf.Calendar.AdminSchedulesOnly,
		fetchTimeout:       conf.Calendar.FetchTimeout,
	}
}

// Events builds the caller's sorted timeline for the query window.
// Callers with nothing in scope get an empty, non-nil slice.
func (svc *Service) Events(ctx context.Context, caller Caller, q EventQuery) ([]Event, error) {
	win, err := q.Window(svc.validate, svc.translator)
	if err != nil {
		return nil, err
	}
	return svc.Timeline(ctx, caller, win)
}

// Timeline is Events for an already validated window.
func (svc *Service) Timeline(ctx context.Context, caller Caller, win Window) ([]Event, error) {
	start := time.Now()

	scope, err := svc.resolveScope(ctx, caller)
	if err != nil {
		return nil, err
	}
	if scope.IsEmpty() {
		return []Event{}, nil
	}

	src, err := svc.fetch(ctx, scope, win)
	if err != nil {
		return nil, err
	}

	events := buildEvents(src, win)
	SortEvents(events)

	svc.rec.ObserveTimeline(caller.Role, time.Since(start), events)
	return events, nil
}

// fetch reads every source concurrently; the first failure cancels the others.
func (svc *Service) fetch(ctx context.Context, scope Scope, win Window) (sources, error) {
	if svc.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.fetchTimeout)
		defer cancel()
	}

	var src sources
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		src.courses, err = svc.repo.Courses(ctx, scope)
		return svc.fetchErr(SourceCourses, err)
	})
	g.Go(func() (err error) {
		src.slots, err = svc.repo.RecurringSlots(ctx, scope)
		return svc.fetchErr(SourceSlots, err)
	})
	if !scope.SchedulesOnly {
		g.Go(func() (err error) {
			src.deadlines, err = svc.repo.Deadlines(ctx, scope, win)
			return svc.fetchErr(SourceDeadlines, err)
		})
		g.Go(func() (err error) {
			src.publications, err = svc.repo.Publications(ctx, scope, win)
			return svc.fetchErr(SourcePublications, err)
		})
	}

	if err := g.Wait(); err != nil {
		return sources{}, err
	}
	return src, nil
}

func (svc *Service) fetchErr(source string, err error) error {
	if err == nil {
		return nil
	}
	svc.rec.FetchFailed(source)
	return errors.Wrapf(err, "fetching %s", source)
}

// buildEvents concatenates lessons, assignments then quizzes.
func buildEvents(src sources, win Window) []Event {
	titles := courseTitles(src.courses)
	events := make([]Event, 0, len(src.deadlines)+len(src.publications))

	for _, slot := range src.slots {
		events = append(events, lessonEvents(slot, titles.title(slot.CourseID), win)...)
	}
	for _, item := range src.deadlines {
		if ev, ok := deadlineEvent(item, titles.title(item.CourseID)); ok {
			events = append(events, ev)
		}
	}
	for _, item := range src.publications {
		events = append(events, publicationEvent(item, titles.title(item.CourseID)))
	}
	return events
}
