package calendar

import (
	"context"

	"github.com/pkg/errors"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleAdmin     Role = "admin"
	RoleAnonymous Role = "anonymous"
)

// ParseRole maps unknown role names to RoleAnonymous.
func ParseRole(s string) Role {
	switch r := Role(s); r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return r
	default:
		return RoleAnonymous
	}
}

// Caller is whoever is asking for a timeline.
type Caller struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (svc *Service) resolveScope(ctx context.Context, caller Caller) (Scope, error) {
	switch caller.Role {
	case RoleStudent:
		return svc.studentScope(ctx, caller.ID)
	case RoleTeacher:
		return svc.teacherScope(ctx, caller.ID)
	case RoleAdmin:
		return Scope{All: true, SchedulesOnly: svc.adminSchedulesOnly}, nil
	default:
		return Scope{}, nil
	}
}

func (svc *Service) studentScope(ctx context.Context, studentID string) (Scope, error) {
	ids, err := svc.repo.EnrolledCourseIDs(ctx, studentID)
	if err != nil {
		return Scope{}, errors.Wrap(err, "fetching enrollments")
	}
	return Scope{CourseIDs: dedup(ids)}, nil
}

func (svc *Service) teacherScope(ctx context.Context, teacherID string) (Scope, error) {
	ids, err := svc.repo.TaughtCourseIDs(ctx, teacherID)
	if err != nil {
		return Scope{}, errors.Wrap(err, "fetching teaching assignments")
	}
	return Scope{CourseIDs: dedup(ids)}, nil
}

func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
