package user

import (
	"strings"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

// Roles
const (
	// Admin
	RoleAdmin          = "admin:"
	RoleAdminOwner     = "admin:owner"
	RoleAdminPrincipal = "admin:principal"

	// Teacher
	RoleTeacher = "teacher:"

	// Student
	RoleStudent = "student:"
)

var rolePriorities = map[string]int{
	// Admins: 30 - 21
	RoleAdminOwner:     30,
	RoleAdminPrincipal: 29,
	RoleAdmin:          21,

	// Teachers: 20 - 11
	RoleTeacher: 11,

	// Students: 10 - 1
	RoleStudent: 1,
}

func RolePriority(role string) int {
	return rolePriorities[role]
}

// MaxRole returns the highest priority known role, or "" when none is known.
func MaxRole(roles []string) string {
	var max int
	var best string
	for _, role := range roles {
		if p := RolePriority(role); p > max {
			max = p
			best = role
		}
	}
	return best
}

// CalendarRole maps the highest priority role to the role a timeline is built for.
func CalendarRole(roles []string) calendar.Role {
	best := MaxRole(roles)
	switch {
	case best == "":
		return calendar.RoleAnonymous
	case strings.HasPrefix(best, RoleAdmin):
		return calendar.RoleAdmin
	case strings.HasPrefix(best, RoleTeacher):
		return calendar.RoleTeacher
	default:
		return calendar.RoleStudent
	}
}
