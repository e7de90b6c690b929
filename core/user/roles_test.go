package user

import (
	"testing"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

func TestCalendarRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  calendar.Role
	}{
		{name: "no roles", roles: nil, want: calendar.RoleAnonymous},
		{name: "unknown roles", roles: []string{"parent:", "lol"}, want: calendar.RoleAnonymous},
		{name: "student", roles: []string{RoleStudent}, want: calendar.RoleStudent},
		{name: "teacher", roles: []string{RoleTeacher}, want: calendar.RoleTeacher},
		{name: "teacher over student", roles: []string{RoleStudent, RoleTeacher}, want: calendar.RoleTeacher},
		{name: "admin over teacher", roles: []string{RoleTeacher, RoleAdmin}, want: calendar.RoleAdmin},
		{name: "principal", roles: []string{RoleAdminPrincipal, "lol"}, want: calendar.RoleAdmin},
		{name: "owner over everything", roles: []string{RoleStudent, RoleAdminOwner, RoleTeacher}, want: calendar.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalendarRole(tt.roles); got != tt.want {
				t.Errorf("CalendarRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxRole(t *testing.T) {
	if got := MaxRole([]string{RoleStudent, RoleAdminPrincipal, RoleAdmin}); got != RoleAdminPrincipal {
		t.Errorf("MaxRole() = %v, want %v", got, RoleAdminPrincipal)
	}
}
