package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"student":   RoleStudent,
		"teacher":   RoleTeacher,
		"admin":     RoleAdmin,
		"anonymous": RoleAnonymous,
		"":          RoleAnonymous,
		"Admin":     RoleAnonymous,
		"parent":    RoleAnonymous,
	} {
		assert.Equal(t, want, ParseRole(in), in)
	}
}

func Test_dedup(t *testing.T) {
	assert.Equal(t, []string{"c2", "c1", "c3"}, dedup([]string{"c2", "c1", "c2", "c3", "c1"}))
	assert.Equal(t, []string{}, dedup(nil))
}

func TestScope(t *testing.T) {
	assert.True(t, Scope{}.IsEmpty())
	assert.True(t, Scope{CourseIDs: []string{}}.IsEmpty())
	assert.False(t, Scope{All: true}.IsEmpty())
	assert.False(t, Scope{CourseIDs: []string{"c1"}}.IsEmpty())

	assert.True(t, Scope{All: true}.Includes("anything"))
	assert.True(t, Scope{CourseIDs: []string{"c1", "c2"}}.Includes("c2"))
	assert.False(t, Scope{CourseIDs: []string{"c1"}}.Includes("c2"))
}

func TestWindow(t *testing.T) {
	win := Window{From: date("2025-01-01"), To: date("2025-01-31")}

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), win.Start())
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), win.End())

	assert.True(t, win.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, win.Contains(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, win.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, win.Contains(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
}
