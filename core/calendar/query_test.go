package calendar

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-calendar/core"
)

func TestEventQuery_Window(t *testing.T) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)

	tests := []struct {
		name    string
		query   EventQuery
		want    Window
		wantMsg string
	}{
		{name: "iso dates", query: EventQuery{From: "2025-01-01", To: "2025-01-31"}, want: Window{From: date("2025-01-01"), To: date("2025-01-31")}},
		{name: "padded", query: EventQuery{From: " 2025-01-01 ", To: "2025-01-31\n"}, want: Window{From: date("2025-01-01"), To: date("2025-01-31")}},
		{
			name:  "timestamps keep the written date",
			query: EventQuery{From: "2025-01-01T23:30:00+04:00", To: "2025-01-31T00:00:00Z"},
			want:  Window{From: date("2025-01-01"), To: date("2025-01-31")},
		},
		{name: "reversed window is valid", query: EventQuery{From: "2025-02-01", To: "2025-01-01"}, want: Window{From: date("2025-02-01"), To: date("2025-01-01")}},
		{name: "missing from", query: EventQuery{To: "2025-01-31"}, wantMsg: "Query params 'from' and 'to' (ISO date) are required"},
		{name: "missing both", query: EventQuery{}, wantMsg: "Query params 'from' and 'to' (ISO date) are required"},
		{name: "missing to, bad from", query: EventQuery{From: "lol"}, wantMsg: "Query params 'from' and 'to' (ISO date) are required"},
		{name: "bad from", query: EventQuery{From: "01/01/2025", To: "2025-01-31"}, wantMsg: "Query param 'from' must be an ISO date (YYYY-MM-DD)"},
		{name: "bad to", query: EventQuery{From: "2025-01-01", To: "2025-02-30"}, wantMsg: "Query param 'to' must be an ISO date (YYYY-MM-DD)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Window(validate, translator)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, core.IsValidation(err))
				assert.Equal(t, tt.wantMsg, err.Error())

				var verr *core.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.NotEmpty(t, verr.Fields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	for in, want := range map[string]string{
		"2025-01-01":                "2025-01-01",
		"2025-01-01T10:00:00Z":      "2025-01-01",
		"2025-01-01T23:59:59-05:00": "2025-01-01",
		"2025-01-01T10:00:00":       "2025-01-01",
		"2025-01-01T10:00":          "2025-01-01",
	} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, date(want), got, in)
	}

	for _, in := range []string{"", "lol", "2025-13-01", "2025-1-1", "20250101"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}
