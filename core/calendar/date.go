package calendar

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate accepts YYYY-MM-DD or a timestamp; the date is taken as written, ignoring any offset.
func ParseDate(s string) (civil.Date, error) {
	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, errors.Errorf("invalid ISO date %q", s)
}
