package calendar

import (
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/pkg/errors"
)

const (
	icalDateLayout     = "20060102"
	icalDateTimeLayout = "20060102T150405"
)

// WriteICal encodes events as a VCALENDAR.
// Times are floating (no TZID); untimed events become all-day events.
func WriteICal(w io.Writer, events []Event, prodID string, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	for _, ev := range events {
		cal.Children = append(cal.Children, icalEvent(ev, stamp).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return errors.Wrap(err, "encoding icalendar")
	}
	return nil
}

func icalEvent(ev Event, stamp time.Time) *ical.Event {
	vev := ical.NewEvent()
	vev.Props.SetText(ical.PropUID, ev.ID)
	vev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	vev.Props.SetText(ical.PropSummary, ev.Title)
	vev.Props.SetText(ical.PropDescription, ev.CourseTitle)
	vev.Props.SetText(ical.PropCategories, strings.ToUpper(string(ev.Type)))
	vev.Props.SetText("COLOR", ev.Color)
	if ev.Room != nil && *ev.Room != "" {
		vev.Props.SetText(ical.PropLocation, *ev.Room)
	}

	day := ev.Date.In(time.UTC)
	start, ok := clockOn(day, ev.Time)
	if !ok {
		vev.Props.Set(dateProp(ical.PropDateTimeStart, day))
		vev.Props.Set(dateProp(ical.PropDateTimeEnd, day.AddDate(0, 0, 1)))
		return vev
	}

	vev.Props.Set(floatingProp(ical.PropDateTimeStart, start))
	if end, ok := clockOn(day, ev.EndTime); ok && end.After(start) {
		vev.Props.Set(floatingProp(ical.PropDateTimeEnd, end))
	}
	return vev
}

// clockOn combines a date with an "HH:MM" clock value.
func clockOn(day time.Time, hhmm *string) (time.Time, bool) {
	if hhmm == nil {
		return time.Time{}, false
	}
	clock, err := time.Parse("15:04", *hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), true
}

func dateProp(name string, t time.Time) *ical.Prop {
	prop := ical.NewProp(name)
	prop.SetValueType(ical.ValueDate)
	prop.Value = t.Format(icalDateLayout)
	return prop
}

func floatingProp(name string, t time.Time) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Value = t.Format(icalDateTimeLayout)
	return prop
}
