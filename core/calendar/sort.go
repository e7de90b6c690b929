package calendar

import "sort"

func (ev Event) sortTime() string {
	if ev.Time == nil {
		return noTimeSortKey
	}
	return *ev.Time
}

// SortEvents orders events by date, then start time; untimed events go last within their day.
// Ties keep their relative order.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.sortTime() < b.sortTime()
	})
}
