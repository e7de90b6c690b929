package metricsvc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/trezcool/masomo-calendar/core/calendar"
)

// Metrics holds the Prometheus metrics of the calendar service.
type Metrics struct {
	// TimelinesTotal counts aggregated timelines per caller role.
	TimelinesTotal *prometheus.CounterVec

	// TimelineDuration is the time to build a timeline, fetch included.
	TimelineDuration *prometheus.HistogramVec

	// EventsTotal counts emitted events per type.
	EventsTotal *prometheus.CounterVec

	// FetchFailuresTotal counts failed source reads.
	FetchFailuresTotal *prometheus.CounterVec
}

var _ calendar.Recorder = (*Metrics)(nil)

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TimelinesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_timelines_total",
				Help:      "Total number of timelines built",
			},
			[]string{"role"},
		),

		TimelineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "calendar_timeline_duration_seconds",
				Help:      "Time to build a timeline",
				Buckets:   []float64{.005, .01, .05, .1, .5, 1, 2, 5},
			},
			[]string{"role"},
		),

		EventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_events_total",
				Help:      "Total number of events emitted",
			},
			[]string{"type"},
		),

		FetchFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calendar_fetch_failures_total",
				Help:      "Total number of failed source reads",
			},
			[]string{"source"},
		),
	}
}

func (m *Metrics) ObserveTimeline(role calendar.Role, elapsed time.Duration, events []calendar.Event) {
	m.TimelinesTotal.WithLabelValues(string(role)).Inc()
	m.TimelineDuration.WithLabelValues(string(role)).Observe(elapsed.Seconds())
	for _, ev := range events {
		m.EventsTotal.WithLabelValues(string(ev.Type)).Inc()
	}
}

func (m *Metrics) FetchFailed(source string) {
	m.FetchFailuresTotal.WithLabelValues(source).Inc()
}
