package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeAccepted = "accepted"

	ResultSent   = "sent"
	ResultFailed = "failed"
)

var (
	punchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkin",
		Name:      "punches_total",
		Help:      "Punch submissions by punch type and outcome (accepted or error code).",
	}, []string{"punch_type", "outcome"})
	punchDistance = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "checkin",
		Name:      "distance_meters",
		Help:      "Distance from the office reported on punch submissions.",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2000, 5000, 20000},
	})
	reportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "report",
		Name:      "generation_seconds",
		Help:      "Time spent building the attendance report from the event store.",
		Buckets:   prometheus.DefBuckets,
	})
	outboxEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "outbox",
		Name:      "events_total",
		Help:      "Outbox events processed by the publisher worker.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(punchesTotal, punchDistance, reportDuration, outboxEvents)
}

// RecordPunch counts a submission; outcome is OutcomeAccepted or an error code.
func RecordPunch(punchType, outcome string) {
	if punchType == "" {
		punchType = "unknown"
	}
	punchesTotal.WithLabelValues(punchType, outcome).Inc()
}

// RecordDistance ignores NaN, which only malformed coordinates produce.
func RecordDistance(meters float64) {
	if meters != meters {
		return
	}
	punchDistance.Observe(meters)
}

func ObserveReportGeneration(d time.Duration) {
	reportDuration.Observe(d.Seconds())
}

func RecordOutboxEvent(result string) {
	outboxEvents.WithLabelValues(result).Inc()
}
