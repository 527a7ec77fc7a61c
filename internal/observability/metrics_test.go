package observability

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPunch(t *testing.T) {
	before := testutil.ToFloat64(punchesTotal.WithLabelValues("ENTRY", OutcomeAccepted))
	RecordPunch("ENTRY", OutcomeAccepted)
	assert.Equal(t, before+1, testutil.ToFloat64(punchesTotal.WithLabelValues("ENTRY", OutcomeAccepted)))

	RecordPunch("", "UNKNOWN_TYPE")
	assert.Equal(t, 1.0, testutil.ToFloat64(punchesTotal.WithLabelValues("unknown", "UNKNOWN_TYPE")))
}

func TestRecordDistance_SkipsNaN(t *testing.T) {
	RecordDistance(math.NaN())
	RecordDistance(120)
	ObserveReportGeneration(15 * time.Millisecond)
	RecordOutboxEvent(ResultSent)

	assert.Equal(t, 1, testutil.CollectAndCount(punchDistance))
	assert.Equal(t, 1.0, testutil.ToFloat64(outboxEvents.WithLabelValues(ResultSent)))
}
