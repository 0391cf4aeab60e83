package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	m := NewPrometheusMetrics(false)

	m.TransitionApplied("processing", "completed", "callback")
	m.TransitionApplied("processing", "completed", "callback")
	m.OutcomeRejected("poll", "ambiguous")
	m.CallbackReceived("mobileMoney", "duplicate")
	m.LedgerWrite("created")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("processing", "completed", "callback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejectedOutcome.WithLabelValues("poll", "ambiguous")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.callbacks.WithLabelValues("mobileMoney", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerWrites.WithLabelValues("created")))
}

func TestPrometheusMetrics_Sweep(t *testing.T) {
	m := NewPrometheusMetrics(false)

	m.SweepCompleted(10, 4, 2, coreport.Duration(250*time.Millisecond))
	m.SweepCompleted(3, 1, 0, coreport.Duration(time.Second))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweepRuns))
	assert.Equal(t, 13.0, testutil.ToFloat64(m.sweepExamined))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.sweepResolved))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweepTimedOut))
}

func TestPrometheusMetrics_BreakerAndPool(t *testing.T) {
	m := NewPrometheusMetrics(false)

	m.BreakerStateChanged("mobileMoney", 2, true)
	m.BreakerStateChanged("mobileMoney", 1, false)
	m.PoolObserved(5, 2, 3)
	m.GatewayCall("card", "charge", 0, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.breakerState.WithLabelValues("mobileMoney")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.breakerTrips.WithLabelValues("mobileMoney")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbPool.WithLabelValues("in_use")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("card", "charge", "error")))
}

func TestPrometheusMetrics_Handler(t *testing.T) {
	m := NewPrometheusMetrics(false)
	m.LedgerWrite("retry")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `payments_ledger_writes_total{result="retry"} 1`)
}
