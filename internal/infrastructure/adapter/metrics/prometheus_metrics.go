// Package metrics exposes engine, gateway and store measurements to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

const namespace = "payments"

// PrometheusMetrics implements coreport.Metrics and the infrastructure-level recorders
type PrometheusMetrics struct {
	registry *prometheus.Registry

	transitions     *prometheus.CounterVec
	rejectedOutcome *prometheus.CounterVec
	callbacks       *prometheus.CounterVec
	ledgerWrites    *prometheus.CounterVec

	sweepRuns     prometheus.Counter
	sweepExamined prometheus.Counter
	sweepResolved prometheus.Counter
	sweepTimedOut prometheus.Counter
	sweepDuration prometheus.Histogram

	gatewayCalls   *prometheus.CounterVec
	gatewayLatency *prometheus.HistogramVec

	breakerState *prometheus.GaugeVec
	breakerTrips *prometheus.CounterVec

	dbQueryDuration *prometheus.HistogramVec
	dbPool          *prometheus.GaugeVec
}

// NewPrometheusMetrics registers every collector on a dedicated registry.
// Process and Go runtime collectors are included when withRuntime is set.
func NewPrometheusMetrics(withRuntime bool) *PrometheusMetrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		registry: reg,

		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transaction",
			Name:      "transitions_total",
			Help:      "Committed transaction status changes.",
		}, []string{"from", "to", "source"}),

		rejectedOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transaction",
			Name:      "outcomes_rejected_total",
			Help:      "Gateway outcomes that did not change a transaction, by reason.",
		}, []string{"source", "reason"}),

		callbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "callback",
			Name:      "received_total",
			Help:      "Callback deliveries by gateway and handling result.",
		}, []string{"gateway", "result"}),

		ledgerWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "writes_total",
			Help:      "Ledger write attempts by result.",
		}, []string{"result"}),

		sweepRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Completed reconciliation sweeps.",
		}),
		sweepExamined: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "examined_total",
			Help:      "Stale transactions examined by sweeps.",
		}),
		sweepResolved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "resolved_total",
			Help:      "Transactions settled by a status query during sweeps.",
		}),
		sweepTimedOut: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "timed_out_total",
			Help:      "Transactions moved to timeout by sweeps.",
		}),
		sweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "duration_seconds",
			Help:      "Wall time of one reconciliation sweep.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}),

		gatewayCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Outbound gateway calls by operation and HTTP status.",
		}, []string{"gateway", "operation", "status"}),

		gatewayLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "latency_seconds",
			Help:      "Outbound gateway call latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"gateway", "operation"}),

		breakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "circuit_breaker",
			Name:      "state",
			Help:      "Current circuit breaker state (0=closed, 1=half-open, 2=open).",
		}, []string{"name"}),

		breakerTrips: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "circuit_breaker",
			Name:      "trips_total",
			Help:      "Total circuit breaker trips.",
		}, []string{"name"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "GORM statement latency by operation and table.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation", "table"}),

		dbPool: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool counts by state.",
		}, []string{"state"}),
	}
}

// TransitionApplied counts a committed status change
func (m *PrometheusMetrics) TransitionApplied(from, to, source string) {
	m.transitions.WithLabelValues(from, to, source).Inc()
}

// OutcomeRejected counts outcomes that were not applied
func (m *PrometheusMetrics) OutcomeRejected(source, reason string) {
	m.rejectedOutcome.WithLabelValues(source, reason).Inc()
}

// CallbackReceived counts callback deliveries
func (m *PrometheusMetrics) CallbackReceived(gateway, result string) {
	m.callbacks.WithLabelValues(gateway, result).Inc()
}

// LedgerWrite counts ledger write attempts
func (m *PrometheusMetrics) LedgerWrite(result string) {
	m.ledgerWrites.WithLabelValues(result).Inc()
}

// SweepCompleted records one reconciliation sweep
func (m *PrometheusMetrics) SweepCompleted(examined, resolved, timedOut int, duration coreport.Duration) {
	m.sweepRuns.Inc()
	m.sweepExamined.Add(float64(examined))
	m.sweepResolved.Add(float64(resolved))
	m.sweepTimedOut.Add(float64(timedOut))
	m.sweepDuration.Observe(duration.Std().Seconds())
}

// GatewayCall records one outbound gateway request. status is the HTTP status or 0 on transport error.
func (m *PrometheusMetrics) GatewayCall(gateway, operation string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.gatewayCalls.WithLabelValues(gateway, operation, label).Inc()
	m.gatewayLatency.WithLabelValues(gateway, operation).Observe(elapsed.Seconds())
}

// BreakerStateChanged records a breaker transition. state follows gobreaker's ordering.
func (m *PrometheusMetrics) BreakerStateChanged(name string, state int, tripped bool) {
	m.breakerState.WithLabelValues(name).Set(float64(state))
	if tripped {
		m.breakerTrips.WithLabelValues(name).Inc()
	}
}

// QueryObserved records one GORM statement
func (m *PrometheusMetrics) QueryObserved(operation, table string, elapsed time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
}

// PoolObserved records connection pool counts
func (m *PrometheusMetrics) PoolObserved(open, inUse, idle int) {
	m.dbPool.WithLabelValues("open").Set(float64(open))
	m.dbPool.WithLabelValues("in_use").Set(float64(inUse))
	m.dbPool.WithLabelValues("idle").Set(float64(idle))
}

// Registry returns the registry the collectors live on
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
