// Package metrics exposes Prometheus collectors for the vendor store, the
// exchange layer and the HTTP API. Every method is safe on a nil receiver so
// callers that run without metrics need no guards.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cmseval"

// Mutation operations recorded by IncMutation
const (
	OpAdd    = "add"
	OpSave   = "save"
	OpDelete = "delete"
	OpReset  = "reset"
	OpImport = "import"
)

// Metrics holds the registered collectors
type Metrics struct {
	mutations       *prometheus.CounterVec
	persistFailures prometheus.Counter
	exports         *prometheus.CounterVec
	imports         *prometheus.CounterVec
	vendors         prometheus.Gauge
	httpDuration    *prometheus.HistogramVec
}

// New registers the collectors on reg. A nil registerer returns a Metrics
// that records nothing.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}

	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_mutations_total",
			Help:      "Committed vendor store mutations.",
		}, []string{"op"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_persist_failures_total",
			Help:      "Snapshot writes that failed after a committed mutation.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Generated exports by format.",
		}, []string{"format"}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Import attempts by result.",
		}, []string{"result"}),
		vendors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vendors",
			Help:      "Vendors currently held by the store.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP API latency by route pattern and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.mutations, m.persistFailures, m.exports, m.imports, m.vendors, m.httpDuration)
	return m
}

// IncMutation counts one committed store mutation
func (m *Metrics) IncMutation(op string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncPersistFailure counts one failed snapshot write
func (m *Metrics) IncPersistFailure() {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.Inc()
}

// IncExport counts one generated export
func (m *Metrics) IncExport(format string) {
	if m == nil || m.exports == nil {
		return
	}
	m.exports.WithLabelValues(normalizeLabel(format)).Inc()
}

// IncImport counts one import attempt
func (m *Metrics) IncImport(ok bool) {
	if m == nil || m.imports == nil {
		return
	}
	result := "rejected"
	if ok {
		result = "accepted"
	}
	m.imports.WithLabelValues(result).Inc()
}

// SetVendorCount records the current store size
func (m *Metrics) SetVendorCount(n int) {
	if m == nil || m.vendors == nil {
		return
	}
	m.vendors.Set(float64(n))
}

// ObserveHTTP records the latency of one API request
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil || m.httpDuration == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
