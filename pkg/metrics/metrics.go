package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the shape and timing of one generation run. All methods
// are safe on a nil receiver so callers can run with metrics disabled.
type Metrics struct {
	registry      *prometheus.Registry
	namespace     string
	rowsGenerated *prometheus.CounterVec
	phaseDur      *prometheus.HistogramVec
	phaseInfl     *prometheus.GaugeVec
	runErrors     *prometheus.CounterVec
	violations    prometheus.Gauge
	lastRun       prometheus.Gauge
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.ExponentialBuckets(0.001, 4, 8)
	}
	r := prometheus.NewRegistry()

	rowsGenerated := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "rows_generated_total", Help: "Rows generated per table."}, []string{"table"})
	phaseDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "phase_duration_seconds", Help: "Duration of each pipeline phase.", Buckets: buckets}, []string{"phase", "status"})
	phaseInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "phase_inflight", Help: "Phases currently running."}, []string{"phase"})
	r.MustRegister(rowsGenerated, phaseDur, phaseInfl)

	runErrors := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "run_errors_total", Help: "Failed runs by error category."}, []string{"category"})
	violations := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: ns, Name: "integrity_violations", Help: "Violations found by the last integrity check."})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: ns, Name: "last_run_timestamp_seconds", Help: "Completion time of the last successful run."})
	r.MustRegister(runErrors, violations, lastRun)

	return &Metrics{
		registry:      r,
		namespace:     ns,
		rowsGenerated: rowsGenerated,
		phaseDur:      phaseDur,
		phaseInfl:     phaseInfl,
		runErrors:     runErrors,
		violations:    violations,
		lastRun:       lastRun,
	}
}

func (m *Metrics) PhaseStart(phase string) {
	if m == nil {
		return
	}
	m.phaseInfl.WithLabelValues(phase).Inc()
}

func (m *Metrics) PhaseDone(phase string, since time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.phaseDur.WithLabelValues(phase, status).Observe(time.Since(since).Seconds())
	m.phaseInfl.WithLabelValues(phase).Dec()
}

func (m *Metrics) RowsGenerated(table string, n int) {
	if m == nil {
		return
	}
	m.rowsGenerated.WithLabelValues(table).Add(float64(n))
}

func (m *Metrics) RunFailed(category string) {
	if m == nil {
		return
	}
	m.runErrors.WithLabelValues(category).Inc()
}

func (m *Metrics) IntegrityViolations(n int) {
	if m == nil {
		return
	}
	m.violations.Set(float64(n))
}

func (m *Metrics) RunCompleted(at time.Time) {
	if m == nil {
		return
	}
	m.lastRun.Set(float64(at.Unix()))
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes every collected metric to path in the node_exporter
// textfile format. The write is atomic.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
