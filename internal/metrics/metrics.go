// Package metrics defines the Prometheus instrumentation for the evaluation
// pipeline: per-strategy counters and grid sweep latency histograms, plus a
// process memory collector backed by gopsutil.
package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v4/process"
)

var (
	// EvaluationsTotal counts completed grid sweeps per evaluation strategy.
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rotcoef",
		Name:      "evaluations_total",
		Help:      "Total number of completed grid sweeps, by evaluation strategy.",
	}, []string{"mode"})

	// EvaluationErrorsTotal counts failed grid sweeps per evaluation strategy.
	EvaluationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rotcoef",
		Name:      "evaluation_errors_total",
		Help:      "Total number of failed grid sweeps, by evaluation strategy.",
	}, []string{"mode"})

	// GridDuration observes the wall-clock duration of a grid sweep.
	GridDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rotcoef",
		Name:      "grid_sweep_duration_seconds",
		Help:      "Wall-clock duration of a full grid sweep, by evaluation strategy.",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
	}, []string{"mode"})

	// MismatchesTotal counts cross-strategy comparison failures.
	MismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rotcoef",
		Name:      "mismatches_total",
		Help:      "Total number of cross-strategy deviations exceeding the tolerance.",
	})
)

// RecordEvaluation records one completed grid sweep for the given strategy.
func RecordEvaluation(mode string, seconds float64) {
	EvaluationsTotal.WithLabelValues(mode).Inc()
	GridDuration.WithLabelValues(mode).Observe(seconds)
}

// RecordEvaluationError records one failed grid sweep for the given strategy.
func RecordEvaluationError(mode string) {
	EvaluationErrorsTotal.WithLabelValues(mode).Inc()
}

// MemoryCollector exposes the resident set size of the current process as a
// gauge. It samples on collection, so scrapes always see a fresh value.
type MemoryCollector struct {
	desc *prometheus.Desc
	proc *process.Process
}

// NewMemoryCollector creates a collector for the current process. It returns
// an error when the process handle cannot be opened.
func NewMemoryCollector() (*MemoryCollector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &MemoryCollector{
		desc: prometheus.NewDesc(
			"rotcoef_process_resident_memory_bytes",
			"Resident set size of the process, sampled at scrape time.",
			nil, nil,
		),
		proc: proc,
	}, nil
}

// Describe implements prometheus.Collector.
func (c *MemoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *MemoryCollector) Collect(ch chan<- prometheus.Metric) {
	info, err := c.proc.MemoryInfo()
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(info.RSS))
}
