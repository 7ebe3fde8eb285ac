package mainutil

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
)

const metricsNamespace = "mimetable"

// RunMetrics collects the metrics for a single run of a build tool, to be
// written out in the Prometheus text format once the run is over.
type RunMetrics struct {
	registry  *prometheus.Registry
	counts    *prometheus.GaugeVec
	duration  prometheus.Gauge
	success   prometheus.Gauge
	timestamp prometheus.Gauge
	started   time.Time
}

// NewRunMetrics constructs a RunMetrics labeled with the program name and the
// run ID.
func NewRunMetrics(program string, runID xid.ID) *RunMetrics {
	constLabels := prometheus.Labels{
		"program": program,
		"run":     runID.String(),
	}

	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		counts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   metricsNamespace,
				Subsystem:   "registry",
				Name:        "count",
				Help:        "Number of registry items seen during the run, by kind",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "run",
			Name:        "duration_seconds",
			Help:        "Wall-clock duration of the run",
			ConstLabels: constLabels,
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "run",
			Name:        "success",
			Help:        "1 if the run succeeded, 0 otherwise",
			ConstLabels: constLabels,
		}),
		timestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "run",
			Name:        "timestamp_seconds",
			Help:        "Unix time at which the run finished",
			ConstLabels: constLabels,
		}),
		started: time.Now(),
	}

	m.registry.MustRegister(m.counts, m.duration, m.success, m.timestamp)
	return m
}

// SetCount records the count for one kind of registry item.
func (m *RunMetrics) SetCount(kind string, value int) {
	m.counts.WithLabelValues(kind).Set(float64(value))
}

// Finish records the run's duration, outcome, and completion time.
func (m *RunMetrics) Finish(ok bool) {
	now := time.Now()
	m.duration.Set(now.Sub(m.started).Seconds())
	m.timestamp.Set(float64(now.UnixNano()) / 1e9)
	if ok {
		m.success.Set(1)
	} else {
		m.success.Set(0)
	}
}

// WriteFile writes the collected metrics to the named file in the Prometheus
// text format.  The write is atomic.
func (m *RunMetrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return MetricsWriteError{Path: path, Err: err}
	}
	return nil
}
