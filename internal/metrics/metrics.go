// Package metrics records per-run conversion metrics on a private Prometheus
// registry and exports them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bomexport"

// Recorder collects the metrics of one conversion run.
type Recorder struct {
	registry    *prometheus.Registry
	rows        *prometheus.CounterVec
	bomLines    *prometheus.CounterVec
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewRecorder creates a recorder backed by its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_written_total",
			Help:      "Data rows written per import file.",
		}, []string{"table"}),
		bomLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bom_lines_total",
			Help:      "Bill-of-material lines generated, by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last conversion run.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 when the last conversion run succeeded, 0 otherwise.",
		}),
	}
	r.registry.MustRegister(r.rows, r.bomLines, r.duration, r.lastSuccess)
	return r
}

// RowsWritten adds n data rows for the named table.
func (r *Recorder) RowsWritten(table string, n int) {
	if r == nil {
		return
	}
	r.rows.WithLabelValues(table).Add(float64(n))
}

// BOMLines records generated child and parent lines.
func (r *Recorder) BOMLines(children, parents int) {
	if r == nil {
		return
	}
	r.bomLines.WithLabelValues("child").Add(float64(children))
	r.bomLines.WithLabelValues("parent").Add(float64(parents))
}

// Finish records the run outcome and duration.
func (r *Recorder) Finish(d time.Duration, err error) {
	if r == nil {
		return
	}
	r.duration.Set(d.Seconds())
	if err != nil {
		r.lastSuccess.Set(0)
		return
	}
	r.lastSuccess.Set(1)
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path for the node-exporter textfile
// collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
