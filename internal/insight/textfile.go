package insight

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

// Recorder keeps Prometheus gauges describing the latest report so batch
// runs can leave a textfile behind for node_exporter's textfile collector.
//
// Metrics:
//   - lotinsight_insights{type} - insights in the latest report
//   - lotinsight_insight_confidence{type} - best confidence per type
//   - lotinsight_goals{state} - goals per lifecycle state
//   - lotinsight_entries_analysed - entries in the analysis window
//   - lotinsight_months_tracked - whole months since the first entry
//   - lotinsight_last_run_timestamp_seconds - report generation time
type Recorder struct {
	registry *prometheus.Registry

	insights   *prometheus.GaugeVec
	confidence *prometheus.GaugeVec
	goals      *prometheus.GaugeVec
	entries    prometheus.Gauge
	months     prometheus.Gauge
	lastRun    prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		insights: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lotinsight_insights",
			Help: "Pattern insights in the latest report, by type",
		}, []string{"type"}),
		confidence: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lotinsight_insight_confidence",
			Help: "Highest insight confidence in the latest report, by type",
		}, []string{"type"}),
		goals: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lotinsight_goals",
			Help: "Goals in the latest report, by lifecycle state",
		}, []string{"state"}),
		entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lotinsight_entries_analysed",
			Help: "Log entries in the latest analysis window",
		}),
		months: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lotinsight_months_tracked",
			Help: "Whole months between the first entry and the report",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lotinsight_last_run_timestamp_seconds",
			Help: "Unix time the latest report was generated",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe replaces the gauges with the values from rep. Every known insight
// type and goal state is set, so absent ones read zero.
func (r *Recorder) Observe(rep Report) {
	r.insights.Reset()
	r.confidence.Reset()
	r.goals.Reset()

	for t := range patterns.ValidTypes {
		r.insights.WithLabelValues(string(t)).Set(0)
	}
	best := make(map[patterns.Type]float64)
	for _, in := range rep.Insights {
		r.insights.WithLabelValues(string(in.Type)).Inc()
		if in.Confidence > best[in.Type] {
			best[in.Type] = in.Confidence
		}
	}
	for t, c := range best {
		r.confidence.WithLabelValues(string(t)).Set(c)
	}

	for _, s := range goals.States {
		r.goals.WithLabelValues(string(s)).Set(0)
	}
	for _, g := range rep.Progression.Goals {
		r.goals.WithLabelValues(string(g.State)).Inc()
	}

	r.entries.Set(float64(rep.Entries))
	r.months.Set(float64(rep.Progression.MonthsTracked))
	r.lastRun.Set(float64(rep.GeneratedAt.Unix()))
}

// WriteTextfile writes the registry to path in the text exposition format.
// The write goes through a temp file and rename so the collector never
// reads a partial file.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
