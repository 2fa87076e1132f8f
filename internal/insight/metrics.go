package insight

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

// Metric names.
const (
	metricInsights = "lotinsight.insights.emitted"
	metricGoals    = "lotinsight.goals.extracted"
	metricEntries  = "lotinsight.entries.analysed"
	metricDuration = "lotinsight.analysis.duration"
	metricErrors   = "lotinsight.analysis.errors"
)

// metrics holds the OTEL instruments. Instruments that fail to register
// stay nil and are skipped.
type metrics struct {
	insights metric.Int64Counter
	goals    metric.Int64Counter
	entries  metric.Int64Histogram
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.insights, err = meter.Int64Counter(metricInsights,
		metric.WithDescription("Pattern insights emitted, by type"),
		metric.WithUnit("{insight}"),
	)
	if err != nil {
		return m, err
	}

	m.goals, err = meter.Int64Counter(metricGoals,
		metric.WithDescription("Goals extracted, by state"),
		metric.WithUnit("{goal}"),
	)
	if err != nil {
		return m, err
	}

	m.entries, err = meter.Int64Histogram(metricEntries,
		metric.WithDescription("Log entries in each analysis window"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return m, err
	}

	m.duration, err = meter.Float64Histogram(metricDuration,
		metric.WithDescription("Analysis duration by operation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return m, err
	}

	m.errors, err = meter.Int64Counter(metricErrors,
		metric.WithDescription("Failed analysis operations"),
		metric.WithUnit("{error}"),
	)
	return m, err
}

func (m *metrics) recordInsights(ctx context.Context, insights []patterns.Insight) {
	if m.insights == nil {
		return
	}
	for _, in := range insights {
		m.insights.Add(ctx, 1, metric.WithAttributes(attribute.String("type", string(in.Type))))
	}
}

func (m *metrics) recordGoals(ctx context.Context, gs []goals.Goal) {
	if m.goals == nil {
		return
	}
	for _, g := range gs {
		m.goals.Add(ctx, 1, metric.WithAttributes(
			attribute.String("state", string(g.State)),
			attribute.String("category", string(g.Category)),
		))
	}
}

func (m *metrics) recordRun(ctx context.Context, op string, entries int, seconds float64, failed bool) {
	attrs := metric.WithAttributes(attribute.String("operation", op))
	if m.duration != nil {
		m.duration.Record(ctx, seconds, attrs)
	}
	if m.entries != nil && !failed {
		m.entries.Record(ctx, int64(entries), attrs)
	}
	if m.errors != nil && failed {
		m.errors.Add(ctx, 1, attrs)
	}
}
