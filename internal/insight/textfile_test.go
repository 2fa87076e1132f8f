package insight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

func sampleReport() Report {
	return Report{
		UserID:      "u1",
		GeneratedAt: time.Unix(1718884800, 0),
		Entries:     42,
		Insights: []patterns.Insight{
			{Type: patterns.TypeStreak, Confidence: 0.95},
			{Type: patterns.TypeWeatherMood, Confidence: 0.4},
			{Type: patterns.TypeWeatherMood, Confidence: 0.6},
		},
		Progression: goals.Progression{
			MonthsTracked: 3,
			Goals: []goals.Goal{
				{ID: "a", State: goals.StateProgressing},
				{ID: "b", State: goals.StateActive},
				{ID: "c", State: goals.StateActive},
			},
		},
	}
}

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleReport())

	assert.Equal(t, 2.0, testutil.ToFloat64(r.insights.WithLabelValues("weather-mood")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.insights.WithLabelValues("streak")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.insights.WithLabelValues("behavioral")))
	assert.Equal(t, 0.6, testutil.ToFloat64(r.confidence.WithLabelValues("weather-mood")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.goals.WithLabelValues("active")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.goals.WithLabelValues("abandoned")))
	assert.Equal(t, 42.0, testutil.ToFloat64(r.entries))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.months))
	assert.Equal(t, 1718884800.0, testutil.ToFloat64(r.lastRun))

	// A second report replaces the first.
	r.Observe(Report{GeneratedAt: time.Unix(1718884900, 0)})
	assert.Equal(t, 0.0, testutil.ToFloat64(r.insights.WithLabelValues("weather-mood")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.goals.WithLabelValues("active")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleReport())

	path := filepath.Join(t.TempDir(), "lotinsight.prom")
	require.NoError(t, r.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.True(t, strings.Contains(text, `lotinsight_goals{state="progressing"} 1`), text)
	assert.Contains(t, text, "lotinsight_entries_analysed 42")
}

func TestRecorder_WriteTextfileBadDir(t *testing.T) {
	r := NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "out.prom"))
	assert.Error(t, err)
}
