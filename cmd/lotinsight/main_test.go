package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/insight"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

const testNow = "2024-06-20T12:00:00Z"

// writeExport writes a single-user export with n daily self-care logs.
func writeExport(t *testing.T, n int) string {
	t.Helper()
	now, err := time.Parse(time.RFC3339, testNow)
	require.NoError(t, err)

	var b strings.Builder
	b.WriteString(`{"profile":{"id":"u1","metadata":{"archetype":"Seeker"}},"entries":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		at := now.AddDate(0, 0, -n+i).Format(time.RFC3339)
		fmt.Fprintf(&b, `{"id":"sc%d","kind":"self_care","createdAt":%q}`, i, at)
	}
	b.WriteString("]}")

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0600))
	return path
}

// execute runs the CLI with every persistent flag set explicitly, since
// cobra keeps flag values between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	defaults := []string{"--config=", "--user=", "--format=json", "--now=" + testNow, "--metrics-textfile="}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(defaults, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGoalsCommand_JSON(t *testing.T) {
	path := writeExport(t, 6)

	out, err := execute(t, "goals", "--log", path)
	require.NoError(t, err)

	var gs []goals.Goal
	require.NoError(t, json.Unmarshal([]byte(out), &gs))
	require.Len(t, gs, 1)
	assert.Equal(t, "pattern-selfcare-consistency", gs[0].ID)
	assert.Equal(t, goals.StateProgressing, gs[0].State)
	assert.Equal(t, goals.StageStruggle, gs[0].JourneyStage)
}

func TestPatternsCommand_EmptyArray(t *testing.T) {
	path := writeExport(t, 6)

	out, err := execute(t, "patterns", "--log", path)
	require.NoError(t, err)

	var insights []patterns.Insight
	require.NoError(t, json.Unmarshal([]byte(out), &insights))
	assert.Empty(t, insights)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestReportCommand_TextAndMetrics(t *testing.T) {
	path := writeExport(t, 6)
	prom := filepath.Join(t.TempDir(), "lotinsight.prom")

	out, err := execute(t, "report", "--log", path, "--format", "text", "--metrics-textfile", prom)
	require.NoError(t, err)
	assert.Contains(t, out, "Consistent self-care")
	assert.Contains(t, out, "No patterns detected yet.")
	assert.Contains(t, out, "seeker")

	content, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(content), `lotinsight_goals{state="progressing"} 1`)
}

func TestContextCommand(t *testing.T) {
	path := writeExport(t, 6)

	out, err := execute(t, "context", "--log", path)
	require.NoError(t, err)

	var f insight.ContextFragments
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.NotEmpty(t, f.PatternSummary)
	assert.Contains(t, f.GoalSummary, "Consistent self-care")
	assert.NotEmpty(t, f.Suggestions)
}

func TestProgressionCommand(t *testing.T) {
	path := writeExport(t, 6)

	out, err := execute(t, "progression", "--log", path)
	require.NoError(t, err)

	var p goals.Progression
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	require.NotNil(t, p.PrimaryGoal)
	assert.Equal(t, "pattern-selfcare-consistency", p.PrimaryGoal.ID)
	assert.Len(t, p.RecentBreakthroughs, 1)
}

func TestUsersCommand(t *testing.T) {
	path := writeExport(t, 1)

	out, err := execute(t, "users", "--log", path)
	require.NoError(t, err)
	assert.Equal(t, "u1\n", out)
}

func TestCommand_Errors(t *testing.T) {
	path := writeExport(t, 1)

	_, err := execute(t, "goals", "--log", "")
	assert.ErrorContains(t, err, "--log is required")

	_, err = execute(t, "goals", "--log", path, "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")

	_, err = execute(t, "goals", "--log", path, "--user", "ghost")
	assert.ErrorContains(t, err, "user not found")
}

func TestParseNow(t *testing.T) {
	now, err := parseNow("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now(), time.Minute)

	fixed, err := parseNow(testNow)
	require.NoError(t, err)
	assert.Equal(t, 2024, fixed().Year())

	_, err = parseNow("yesterday")
	assert.Error(t, err)
}

func TestIsLogChange(t *testing.T) {
	target := filepath.Join(string(filepath.Separator), "data", "export.json")
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(filepath.Dir(target), "other.json"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLogChange(tt.event, target))
		})
	}
}

func TestDrain(t *testing.T) {
	events := make(chan fsnotify.Event, 3)
	events <- fsnotify.Event{Name: "a"}
	events <- fsnotify.Event{Name: "b"}
	drain(events)
	assert.Empty(t, events)
}
