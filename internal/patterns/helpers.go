package patterns

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// stateSample is a check-in that carries an emotional state.
type stateSample struct {
	entry eventlog.Entry
	state string
}

// stateSamples returns chronologically ordered check-ins that carry a state.
func stateSamples(entries []eventlog.Entry) []stateSample {
	var out []stateSample
	for _, e := range eventlog.Chronological(entries) {
		if e.Kind != eventlog.KindCheckIn {
			continue
		}
		state, ok := e.EmotionalState()
		if !ok {
			continue
		}
		out = append(out, stateSample{entry: e, state: state})
	}
	return out
}

// groupByState buckets samples by state, preserving order within a bucket.
func groupByState(samples []stateSample) map[string][]stateSample {
	groups := make(map[string][]stateSample)
	for _, s := range samples {
		groups[s.state] = append(groups[s.state], s)
	}
	return groups
}

// sortedKeys returns map keys in ascending order so iteration is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// capitalize upper-cases the first rune.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// highEnergyStates are the states counted as high energy.
var highEnergyStates = map[string]bool{
	"energized": true,
	"inspired":  true,
	"excited":   true,
	"motivated": true,
	"joyful":    true,
}

func isHighEnergy(state string) bool {
	return highEnergyStates[strings.ToLower(state)]
}
