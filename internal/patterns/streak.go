package patterns

import (
	"fmt"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// DetectStreak reports the longest run of one repeated emotional state.
// The first run to reach the maximum length wins ties.
func DetectStreak(entries []eventlog.Entry) []Insight {
	insights := make([]Insight, 0)
	samples := stateSamples(entries)
	if len(samples) == 0 {
		return insights
	}

	bestState, bestLen := samples[0].state, 1
	curState, curLen := samples[0].state, 1
	for _, s := range samples[1:] {
		if s.state == curState {
			curLen++
		} else {
			curState, curLen = s.state, 1
		}
		if curLen > bestLen {
			bestState, bestLen = curState, curLen
		}
	}

	if bestLen < minStreakLength {
		return insights
	}
	return append(insights, Insight{
		Type:        TypeStreak,
		Title:       fmt.Sprintf("%d %s check-ins in a row", bestLen, bestState),
		Description: fmt.Sprintf("Your longest streak is %d consecutive check-ins feeling %s.", bestLen, bestState),
		Confidence:  streakConfidence,
		DataPoints:  bestLen,
		Metadata: map[string]float64{
			MetaStreakLength: float64(bestLen),
		},
	})
}
