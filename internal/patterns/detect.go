package patterns

import (
	"sort"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// DefaultMaxInsights is how many insights Detect keeps when no limit is given.
const DefaultMaxInsights = 5

// Detector maps a log to zero or more insights.
type Detector func(entries []eventlog.Entry) []Insight

// Detectors returns the built-in detectors keyed by the family they emit.
func Detectors() map[Type]Detector {
	return map[Type]Detector{
		TypeWeatherMood:     DetectWeatherMood,
		TypeTemporal:        DetectTemporal,
		TypeStreak:          DetectStreak,
		TypeSocialEmotional: DetectSocialEmotional,
		TypeBehavioral:      DetectBehavioral,
	}
}

// detectorOrder fixes the merge order so ranking ties are deterministic.
var detectorOrder = []Type{
	TypeWeatherMood,
	TypeTemporal,
	TypeStreak,
	TypeSocialEmotional,
	TypeBehavioral,
}

// DetectAll runs every detector and concatenates the results unranked.
func DetectAll(entries []eventlog.Entry) []Insight {
	all := make([]Insight, 0)
	detectors := Detectors()
	for _, t := range detectorOrder {
		all = append(all, detectors[t](entries)...)
	}
	return all
}

// Detect runs every detector and returns the top limit insights by confidence.
// limit <= 0 uses DefaultMaxInsights.
func Detect(entries []eventlog.Entry, limit int) []Insight {
	return Rank(DetectAll(entries), limit)
}

// Rank returns a copy of insights stably sorted by confidence descending and
// truncated to limit. limit <= 0 uses DefaultMaxInsights.
// Identical titles are not deduplicated.
func Rank(insights []Insight, limit int) []Insight {
	if limit <= 0 {
		limit = DefaultMaxInsights
	}
	ranked := make([]Insight, len(insights))
	copy(ranked, insights)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
