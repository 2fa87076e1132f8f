package insight

import (
	"fmt"
	"strings"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

const (
	maxContextInsights = 3
	maxContextGoals    = 3
	maxSuggestions     = 3
)

// Fallback phrasing when nothing has been detected yet.
const (
	noPatterns  = "No recurring patterns stand out yet."
	noGoals     = "No goals have surfaced yet."
	noJourney   = "The reflection journey is just beginning."
	noSuggested = "Keep checking in so patterns can emerge."
)

// BuildFragments renders insights and a progression into context
// fragments. It never returns an empty field.
func BuildFragments(insights []patterns.Insight, p goals.Progression) ContextFragments {
	return ContextFragments{
		PatternSummary: patternSummary(insights),
		GoalSummary:    goalSummary(p.Goals),
		JourneySummary: journeySummary(p),
		Suggestions:    suggestions(insights, p),
	}
}

func patternSummary(insights []patterns.Insight) string {
	if len(insights) == 0 {
		return noPatterns
	}
	n := min(len(insights), maxContextInsights)
	parts := make([]string, 0, n)
	for _, in := range insights[:n] {
		parts = append(parts, sentence(in.Title))
	}
	return "Observed patterns: " + strings.Join(parts, " ")
}

func goalSummary(gs []goals.Goal) string {
	if len(gs) == 0 {
		return noGoals
	}
	n := min(len(gs), maxContextGoals)
	parts := make([]string, 0, n)
	for _, g := range gs[:n] {
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", g.Title, g.State, g.JourneyStage))
	}
	summary := "Current goals: " + strings.Join(parts, "; ") + "."
	if rest := len(gs) - n; rest > 0 {
		summary += fmt.Sprintf(" %d more tracked.", rest)
	}
	return summary
}

func journeySummary(p goals.Progression) string {
	if p.Narrative.StoryArc == "" && p.Narrative.CurrentChapter == "" {
		return noJourney
	}
	var parts []string
	if p.Narrative.StoryArc != "" {
		parts = append(parts, sentence(p.Narrative.StoryArc))
	}
	if p.Narrative.CurrentChapter != "" {
		parts = append(parts, sentence(p.Narrative.CurrentChapter))
	}
	if n := len(p.RecentBreakthroughs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d recent breakthrough%s.", n, plural(n)))
	}
	return strings.Join(parts, " ")
}

// suggestions lists the progression's next focus, its next milestone and
// the strongest insight's description, without duplicates.
func suggestions(insights []patterns.Insight, p goals.Progression) []string {
	out := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] || len(out) == maxSuggestions {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	add(p.NextFocus)
	add(p.Narrative.NextMilestone)
	if len(insights) > 0 {
		add(insights[0].Description)
	}
	if len(out) == 0 {
		out = append(out, noSuggested)
	}
	return out
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
