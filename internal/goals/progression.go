package goals

import (
	"fmt"
	"time"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// breakthroughWindow is how recent a marker must be to count as a breakthrough.
const breakthroughWindow = 30 * 24 * time.Hour

// Aggregate builds the progression view over tracked, ordered goals.
func Aggregate(profile eventlog.Profile, goals []Goal, entries []eventlog.Entry, now time.Time) Progression {
	primary := primaryGoal(goals)
	months := monthsBetween(eventlog.Oldest(entries), now)
	if len(entries) == 0 {
		months = 0
	}

	return Progression{
		Goals:               goals,
		MonthsTracked:       months,
		PrimaryGoal:         primary,
		RecentBreakthroughs: recentBreakthroughs(goals, now),
		NextFocus:           nextFocus(goals, primary),
		Narrative:           progressionNarrative(months, profile.Archetype(), primary),
	}
}

// primaryGoal is the first active or progressing goal, else the first goal.
func primaryGoal(goals []Goal) *Goal {
	for _, g := range goals {
		if g.State == StateActive || g.State == StateProgressing {
			p := clone(g)
			return &p
		}
	}
	if len(goals) > 0 {
		p := clone(goals[0])
		return &p
	}
	return nil
}

func recentBreakthroughs(goals []Goal, now time.Time) []Goal {
	out := make([]Goal, 0)
	for _, g := range goals {
		if g.State != StateProgressing && g.State != StateAchieved {
			continue
		}
		for _, m := range g.ProgressMarkers {
			if now.Sub(m.DetectedAt) <= breakthroughWindow {
				out = append(out, clone(g))
				break
			}
		}
	}
	return out
}

// nextFocus prefers a category with no goals yet, then deepening the
// primary goal, then a generic nudge.
func nextFocus(goals []Goal, primary *Goal) string {
	explored := make(map[Category]bool, len(goals))
	for _, g := range goals {
		explored[g.Category] = true
	}
	for _, c := range Categories {
		if !explored[c] {
			return fmt.Sprintf("Explore %s growth: %s", c, nextFocusByCategory[c])
		}
	}
	if primary != nil {
		return fmt.Sprintf("Go deeper with %q.", primary.Title)
	}
	return "Keep checking in. Patterns take a few weeks to surface."
}

// monthsBetween counts whole calendar months from since to now.
func monthsBetween(since, now time.Time) int {
	if since.IsZero() || !now.After(since) {
		return 0
	}
	since, now = since.UTC(), now.UTC()
	months := (now.Year()-since.Year())*12 + int(now.Month()) - int(since.Month())
	anniversary := since.AddDate(0, months, 0)
	if anniversary.After(now) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
