package goals

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned for state changes the lifecycle forbids.
var ErrInvalidTransition = errors.New("invalid goal state transition")

// validTransitions defines the allowed state changes.
// Key: from state -> set of allowed to states.
var validTransitions = map[State]map[State]bool{
	StateEmerging: {
		StateActive:      true,
		StateProgressing: true,
		StatePlateaued:   true,
		StateAchieved:    true,
	},
	StateActive: {
		StateProgressing: true,
		StatePlateaued:   true,
		StateAchieved:    true,
	},
	StateProgressing: {
		StateActive:   true,
		StateAchieved: true,
	},
	StatePlateaued: {
		StateActive:      true,
		StateProgressing: true,
		StateAbandoned:   true,
		StateAchieved:    true,
	},
	StateAchieved:  {},
	StateAbandoned: {StateActive: true},
}

// CanTransition reports whether the lifecycle allows from -> to.
func CanTransition(from, to State) bool {
	return validTransitions[from][to]
}

// Transition moves g to the given state.
func Transition(g *Goal, to State) error {
	if !CanTransition(g.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.State, to)
	}
	g.State = to
	return nil
}

// Idle thresholds for decay, measured from LastUpdated.
const (
	plateauAfter = 30 * 24 * time.Hour
	abandonAfter = 60 * 24 * time.Hour

	// integrationMetric is the marker metric that marks integration.
	integrationMetric = 70.0
	// masteryMetric is the marker metric that, at integration, achieves a goal.
	masteryMetric = 90.0
)

// Track applies the progress state machine to each goal as of now and
// returns the goals re-sorted. Steps run in order: journey stage from
// markers, idle decay (which can cascade from active to abandoned in one
// pass), then achievement.
func Track(goals []Goal, now time.Time) []Goal {
	tracked := make([]Goal, 0, len(goals))
	for _, g := range goals {
		g = clone(g)
		g.JourneyStage = stageFromMarkers(g.ProgressMarkers)

		idle := now.Sub(g.LastUpdated)
		if g.State == StateActive && idle > plateauAfter {
			_ = Transition(&g, StatePlateaued)
		}
		if g.State == StatePlateaued && idle > abandonAfter {
			_ = Transition(&g, StateAbandoned)
		}

		if metric, ok := g.MaxMetric(); ok && g.JourneyStage == StageIntegration && metric >= masteryMetric {
			if Transition(&g, StateAchieved) == nil {
				g.JourneyStage = StageMastery
			}
		}
		tracked = append(tracked, g)
	}
	Sort(tracked)
	return tracked
}

// stageFromMarkers derives the journey stage from progress markers.
// A single marker is a struggle regardless of its metric.
func stageFromMarkers(markers []Marker) JourneyStage {
	switch len(markers) {
	case 0:
		return StageBeginning
	case 1:
		return StageStruggle
	}
	for _, m := range markers {
		if m.Metric != nil && *m.Metric > integrationMetric {
			return StageIntegration
		}
	}
	return StageBreakthrough
}
