// Package goals infers the goals a user is pursuing from their event log and
// tracks each through a lifecycle.
//
// # Pipeline
//
//   - Extract: five independent extractors (intention, journal, pattern,
//     check-in, memory answer) each propose candidate goals with evidence tags.
//   - Merge: candidates sharing a category and title prefix fold into one goal,
//     raising confidence and unioning evidence.
//   - Track: a state machine sets the journey stage from progress markers,
//     decays idle goals and marks achievements.
//   - Aggregate: a progression view picks the primary goal, recent
//     breakthroughs and a next focus, with a templated narrative.
//
// # Usage
//
//	engine := goals.NewEngine()
//	progression := engine.Progression(profile, entries, time.Now())
//
// Every step is pure. Time enters only through the now argument, so repeated
// calls with the same inputs return identical results.
package goals
