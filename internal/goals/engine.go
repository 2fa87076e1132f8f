package goals

import (
	"time"

	"github.com/lotcomputer/lotinsight/internal/classify"
	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// Engine runs the extract, merge and track pipeline.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	extractors []Extractor
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier uses c for every built-in extractor.
func WithClassifier(c classify.Classifier) Option {
	return func(e *Engine) {
		e.extractors = DefaultExtractors(c)
	}
}

// WithExtractors replaces the extractor set.
func WithExtractors(xs ...Extractor) Option {
	return func(e *Engine) {
		e.extractors = xs
	}
}

// NewEngine creates an engine with the keyword classifier and the built-in
// extractors unless options override them.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{extractors: DefaultExtractors(classify.NewKeywordClassifier())}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extractors returns the configured extractors in merge order.
func (e *Engine) Extractors() []Extractor {
	return append([]Extractor{}, e.extractors...)
}

// Candidates runs every extractor and concatenates the raw goals in
// extractor order.
func (e *Engine) Candidates(profile eventlog.Profile, entries []eventlog.Entry) []Goal {
	out := make([]Goal, 0)
	for _, x := range e.extractors {
		out = append(out, x.Extract(profile, entries)...)
	}
	return out
}

// Extract returns the merged, tracked and ordered goals as of now.
func (e *Engine) Extract(profile eventlog.Profile, entries []eventlog.Entry, now time.Time) []Goal {
	return Finalize(e.Candidates(profile, entries), now)
}

// Progression extracts goals and aggregates them.
func (e *Engine) Progression(profile eventlog.Profile, entries []eventlog.Entry, now time.Time) Progression {
	return Aggregate(profile, e.Extract(profile, entries, now), entries, now)
}

// Finalize merges candidates, applies the lifecycle as of now and renders
// each goal's narrative. Merging runs first so fresh evidence can reset a
// goal's recency before decay is evaluated.
func Finalize(candidates []Goal, now time.Time) []Goal {
	goals := Track(Merge(candidates), now)
	for i := range goals {
		goals[i].Narrative = goalNarrative(goals[i])
	}
	return goals
}
