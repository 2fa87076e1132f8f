package insight

import (
	"context"
	"time"

	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/patterns"
)

// Reader is the outbound analytics surface.
type Reader interface {
	// DetectPatterns returns the ranked insights for a user.
	DetectPatterns(ctx context.Context, userID string) ([]patterns.Insight, error)
	// ExtractGoals returns the merged and tracked goals for a user.
	ExtractGoals(ctx context.Context, userID string) ([]goals.Goal, error)
	// GenerateGoalProgression returns the progression aggregate for a user.
	GenerateGoalProgression(ctx context.Context, userID string) (goals.Progression, error)
	// BuildContext renders insights and goals into prompt-ready sentences.
	BuildContext(ctx context.Context, userID string) (ContextFragments, error)
}

// ContextFragments are short rendered sentences for downstream prompt
// builders. Every field is non-empty.
type ContextFragments struct {
	PatternSummary string   `json:"patternSummary"`
	GoalSummary    string   `json:"goalSummary"`
	JourneySummary string   `json:"journeySummary"`
	Suggestions    []string `json:"suggestions"`
}

// Report bundles every analysis for one user computed from one load.
type Report struct {
	UserID      string             `json:"userId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Entries     int                `json:"entries"`
	Insights    []patterns.Insight `json:"insights"`
	Progression goals.Progression  `json:"progression"`
	Context     ContextFragments   `json:"context"`
}
