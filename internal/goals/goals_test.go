package goals

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotcomputer/lotinsight/internal/classify"
	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

var base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func day(n int) time.Time { return base.Add(time.Duration(n) * 24 * time.Hour) }

func checkIn(id int, at time.Time, state string) eventlog.Entry {
	return eventlog.Entry{
		ID:        fmt.Sprintf("c%03d", id),
		UserID:    "u1",
		Kind:      eventlog.KindCheckIn,
		CreatedAt: at,
		Metadata:  map[string]any{eventlog.MetaEmotionalState: state},
	}
}

func note(id string, at time.Time, text string, tags ...string) eventlog.Entry {
	e := eventlog.Entry{ID: id, UserID: "u1", Kind: eventlog.KindNote, CreatedAt: at, Text: text}
	if len(tags) > 0 {
		e.Metadata = map[string]any{eventlog.MetaTags: tags}
	}
	return e
}

func answer(id string, at time.Time, text string) eventlog.Entry {
	return eventlog.Entry{
		ID:        id,
		UserID:    "u1",
		Kind:      eventlog.KindAnswer,
		CreatedAt: at,
		Metadata:  map[string]any{eventlog.MetaQuestion: "What helped today?", eventlog.MetaAnswer: text},
	}
}

func activity(id string, kind eventlog.Kind, at time.Time) eventlog.Entry {
	return eventlog.Entry{ID: id, UserID: "u1", Kind: kind, CreatedAt: at}
}

func byID(goals []Goal) map[string]Goal {
	out := make(map[string]Goal, len(goals))
	for _, g := range goals {
		out[g.ID] = g
	}
	return out
}

// richLog exercises every extractor.
func richLog() []eventlog.Entry {
	var entries []eventlog.Entry
	states := []string{"anxious", "anxious", "overwhelmed", "anxious", "calm", "tired", "calm", "energized", "calm", "anxious", "joyful", "calm"}
	for i, s := range states {
		entries = append(entries, checkIn(i, day(i).Add(time.Duration(i)*time.Hour), s))
	}
	for i := 0; i < 7; i++ {
		entries = append(entries, activity(fmt.Sprintf("sc%d", i), eventlog.KindSelfCare, day(i*2)))
		entries = append(entries, activity(fmt.Sprintf("p%d", i), eventlog.KindPlan, day(i)))
	}
	entries = append(entries,
		note("n1", day(1), "Rest and boundaries this week", "intention"),
		note("n2", day(3), "More rest", "intention"),
		note("j1", day(2), "I really want to feel less anxious at work and sleep better on weeknights."),
		note("j2", day(5), "Still trying to be less anxious about deadlines; it helps to breathe slowly."),
		answer("a1", day(1), "A short meditation before work"),
		answer("a2", day(4), "Meditating with my partner"),
		answer("a3", day(8), "Ten minutes of mindful breathing"),
		activity("m1", eventlog.KindChatMessage, day(2)),
	)
	return entries
}

func TestEngine_SelfCareEndToEnd(t *testing.T) {
	var entries []eventlog.Entry
	for i := 0; i < 6; i++ {
		entries = append(entries, activity(fmt.Sprintf("s%d", i), eventlog.KindSelfCare, day(i)))
	}

	goals := NewEngine().Extract(eventlog.Profile{ID: "u1"}, entries, day(6))
	require.Len(t, goals, 1)

	g := goals[0]
	assert.Equal(t, "pattern-selfcare-consistency", g.ID)
	assert.Equal(t, StateProgressing, g.State)
	assert.Equal(t, StageStruggle, g.JourneyStage)
	assert.Equal(t, CategoryBehavioral, g.Category)
	require.Len(t, g.ProgressMarkers, 1)
	require.NotNil(t, g.ProgressMarkers[0].Metric)
	assert.InDelta(t, 20.0, *g.ProgressMarkers[0].Metric, 1e-9)
	assert.Equal(t, []string{"pattern:selfcare"}, g.ExtractedFrom)
	assert.Equal(t, day(0), g.FirstDetected)
	assert.Equal(t, day(5), g.LastUpdated)
	assert.NotEmpty(t, g.Narrative)
}

func TestPatternExtractor_SelfCareBelowThreshold(t *testing.T) {
	var entries []eventlog.Entry
	for i := 0; i < 6; i++ {
		// six logs over four days
		entries = append(entries, activity(fmt.Sprintf("s%d", i), eventlog.KindSelfCare, day(i%4).Add(time.Duration(i)*time.Minute)))
	}
	assert.Empty(t, (&PatternExtractor{}).Extract(eventlog.Profile{}, entries))
}

func TestPatternExtractor_SelfCareAchieved(t *testing.T) {
	var entries []eventlog.Entry
	for i := 0; i < 30; i++ {
		entries = append(entries, activity(fmt.Sprintf("s%02d", i), eventlog.KindSelfCare, day(i)))
	}

	raw := (&PatternExtractor{}).Extract(eventlog.Profile{}, entries)
	require.Len(t, raw, 1)
	assert.Equal(t, StageIntegration, raw[0].JourneyStage)
	assert.Len(t, raw[0].ProgressMarkers, 3)

	goals := Finalize(raw, day(30))
	require.Len(t, goals, 1)
	assert.Equal(t, StateAchieved, goals[0].State)
	assert.Equal(t, StageMastery, goals[0].JourneyStage)
}

func TestPatternExtractor_TrackedStageFollowsDayBands(t *testing.T) {
	tests := []struct {
		name string
		kind eventlog.Kind
		id   string
		days int
		want JourneyStage
	}{
		{"self-care 9 days", eventlog.KindSelfCare, "pattern-selfcare-consistency", 9, StageStruggle},
		{"self-care 10 days", eventlog.KindSelfCare, "pattern-selfcare-consistency", 10, StageBreakthrough},
		{"self-care 19 days", eventlog.KindSelfCare, "pattern-selfcare-consistency", 19, StageBreakthrough},
		{"self-care 20 days", eventlog.KindSelfCare, "pattern-selfcare-consistency", 20, StageIntegration},
		{"self-care 21 days", eventlog.KindSelfCare, "pattern-selfcare-consistency", 21, StageIntegration},
		{"check-ins 10 days", eventlog.KindCheckIn, "pattern-emotional-awareness", 10, StageBreakthrough},
		{"check-ins 25 days", eventlog.KindCheckIn, "pattern-emotional-awareness", 25, StageIntegration},
		{"plans 20 days", eventlog.KindPlan, "pattern-intentional-structure", 20, StageIntegration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []eventlog.Entry
			for i := 0; i < tt.days; i++ {
				entries = append(entries, activity(fmt.Sprintf("e%02d", i), tt.kind, day(i)))
			}

			raw := byID((&PatternExtractor{}).Extract(eventlog.Profile{}, entries))
			require.Contains(t, raw, tt.id)
			assert.Equal(t, tt.want, raw[tt.id].JourneyStage)

			tracked := byID(Finalize([]Goal{raw[tt.id]}, day(tt.days)))
			require.Contains(t, tracked, tt.id)
			assert.Equal(t, tt.want, tracked[tt.id].JourneyStage)
			assert.NotEqual(t, StateAchieved, tracked[tt.id].State)
		})
	}
}

func TestPatternExtractor_ActivityCounts(t *testing.T) {
	var entries []eventlog.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, checkIn(i, day(i), "calm"))
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, activity(fmt.Sprintf("p%d", i), eventlog.KindPlan, day(i)))
	}

	goals := byID((&PatternExtractor{}).Extract(eventlog.Profile{}, entries))
	require.Contains(t, goals, "pattern-emotional-awareness")
	require.Contains(t, goals, "pattern-intentional-structure")
	assert.Equal(t, StageBreakthrough, goals["pattern-emotional-awareness"].JourneyStage)
	assert.Equal(t, StageStruggle, goals["pattern-intentional-structure"].JourneyStage)
	assert.Equal(t, StateActive, goals["pattern-intentional-structure"].State)

	assert.Empty(t, (&PatternExtractor{}).Extract(eventlog.Profile{}, entries[:9]))
}

func TestCheckInExtractor_Improvement(t *testing.T) {
	older := []string{"anxious", "anxious", "overwhelmed", "anxious", "calm"}
	newer := []string{"calm", "anxious", "calm", "calm", "joyful"}

	tests := []struct {
		name   string
		states []string
		want   State
	}{
		{"later half calmer", append(append([]string{}, older...), newer...), StateProgressing},
		{"later half worse", append(append([]string{}, newer...), older...), StateActive},
		{"no change", []string{"anxious", "calm", "anxious", "calm", "anxious", "anxious", "calm", "anxious", "calm", "anxious"}, StateActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []eventlog.Entry
			for i, s := range tt.states {
				entries = append(entries, checkIn(i, day(i), s))
			}

			raw := byID((&CheckInExtractor{}).Extract(eventlog.Profile{}, entries))
			require.Contains(t, raw, "checkin-reduce-anxiety")
			assert.Equal(t, tt.want, raw["checkin-reduce-anxiety"].State)
			assert.NotNil(t, raw["checkin-reduce-anxiety"].Baseline)

			goals := byID(NewEngine().Extract(eventlog.Profile{}, entries, day(len(tt.states))))
			require.Contains(t, goals, "checkin-reduce-anxiety")
			assert.Equal(t, tt.want, goals["checkin-reduce-anxiety"].State)
		})
	}
}

func TestCheckInExtractor_Thresholds(t *testing.T) {
	var entries []eventlog.Entry
	for i := 0; i < 4; i++ {
		entries = append(entries, checkIn(i, day(i), "anxious"))
	}
	assert.Empty(t, (&CheckInExtractor{}).Extract(eventlog.Profile{}, entries))
	assert.Empty(t, (&CheckInExtractor{}).Extract(eventlog.Profile{}, nil))
}

func TestCheckInExtractor_Vitality(t *testing.T) {
	var entries []eventlog.Entry
	for i := 0; i < 4; i++ {
		entries = append(entries, checkIn(i, day(i), "tired"))
	}
	entries = append(entries, checkIn(10, day(10), "calm"))

	goals := byID((&CheckInExtractor{}).Extract(eventlog.Profile{}, entries))
	require.Contains(t, goals, "checkin-increase-vitality")
	g := goals["checkin-increase-vitality"]
	assert.Equal(t, CategoryPhysical, g.Category)
	assert.InDelta(t, 0.7, g.Confidence, 1e-9)

	entries = append(entries, checkIn(11, day(11), "energized"), checkIn(12, day(12), "energized"))
	assert.NotContains(t, byID((&CheckInExtractor{}).Extract(eventlog.Profile{}, entries)), "checkin-increase-vitality")
}

func TestIntentionExtractor_Coalesces(t *testing.T) {
	entries := []eventlog.Entry{
		note("n1", day(1), "Rest", "intention"),
		note("n2", day(4), "Honoring rest today", "intention"),
		note("n3", day(2), "rest is for the weak"),
	}
	flagged := note("n4", day(3), "Protect my boundaries")
	flagged.Metadata = map[string]any{eventlog.MetaIntention: true}
	entries = append(entries, flagged)

	goals := byID(NewIntentionExtractor(classify.NewKeywordClassifier()).Extract(eventlog.Profile{}, entries))
	require.Len(t, goals, 2)

	rest := goals["intention-rest"]
	assert.Equal(t, []string{"intention:n1", "intention:n2"}, rest.ExtractedFrom)
	assert.InDelta(t, 0.95, rest.Confidence, 1e-9)
	assert.Equal(t, StateActive, rest.State)
	assert.Equal(t, day(1), rest.FirstDetected)
	assert.Equal(t, day(4), rest.LastUpdated)

	assert.Equal(t, CategoryRelational, goals["intention-boundaries"].Category)
}

func TestIntentionExtractor_NamedIntention(t *testing.T) {
	named := note("n1", day(1), "")
	named.Metadata = map[string]any{eventlog.MetaIntention: "rest"}

	goals := byID(NewIntentionExtractor(classify.NewKeywordClassifier()).Extract(eventlog.Profile{}, []eventlog.Entry{named}))
	require.Contains(t, goals, "intention-rest")
	assert.Equal(t, []string{"intention:n1"}, goals["intention-rest"].ExtractedFrom)
}

func TestJournalExtractor(t *testing.T) {
	x := NewJournalExtractor(classify.NewKeywordClassifier())

	entries := []eventlog.Entry{
		note("j1", day(1), "I want to feel less anxious in the mornings before the commute starts."),
		note("j2", day(3), "Working on feeling less anxious, which is slow but it is really happening."),
		note("j3", day(4), "I should probably sleep better, it would help with nearly everything."),
		note("j4", day(5), "want to sleep better"),
	}

	goals := byID(x.Extract(eventlog.Profile{}, entries))
	require.Len(t, goals, 1)

	g := goals["journal-calm"]
	assert.Equal(t, StateEmerging, g.State)
	assert.InDelta(t, 0.85, g.Confidence, 1e-9)
	assert.Equal(t, []string{"journal:j1", "journal:j2"}, g.ExtractedFrom)
	assert.Len(t, g.ProgressMarkers, 2)
}

func TestJournalExtractor_RepeatCap(t *testing.T) {
	x := NewJournalExtractor(classify.NewKeywordClassifier())

	var entries []eventlog.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, note(fmt.Sprintf("j%d", i), day(i), "I am working on being less anxious, one small and honest step at a time."))
	}

	goals := x.Extract(eventlog.Profile{}, entries)
	require.Len(t, goals, 1)
	assert.InDelta(t, 0.98, goals[0].Confidence, 1e-9)
}

func TestMemoryExtractor(t *testing.T) {
	x := NewMemoryExtractor(classify.NewKeywordClassifier())

	entries := []eventlog.Entry{
		answer("a1", day(1), "A short meditation"),
		answer("a2", day(2), "meditating on the train"),
		answer("a3", day(3), "Gratitude list"),
	}
	assert.Empty(t, x.Extract(eventlog.Profile{}, entries))

	entries = append(entries, answer("a4", day(4), "Breathing exercises before bed"))
	goals := x.Extract(eventlog.Profile{}, entries)
	require.NotEmpty(t, goals)
	assert.Equal(t, "memory-practice-meditation", goals[0].ID)
	assert.Equal(t, []string{"memory:meditation"}, goals[0].ExtractedFrom)
	assert.InDelta(t, 0.75, goals[0].Confidence, 1e-9)
}

func TestMerge_Monotonic(t *testing.T) {
	a := Goal{ID: "a", Category: CategoryEmotional, Title: "Reduce anxiety", State: StateEmerging, Confidence: 0.5,
		ExtractedFrom: []string{"journal:j1"}, FirstDetected: day(2), LastUpdated: day(5)}
	b := Goal{ID: "b", Category: CategoryEmotional, Title: "Reduce anxiety", State: StateProgressing, Confidence: 0.7,
		ExtractedFrom: []string{"checkins:anxiety", "journal:j1"}, FirstDetected: day(1), LastUpdated: day(4),
		ProgressMarkers: []Marker{{Description: "m", DetectedAt: day(4)}}}

	merged := Merge([]Goal{a, b})
	require.Len(t, merged, 1)

	g := merged[0]
	assert.Equal(t, "a", g.ID)
	assert.InDelta(t, 0.8, g.Confidence, 1e-9)
	assert.GreaterOrEqual(t, g.Confidence, a.Confidence)
	assert.GreaterOrEqual(t, g.Confidence, b.Confidence)
	assert.Equal(t, []string{"checkins:anxiety", "journal:j1"}, g.ExtractedFrom)
	assert.Equal(t, StateProgressing, g.State)
	assert.Equal(t, day(1), g.FirstDetected)
	assert.Equal(t, day(5), g.LastUpdated)
	assert.Len(t, g.ProgressMarkers, 1)

	assert.Empty(t, a.ProgressMarkers, "inputs must not be mutated")
}

func TestMerge_ConfidenceCap(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0.95, 0.98, 0.99},
		{0.5, 0.5, 0.6},
		{0.995, 0.2, 0.995},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.3f+%.3f", tt.a, tt.b), func(t *testing.T) {
			merged := Merge([]Goal{
				{ID: "x", Category: CategoryGrowth, Title: "Same", Confidence: tt.a, ExtractedFrom: []string{"x"}},
				{ID: "y", Category: CategoryGrowth, Title: "Same", Confidence: tt.b, ExtractedFrom: []string{"y"}},
			})
			require.Len(t, merged, 1)
			assert.InDelta(t, tt.want, merged[0].Confidence, 1e-9)
		})
	}
}

func TestMerge_KeyUsesTitlePrefix(t *testing.T) {
	merged := Merge([]Goal{
		{ID: "a", Category: CategoryGrowth, Title: "Build a meditation practice", ExtractedFrom: []string{"a"}},
		{ID: "b", Category: CategoryGrowth, Title: "Build a meditation p", ExtractedFrom: []string{"b"}},
		{ID: "c", Category: CategoryEmotional, Title: "Build a meditation practice", ExtractedFrom: []string{"c"}},
		{ID: "d", Category: CategoryGrowth, Title: "Build a gratitude practice", ExtractedFrom: []string{"d"}},
	})
	assert.Len(t, merged, 3)
}

func TestSort(t *testing.T) {
	goals := []Goal{
		{ID: "plateau", State: StatePlateaued, Confidence: 0.99},
		{ID: "active-old", State: StateActive, Confidence: 0.80, LastUpdated: day(1)},
		{ID: "active-new", State: StateActive, Confidence: 0.75, LastUpdated: day(5)},
		{ID: "active-strong", State: StateActive, Confidence: 0.95, LastUpdated: day(0)},
		{ID: "progress", State: StateProgressing, Confidence: 0.1},
		{ID: "b-done", State: StateAchieved},
		{ID: "a-gone", State: StateAbandoned},
	}
	Sort(goals)

	var ids []string
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{"progress", "active-strong", "active-new", "active-old", "plateau", "a-gone", "b-done"}, ids)
}

func TestTrack_Decay(t *testing.T) {
	now := day(100)
	tests := []struct {
		name  string
		state State
		idle  time.Duration
		want  State
	}{
		{"fresh active", StateActive, 10 * 24 * time.Hour, StateActive},
		{"active 31 days", StateActive, 31 * 24 * time.Hour, StatePlateaued},
		{"active 61 days", StateActive, 61 * 24 * time.Hour, StateAbandoned},
		{"plateaued 45 days", StatePlateaued, 45 * 24 * time.Hour, StatePlateaued},
		{"plateaued 61 days", StatePlateaued, 61 * 24 * time.Hour, StateAbandoned},
		{"progressing 90 days", StateProgressing, 90 * 24 * time.Hour, StateProgressing},
		{"emerging 90 days", StateEmerging, 90 * 24 * time.Hour, StateEmerging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{ID: "g", State: tt.state, Confidence: 0.5, ExtractedFrom: []string{"x"}, LastUpdated: now.Add(-tt.idle)}
			tracked := Track([]Goal{g}, now)
			require.Len(t, tracked, 1)
			assert.Equal(t, tt.want, tracked[0].State)
		})
	}
}

func TestTrack_Achievement(t *testing.T) {
	now := day(10)
	markers := []Marker{
		{Description: "start", DetectedAt: day(1)},
		{Description: "big", DetectedAt: day(9), Metric: metricValue(95)},
	}

	tracked := Track([]Goal{{ID: "g", State: StateActive, LastUpdated: day(9), ProgressMarkers: markers}}, now)
	assert.Equal(t, StateAchieved, tracked[0].State)
	assert.Equal(t, StageMastery, tracked[0].JourneyStage)

	// Integration without a high enough metric stays active.
	markers[1].Metric = metricValue(80)
	tracked = Track([]Goal{{ID: "g", State: StateActive, LastUpdated: day(9), ProgressMarkers: markers}}, now)
	assert.Equal(t, StateActive, tracked[0].State)
	assert.Equal(t, StageIntegration, tracked[0].JourneyStage)

	// Abandoned goals are not revived by achievement.
	markers[1].Metric = metricValue(95)
	tracked = Track([]Goal{{ID: "g", State: StatePlateaued, LastUpdated: day(9), ProgressMarkers: markers}}, day(80))
	assert.Equal(t, StateAbandoned, tracked[0].State)
	assert.Equal(t, StageIntegration, tracked[0].JourneyStage)
}

func TestStageFromMarkers(t *testing.T) {
	tests := []struct {
		name    string
		markers []Marker
		want    JourneyStage
	}{
		{"none", nil, StageBeginning},
		{"one", []Marker{{}}, StageStruggle},
		{"one with high metric", []Marker{{Metric: metricValue(99)}}, StageStruggle},
		{"two", []Marker{{}, {Metric: metricValue(70)}}, StageBreakthrough},
		{"two with high metric", []Marker{{}, {Metric: metricValue(71)}}, StageIntegration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stageFromMarkers(tt.markers))
		})
	}
}

func TestTransition(t *testing.T) {
	g := &Goal{State: StateAchieved}
	err := Transition(g, StateActive)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StateAchieved, g.State)

	g.State = StateAbandoned
	require.NoError(t, Transition(g, StateActive))
	assert.Equal(t, StateActive, g.State)

	for from := range validTransitions {
		assert.False(t, CanTransition(from, from), "self transition from %s", from)
	}
}

func TestEngine_MergesAcrossExtractors(t *testing.T) {
	goals := byID(NewEngine().Extract(eventlog.Profile{}, richLog(), day(12)))

	require.Contains(t, goals, "journal-calm")
	assert.NotContains(t, goals, "checkin-reduce-anxiety")
	calm := goals["journal-calm"]
	assert.Contains(t, calm.ExtractedFrom, "checkins:anxiety")
	assert.Contains(t, calm.ExtractedFrom, "journal:j1")
	assert.GreaterOrEqual(t, calm.Confidence, 0.9)

	assert.Contains(t, goals, "intention-rest")
	assert.Contains(t, goals, "intention-boundaries")
	assert.Contains(t, goals, "memory-practice-meditation")
	assert.Contains(t, goals, "pattern-selfcare-consistency")
	assert.Contains(t, goals, "pattern-intentional-structure")
	assert.Contains(t, goals, "pattern-emotional-awareness")
}

func TestEngine_Properties(t *testing.T) {
	engine := NewEngine()
	profile := eventlog.Profile{ID: "u1"}
	entries := richLog()

	first := engine.Extract(profile, entries, day(12))
	require.NotEmpty(t, first)
	for _, g := range first {
		assert.NotEmpty(t, g.ExtractedFrom, g.ID)
		assert.GreaterOrEqual(t, g.Confidence, 0.0, g.ID)
		assert.LessOrEqual(t, g.Confidence, 1.0, g.ID)
		assert.False(t, g.LastUpdated.Before(g.FirstDetected), g.ID)
		assert.True(t, ValidCategories[g.Category], g.ID)
	}

	assert.Equal(t, first, engine.Extract(profile, entries, day(12)), "idempotent")

	reversed := make([]eventlog.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	assert.Equal(t, first, engine.Extract(profile, reversed, day(12)), "order independent")

	for _, x := range engine.Extractors() {
		for _, g := range x.Extract(profile, entries) {
			assert.NotEmpty(t, g.ExtractedFrom, "%s/%s", x.Name(), g.ID)
			assert.True(t, strings.Contains(g.ID, "-"))
		}
	}
}

func TestEngine_EmptyInput(t *testing.T) {
	engine := NewEngine()

	goals := engine.Extract(eventlog.Profile{}, nil, day(0))
	assert.NotNil(t, goals)
	assert.Empty(t, goals)

	p := engine.Progression(eventlog.Profile{}, nil, day(0))
	assert.Nil(t, p.PrimaryGoal)
	assert.Equal(t, 0, p.MonthsTracked)
	assert.NotNil(t, p.RecentBreakthroughs)
	assert.NotEmpty(t, p.NextFocus)
	assert.NotEmpty(t, p.Narrative.CurrentChapter)
	assert.NotEmpty(t, p.Narrative.StoryArc)
	assert.NotEmpty(t, p.Narrative.NextMilestone)
}

func TestAggregate(t *testing.T) {
	now := day(40)
	goals := []Goal{
		{ID: "p", Category: CategoryBehavioral, Title: "Consistent self-care", State: StateProgressing,
			ProgressMarkers: []Marker{{DetectedAt: day(35)}}, JourneyStage: StageStruggle},
		{ID: "a", Category: CategoryEmotional, Title: "Find inner peace", State: StateActive,
			ProgressMarkers: []Marker{{DetectedAt: day(39)}}},
		{ID: "old", Category: CategoryGrowth, Title: "Old", State: StateAchieved,
			ProgressMarkers: []Marker{{DetectedAt: day(1)}}},
	}
	entries := []eventlog.Entry{activity("e", eventlog.KindPlan, day(0).AddDate(0, -2, 0))}

	p := Aggregate(eventlog.Profile{ID: "u1", Metadata: map[string]any{"archetype": "Seeker"}}, goals, entries, now)

	require.NotNil(t, p.PrimaryGoal)
	assert.Equal(t, "p", p.PrimaryGoal.ID)
	require.Len(t, p.RecentBreakthroughs, 1)
	assert.Equal(t, "p", p.RecentBreakthroughs[0].ID)
	assert.Equal(t, 3, p.MonthsTracked)
	assert.Contains(t, p.NextFocus, string(CategoryRelational))
	assert.Contains(t, p.Narrative.StoryArc, "3 months")
	assert.Contains(t, p.Narrative.StoryArc, "seeker")
	assert.Contains(t, p.Narrative.CurrentChapter, "consistent self-care")
}

func TestAggregate_FallbacksAndNextFocus(t *testing.T) {
	var all []Goal
	for _, c := range Categories {
		all = append(all, Goal{ID: string(c), Category: c, Title: "Goal " + string(c), State: StatePlateaued})
	}

	p := Aggregate(eventlog.Profile{}, all, nil, day(0))
	require.NotNil(t, p.PrimaryGoal)
	assert.Equal(t, string(CategoryEmotional), p.PrimaryGoal.ID)
	assert.Equal(t, `Go deeper with "Goal emotional".`, p.NextFocus)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		since, now time.Time
		want       int
	}{
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 3},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Time{}, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, monthsBetween(tt.since, tt.now), "%s -> %s", tt.since, tt.now)
	}
}
