package goals

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lotcomputer/lotinsight/internal/classify"
	"github.com/lotcomputer/lotinsight/internal/eventlog"
)

// Extractor derives goals from one kind of evidence.
// Implementations are pure and independent of input order.
type Extractor interface {
	// Name identifies the extractor in logs and metrics.
	Name() string
	// Extract returns candidate goals ordered by ID.
	Extract(profile eventlog.Profile, entries []eventlog.Entry) []Goal
}

// DefaultExtractors returns the built-in extractors in merge order.
func DefaultExtractors(c classify.Classifier) []Extractor {
	return []Extractor{
		&IntentionExtractor{classifier: c},
		&JournalExtractor{classifier: c},
		&PatternExtractor{},
		&CheckInExtractor{},
		&MemoryExtractor{classifier: c},
	}
}

// IntentionExtractor turns intention-tagged notes into goals.
type IntentionExtractor struct {
	classifier classify.Classifier
}

// NewIntentionExtractor creates an intention extractor.
func NewIntentionExtractor(c classify.Classifier) *IntentionExtractor {
	return &IntentionExtractor{classifier: c}
}

func (x *IntentionExtractor) Name() string { return "intention" }

// Extract maps each intention keyword found in an intention note to its
// canonical goal. Repeated notes for one keyword coalesce.
func (x *IntentionExtractor) Extract(_ eventlog.Profile, entries []eventlog.Entry) []Goal {
	byID := make(map[string]*Goal)
	for _, e := range eventlog.Chronological(entries) {
		if !e.IsIntention() {
			continue
		}
		text := e.Text
		if s, ok := e.String(eventlog.MetaIntention); ok {
			text = s + " " + text
		}
		for _, m := range classify.Filter(x.classifier.Classify(text), classify.FamilyIntention) {
			intention, _ := m.Intention()
			id := "intention-" + intention.String()
			g, ok := byID[id]
			if !ok {
				g = newGoal(id, intentionGoals[intention], StateActive, intentionConfidence)
				byID[id] = g
			}
			g.observe(evidenceTag(evidenceIntention, e.ID), e.CreatedAt)
		}
	}
	return collect(byID)
}

// minJournalLength is the shortest note, in runes, read as a journal entry.
const minJournalLength = 50

// JournalExtractor finds goals stated in longer free-text notes.
type JournalExtractor struct {
	classifier classify.Classifier
}

// NewJournalExtractor creates a journal extractor.
func NewJournalExtractor(c classify.Classifier) *JournalExtractor {
	return &JournalExtractor{classifier: c}
}

func (x *JournalExtractor) Name() string { return "journal" }

// Extract requires goal-intent phrasing of at least journalMinPhrase before
// mapping the note's themes to catalog goals. Each repeat mention adds
// journalRepeatStep.
func (x *JournalExtractor) Extract(_ eventlog.Profile, entries []eventlog.Entry) []Goal {
	byID := make(map[string]*Goal)
	for _, e := range eventlog.Chronological(entries) {
		if e.Kind != eventlog.KindNote {
			continue
		}
		text := strings.TrimSpace(e.Text)
		if utf8.RuneCountInString(text) <= minJournalLength {
			continue
		}

		matches := x.classifier.Classify(text)
		phrase := 0.0
		for _, m := range classify.Filter(matches, classify.FamilyPhrase) {
			if m.Confidence > phrase {
				phrase = m.Confidence
			}
		}
		if phrase < journalMinPhrase {
			continue
		}

		for _, m := range classify.Filter(matches, classify.FamilyTheme) {
			theme, _ := m.Theme()
			id := "journal-" + theme.String()
			g, ok := byID[id]
			if !ok {
				g = newGoal(id, themeGoals[theme], StateEmerging, phrase)
				byID[id] = g
			} else {
				g.Confidence = bump(g.Confidence, journalRepeatStep, journalCap)
			}
			g.observe(evidenceTag(evidenceJournal, e.ID), e.CreatedAt)
			g.addMarker("Mentioned in a journal entry", e.CreatedAt, nil)
		}
	}
	return collect(byID)
}

// Activity thresholds for pattern-derived goals.
const (
	minSelfCareLogs      = 5
	minSelfCareDays      = 5
	minAwarenessCheckIns = 10
	minPlans             = 5

	breakthroughDays = 10
	integrationDays  = 20
)

// PatternExtractor derives goals from sustained activity counts.
type PatternExtractor struct{}

func (x *PatternExtractor) Name() string { return "pattern" }

func (x *PatternExtractor) Extract(_ eventlog.Profile, entries []eventlog.Entry) []Goal {
	byID := make(map[string]*Goal)
	sorted := eventlog.Chronological(entries)

	selfCare := eventlog.OfKind(sorted, eventlog.KindSelfCare)
	if days := eventlog.DistinctDays(selfCare); len(selfCare) >= minSelfCareLogs && days >= minSelfCareDays {
		g := newGoal("pattern-selfcare-consistency", selfCareGoal, StateProgressing, selfCareScale.at(days))
		for _, e := range selfCare {
			g.observe(evidenceTag(evidencePattern, "selfcare"), e.CreatedAt)
		}
		g.Baseline = &Baseline{Description: "First self-care log", DetectedAt: selfCare[0].CreatedAt}
		last := selfCare[len(selfCare)-1].CreatedAt
		g.addMarker(fmt.Sprintf("Self-care on %d distinct days", days), last, metricValue(selfCareMetric(days)))
		g.addDayMilestones(selfCare, "self-care")
		g.JourneyStage = stageForDays(days)
		byID[g.ID] = g
	}

	checkIns := eventlog.OfKind(sorted, eventlog.KindCheckIn)
	if len(checkIns) >= minAwarenessCheckIns {
		g := newGoal("pattern-emotional-awareness", awarenessGoal, StateActive, awarenessScale.at(len(checkIns)))
		for _, e := range checkIns {
			g.observe(evidenceTag(evidencePattern, "checkins"), e.CreatedAt)
		}
		days := eventlog.DistinctDays(checkIns)
		g.addMarker(fmt.Sprintf("Checked in %d times", len(checkIns)), checkIns[len(checkIns)-1].CreatedAt, nil)
		g.addDayMilestones(checkIns, "check-ins")
		g.JourneyStage = stageForDays(days)
		byID[g.ID] = g
	}

	plans := eventlog.OfKind(sorted, eventlog.KindPlan)
	if len(plans) >= minPlans {
		g := newGoal("pattern-intentional-structure", structureGoal, StateActive, structureScale.at(len(plans)))
		for _, e := range plans {
			g.observe(evidenceTag(evidencePattern, "plans"), e.CreatedAt)
		}
		days := eventlog.DistinctDays(plans)
		g.addMarker(fmt.Sprintf("Set %d plans", len(plans)), plans[len(plans)-1].CreatedAt, nil)
		g.addDayMilestones(plans, "planning")
		g.JourneyStage = stageForDays(days)
		byID[g.ID] = g
	}
	return collect(byID)
}

// integrationMilestone is the metric carried by the integration-band
// milestone marker. It sits above integrationMetric and below masteryMetric
// so Track keeps the band's stage without achieving the goal on its own.
const integrationMilestone = (integrationMetric + masteryMetric) / 2

// addDayMilestones records a marker on the day entries reached each stage
// band, so the stage Track derives from markers matches stageForDays.
// entries must be chronological.
func (g *Goal) addDayMilestones(entries []eventlog.Entry, activity string) {
	if at, ok := nthDistinctDay(entries, breakthroughDays); ok {
		g.addMarker(fmt.Sprintf("Reached %d days of %s", breakthroughDays, activity), at.CreatedAt, nil)
	}
	if at, ok := nthDistinctDay(entries, integrationDays); ok {
		g.addMarker(fmt.Sprintf("Reached %d days of %s", integrationDays, activity), at.CreatedAt, metricValue(integrationMilestone))
	}
}

// stageForDays bands sustained activity into a journey stage.
func stageForDays(days int) JourneyStage {
	switch {
	case days >= integrationDays:
		return StageIntegration
	case days >= breakthroughDays:
		return StageBreakthrough
	default:
		return StageStruggle
	}
}

// nthDistinctDay returns the first chronological entry on the n-th distinct
// UTC day. entries must be chronological.
func nthDistinctDay(entries []eventlog.Entry, n int) (eventlog.Entry, bool) {
	seen := make(map[string]struct{})
	for _, e := range entries {
		day := e.CreatedAt.UTC().Format("2006-01-02")
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		if len(seen) == n {
			return e, true
		}
	}
	return eventlog.Entry{}, false
}

// Check-in thresholds.
const (
	minAnxiousCheckIns = 5
	maxEnergizedShare  = 0.2
	minTiredCheckIns   = 3
)

var anxiousStates = map[string]bool{"anxious": true, "overwhelmed": true}

// CheckInExtractor derives goals from emotional-state frequencies.
type CheckInExtractor struct{}

func (x *CheckInExtractor) Name() string { return "checkin" }

// Extract emits a reduce-anxiety goal when anxious states recur, marked
// progressing when the later half of the history is calmer than the earlier
// half. The halves split the chronological samples by index. It also emits an
// increase-vitality goal when energy is persistently low.
func (x *CheckInExtractor) Extract(_ eventlog.Profile, entries []eventlog.Entry) []Goal {
	byID := make(map[string]*Goal)

	var samples []stateSample
	for _, e := range eventlog.Chronological(entries) {
		if e.Kind != eventlog.KindCheckIn {
			continue
		}
		if state, ok := e.EmotionalState(); ok {
			samples = append(samples, stateSample{entry: e, state: state})
		}
	}
	if len(samples) == 0 {
		return collect(byID)
	}
	first, last := samples[0].entry.CreatedAt, samples[len(samples)-1].entry.CreatedAt

	anxious, energized, tired := 0, 0, 0
	for _, s := range samples {
		switch {
		case anxiousStates[s.state]:
			anxious++
		case s.state == "energized":
			energized++
		case s.state == "tired":
			tired++
		}
	}

	if anxious >= minAnxiousCheckIns {
		g := newGoal("checkin-reduce-anxiety", anxietyGoal, StateActive, anxietyScale.at(anxious))
		g.observe(evidenceTag(evidenceCheckIns, "anxiety"), first)
		g.observe(evidenceTag(evidenceCheckIns, "anxiety"), last)
		g.Baseline = &Baseline{
			Description: fmt.Sprintf("%d of %d check-ins anxious or overwhelmed", anxious, len(samples)),
			DetectedAt:  first,
		}

		mid := len(samples) / 2
		earlier, later := anxiousShare(samples[:mid]), anxiousShare(samples[mid:])
		if mid > 0 && later < earlier {
			g.State = StateProgressing
			g.addMarker("Anxious check-ins are becoming less frequent", last, nil)
		}
		byID[g.ID] = g
	}

	if float64(energized)/float64(len(samples)) < maxEnergizedShare && tired > minTiredCheckIns {
		g := newGoal("checkin-increase-vitality", vitalityGoal, StateActive, vitalityScale.at(tired))
		g.observe(evidenceTag(evidenceCheckIns, "vitality"), first)
		g.observe(evidenceTag(evidenceCheckIns, "vitality"), last)
		g.Baseline = &Baseline{
			Description: fmt.Sprintf("%d tired check-ins, %d energized", tired, energized),
			DetectedAt:  first,
		}
		byID[g.ID] = g
	}
	return collect(byID)
}

type stateSample struct {
	entry eventlog.Entry
	state string
}

func anxiousShare(samples []stateSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	n := 0
	for _, s := range samples {
		if anxiousStates[s.state] {
			n++
		}
	}
	return float64(n) / float64(len(samples))
}

// minPracticeAnswers is how many answers must mention a practice.
const minPracticeAnswers = 3

// MemoryExtractor finds practices the user keeps mentioning in answers.
type MemoryExtractor struct {
	classifier classify.Classifier
}

// NewMemoryExtractor creates a memory-answer extractor.
func NewMemoryExtractor(c classify.Classifier) *MemoryExtractor {
	return &MemoryExtractor{classifier: c}
}

func (x *MemoryExtractor) Name() string { return "memory" }

func (x *MemoryExtractor) Extract(_ eventlog.Profile, entries []eventlog.Entry) []Goal {
	byPractice := make(map[classify.Practice][]eventlog.Entry)
	for _, e := range eventlog.Chronological(entries) {
		if e.Kind != eventlog.KindAnswer {
			continue
		}
		for _, m := range classify.Filter(x.classifier.Classify(e.AnswerText()), classify.FamilyPractice) {
			p, _ := m.Practice()
			byPractice[p] = append(byPractice[p], e)
		}
	}

	byID := make(map[string]*Goal)
	for _, p := range classify.Practices() {
		answers := byPractice[p]
		if len(answers) < minPracticeAnswers {
			continue
		}
		g := newGoal("memory-practice-"+p.String(), practiceGoals[p], StateActive, memoryScale.at(len(answers)))
		for _, e := range answers {
			g.observe(evidenceTag(evidenceMemory, p.String()), e.CreatedAt)
		}
		g.addMarker(fmt.Sprintf("Mentioned in %d reflections", len(answers)), answers[len(answers)-1].CreatedAt, nil)
		byID[g.ID] = g
	}
	return collect(byID)
}

var (
	_ Extractor = (*IntentionExtractor)(nil)
	_ Extractor = (*JournalExtractor)(nil)
	_ Extractor = (*PatternExtractor)(nil)
	_ Extractor = (*CheckInExtractor)(nil)
	_ Extractor = (*MemoryExtractor)(nil)
)
