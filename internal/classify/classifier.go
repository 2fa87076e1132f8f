package classify

import (
	"regexp"
	"unicode/utf8"
)

// maxInputLength truncates input before regex evaluation to bound matching cost.
const maxInputLength = 10000

// Match is a single classification hit.
type Match struct {
	Family     Family
	Tag        Tag
	Confidence float64

	code uint8
}

// Intention returns the intention matched, if the hit belongs to FamilyIntention.
func (m Match) Intention() (Intention, bool) {
	return Intention(m.code), m.Family == FamilyIntention
}

// Phrase returns the phrasing matched, if the hit belongs to FamilyPhrase.
func (m Match) Phrase() (Phrase, bool) {
	return Phrase(m.code), m.Family == FamilyPhrase
}

// Theme returns the theme matched, if the hit belongs to FamilyTheme.
func (m Match) Theme() (Theme, bool) {
	return Theme(m.code), m.Family == FamilyTheme
}

// Practice returns the practice matched, if the hit belongs to FamilyPractice.
func (m Match) Practice() (Practice, bool) {
	return Practice(m.code), m.Family == FamilyPractice
}

// Classifier maps text to tags.
type Classifier interface {
	// Classify returns every tag the text matches, grouped by family in a
	// fixed order. Each tag appears at most once.
	Classify(text string) []Match
}

// rule pairs a compiled regex with the tag it detects and a base confidence.
type rule struct {
	regex      *regexp.Regexp
	family     Family
	tag        Tag
	code       uint8
	confidence float64
}

// KeywordClassifier classifies text with ordered regex rules.
// Thread-safe: all patterns are compiled at construction time.
type KeywordClassifier struct {
	rules []*rule
}

// NewKeywordClassifier creates a classifier with the built-in keyword tables.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{rules: buildRules()}
}

// Classify returns all matching tags in rule order.
func (c *KeywordClassifier) Classify(text string) []Match {
	text = truncate(text, maxInputLength)
	matches := make([]Match, 0)
	if text == "" {
		return matches
	}
	for _, r := range c.rules {
		if r.regex.MatchString(text) {
			matches = append(matches, Match{
				Family:     r.family,
				Tag:        r.tag,
				Confidence: r.confidence,
				code:       r.code,
			})
		}
	}
	return matches
}

// Filter returns the matches belonging to family, preserving order.
func Filter(matches []Match, family Family) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Family == family {
			out = append(out, m)
		}
	}
	return out
}

// Ensure KeywordClassifier implements Classifier.
var _ Classifier = (*KeywordClassifier)(nil)

// truncate cuts text to at most n bytes without splitting a rune.
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
