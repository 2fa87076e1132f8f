package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordClassifier_Intentions(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name string
		text string
		want Intention
	}{
		{"presence", "Today I want to be more present with my kids", IntentionPresence},
		{"boundaries", "Setting boundaries at work", IntentionBoundaries},
		{"saying no", "practice saying no", IntentionBoundaries},
		{"rest", "This week is about rest", IntentionRest},
		{"self compassion", "More self-compassion please", IntentionSelfCompassion},
		{"kind to myself", "be kind to myself", IntentionSelfCompassion},
		{"creative flow", "find my creative flow again", IntentionCreativeFlow},
		{"peace", "Seeking peace", IntentionPeace},
		{"authenticity", "stay true to myself", IntentionAuthenticity},
		{"connection", "deeper connection with friends", IntentionConnection},
		{"purpose", "live with purpose", IntentionPurpose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := Filter(c.Classify(tt.text), FamilyIntention)
			require.NotEmpty(t, hits)
			var found bool
			for _, h := range hits {
				got, ok := h.Intention()
				require.True(t, ok)
				if got == tt.want {
					found = true
				}
			}
			assert.True(t, found, "expected %s in %v", tt.want, hits)
		})
	}
}

func TestKeywordClassifier_PhraseConfidence(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		text string
		want Phrase
		conf float64
	}{
		{"I am working on my patience", PhraseWorkingOn, 0.9},
		{"I'm trying to sleep earlier", PhraseTryingTo, 0.85},
		{"I want to feel less anxious", PhraseWantTo, 0.8},
		{"hoping to see friends", PhraseHopeTo, 0.75},
		{"I need to rest", PhraseNeedTo, 0.7},
		{"I wish things were easier", PhraseWish, 0.6},
		{"going to try", PhraseGoingTo, 0.55},
		{"I should call mom", PhraseShould, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			hits := Filter(c.Classify(tt.text), FamilyPhrase)
			require.Len(t, hits, 1)
			got, ok := hits[0].Phrase()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.conf, hits[0].Confidence, 1e-9)
		})
	}
}

func TestKeywordClassifier_Themes(t *testing.T) {
	c := NewKeywordClassifier()

	hits := Filter(c.Classify("I want to feel less anxious and sleep better this month"), FamilyTheme)
	require.Len(t, hits, 2)

	first, ok := hits[0].Theme()
	require.True(t, ok)
	second, _ := hits[1].Theme()
	assert.Equal(t, ThemeCalm, first)
	assert.Equal(t, ThemeSleep, second)
	assert.Equal(t, Tag("theme/calm"), hits[0].Tag)
}

func TestKeywordClassifier_Practices(t *testing.T) {
	c := NewKeywordClassifier()

	hits := Filter(c.Classify("Morning meditation, then a walk in the park"), FamilyPractice)
	var got []Practice
	for _, h := range hits {
		p, ok := h.Practice()
		require.True(t, ok)
		got = append(got, p)
	}
	assert.Equal(t, []Practice{PracticeMeditation, PracticeMovement, PracticeNature}, got)
}

func TestKeywordClassifier_EmptyAndNoMatch(t *testing.T) {
	c := NewKeywordClassifier()

	assert.NotNil(t, c.Classify(""))
	assert.Empty(t, c.Classify(""))
	assert.Empty(t, c.Classify("the weather was fine"))
}

func TestKeywordClassifier_CaseInsensitive(t *testing.T) {
	c := NewKeywordClassifier()

	hits := Filter(c.Classify("WORKING ON BOUNDARIES"), FamilyIntention)
	require.Len(t, hits, 1)
	got, _ := hits[0].Intention()
	assert.Equal(t, IntentionBoundaries, got)
}

func TestKeywordClassifier_LongInputTruncated(t *testing.T) {
	c := NewKeywordClassifier()

	text := strings.Repeat("a", maxInputLength) + " meditation"
	assert.Empty(t, Filter(c.Classify(text), FamilyPractice))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	text := strings.Repeat("a", maxInputLength-1) + "é gratitude"

	cut := truncate(text, maxInputLength)
	assert.True(t, utf8.ValidString(cut))
	assert.Len(t, cut, maxInputLength-1)

	assert.Equal(t, "short", truncate("short", maxInputLength))
	assert.Equal(t, "", truncate("日本", 2))
	assert.Equal(t, "日", truncate("日本", 4))
}

func TestMatch_WrongFamily(t *testing.T) {
	c := NewKeywordClassifier()

	hits := Filter(c.Classify("gratitude"), FamilyPractice)
	require.Len(t, hits, 1)

	_, ok := hits[0].Intention()
	assert.False(t, ok)
	_, ok = hits[0].Theme()
	assert.False(t, ok)
	p, ok := hits[0].Practice()
	assert.True(t, ok)
	assert.Equal(t, PracticeGratitude, p)
}

func TestEnums_StringAndEnumerate(t *testing.T) {
	assert.Len(t, Intentions(), int(intentionCount))
	assert.Len(t, Themes(), int(themeCount))
	assert.Len(t, Practices(), int(practiceCount))

	assert.Equal(t, "self_compassion", IntentionSelfCompassion.String())
	assert.Equal(t, "want_to", PhraseWantTo.String())
	assert.Equal(t, "sleep", ThemeSleep.String())
	assert.Equal(t, "journaling", PracticeJournaling.String())
	assert.Equal(t, "theme(200)", Theme(200).String())
}
