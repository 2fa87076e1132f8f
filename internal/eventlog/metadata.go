package eventlog

import (
	"strconv"
	"strings"
)

// String returns the metadata value for key as a trimmed string.
// Non-string values and blank strings report ok=false.
func (e Entry) String(key string) (string, bool) {
	return stringValue(e.Metadata, key)
}

// Float returns the metadata value for key as a float64.
// Accepts JSON numbers, YAML ints and numeric strings.
func (e Entry) Float(key string) (float64, bool) {
	if e.Metadata == nil {
		return 0, false
	}
	switch v := e.Metadata[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Strings returns the metadata value for key as a string slice.
// Non-string elements are skipped.
func (e Entry) Strings(key string) []string {
	if e.Metadata == nil {
		return nil
	}
	switch v := e.Metadata[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Bool returns the metadata value for key as a bool.
func (e Entry) Bool(key string) bool {
	if e.Metadata == nil {
		return false
	}
	switch v := e.Metadata[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}

// EmotionalState returns the normalized (lowercase) emotional state of a
// check-in, or ok=false when the entry carries none.
func (e Entry) EmotionalState() (string, bool) {
	s, ok := e.String(MetaEmotionalState)
	if !ok {
		return "", false
	}
	return strings.ToLower(s), true
}

// IsIntention reports whether a note is tagged as an intention. The
// intention key may be a flag or the intention itself, e.g. "rest".
func (e Entry) IsIntention() bool {
	if e.Kind != KindNote {
		return false
	}
	if e.Bool(MetaIntention) {
		return true
	}
	if s, ok := e.String(MetaIntention); ok {
		if _, err := strconv.ParseBool(s); err != nil {
			return true
		}
	}
	for _, tag := range e.Strings(MetaTags) {
		if strings.EqualFold(tag, MetaIntention) {
			return true
		}
	}
	return false
}

// AnswerText returns the recorded answer of an answered prompt.
// Falls back to the entry text when metadata carries no answer.
func (e Entry) AnswerText() string {
	if s, ok := e.String(MetaAnswer); ok {
		return s
	}
	return strings.TrimSpace(e.Text)
}

func stringValue(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
