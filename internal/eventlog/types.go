package eventlog

import (
	"errors"
	"time"
)

// Common errors for event log readers.
var (
	ErrUserNotFound      = errors.New("user not found in event log")
	ErrUnsupportedFormat = errors.New("unsupported event log format")
	ErrEmptyExport       = errors.New("event log export contains no users")
	ErrUnknownKind       = errors.New("unknown event kind")
)

// Kind is the closed set of event kinds recorded in the log.
type Kind string

const (
	// KindCheckIn is an emotional check-in.
	KindCheckIn Kind = "check_in"
	// KindNote is a journal note.
	KindNote Kind = "note"
	// KindChatMessage is a chat message sent by the user.
	KindChatMessage Kind = "chat_message"
	// KindAnswer is an answered reflection prompt.
	KindAnswer Kind = "answer"
	// KindPlan is a planning action (plan set or updated).
	KindPlan Kind = "plan"
	// KindSelfCare is a completed self-care activity.
	KindSelfCare Kind = "self_care"
	// KindSettings is a settings change.
	KindSettings Kind = "settings"
)

// ValidKinds maps valid kind strings to their typed values.
var ValidKinds = map[string]Kind{
	"check_in":     KindCheckIn,
	"note":         KindNote,
	"chat_message": KindChatMessage,
	"answer":       KindAnswer,
	"plan":         KindPlan,
	"self_care":    KindSelfCare,
	"settings":     KindSettings,
}

// IsValidKind returns true if the string is a recognized event kind.
func IsValidKind(s string) bool {
	_, ok := ValidKinds[s]
	return ok
}

// Well-known metadata keys.
const (
	MetaEmotionalState = "emotionalState"
	MetaQuestion       = "question"
	MetaAnswer         = "answer"
	MetaOptions        = "options"
	MetaTags           = "tags"
	MetaIntention      = "intention"
)

// Environment is the environmental snapshot captured at event time.
// Temperature is in degrees Celsius, Humidity in percent.
type Environment struct {
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty" yaml:"humidity,omitempty"`
	City        string   `json:"city,omitempty" yaml:"city,omitempty"`
	Timezone    string   `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Entry is one immutable event in a user's log.
type Entry struct {
	// ID is the event identifier assigned by the log store.
	ID string `json:"id" yaml:"id"`
	// UserID owns the event.
	UserID string `json:"userId" yaml:"userId"`
	// Kind is the event kind.
	Kind Kind `json:"kind" yaml:"kind"`
	// CreatedAt is when the event was recorded.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	// Text is optional free text (journal body, chat content).
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Metadata holds event-specific keys.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// Context is the environmental snapshot at event time.
	Context Environment `json:"context,omitempty" yaml:"context,omitempty"`
}

// Profile is the subset of the user profile used for narrative templating.
type Profile struct {
	ID       string         `json:"id" yaml:"id"`
	Tags     []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	JoinedAt time.Time      `json:"joinedAt,omitempty" yaml:"joinedAt,omitempty"`
}

// Archetype returns the profile's archetype label, or "" when absent.
func (p Profile) Archetype() string {
	s, _ := stringValue(p.Metadata, "archetype")
	return s
}
