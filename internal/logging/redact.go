package logging

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	redacted        = "[REDACTED]"
	redactedPattern = "[REDACTED:pattern]"
	maxPatternLen   = 200
)

// RedactedText creates a field that records only the rune length of
// user-written text.
func RedactedText(key, val string) zap.Field {
	return zap.String(key, redactedLen(val))
}

func redactedLen(val string) string {
	return "[REDACTED:" + strconv.Itoa(utf8.RuneCountInString(val)) + "]"
}

// redactor holds compiled redaction rules shared by the encoder and the
// OTEL core wrapper.
type redactor struct {
	fields   map[string]bool
	patterns []*regexp.Regexp
}

func newRedactor(cfg RedactionConfig) (*redactor, error) {
	r := &redactor{fields: make(map[string]bool)}
	if !cfg.Enabled {
		return r, nil
	}

	for _, f := range cfg.Fields {
		r.fields[strings.ToLower(f)] = true
	}
	for _, p := range cfg.Patterns {
		if len(p) > maxPatternLen {
			return nil, fmt.Errorf("redaction pattern too long (max %d chars): %q", maxPatternLen, p)
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redaction pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, re)
	}
	return r, nil
}

func (r *redactor) key(key string) bool {
	return r.fields[strings.ToLower(key)]
}

// value returns the masked form of val, or ok=false when it passes.
func (r *redactor) value(key, val string) (string, bool) {
	if r.key(key) {
		return redactedLen(val), true
	}
	for _, re := range r.patterns {
		if re.MatchString(val) {
			return redactedPattern, true
		}
	}
	return val, false
}

// field masks one zap field. Non-string values under a redacted key are
// replaced whole.
func (r *redactor) field(f zapcore.Field) zapcore.Field {
	if f.Type == zapcore.StringType {
		if masked, ok := r.value(f.Key, f.String); ok {
			return zap.String(f.Key, masked)
		}
		return f
	}
	if r.key(f.Key) {
		return zap.String(f.Key, redacted)
	}
	return f
}

func (r *redactor) all(fields []zapcore.Field) []zapcore.Field {
	if len(r.fields) == 0 && len(r.patterns) == 0 {
		return fields
	}
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		out[i] = r.field(f)
	}
	return out
}

// RedactingEncoder wraps a zapcore.Encoder to mask reflection text.
type RedactingEncoder struct {
	zapcore.Encoder
	r *redactor
}

// NewRedactingEncoder wraps an encoder with redaction rules.
// Returns error if any redaction pattern fails to compile.
func NewRedactingEncoder(base zapcore.Encoder, cfg RedactionConfig) (*RedactingEncoder, error) {
	r, err := newRedactor(cfg)
	if err != nil {
		return nil, err
	}
	return &RedactingEncoder{Encoder: base, r: r}, nil
}

// AddString masks sensitive keys and value patterns.
func (e *RedactingEncoder) AddString(key, val string) {
	masked, _ := e.r.value(key, val)
	e.Encoder.AddString(key, masked)
}

// AddByteString masks sensitive keys.
func (e *RedactingEncoder) AddByteString(key string, val []byte) {
	if e.r.key(key) {
		e.Encoder.AddString(key, redactedLen(string(val)))
		return
	}
	e.Encoder.AddByteString(key, val)
}

// AddBinary masks sensitive keys.
func (e *RedactingEncoder) AddBinary(key string, val []byte) {
	if e.r.key(key) {
		e.Encoder.AddString(key, redacted)
		return
	}
	e.Encoder.AddBinary(key, val)
}

// AddReflected masks the whole value under a sensitive key.
func (e *RedactingEncoder) AddReflected(key string, val any) error {
	if e.r.key(key) {
		e.Encoder.AddString(key, redacted)
		return nil
	}
	return e.Encoder.AddReflected(key, val)
}

// AddArray masks sensitive keys.
func (e *RedactingEncoder) AddArray(key string, arr zapcore.ArrayMarshaler) error {
	if e.r.key(key) {
		e.Encoder.AddString(key, redacted)
		return nil
	}
	return e.Encoder.AddArray(key, arr)
}

// AddObject masks sensitive keys.
func (e *RedactingEncoder) AddObject(key string, obj zapcore.ObjectMarshaler) error {
	if e.r.key(key) {
		e.Encoder.AddString(key, redacted)
		return nil
	}
	return e.Encoder.AddObject(key, obj)
}

// Clone creates a copy of the encoder.
func (e *RedactingEncoder) Clone() zapcore.Encoder {
	return &RedactingEncoder{Encoder: e.Encoder.Clone(), r: e.r}
}

// EncodeEntry masks entry fields before delegating. The JSON and console
// encoders write fields through their own methods, not the wrapper's.
func (e *RedactingEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	return e.Encoder.EncodeEntry(ent, e.r.all(fields))
}

// redactingCore masks fields for cores that don't take an encoder, such as
// the OTEL bridge.
type redactingCore struct {
	zapcore.Core
	level zapcore.LevelEnabler
	r     *redactor
}

func newRedactingCore(core zapcore.Core, level zapcore.LevelEnabler, cfg RedactionConfig) (zapcore.Core, error) {
	r, err := newRedactor(cfg)
	if err != nil {
		return nil, err
	}
	return &redactingCore{Core: core, level: level, r: r}, nil
}

func (c *redactingCore) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(lvl) && c.Core.Enabled(lvl)
}

func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{Core: c.Core.With(c.r.all(fields)), level: c.level, r: c.r}
}

func (c *redactingCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *redactingCore) Write(e zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(e, c.r.all(fields))
}
