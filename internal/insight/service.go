package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/lotcomputer/lotinsight/internal/eventlog"
	"github.com/lotcomputer/lotinsight/internal/goals"
	"github.com/lotcomputer/lotinsight/internal/logging"
	"github.com/lotcomputer/lotinsight/internal/patterns"
	"github.com/lotcomputer/lotinsight/internal/telemetry"
)

const (
	tracerName = "github.com/lotcomputer/lotinsight/internal/insight"
	meterName  = "insight"

	// DefaultWindowSize is how many of the newest entries are analysed.
	DefaultWindowSize = 200
)

// Operation names used for spans, metrics and log messages.
const (
	opPatterns    = "insight.detect_patterns"
	opGoals       = "insight.extract_goals"
	opProgression = "insight.goal_progression"
	opContext     = "insight.build_context"
	opReport      = "insight.report"
)

// Service loads a user's log and runs the analytics core over it.
// It holds only immutable collaborators and is safe for concurrent use.
type Service struct {
	reader eventlog.Reader
	engine *goals.Engine
	logger *logging.Logger

	tracer  trace.Tracer
	meter   metric.Meter
	metrics *metrics

	maxInsights int
	windowSize  int
	location    *time.Location
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTelemetry takes the tracer and meter from t instead of the globals.
func WithTelemetry(t *telemetry.Telemetry) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t.Tracer(tracerName)
			s.meter = t.Meter(meterName)
		}
	}
}

// WithEngine replaces the goal engine.
func WithEngine(e *goals.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithMaxInsights caps the ranked insights. n <= 0 keeps the default.
func WithMaxInsights(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxInsights = n
		}
	}
}

// WithWindowSize limits analysis to the newest n entries. n <= 0 keeps the default.
func WithWindowSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.windowSize = n
		}
	}
}

// WithLocation sets the zone assumed for entries that record no timezone.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock sets the time source used for decay and recency.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service reading from reader.
func NewService(reader eventlog.Reader, opts ...Option) (*Service, error) {
	if reader == nil {
		return nil, fmt.Errorf("event log reader cannot be nil")
	}

	s := &Service{
		reader:      reader,
		engine:      goals.NewEngine(),
		logger:      logging.NewNop(),
		tracer:      otel.Tracer(tracerName),
		meter:       otel.Meter(meterName),
		maxInsights: patterns.DefaultMaxInsights,
		windowSize:  DefaultWindowSize,
		location:    time.UTC,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("insight")

	m, err := newMetrics(s.meter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	s.metrics = m

	return s, nil
}

// DetectPatterns returns the user's ranked pattern insights.
func (s *Service) DetectPatterns(ctx context.Context, userID string) ([]patterns.Insight, error) {
	ctx, run := s.begin(ctx, opPatterns, userID)
	_, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, run.fail(err)
	}

	insights := patterns.Detect(entries, s.maxInsights)
	s.metrics.recordInsights(ctx, insights)
	run.span.SetAttributes(attribute.Int("insights", len(insights)))
	run.done(len(entries), zap.Int("insights", len(insights)))
	return insights, nil
}

// ExtractGoals returns the user's merged, tracked and ordered goals.
func (s *Service) ExtractGoals(ctx context.Context, userID string) ([]goals.Goal, error) {
	ctx, run := s.begin(ctx, opGoals, userID)
	profile, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, run.fail(err)
	}

	gs := s.engine.Extract(profile, entries, s.now())
	s.metrics.recordGoals(ctx, gs)
	run.span.SetAttributes(attribute.Int("goals", len(gs)))
	run.done(len(entries), zap.Int("goals", len(gs)))
	return gs, nil
}

// GenerateGoalProgression returns the user's progression aggregate.
func (s *Service) GenerateGoalProgression(ctx context.Context, userID string) (goals.Progression, error) {
	ctx, run := s.begin(ctx, opProgression, userID)
	profile, entries, err := s.load(ctx, userID)
	if err != nil {
		return goals.Progression{}, run.fail(err)
	}

	p := s.engine.Progression(profile, entries, s.now())
	s.metrics.recordGoals(ctx, p.Goals)
	run.span.SetAttributes(
		attribute.Int("goals", len(p.Goals)),
		attribute.Int("months_tracked", p.MonthsTracked),
		attribute.Int("breakthroughs", len(p.RecentBreakthroughs)),
	)
	run.done(len(entries),
		zap.Int("goals", len(p.Goals)),
		zap.Int("months_tracked", p.MonthsTracked),
		zap.Bool("has_primary", p.PrimaryGoal != nil),
	)
	return p, nil
}

// BuildContext renders the user's insights and progression into
// prompt-ready fragments. Fragments are never empty.
func (s *Service) BuildContext(ctx context.Context, userID string) (ContextFragments, error) {
	ctx, run := s.begin(ctx, opContext, userID)
	profile, entries, err := s.load(ctx, userID)
	if err != nil {
		return ContextFragments{}, run.fail(err)
	}

	fragments := BuildFragments(
		patterns.Detect(entries, s.maxInsights),
		s.engine.Progression(profile, entries, s.now()),
	)
	run.done(len(entries), zap.Int("suggestions", len(fragments.Suggestions)))
	return fragments, nil
}

// Report runs every analysis over a single load of the user's log.
func (s *Service) Report(ctx context.Context, userID string) (Report, error) {
	ctx, run := s.begin(ctx, opReport, userID)
	profile, entries, err := s.load(ctx, userID)
	if err != nil {
		return Report{}, run.fail(err)
	}

	now := s.now()
	insights := patterns.Detect(entries, s.maxInsights)
	p := s.engine.Progression(profile, entries, now)
	s.metrics.recordInsights(ctx, insights)
	s.metrics.recordGoals(ctx, p.Goals)

	rep := Report{
		UserID:      profile.ID,
		GeneratedAt: now,
		Entries:     len(entries),
		Insights:    insights,
		Progression: p,
		Context:     BuildFragments(insights, p),
	}
	run.span.SetAttributes(
		attribute.Int("insights", len(insights)),
		attribute.Int("goals", len(p.Goals)),
	)
	run.done(len(entries), zap.Int("insights", len(insights)), zap.Int("goals", len(p.Goals)))
	return rep, nil
}

// load fetches the profile and the newest window of entries, oldest first.
func (s *Service) load(ctx context.Context, userID string) (eventlog.Profile, []eventlog.Entry, error) {
	profile, err := s.reader.Profile(ctx, userID)
	if err != nil {
		return eventlog.Profile{}, nil, fmt.Errorf("reading profile: %w", err)
	}
	entries, err := s.reader.Entries(ctx, userID)
	if err != nil {
		return eventlog.Profile{}, nil, fmt.Errorf("reading entries: %w", err)
	}

	window := eventlog.Newest(entries, s.windowSize)
	s.logger.Debug(ctx, "event log loaded",
		zap.Int("entries", len(entries)),
		zap.Int("window", len(window)),
	)
	return profile, s.localize(window), nil
}

// localize fills in the default zone on entries that carry none. Entries
// are values, so the reader's copies are untouched.
func (s *Service) localize(entries []eventlog.Entry) []eventlog.Entry {
	if s.location == time.UTC {
		return entries
	}
	for i := range entries {
		if entries[i].Context.Timezone == "" {
			entries[i].Context.Timezone = s.location.String()
		}
	}
	return entries
}

// run tracks one operation's span, timing and logging.
type run struct {
	s     *Service
	ctx   context.Context
	op    string
	span  trace.Span
	start time.Time
}

func (s *Service) begin(ctx context.Context, op, userID string) (context.Context, *run) {
	if logging.ValidateID(userID) == nil {
		ctx = logging.WithUserID(ctx, userID)
	}
	if logging.RequestIDFromContext(ctx) == "" {
		ctx = logging.WithRequestID(ctx, uuid.NewString())
	}

	ctx, span := s.tracer.Start(ctx, op,
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	return ctx, &run{s: s, ctx: ctx, op: op, span: span, start: time.Now()}
}

func (r *run) done(entries int, fields ...zap.Field) {
	defer r.span.End()
	elapsed := time.Since(r.start)
	r.span.SetAttributes(attribute.Int("entries", entries))
	r.s.metrics.recordRun(r.ctx, r.op, entries, elapsed.Seconds(), false)

	fields = append(fields, zap.Int("entries", entries), zap.Duration("elapsed", elapsed))
	r.s.logger.Info(r.ctx, r.op+" completed", fields...)
}

func (r *run) fail(err error) error {
	defer r.span.End()
	r.span.RecordError(err)
	r.span.SetStatus(codes.Error, err.Error())
	r.s.metrics.recordRun(r.ctx, r.op, 0, time.Since(r.start).Seconds(), true)
	r.s.logger.Warn(r.ctx, r.op+" failed", zap.Error(err))
	return err
}

// Ensure Service implements Reader.
var _ Reader = (*Service)(nil)
