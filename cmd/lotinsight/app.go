package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lotcomputer/lotinsight/internal/config"
	"github.com/lotcomputer/lotinsight/internal/eventlog"
	"github.com/lotcomputer/lotinsight/internal/insight"
	"github.com/lotcomputer/lotinsight/internal/logging"
	"github.com/lotcomputer/lotinsight/internal/telemetry"
)

// app holds the collaborators shared by every command.
type app struct {
	cfg    *config.Config
	logger *logging.Logger
	tel    *telemetry.Telemetry
	now    func() time.Time
}

// newApp loads config and sets up telemetry and logging.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if metricsTextfile != "" {
		cfg.Metrics.Textfile = metricsTextfile
	}

	now, err := parseNow(nowFlag)
	if err != nil {
		return nil, err
	}

	telCfg := telemetry.FromSection(cfg.Telemetry, version)
	telCfg.Logs.Enabled = cfg.Logging.OTEL
	tel, err := telemetry.New(ctx, telCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	logCfg, err := logging.FromSection(cfg.Logging)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	logger, err := logging.NewLogger(logCfg, tel.LoggerProvider())
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	if h := tel.Health(); h.Degraded {
		logger.Warn(ctx, "telemetry degraded", zap.Strings("reasons", h.Reasons))
	}
	if cfg.Logging.OTEL && tel.LoggerProvider() == nil {
		logger.Warn(ctx, "logging.otel is set but telemetry is disabled; logs go to stderr only")
	}

	return &app{cfg: cfg, logger: logger, tel: tel, now: now}, nil
}

// service builds an insight service over reader using the loaded config.
func (a *app) service(reader eventlog.Reader) (*insight.Service, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	return insight.NewService(reader,
		insight.WithLogger(a.logger),
		insight.WithTelemetry(a.tel),
		insight.WithMaxInsights(a.cfg.Analysis.MaxInsights),
		insight.WithWindowSize(a.cfg.Analysis.WindowSize),
		insight.WithLocation(loc),
		insight.WithClock(a.now),
	)
}

// openLog loads the export named by --log.
func (a *app) openLog() (*eventlog.FileReader, error) {
	if logPath == "" {
		return nil, fmt.Errorf("--log is required")
	}
	r, err := eventlog.NewFileReader(logPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(context.Background(), "event log opened",
		zap.String("path", logPath),
		zap.Int("users", len(r.Users())),
	)
	return r, nil
}

// writeMetrics leaves a Prometheus textfile behind when one is configured.
func (a *app) writeMetrics(ctx context.Context, rep insight.Report) error {
	if a.cfg.Metrics.Textfile == "" {
		return nil
	}
	rec := insight.NewRecorder()
	rec.Observe(rep)
	if err := rec.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return err
	}
	a.logger.Debug(ctx, "metrics textfile written", zap.String("path", a.cfg.Metrics.Textfile))
	return nil
}

func (a *app) close(ctx context.Context) {
	if err := a.tel.Shutdown(ctx); err != nil {
		a.logger.Warn(ctx, "telemetry shutdown failed", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// parseNow returns a fixed clock for an RFC 3339 value, or time.Now.
func parseNow(s string) (func() time.Time, error) {
	if s == "" {
		return time.Now, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: %w", s, err)
	}
	return func() time.Time { return t }, nil
}
