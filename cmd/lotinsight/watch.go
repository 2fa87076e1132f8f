package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// watchInterval is the minimum time between recomputations.
var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "minimum time between recomputations")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the report whenever the exported log changes",
	Long: `Print a report, then watch the log file and print a fresh report each
time it is rewritten. Bursts of writes are coalesced and recomputation is
limited to once per --interval.

Examples:
  lotinsight watch --log export.json --format text
  lotinsight watch --log export.json --interval 30s --metrics-textfile /var/lib/node_exporter/lotinsight.prom`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}
	if logPath == "" {
		return fmt.Errorf("--log is required")
	}
	if watchInterval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	target, err := filepath.Abs(logPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", logPath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors and exporters often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	out := cmd.OutOrStdout()
	if err := a.reportOnce(ctx, out); err != nil {
		return err
	}

	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isLogChange(event, target) {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			drain(watcher.Events)
			if err := a.reportOnce(ctx, out); err != nil {
				a.logger.Warn(ctx, "report failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn(ctx, "file watcher error", zap.Error(err))
		}
	}
}

// reportOnce reloads the log and prints a full report.
func (a *app) reportOnce(ctx context.Context, w io.Writer) error {
	r, err := a.openLog()
	if err != nil {
		return err
	}
	svc, err := a.service(r)
	if err != nil {
		return err
	}
	rep, err := svc.Report(ctx, userID)
	if err != nil {
		return err
	}
	if err := render(w, outputFormat, rep, renderReport); err != nil {
		return err
	}
	return a.writeMetrics(ctx, rep)
}

func isLogChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// drain discards events already queued so one burst triggers one report.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}
