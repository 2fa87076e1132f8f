package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lotcomputer/lotinsight/internal/insight"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the top pattern insights",
	Long: `Run the five pattern detectors (weather-mood, temporal, streak,
social-emotional, behavioral) and print the highest-confidence insights.

Examples:
  lotinsight patterns --log export.json
  lotinsight patterns --log export.yaml --user u-42 --format text`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(cmd, func(ctx context.Context, _ *app, svc *insight.Service) error {
			insights, err := svc.DetectPatterns(ctx, userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, insights, renderInsights)
		})
	},
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show extracted goals and their lifecycle state",
	Long: `Extract goals from intentions, journal notes, activity patterns,
check-ins and reflection answers, merge duplicates and apply the lifecycle.

Examples:
  lotinsight goals --log export.json --format text
  lotinsight goals --log export.json --now 2024-06-01T00:00:00Z`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(cmd, func(ctx context.Context, _ *app, svc *insight.Service) error {
			gs, err := svc.ExtractGoals(ctx, userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, gs, renderGoals)
		})
	},
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Show the goal progression summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(cmd, func(ctx context.Context, _ *app, svc *insight.Service) error {
			p, err := svc.GenerateGoalProgression(ctx, userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, p, renderProgression)
		})
	},
}

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show prompt-ready context fragments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(cmd, func(ctx context.Context, _ *app, svc *insight.Service) error {
			f, err := svc.BuildContext(ctx, userID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), outputFormat, f, renderContext)
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run every analysis and print a full report",
	Long: `Run pattern detection, goal extraction, progression and context
building over one load of the log. With --metrics-textfile (or
metrics.textfile in config) the report is also exported as Prometheus
gauges for node_exporter's textfile collector.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(cmd, func(ctx context.Context, a *app, svc *insight.Service) error {
			rep, err := svc.Report(ctx, userID)
			if err != nil {
				return err
			}
			if err := render(cmd.OutOrStdout(), outputFormat, rep, renderReport); err != nil {
				return err
			}
			return a.writeMetrics(ctx, rep)
		})
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the users in an export",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close(context.Background())

		r, err := a.openLog()
		if err != nil {
			return err
		}
		for _, id := range r.Users() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

// withService sets up the app and service for one command run.
func withService(cmd *cobra.Command, fn func(ctx context.Context, a *app, svc *insight.Service) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateFormat(outputFormat); err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	r, err := a.openLog()
	if err != nil {
		return err
	}
	svc, err := a.service(r)
	if err != nil {
		return err
	}
	return fn(ctx, a, svc)
}
