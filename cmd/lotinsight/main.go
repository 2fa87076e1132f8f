// Package main implements the lotinsight CLI, which runs pattern detection
// and goal tracking over an exported event log.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath is the YAML config file. Empty uses ~/.config/lotinsight/config.yaml.
	configPath string
	// logPath is the exported event log (JSON or YAML).
	logPath string
	// userID selects the user inside the export. Empty selects the first user.
	userID string
	// outputFormat is json or text.
	outputFormat string
	// nowFlag fixes the analysis clock (RFC 3339) for reproducible reports.
	nowFlag string
	// metricsTextfile overrides metrics.textfile from config.
	metricsTextfile string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lotinsight",
	Short: "Detect patterns and track goals in a reflection event log",
	Long: `lotinsight analyses one user's exported event log (check-ins, notes,
chat messages, answered prompts, plans and self-care) and reports:

  - recurring patterns with confidence scores
  - goals the user is pursuing and where each is in its lifecycle
  - a progression summary with a primary goal and next focus
  - short context fragments for prompt builders

Nothing is stored; every run recomputes from the log.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/lotinsight/config.yaml)")
	flags.StringVarP(&logPath, "log", "l", "", "exported event log (.json, .yaml or .yml)")
	flags.StringVarP(&userID, "user", "u", "", "user ID inside the export (default: first user)")
	flags.StringVarP(&outputFormat, "format", "o", "json", "output format: json or text")
	flags.StringVar(&nowFlag, "now", "", "analysis time in RFC 3339 (default: current time)")
	flags.StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus textfile metrics after the run")

	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(progressionCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(watchCmd)
}
