// Package cmd provides CLI commands for justsplit.
package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/justsplit/internal/timeline"
	"github.com/mmynk/justsplit/pkg/logging"
)

var (
	nowFlag   string
	threshold float64
	debug     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "justsplit",
	Short: "Inspect shared-expense events from the command line",
	Long: `justsplit reads an event and its expenses from a YAML file and
prints what the web timeline would show.

Example:
  justsplit timeline trip.yaml
  justsplit summary trip.yaml --now 2023-06-05`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		logging.SetupWithLevel(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "pin the current time (ISO-8601), default is the system clock")
	rootCmd.PersistentFlags().Float64Var(&threshold, "threshold", timeline.DefaultProximityThreshold, "grouping distance in percentage points")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(summaryCmd)
}

// newTimeline builds a Timeline from the global flags.
func newTimeline() (*timeline.Timeline, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("threshold must be positive, got %v", threshold)
	}
	opts := []timeline.Option{timeline.WithProximityThreshold(threshold)}
	if nowFlag != "" {
		now, err := timeline.ParseDate(nowFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
		slog.Debug("Clock pinned", "now", now)
		opts = append(opts, timeline.WithClock(func() time.Time { return now }))
	}
	return timeline.New(opts...), nil
}
