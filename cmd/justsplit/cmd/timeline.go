package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// timelineCmd represents the timeline command.
var timelineCmd = &cobra.Command{
	Use:   "timeline <file.yaml>",
	Short: "Print the grouped expense markers of an event",
	Long: `Print every marker of the event timeline: its position in percent of
the event window and the expenses drawn there. Positions below 0 are
before the event, above 100 after it.

Example:
  justsplit timeline trip.yaml --threshold 3`,
	Args: cobra.ExactArgs(1),
	RunE: runTimeline,
}

func runTimeline(cmd *cobra.Command, args []string) error {
	tl, err := newTimeline()
	if err != nil {
		return err
	}
	event, expenses, err := loadEventFile(args[0], tl)
	if err != nil {
		return err
	}

	groups, err := tl.GroupNearbyExpenses(expenses, event)
	if err != nil {
		return fmt.Errorf("failed to group expenses: %w", err)
	}
	slog.Debug("Expenses grouped", "expenses", len(expenses), "groups", len(groups))

	out := cmd.OutOrStdout()
	start := event.StartDate.Format("2006-01-02")
	end := "now"
	if event.EndDate != nil {
		end = event.EndDate.Format("2006-01-02")
	}
	fmt.Fprintf(out, "%s (%s to %s)\n", event.Name, start, end)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tCOUNT\tEXPENSES")
	for _, g := range groups {
		labels := make([]string, len(g.Expenses))
		for i, e := range g.Expenses {
			labels[i] = fmt.Sprintf("%s %s %s", describe(e.ID, e.Description), e.Amount.String(), e.Currency)
		}
		fmt.Fprintf(tw, "%.1f%%\t%d\t%s\n", g.Position, len(g.Expenses), strings.Join(labels, ", "))
	}
	return tw.Flush()
}

func describe(id, description string) string {
	if description != "" {
		return description
	}
	return id
}
