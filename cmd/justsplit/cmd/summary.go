package cmd

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/justsplit/internal/calculator"
	"github.com/mmynk/justsplit/internal/timeline"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary <file.yaml>",
	Short: "Print progress, totals and balances of an event",
	Long: `Print the event's date range and progress, the settled share of its
expenses, totals per currency and the transfers that settle all debts.

Example:
  justsplit summary trip.yaml --now 2023-06-05`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	tl, err := newTimeline()
	if err != nil {
		return err
	}
	event, expenses, err := loadEventFile(args[0], tl)
	if err != nil {
		return err
	}
	w, err := timeline.WindowFor(event)
	if err != nil {
		return err
	}

	balances, err := calculator.CalculateEventBalances(event.Participants, expenses, nil)
	if err != nil {
		return fmt.Errorf("failed to calculate balances: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", event.Name)
	fmt.Fprintf(out, "Dates:     %s\n", tl.FormatWindow(w))
	fmt.Fprintf(out, "Progress:  %.0f%%\n", tl.Progress(w))
	fmt.Fprintf(out, "Expenses:  %d (%.0f%% settled)\n", len(expenses), calculator.CalculateSettledPercentage(expenses))

	totals := calculator.CalculateTotalByCurrency(expenses)
	unsettled := calculator.CalculateUnsettledAmount(expenses)
	for _, currency := range sortedKeys(totals) {
		fmt.Fprintf(out, "Total %s: %s (unsettled %s)\n", currency, totals[currency].StringFixed(2), unsettled[currency].StringFixed(2))
	}

	for _, cb := range balances {
		for _, d := range cb.Debts {
			fmt.Fprintf(out, "%s owes %s %s %s\n", d.From, d.To, d.Amount.StringFixed(2), cb.Currency)
		}
	}
	return nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
