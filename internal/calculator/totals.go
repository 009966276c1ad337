// Package calculator derives reporting figures from an event's expenses:
// settled share, per-currency totals and who owes whom.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/justsplit/internal/models"
)

// CalculateSettledPercentage returns the share of expenses marked settled,
// in percent. An empty list is 0% settled.
func CalculateSettledPercentage(expenses []models.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	settled := 0
	for _, e := range expenses {
		if e.Settled {
			settled++
		}
	}
	return float64(settled) / float64(len(expenses)) * 100
}

// CalculateTotalByCurrency sums expense amounts per currency.
// No conversion between currencies is performed.
func CalculateTotalByCurrency(expenses []models.Expense) map[string]decimal.Decimal {
	return sumByCurrency(expenses, func(models.Expense) bool { return true })
}

// CalculateUnsettledAmount sums the amounts of unsettled expenses per currency.
func CalculateUnsettledAmount(expenses []models.Expense) map[string]decimal.Decimal {
	return sumByCurrency(expenses, func(e models.Expense) bool { return !e.Settled })
}

func sumByCurrency(expenses []models.Expense, include func(models.Expense) bool) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !include(e) {
			continue
		}
		totals[e.Currency] = totals[e.Currency].Add(e.Amount)
	}
	return totals
}
