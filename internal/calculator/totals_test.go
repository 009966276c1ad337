package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/justsplit/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateSettledPercentage(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		want     float64
	}{
		{name: "empty", expenses: nil, want: 0},
		{name: "none settled", expenses: []models.Expense{{}, {}}, want: 0},
		{name: "all settled", expenses: []models.Expense{{Settled: true}, {Settled: true}, {Settled: true}}, want: 100},
		{name: "one of four", expenses: []models.Expense{{Settled: true}, {}, {}, {}}, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateSettledPercentage(tt.expenses); got != tt.want {
				t.Errorf("CalculateSettledPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateTotalByCurrency(t *testing.T) {
	expenses := []models.Expense{
		{Amount: d("10.10"), Currency: "EUR"},
		{Amount: d("0.20"), Currency: "EUR", Settled: true},
		{Amount: d("1500"), Currency: "JPY"},
		{Amount: d("5"), Currency: "USD", Settled: true},
	}

	totals := CalculateTotalByCurrency(expenses)
	if len(totals) != 3 {
		t.Fatalf("expected 3 currencies, got %d", len(totals))
	}
	if !totals["EUR"].Equal(d("10.30")) {
		t.Errorf("EUR total = %s, want 10.30", totals["EUR"])
	}
	if !totals["JPY"].Equal(d("1500")) {
		t.Errorf("JPY total = %s, want 1500", totals["JPY"])
	}
	if !totals["USD"].Equal(d("5")) {
		t.Errorf("USD total = %s, want 5", totals["USD"])
	}
}

func TestCalculateUnsettledAmount(t *testing.T) {
	expenses := []models.Expense{
		{Amount: d("10.10"), Currency: "EUR"},
		{Amount: d("0.20"), Currency: "EUR", Settled: true},
		{Amount: d("5"), Currency: "USD", Settled: true},
	}

	unsettled := CalculateUnsettledAmount(expenses)
	if len(unsettled) != 1 {
		t.Fatalf("expected only EUR to be unsettled, got %v", unsettled)
	}
	if !unsettled["EUR"].Equal(d("10.10")) {
		t.Errorf("EUR unsettled = %s, want 10.10", unsettled["EUR"])
	}
	if _, ok := unsettled["USD"]; ok {
		t.Error("USD should not appear when fully settled")
	}
}
