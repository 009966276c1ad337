package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/justsplit/internal/models"
)

// noise is the smallest balance worth settling.
var noise = decimal.New(1, -2)

// MemberBalance represents the balance information for one participant in one currency.
type MemberBalance struct {
	MemberName string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid  decimal.Decimal // Total amount paid, settlements included
	TotalOwed  decimal.Decimal // Total share of expenses, settlements received included
}

// DebtEdge represents a suggested transfer from one participant to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// CurrencyBalances groups balances and suggested transfers for one currency.
type CurrencyBalances struct {
	Currency string
	Balances []MemberBalance
	Debts    []DebtEdge
}

// CalculateEventBalances computes who owes whom, per currency, across an
// event's expenses and settlements.
//
// Algorithm:
//   - For each unsettled expense: payer contributed +amount, each
//     participant owes an equal share (event participants when the expense
//     names none)
//   - For each settlement: payer's balance improves, receiver's balance decreases
//   - Aggregate: net_balance = total_paid - total_owed
//   - Debts: greedy matching of the largest debtor with the largest creditor
//
// Settled expenses are skipped; their debts are already paid back.
// Expenses without a payer cannot be attributed and are skipped too.
func CalculateEventBalances(participants []string, expenses []models.Expense, settlements []models.Settlement) ([]CurrencyBalances, error) {
	// balances[currency][member]
	balances := make(map[string]map[string]*MemberBalance)
	member := func(currency, name string) *MemberBalance {
		byMember, ok := balances[currency]
		if !ok {
			byMember = make(map[string]*MemberBalance)
			balances[currency] = byMember
		}
		if _, exists := byMember[name]; !exists {
			byMember[name] = &MemberBalance{MemberName: name}
		}
		return byMember[name]
	}

	for _, e := range expenses {
		if e.Settled || e.PaidBy == "" {
			continue
		}
		if e.Amount.IsNegative() {
			return nil, fmt.Errorf("expense %s has negative amount %s", e.ID, e.Amount)
		}

		sharedBy := e.Participants
		if len(sharedBy) == 0 {
			sharedBy = participants
		}
		if len(sharedBy) == 0 {
			sharedBy = []string{e.PaidBy}
		}

		payer := member(e.Currency, e.PaidBy)
		payer.TotalPaid = payer.TotalPaid.Add(e.Amount)

		for i, share := range SplitEqually(e.Amount, len(sharedBy)) {
			m := member(e.Currency, sharedBy[i])
			m.TotalOwed = m.TotalOwed.Add(share)
		}
	}

	for _, s := range settlements {
		if s.Amount.IsNegative() {
			return nil, fmt.Errorf("settlement %s has negative amount %s", s.ID, s.Amount)
		}
		from := member(s.Currency, s.From)
		from.TotalPaid = from.TotalPaid.Add(s.Amount)
		to := member(s.Currency, s.To)
		to.TotalOwed = to.TotalOwed.Add(s.Amount)
	}

	currencies := make([]string, 0, len(balances))
	for currency := range balances {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	result := make([]CurrencyBalances, 0, len(currencies))
	for _, currency := range currencies {
		var memberBalances []MemberBalance
		for _, bal := range balances[currency] {
			bal.NetBalance = bal.TotalPaid.Sub(bal.TotalOwed)
			memberBalances = append(memberBalances, *bal)
		}
		sort.Slice(memberBalances, func(i, j int) bool {
			return memberBalances[i].MemberName < memberBalances[j].MemberName
		})

		result = append(result, CurrencyBalances{
			Currency: currency,
			Balances: memberBalances,
			Debts:    simplifyDebts(memberBalances),
		})
	}

	return result, nil
}

// simplifyDebts matches debtors with creditors to minimize transactions.
func simplifyDebts(balances []MemberBalance) []DebtEdge {
	var creditors, debtors []MemberBalance
	for _, bal := range balances {
		if bal.NetBalance.IsPositive() {
			creditors = append(creditors, bal)
		} else if bal.NetBalance.IsNegative() {
			debtors = append(debtors, bal)
		}
	}

	// Largest amounts first, names break ties so results are stable.
	sort.Slice(creditors, func(i, j int) bool {
		if c := creditors[i].NetBalance.Cmp(creditors[j].NetBalance); c != 0 {
			return c > 0
		}
		return creditors[i].MemberName < creditors[j].MemberName
	})
	sort.Slice(debtors, func(i, j int) bool {
		if c := debtors[i].NetBalance.Cmp(debtors[j].NetBalance); c != 0 {
			return c < 0
		}
		return debtors[i].MemberName < debtors[j].MemberName
	})

	debtorBalance := make(map[string]decimal.Decimal, len(debtors))
	creditorBalance := make(map[string]decimal.Decimal, len(creditors))
	for _, debtor := range debtors {
		debtorBalance[debtor.MemberName] = debtor.NetBalance.Neg()
	}
	for _, creditor := range creditors {
		creditorBalance[creditor.MemberName] = creditor.NetBalance
	}

	var debtEdges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].MemberName
		creditor := creditors[j].MemberName

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := decimal.Min(debtorBalance[debtor], creditorBalance[creditor])

		if amount.GreaterThanOrEqual(noise) {
			debtEdges = append(debtEdges, DebtEdge{From: debtor, To: creditor, Amount: amount})
		}

		debtorBalance[debtor] = debtorBalance[debtor].Sub(amount)
		creditorBalance[creditor] = creditorBalance[creditor].Sub(amount)

		if debtorBalance[debtor].LessThan(noise) {
			i++
		}
		if creditorBalance[creditor].LessThan(noise) {
			j++
		}
	}

	return debtEdges
}

// SplitEqually divides amount into n shares that sum exactly to amount.
// Shares keep at least cent precision and differ by at most one unit.
func SplitEqually(amount decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	places := int32(2)
	if exp := -amount.Exponent(); exp > places {
		places = exp
	}

	count := decimal.NewFromInt(int64(n))
	shares := make([]decimal.Decimal, n)
	prev := decimal.Zero
	for i := 1; i <= n; i++ {
		// Cumulative rounding keeps the running sum exact.
		cum := amount.Mul(decimal.NewFromInt(int64(i))).DivRound(count, places)
		shares[i-1] = cum.Sub(prev)
		prev = cum
	}
	return shares
}
