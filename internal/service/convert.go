package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/justsplit/internal/calculator"
	"github.com/mmynk/justsplit/internal/models"
	"github.com/mmynk/justsplit/internal/storage"
	"github.com/mmynk/justsplit/internal/timeline"
	"github.com/mmynk/justsplit/pkg/api"
)

// errorCode maps domain errors onto Connect codes.
func errorCode(err error) connect.Code {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, timeline.ErrInvalidDate), errors.Is(err, timeline.ErrInvalidRange):
		return connect.CodeInvalidArgument
	default:
		return connect.CodeInternal
	}
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toAPIEvent(e *models.Event) api.Event {
	out := api.Event{
		ID:           e.ID,
		Name:         e.Name,
		StartDate:    formatDate(e.StartDate),
		Participants: e.Participants,
		CreatedAt:    e.CreatedAt,
	}
	if out.Participants == nil {
		out.Participants = []string{}
	}
	if e.EndDate != nil {
		out.EndDate = formatDate(*e.EndDate)
	}
	return out
}

func toAPIExpense(e *models.Expense) api.Expense {
	return api.Expense{
		ID:           e.ID,
		EventID:      e.EventID,
		Description:  e.Description,
		Amount:       e.Amount,
		Currency:     e.Currency,
		Date:         formatDate(e.Date),
		PaidBy:       e.PaidBy,
		Participants: e.Participants,
		Settled:      e.Settled,
		CreatedAt:    e.CreatedAt,
	}
}

func toAPISettlement(s *models.Settlement) api.Settlement {
	return api.Settlement{
		ID:        s.ID,
		EventID:   s.EventID,
		From:      s.From,
		To:        s.To,
		Amount:    s.Amount,
		Currency:  s.Currency,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func toAPIGroups(groups []timeline.Group) []api.TimelineGroup {
	out := make([]api.TimelineGroup, len(groups))
	for i, g := range groups {
		expenses := make([]api.Expense, len(g.Expenses))
		for j := range g.Expenses {
			expenses[j] = toAPIExpense(&g.Expenses[j])
		}
		out[i] = api.TimelineGroup{Position: g.Position, Expenses: expenses}
	}
	return out
}

func toAPIBalances(result []calculator.CurrencyBalances) []api.CurrencyBalances {
	out := make([]api.CurrencyBalances, len(result))
	for i, cb := range result {
		balances := make([]api.MemberBalance, len(cb.Balances))
		for j, b := range cb.Balances {
			balances[j] = api.MemberBalance{Name: b.MemberName, Net: b.NetBalance, Paid: b.TotalPaid, Owed: b.TotalOwed}
		}
		debts := make([]api.Debt, len(cb.Debts))
		for j, d := range cb.Debts {
			debts[j] = api.Debt{From: d.From, To: d.To, Amount: d.Amount}
		}
		out[i] = api.CurrencyBalances{Currency: cb.Currency, Balances: balances, Debts: debts}
	}
	return out
}

func derefExpenses(expenses []*models.Expense) []models.Expense {
	out := make([]models.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = *e
	}
	return out
}

// normalizeNames trims names and rejects blanks and duplicates.
func normalizeNames(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, fmt.Errorf("participant names cannot be empty")
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate participant %q", n)
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

// normalizeCurrency upper-cases an ISO 4217 code and checks its shape.
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("currency must be a 3-letter ISO code, got %q", code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("currency must be a 3-letter ISO code, got %q", code)
		}
	}
	return code, nil
}

// validateMembers checks that every name is an event participant.
// Events without participants accept anyone.
func validateMembers(event *models.Event, names ...string) error {
	if len(event.Participants) == 0 {
		return nil
	}
	for _, n := range names {
		if !event.HasParticipant(n) {
			return fmt.Errorf("'%s' is not a participant of event %s", n, event.ID)
		}
	}
	return nil
}
