package api

import "github.com/shopspring/decimal"

// Event is the wire form of an event. Dates are RFC 3339 on output and any
// ISO-8601 date or date-time on input.
type Event struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"` // empty = ongoing
	Participants []string `json:"participants"`
	CreatedAt    int64    `json:"createdAt,omitempty"`
}

// Expense is the wire form of an expense.
type Expense struct {
	ID           string          `json:"id,omitempty"`
	EventID      string          `json:"eventId,omitempty"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Date         string          `json:"date"`
	PaidBy       string          `json:"paidBy,omitempty"`
	Participants []string        `json:"participants,omitempty"`
	Settled      bool            `json:"settled"`
	CreatedAt    int64           `json:"createdAt,omitempty"`
}

// Settlement is the wire form of a settlement.
type Settlement struct {
	ID        string          `json:"id"`
	EventID   string          `json:"eventId"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Note      string          `json:"note,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

type CreateEventRequest struct {
	Name         string   `json:"name"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Participants []string `json:"participants"`
}

type CreateEventResponse struct {
	Event Event `json:"event"`
}

type GetEventRequest struct {
	EventID string `json:"eventId"`
}

type GetEventResponse struct {
	Event Event `json:"event"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
}

type DeleteEventResponse struct{}

type AddExpenseRequest struct {
	EventID      string          `json:"eventId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Date         string          `json:"date"`
	PaidBy       string          `json:"paidBy"`
	Participants []string        `json:"participants,omitempty"`
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct {
	EventID string `json:"eventId"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type SetExpenseSettledRequest struct {
	ExpenseID string `json:"expenseId"`
	Settled   bool   `json:"settled"`
}

type SetExpenseSettledResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type RecordSettlementRequest struct {
	EventID  string          `json:"eventId"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Note     string          `json:"note,omitempty"`
}

type RecordSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type GetBalancesRequest struct {
	EventID string `json:"eventId"`
}

// MemberBalance is one participant's position in one currency.
// Positive Net means the participant is owed money.
type MemberBalance struct {
	Name string          `json:"name"`
	Net  decimal.Decimal `json:"net"`
	Paid decimal.Decimal `json:"paid"`
	Owed decimal.Decimal `json:"owed"`
}

// Debt is a suggested transfer.
type Debt struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type CurrencyBalances struct {
	Currency string          `json:"currency"`
	Balances []MemberBalance `json:"balances"`
	Debts    []Debt          `json:"debts"`
}

type GetBalancesResponse struct {
	Currencies []CurrencyBalances `json:"currencies"`
}

// TimelineGroup is a cluster of expenses drawn as one marker at Position.
type TimelineGroup struct {
	Position float64   `json:"position"`
	Expenses []Expense `json:"expenses"`
}

// Tick is an axis label.
type Tick struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

type GetTimelineRequest struct {
	EventID string `json:"eventId"`
}

type GetTimelineResponse struct {
	Event               Event                      `json:"event"`
	DateRange           string                     `json:"dateRange"`
	Groups              []TimelineGroup            `json:"groups"`
	Ticks               []Tick                     `json:"ticks"`
	Progress            float64                    `json:"progress"`
	SettledPercentage   float64                    `json:"settledPercentage"`
	TotalByCurrency     map[string]decimal.Decimal `json:"totalByCurrency"`
	UnsettledByCurrency map[string]decimal.Decimal `json:"unsettledByCurrency"`
}

type CalculatePositionRequest struct {
	Date      string `json:"date"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

type CalculatePositionResponse struct {
	Position float64 `json:"position"`
}

type GroupExpensesRequest struct {
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate,omitempty"`
	Expenses  []Expense `json:"expenses"`
}

type GroupExpensesResponse struct {
	Groups []TimelineGroup `json:"groups"`
}
