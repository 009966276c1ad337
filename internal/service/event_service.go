package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/justsplit/internal/calculator"
	"github.com/mmynk/justsplit/internal/models"
	"github.com/mmynk/justsplit/internal/storage"
	"github.com/mmynk/justsplit/internal/timeline"
	"github.com/mmynk/justsplit/pkg/api"
)

// Ensure EventService implements api.EventServiceHandler
var _ api.EventServiceHandler = (*EventService)(nil)

// EventService implements the Connect EventService: events, their
// expenses and settlements.
type EventService struct {
	store    storage.Store
	timeline *timeline.Timeline
}

// NewEventService creates a new EventService with the given storage backend.
// The timeline is used to parse dates in its configured location.
func NewEventService(store storage.Store, tl *timeline.Timeline) *EventService {
	return &EventService{store: store, timeline: tl}
}

// getEvent loads an event and maps failures onto Connect errors.
func (s *EventService) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	if eventID == "" {
		return nil, invalidArgument("event_id is required")
	}
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		slog.Error("GetEvent failed", "event_id", eventID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}
	return event, nil
}

// CreateEvent validates and persists a new event.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("event name is required")
	}

	participants, err := normalizeNames(req.Msg.Participants)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	window, err := s.timeline.ParseWindow(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		slog.Warn("CreateEvent rejected dates", "start", req.Msg.StartDate, "end", req.Msg.EndDate, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	event := &models.Event{
		Name:         name,
		StartDate:    window.Start,
		EndDate:      window.End,
		Participants: participants,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	slog.Info("Event created", "event_id", event.ID, "participants", len(participants))

	return connect.NewResponse(&api.CreateEventResponse{Event: toAPIEvent(event)}), nil
}

// GetEvent retrieves an event by ID.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetEventResponse{Event: toAPIEvent(event)}), nil
}

// ListEvents returns all events.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		slog.Error("ListEvents failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Event, len(events))
	for i, e := range events {
		out[i] = toAPIEvent(e)
	}
	return connect.NewResponse(&api.ListEventsResponse{Events: out}), nil
}

// DeleteEvent removes an event along with its expenses and settlements.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	if req.Msg.EventID == "" {
		return nil, invalidArgument("event_id is required")
	}
	if err := s.store.DeleteEvent(ctx, req.Msg.EventID); err != nil {
		slog.Error("DeleteEvent failed", "event_id", req.Msg.EventID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}
	slog.Info("Event deleted", "event_id", req.Msg.EventID)
	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}

// AddExpense records an expense against an event.
func (s *EventService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	if req.Msg.Amount.IsNegative() {
		return nil, invalidArgument("amount cannot be negative")
	}
	currency, err := normalizeCurrency(req.Msg.Currency)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	date, err := s.timeline.ParseDate(req.Msg.Date)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	paidBy := strings.TrimSpace(req.Msg.PaidBy)
	if paidBy == "" {
		return nil, invalidArgument("paid_by is required")
	}
	participants, err := normalizeNames(req.Msg.Participants)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := validateMembers(event, append([]string{paidBy}, participants...)...); err != nil {
		slog.Error("AddExpense participant validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		EventID:      event.ID,
		Description:  strings.TrimSpace(req.Msg.Description),
		Amount:       req.Msg.Amount,
		Currency:     currency,
		Date:         date,
		PaidBy:       paidBy,
		Participants: participants,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}

	slog.Debug("Expense added",
		"event_id", event.ID,
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"currency", expense.Currency,
	)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses returns an event's expenses ordered by date.
func (s *EventService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByEvent(ctx, event.ID)
	if err != nil {
		slog.Error("ListExpenses failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// SetExpenseSettled marks an expense settled or unsettled.
func (s *EventService) SetExpenseSettled(ctx context.Context, req *connect.Request[api.SetExpenseSettledRequest]) (*connect.Response[api.SetExpenseSettledResponse], error) {
	if req.Msg.ExpenseID == "" {
		return nil, invalidArgument("expense_id is required")
	}
	if err := s.store.SetExpenseSettled(ctx, req.Msg.ExpenseID, req.Msg.Settled); err != nil {
		slog.Error("SetExpenseSettled failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("GetExpense failed after settle", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}
	return connect.NewResponse(&api.SetExpenseSettledResponse{Expense: toAPIExpense(expense)}), nil
}

// DeleteExpense removes an expense.
func (s *EventService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	if req.Msg.ExpenseID == "" {
		return nil, invalidArgument("expense_id is required")
	}
	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// RecordSettlement records a payment between two participants.
func (s *EventService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	from, to := strings.TrimSpace(req.Msg.From), strings.TrimSpace(req.Msg.To)
	if from == "" || to == "" {
		return nil, invalidArgument("from and to are required")
	}
	if from == to {
		return nil, invalidArgument("cannot settle with yourself")
	}
	if !req.Msg.Amount.IsPositive() {
		return nil, invalidArgument("settlement amount must be positive")
	}
	currency, err := normalizeCurrency(req.Msg.Currency)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := validateMembers(event, from, to); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	settlement := &models.Settlement{
		EventID:  event.ID,
		From:     from,
		To:       to,
		Amount:   req.Msg.Amount,
		Currency: currency,
		Note:     strings.TrimSpace(req.Msg.Note),
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}
	slog.Info("Settlement recorded", "event_id", event.ID, "from", from, "to", to, "amount", settlement.Amount.String())

	return connect.NewResponse(&api.RecordSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

// GetBalances computes who owes whom for an event, per currency.
func (s *EventService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByEvent(ctx, event.ID)
	if err != nil {
		slog.Error("GetBalances failed to list expenses", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	settlements, err := s.store.ListSettlementsByEvent(ctx, event.ID)
	if err != nil {
		slog.Error("GetBalances failed to list settlements", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	settlementValues := make([]models.Settlement, len(settlements))
	for i, st := range settlements {
		settlementValues[i] = *st
	}

	result, err := calculator.CalculateEventBalances(event.Participants, derefExpenses(expenses), settlementValues)
	if err != nil {
		slog.Error("CalculateEventBalances failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to calculate balances: %w", err))
	}

	return connect.NewResponse(&api.GetBalancesResponse{Currencies: toAPIBalances(result)}), nil
}
