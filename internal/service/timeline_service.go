package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/justsplit/internal/calculator"
	"github.com/mmynk/justsplit/internal/models"
	"github.com/mmynk/justsplit/internal/storage"
	"github.com/mmynk/justsplit/internal/timeline"
	"github.com/mmynk/justsplit/pkg/api"
)

// Ensure TimelineService implements api.TimelineServiceHandler
var _ api.TimelineServiceHandler = (*TimelineService)(nil)

// tickPositions are the axis labels returned with every timeline.
var tickPositions = []float64{0, 25, 50, 75, 100}

// TimelineService implements the Connect TimelineService.
type TimelineService struct {
	store    storage.Store
	timeline *timeline.Timeline
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(store storage.Store, tl *timeline.Timeline) *TimelineService {
	return &TimelineService{store: store, timeline: tl}
}

// GetTimeline returns the positioned expense groups of a stored event
// together with its progress and settlement figures.
func (s *TimelineService) GetTimeline(ctx context.Context, req *connect.Request[api.GetTimelineRequest]) (*connect.Response[api.GetTimelineResponse], error) {
	if req.Msg.EventID == "" {
		return nil, invalidArgument("event_id is required")
	}

	event, err := s.store.GetEvent(ctx, req.Msg.EventID)
	if err != nil {
		slog.Error("GetTimeline failed to get event", "event_id", req.Msg.EventID, "error", err)
		return nil, connect.NewError(errorCode(err), err)
	}
	stored, err := s.store.ListExpensesByEvent(ctx, event.ID)
	if err != nil {
		slog.Error("GetTimeline failed to list expenses", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	expenses := derefExpenses(stored)

	window, err := timeline.WindowFor(event)
	if err != nil {
		// Stored events are validated on create.
		slog.Error("GetTimeline found invalid event window", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	groups, err := s.timeline.Group(expenses, window)
	if err != nil {
		slog.Error("GetTimeline grouping failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	ticks := make([]api.Tick, len(tickPositions))
	for i, pos := range tickPositions {
		ticks[i] = api.Tick{Position: pos, Label: s.timeline.FormatPosition(pos, window)}
	}

	slog.Debug("Timeline computed",
		"event_id", event.ID,
		"expenses", len(expenses),
		"groups", len(groups),
	)

	return connect.NewResponse(&api.GetTimelineResponse{
		Event:               toAPIEvent(event),
		DateRange:           s.timeline.FormatWindow(window),
		Groups:              toAPIGroups(groups),
		Ticks:               ticks,
		Progress:            s.timeline.Progress(window),
		SettledPercentage:   calculator.CalculateSettledPercentage(expenses),
		TotalByCurrency:     calculator.CalculateTotalByCurrency(expenses),
		UnsettledByCurrency: calculator.CalculateUnsettledAmount(expenses),
	}), nil
}

// CalculatePosition positions a single date against an inline window.
func (s *TimelineService) CalculatePosition(ctx context.Context, req *connect.Request[api.CalculatePositionRequest]) (*connect.Response[api.CalculatePositionResponse], error) {
	pos, err := s.timeline.CalculatePositionPercentage(req.Msg.Date, req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewResponse(&api.CalculatePositionResponse{Position: pos}), nil
}

// GroupExpenses groups inline expenses against an inline window.
// Nothing is read from or written to storage.
func (s *TimelineService) GroupExpenses(ctx context.Context, req *connect.Request[api.GroupExpensesRequest]) (*connect.Response[api.GroupExpensesResponse], error) {
	window, err := s.timeline.ParseWindow(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expenses := make([]models.Expense, len(req.Msg.Expenses))
	for i, e := range req.Msg.Expenses {
		date, err := s.timeline.ParseDate(e.Date)
		if err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("expense %d: %w", i, err))
		}
		expenses[i] = models.Expense{
			ID:           e.ID,
			EventID:      e.EventID,
			Description:  e.Description,
			Amount:       e.Amount,
			Currency:     e.Currency,
			Date:         date,
			PaidBy:       e.PaidBy,
			Participants: e.Participants,
			Settled:      e.Settled,
			CreatedAt:    e.CreatedAt,
		}
	}

	groups, err := s.timeline.Group(expenses, window)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewResponse(&api.GroupExpensesResponse{Groups: toAPIGroups(groups)}), nil
}
