package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// EventServiceName is the fully-qualified name of the EventService.
const EventServiceName = "justsplit.v1.EventService"

// Procedure paths of the EventService.
const (
	EventServiceCreateEventProcedure       = "/" + EventServiceName + "/CreateEvent"
	EventServiceGetEventProcedure          = "/" + EventServiceName + "/GetEvent"
	EventServiceListEventsProcedure        = "/" + EventServiceName + "/ListEvents"
	EventServiceDeleteEventProcedure       = "/" + EventServiceName + "/DeleteEvent"
	EventServiceAddExpenseProcedure        = "/" + EventServiceName + "/AddExpense"
	EventServiceListExpensesProcedure      = "/" + EventServiceName + "/ListExpenses"
	EventServiceSetExpenseSettledProcedure = "/" + EventServiceName + "/SetExpenseSettled"
	EventServiceDeleteExpenseProcedure     = "/" + EventServiceName + "/DeleteExpense"
	EventServiceRecordSettlementProcedure  = "/" + EventServiceName + "/RecordSettlement"
	EventServiceGetBalancesProcedure       = "/" + EventServiceName + "/GetBalances"
)

// EventServiceHandler is implemented by the event CRUD service.
type EventServiceHandler interface {
	CreateEvent(context.Context, *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error)
	GetEvent(context.Context, *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	SetExpenseSettled(context.Context, *connect.Request[SetExpenseSettledRequest]) (*connect.Response[SetExpenseSettledResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	RecordSettlement(context.Context, *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
}

// NewEventServiceHandler builds an HTTP handler for svc. It returns the path
// prefix to mount the handler on.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(EventServiceCreateEventProcedure, connect.NewUnaryHandler(EventServiceCreateEventProcedure, svc.CreateEvent, opts...))
	mux.Handle(EventServiceGetEventProcedure, connect.NewUnaryHandler(EventServiceGetEventProcedure, svc.GetEvent, opts...))
	mux.Handle(EventServiceListEventsProcedure, connect.NewUnaryHandler(EventServiceListEventsProcedure, svc.ListEvents, opts...))
	mux.Handle(EventServiceDeleteEventProcedure, connect.NewUnaryHandler(EventServiceDeleteEventProcedure, svc.DeleteEvent, opts...))
	mux.Handle(EventServiceAddExpenseProcedure, connect.NewUnaryHandler(EventServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(EventServiceListExpensesProcedure, connect.NewUnaryHandler(EventServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(EventServiceSetExpenseSettledProcedure, connect.NewUnaryHandler(EventServiceSetExpenseSettledProcedure, svc.SetExpenseSettled, opts...))
	mux.Handle(EventServiceDeleteExpenseProcedure, connect.NewUnaryHandler(EventServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(EventServiceRecordSettlementProcedure, connect.NewUnaryHandler(EventServiceRecordSettlementProcedure, svc.RecordSettlement, opts...))
	mux.Handle(EventServiceGetBalancesProcedure, connect.NewUnaryHandler(EventServiceGetBalancesProcedure, svc.GetBalances, opts...))

	return "/" + EventServiceName + "/", mux
}

// EventServiceClient calls a remote EventService.
type EventServiceClient struct {
	createEvent       *connect.Client[CreateEventRequest, CreateEventResponse]
	getEvent          *connect.Client[GetEventRequest, GetEventResponse]
	listEvents        *connect.Client[ListEventsRequest, ListEventsResponse]
	deleteEvent       *connect.Client[DeleteEventRequest, DeleteEventResponse]
	addExpense        *connect.Client[AddExpenseRequest, AddExpenseResponse]
	listExpenses      *connect.Client[ListExpensesRequest, ListExpensesResponse]
	setExpenseSettled *connect.Client[SetExpenseSettledRequest, SetExpenseSettledResponse]
	deleteExpense     *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	recordSettlement  *connect.Client[RecordSettlementRequest, RecordSettlementResponse]
	getBalances       *connect.Client[GetBalancesRequest, GetBalancesResponse]
}

// NewEventServiceClient creates a client for the EventService at baseURL
// (e.g., http://localhost:8080).
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *EventServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &EventServiceClient{
		createEvent:       connect.NewClient[CreateEventRequest, CreateEventResponse](httpClient, baseURL+EventServiceCreateEventProcedure, opts...),
		getEvent:          connect.NewClient[GetEventRequest, GetEventResponse](httpClient, baseURL+EventServiceGetEventProcedure, opts...),
		listEvents:        connect.NewClient[ListEventsRequest, ListEventsResponse](httpClient, baseURL+EventServiceListEventsProcedure, opts...),
		deleteEvent:       connect.NewClient[DeleteEventRequest, DeleteEventResponse](httpClient, baseURL+EventServiceDeleteEventProcedure, opts...),
		addExpense:        connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+EventServiceAddExpenseProcedure, opts...),
		listExpenses:      connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+EventServiceListExpensesProcedure, opts...),
		setExpenseSettled: connect.NewClient[SetExpenseSettledRequest, SetExpenseSettledResponse](httpClient, baseURL+EventServiceSetExpenseSettledProcedure, opts...),
		deleteExpense:     connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+EventServiceDeleteExpenseProcedure, opts...),
		recordSettlement:  connect.NewClient[RecordSettlementRequest, RecordSettlementResponse](httpClient, baseURL+EventServiceRecordSettlementProcedure, opts...),
		getBalances:       connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+EventServiceGetBalancesProcedure, opts...),
	}
}

func (c *EventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) GetEvent(ctx context.Context, req *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *EventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *EventServiceClient) SetExpenseSettled(ctx context.Context, req *connect.Request[SetExpenseSettledRequest]) (*connect.Response[SetExpenseSettledResponse], error) {
	return c.setExpenseSettled.CallUnary(ctx, req)
}

func (c *EventServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *EventServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

func (c *EventServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}
