package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TimelineServiceName is the fully-qualified name of the TimelineService.
const TimelineServiceName = "justsplit.v1.TimelineService"

// Procedure paths of the TimelineService.
const (
	TimelineServiceGetTimelineProcedure       = "/" + TimelineServiceName + "/GetTimeline"
	TimelineServiceCalculatePositionProcedure = "/" + TimelineServiceName + "/CalculatePosition"
	TimelineServiceGroupExpensesProcedure     = "/" + TimelineServiceName + "/GroupExpenses"
)

// TimelineServiceHandler is implemented by the timeline service.
type TimelineServiceHandler interface {
	GetTimeline(context.Context, *connect.Request[GetTimelineRequest]) (*connect.Response[GetTimelineResponse], error)
	CalculatePosition(context.Context, *connect.Request[CalculatePositionRequest]) (*connect.Response[CalculatePositionResponse], error)
	GroupExpenses(context.Context, *connect.Request[GroupExpensesRequest]) (*connect.Response[GroupExpensesResponse], error)
}

// NewTimelineServiceHandler builds an HTTP handler for svc. It returns the
// path prefix to mount the handler on.
func NewTimelineServiceHandler(svc TimelineServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(TimelineServiceGetTimelineProcedure, connect.NewUnaryHandler(TimelineServiceGetTimelineProcedure, svc.GetTimeline, opts...))
	mux.Handle(TimelineServiceCalculatePositionProcedure, connect.NewUnaryHandler(TimelineServiceCalculatePositionProcedure, svc.CalculatePosition, opts...))
	mux.Handle(TimelineServiceGroupExpensesProcedure, connect.NewUnaryHandler(TimelineServiceGroupExpensesProcedure, svc.GroupExpenses, opts...))

	return "/" + TimelineServiceName + "/", mux
}

// TimelineServiceClient calls a remote TimelineService.
type TimelineServiceClient struct {
	getTimeline       *connect.Client[GetTimelineRequest, GetTimelineResponse]
	calculatePosition *connect.Client[CalculatePositionRequest, CalculatePositionResponse]
	groupExpenses     *connect.Client[GroupExpensesRequest, GroupExpensesResponse]
}

// NewTimelineServiceClient creates a client for the TimelineService at baseURL.
func NewTimelineServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TimelineServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &TimelineServiceClient{
		getTimeline:       connect.NewClient[GetTimelineRequest, GetTimelineResponse](httpClient, baseURL+TimelineServiceGetTimelineProcedure, opts...),
		calculatePosition: connect.NewClient[CalculatePositionRequest, CalculatePositionResponse](httpClient, baseURL+TimelineServiceCalculatePositionProcedure, opts...),
		groupExpenses:     connect.NewClient[GroupExpensesRequest, GroupExpensesResponse](httpClient, baseURL+TimelineServiceGroupExpensesProcedure, opts...),
	}
}

func (c *TimelineServiceClient) GetTimeline(ctx context.Context, req *connect.Request[GetTimelineRequest]) (*connect.Response[GetTimelineResponse], error) {
	return c.getTimeline.CallUnary(ctx, req)
}

func (c *TimelineServiceClient) CalculatePosition(ctx context.Context, req *connect.Request[CalculatePositionRequest]) (*connect.Response[CalculatePositionResponse], error) {
	return c.calculatePosition.CallUnary(ctx, req)
}

func (c *TimelineServiceClient) GroupExpenses(ctx context.Context, req *connect.Request[GroupExpensesRequest]) (*connect.Response[GroupExpensesResponse], error) {
	return c.groupExpenses.CallUnary(ctx, req)
}
