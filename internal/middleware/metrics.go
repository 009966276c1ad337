package middleware

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-procedure RPC counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the RPC collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "justsplit",
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and status code.",
		}, []string{"procedure", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "justsplit",
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency, by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
}

// Interceptor returns a Connect interceptor feeding the collectors.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.requests.WithLabelValues(procedure, statusCode(err)).Inc()
			return resp, err
		}
	}
}

// statusCode is "ok" for success and the Connect code name otherwise.
func statusCode(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
