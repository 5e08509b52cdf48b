package orderservices

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type orderMetrics struct {
	requests metric.Int64Counter
}

func newOrderMetrics() (*orderMetrics, error) {
	meter := otel.Meter("github.com/jiaming2012/etrade-orders/src/orderservices")

	requests, err := meter.Int64Counter("etrade.orders.requests", metric.WithDescription("order api calls by operation and outcome"))
	if err != nil {
		return nil, err
	}

	return &orderMetrics{
		requests: requests,
	}, nil
}

func (m *orderMetrics) record(ctx context.Context, operation string, outcome string) {
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}
