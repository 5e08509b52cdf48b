package orderservices

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/asaskevich/EventBus"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

// ErrOptionOrdersUnsupported is returned for option preview, place and change
// calls. Option attributes can be built and validated but not submitted.
var ErrOptionOrdersUnsupported = errors.New("option order submission is not supported")

type OrdersClient struct {
	transport Transport
	urls      *OrderURLs
	creds     Credentials
	bus       EventBus.Bus
	metrics   *orderMetrics
	encoder   *schema.Encoder
}

type OrdersClientOption func(*OrdersClient)

// WithEventBus publishes an OrderEvent on bus after every call.
func WithEventBus(bus EventBus.Bus) OrdersClientOption {
	return func(c *OrdersClient) {
		c.bus = bus
	}
}

func NewOrdersClient(transport Transport, urls *OrderURLs, creds Credentials, opts ...OrdersClientOption) (*OrdersClient, error) {
	metrics, err := newOrderMetrics()
	if err != nil {
		return nil, fmt.Errorf("NewOrdersClient: failed to create metrics: %w", err)
	}

	c := &OrdersClient{
		transport: transport,
		urls:      urls,
		creds:     creds,
		metrics:   metrics,
		encoder:   schema.NewEncoder(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type orderCall struct {
	operation     string
	accountID     int
	clientOrderID string
	endpoint      Endpoint
	payload       interface{}
}

func submitAndParse[T any](ctx context.Context, c *OrdersClient, call orderCall) (*T, error) {
	tracer := otel.Tracer("OrdersClient")
	ctx, span := tracer.Start(ctx, call.operation)
	defer span.End()

	span.SetAttributes(
		attribute.Int("account_id", call.accountID),
		attribute.String("client_order_id", call.clientOrderID),
	)

	logger := log.WithContext(ctx).WithFields(log.Fields{
		"operation": call.operation,
		"accountId": call.accountID,
	})

	raw, err := c.transport.Submit(ctx, call.endpoint, call.payload, c.creds)
	if err != nil {
		span.RecordError(err)
		logger.Errorf("%s: failed to submit: %v", call.operation, err)
		c.finish(ctx, call, OrderFailedTopic, err)
		return nil, fmt.Errorf("%s: %w", call.operation, err)
	}

	result, err := ParseEtradeResponse[T](raw)
	if err != nil {
		span.RecordError(err)

		var apiErr *ordermodels.ApiError
		if errors.As(err, &apiErr) {
			logger.Warnf("%s: rejected by api: %v", call.operation, apiErr)
			c.finish(ctx, call, OrderRejectedTopic, err)
		} else {
			logger.Errorf("%s: failed to parse response: %v", call.operation, err)
			c.finish(ctx, call, OrderFailedTopic, err)
		}

		return nil, fmt.Errorf("%s: %w", call.operation, err)
	}

	logger.Infof("%s: ok", call.operation)
	c.finish(ctx, call, OrderAcceptedTopic, nil)

	return result, nil
}

func (c *OrdersClient) finish(ctx context.Context, call orderCall, topic string, err error) {
	outcome := "accepted"
	switch topic {
	case OrderRejectedTopic:
		outcome = "rejected"
	case OrderFailedTopic:
		outcome = "failed"
	}

	c.metrics.record(ctx, call.operation, outcome)

	if c.bus != nil {
		c.bus.Publish(topic, OrderEvent{
			Operation:     call.operation,
			AccountID:     call.accountID,
			ClientOrderID: call.clientOrderID,
			Err:           err,
		})
	}
}

func (c *OrdersClient) ListOrders(ctx context.Context, accountID int, req *ordermodels.ListOrdersRequest) (*ordermodels.OrderListResponse, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("ListOrders: account id must be positive")
	}

	endpoint := c.urls.OrdersList(accountID)

	if req != nil {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("ListOrders: invalid request: %w", err)
		}

		queryParams := url.Values{}
		if err := c.encoder.Encode(req, queryParams); err != nil {
			return nil, fmt.Errorf("ListOrders: failed to encode query: %w", err)
		}

		if len(queryParams) > 0 {
			endpoint.URL = fmt.Sprintf("%s?%s", endpoint.URL, queryParams.Encode())
		}
	}

	return submitAndParse[ordermodels.OrderListResponse](ctx, c, orderCall{
		operation: "ListOrders",
		accountID: accountID,
		endpoint:  endpoint,
	})
}

func (c *OrdersClient) CancelOrder(ctx context.Context, accountID int, orderNum int) (*ordermodels.OrderCancelResponse, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("CancelOrder: account id must be positive")
	}

	if orderNum <= 0 {
		return nil, fmt.Errorf("CancelOrder: order number must be positive")
	}

	return submitAndParse[ordermodels.OrderCancelResponse](ctx, c, orderCall{
		operation: "CancelOrder",
		accountID: accountID,
		endpoint:  c.urls.OrdersCancel(),
		payload:   ordermodels.NewCancelOrderPayload(accountID, orderNum),
	})
}

func (c *OrdersClient) EquityOrderPreview(ctx context.Context, props *ordermodels.EquityOrderProps) (*ordermodels.EquityOrderPreview, error) {
	if props == nil {
		return nil, fmt.Errorf("EquityOrderPreview: props are required")
	}

	return submitAndParse[ordermodels.EquityOrderPreview](ctx, c, orderCall{
		operation:     "EquityOrderPreview",
		accountID:     props.AccountID(),
		clientOrderID: props.ClientOrderID(),
		endpoint:      c.urls.EquityPreview(),
		payload:       ordermodels.NewPreviewEquityOrderPayload(props),
	})
}

func (c *OrdersClient) EquityOrderPlace(ctx context.Context, props *ordermodels.EquityOrderProps) (*ordermodels.EquityOrderPlace, error) {
	if props == nil {
		return nil, fmt.Errorf("EquityOrderPlace: props are required")
	}

	return submitAndParse[ordermodels.EquityOrderPlace](ctx, c, orderCall{
		operation:     "EquityOrderPlace",
		accountID:     props.AccountID(),
		clientOrderID: props.ClientOrderID(),
		endpoint:      c.urls.EquityPlace(),
		payload:       ordermodels.NewPlaceEquityOrderPayload(props),
	})
}

func (c *OrdersClient) EquityChangePreview(ctx context.Context, props *ordermodels.EquityOrderChangeProps) (*ordermodels.EquityOrderChangePreview, error) {
	if props == nil {
		return nil, fmt.Errorf("EquityChangePreview: props are required")
	}

	return submitAndParse[ordermodels.EquityOrderChangePreview](ctx, c, orderCall{
		operation:     "EquityChangePreview",
		accountID:     props.AccountID(),
		clientOrderID: props.ClientOrderID(),
		endpoint:      c.urls.EquityChangePreview(),
		payload:       ordermodels.NewPreviewChangeEquityOrderPayload(props),
	})
}

func (c *OrdersClient) EquityChangePlace(ctx context.Context, props *ordermodels.EquityOrderChangeProps) (*ordermodels.EquityOrderChangePlace, error) {
	if props == nil {
		return nil, fmt.Errorf("EquityChangePlace: props are required")
	}

	return submitAndParse[ordermodels.EquityOrderChangePlace](ctx, c, orderCall{
		operation:     "EquityChangePlace",
		accountID:     props.AccountID(),
		clientOrderID: props.ClientOrderID(),
		endpoint:      c.urls.EquityChangePlace(),
		payload:       ordermodels.NewPlaceChangeEquityOrderPayload(props),
	})
}

// SubmitOptionOrder rejects option props without touching the network.
func (c *OrdersClient) SubmitOptionOrder(ctx context.Context, props ordermodels.OrderProps) error {
	if props == nil {
		return fmt.Errorf("SubmitOptionOrder: props are required")
	}

	log.WithContext(ctx).Warnf("SubmitOptionOrder: %s orders cannot be submitted", props.Kind())
	return ErrOptionOrdersUnsupported
}

func (c *OrdersClient) OptionOrderPreview(ctx context.Context, props *ordermodels.OptionOrderProps) error {
	return c.SubmitOptionOrder(ctx, props)
}

func (c *OrdersClient) OptionOrderPlace(ctx context.Context, props *ordermodels.OptionOrderProps) error {
	return c.SubmitOptionOrder(ctx, props)
}

func (c *OrdersClient) OptionChangePreview(ctx context.Context, props *ordermodels.OptionOrderChangeProps) error {
	return c.SubmitOptionOrder(ctx, props)
}

func (c *OrdersClient) OptionChangePlace(ctx context.Context, props *ordermodels.OptionOrderChangeProps) error {
	return c.SubmitOptionOrder(ctx, props)
}
