package orderservices

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

type RawResponse struct {
	StatusCode int
	Body       []byte
}

// Transport sends one request and returns whatever came back. It does not
// retry.
type Transport interface {
	Submit(ctx context.Context, endpoint Endpoint, payload interface{}, creds Credentials) (*RawResponse, error)
}

type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport() *HTTPTransport {
	return NewHTTPTransportWithClient(&http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{
		client: client,
	}
}

func (t *HTTPTransport) Submit(ctx context.Context, endpoint Endpoint, payload interface{}, creds Credentials) (*RawResponse, error) {
	tracer := otel.Tracer("HTTPTransport")
	ctx, span := tracer.Start(ctx, "HTTPTransport.Submit")
	defer span.End()

	span.SetAttributes(attribute.String("http.method", endpoint.Method), attribute.String("http.url", endpoint.URL))

	logger := log.WithContext(ctx)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("HTTPTransport.Submit: failed to encode payload: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, endpoint.URL, body)
	if err != nil {
		return nil, fmt.Errorf("HTTPTransport.Submit: failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	client := t.client
	if creds != nil {
		client = creds.Client(ctx, t.client)
	}

	logger.Debugf("HTTPTransport.Submit: %s", endpoint)

	res, err := client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, ordermodels.NewTransportError(endpoint.URL, err)
	}

	defer res.Body.Close()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		span.RecordError(err)
		return nil, ordermodels.NewTransportError(endpoint.URL, fmt.Errorf("failed to read response body: %w", err))
	}

	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))

	return &RawResponse{
		StatusCode: res.StatusCode,
		Body:       respBody,
	}, nil
}
