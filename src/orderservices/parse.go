package orderservices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

// ParseEtradeResponse maps a raw order api response into T. Responses are
// wrapped twice, e.g. {"PlaceEquityOrderResponse": {"equityOrderResponse": {...}}}.
// Failures reported by the api come back as *ordermodels.ApiError.
func ParseEtradeResponse[T any](raw *RawResponse) (*T, error) {
	if raw == nil {
		return nil, fmt.Errorf("ParseEtradeResponse(): nil response")
	}

	if apiErr := parseApiError(raw); apiErr != nil {
		return nil, apiErr
	}

	header := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw.Body, &header); err != nil {
		return nil, fmt.Errorf("ParseEtradeResponse(): failed to unmarshal header in response: %w", err)
	}

	if len(header) != 1 {
		return nil, fmt.Errorf("ParseEtradeResponse(): expected 1 key in header, got %v", len(header))
	}

	var v json.RawMessage
	for _, value := range header {
		v = value
	}

	data := make(map[string]json.RawMessage)
	if err := json.Unmarshal(v, &data); err != nil {
		return nil, fmt.Errorf("ParseEtradeResponse(): failed to unmarshal data in response: %w", err)
	}

	if len(data) != 1 {
		return nil, fmt.Errorf("ParseEtradeResponse(): expected 1 key in data, got %v", len(data))
	}

	for _, value := range data {
		v = value
	}

	var dto T
	if err := json.Unmarshal(v, &dto); err != nil {
		return nil, fmt.Errorf("ParseEtradeResponse(): failed to unmarshal dto in response: %w", err)
	}

	return &dto, nil
}

func parseApiError(raw *RawResponse) *ordermodels.ApiError {
	var dto ordermodels.ApiErrorDTO
	decodeErr := json.Unmarshal(raw.Body, &dto)
	hasErrorBody := decodeErr == nil && (dto.Error.Message != "" || dto.BrokerageCode() != 0)

	if raw.StatusCode >= http.StatusOK && raw.StatusCode < http.StatusMultipleChoices && !hasErrorBody {
		return nil
	}

	if hasErrorBody {
		return ordermodels.NewApiError(raw.StatusCode, dto.BrokerageCode(), dto.Error.Message)
	}

	msg := strings.TrimSpace(string(raw.Body))
	if msg == "" {
		msg = http.StatusText(raw.StatusCode)
	}

	return ordermodels.NewApiError(raw.StatusCode, 0, msg)
}
