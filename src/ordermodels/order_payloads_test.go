package ordermodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPayloads(t *testing.T) {
	equity, err := NewEquityOrderProps(newEquityParams())
	require.NoError(t, err)

	change, err := NewEquityOrderChangeProps(EquityOrderChangeParams{
		AccountID:  123,
		Quantity:   100,
		OrderNum:   7,
		PriceType:  EquityPriceTypeLimit,
		LimitPrice: floatPtr(99.5),
	})
	require.NoError(t, err)

	t.Run("preview equity order", func(t *testing.T) {
		payload := NewPreviewEquityOrderPayload(equity)
		inner := payload["PreviewEquityOrder"].(map[string]interface{})
		assert.Len(t, inner, 1)
		assert.Equal(t, equity.PropMap(), inner["EquityOrderRequest"])
	})

	t.Run("place equity order", func(t *testing.T) {
		payload := NewPlaceEquityOrderPayload(equity)
		inner := payload["PlaceEquityOrder"].(map[string]interface{})
		assert.Len(t, inner, 1)
		assert.Equal(t, equity.PropMap(), inner["EquityOrderRequest"])
	})

	t.Run("preview change equity order", func(t *testing.T) {
		payload := NewPreviewChangeEquityOrderPayload(change)
		inner := payload["previewChangeEquityOrder"].(map[string]interface{})
		assert.Len(t, inner, 1)
		assert.Equal(t, change.PropMap(), inner["changeEquityOrderRequest"])
	})

	t.Run("place change equity order carries the namespace", func(t *testing.T) {
		payload := NewPlaceChangeEquityOrderPayload(change)
		inner := payload["placeChangeEquityOrder"].(map[string]interface{})
		assert.Equal(t, "http://order.etws.etrade.com", inner["-xmlns"])
		assert.Equal(t, change.PropMap(), inner["changeEquityOrderRequest"])
	})

	t.Run("cancel order json", func(t *testing.T) {
		data, err := json.Marshal(NewCancelOrderPayload(123, 456))
		require.NoError(t, err)
		assert.JSONEq(t, `{"cancelOrder":{"-xmlns":"http://order.etws.etrade.com","cancelOrderRequest":{"accountId":123,"orderNum":456}}}`, string(data))
	})
}
