package ordermodels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEquityChangeParams() EquityOrderChangeParams {
	return EquityOrderChangeParams{
		AccountID: 123,
		Quantity:  50,
		OrderNum:  42,
	}
}

func TestEquityOrderChangeProps(t *testing.T) {
	t.Run("mapping carries the order number but no symbol or action", func(t *testing.T) {
		props, err := NewEquityOrderChangeProps(newEquityChangeParams())
		require.NoError(t, err)

		m := props.PropMap()
		assert.Equal(t, 42, m["orderNum"])
		assert.Equal(t, 123, m["accountId"])
		assert.Equal(t, 50, m["quantity"])
		assert.Equal(t, "MARKET", m["priceType"])
		assert.Equal(t, "GOOD_FOR_DAY", m["orderTerm"])
		assert.Equal(t, props.ClientOrderID(), m["clientOrderId"])
		assert.Equal(t, OrderKindEquityChange, props.Kind())
		assert.Equal(t, 42, props.OrderNum())

		for _, key := range []string{"symbol", "orderAction", "marketSession", "routingDestination", "stopPrice", "limitPrice", "previewId"} {
			assert.NotContains(t, m, key)
		}
	})

	t.Run("order number must be positive", func(t *testing.T) {
		for _, orderNum := range []int{0, -7} {
			params := newEquityChangeParams()
			params.OrderNum = orderNum

			props, err := NewEquityOrderChangeProps(params)
			require.Nil(t, props)
			require.ErrorIs(t, err, ErrMustBePositive)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "orderNum", validationErr.Field)
		}
	})

	t.Run("stop without stop price", func(t *testing.T) {
		params := newEquityChangeParams()
		params.PriceType = EquityPriceTypeStop

		_, err := NewEquityOrderChangeProps(params)
		require.ErrorIs(t, err, ErrStopPriceRequired)

		params.StopPrice = floatPtr(95)
		props, err := NewEquityOrderChangeProps(params)
		require.NoError(t, err)
		assert.Equal(t, 95.0, props.PropMap()["stopPrice"])
	})

	t.Run("fill or kill needs a limit style price type", func(t *testing.T) {
		params := newEquityChangeParams()
		params.OrderTerm = OrderTermFillOrKill

		_, err := NewEquityOrderChangeProps(params)
		require.ErrorIs(t, err, ErrOrderTermPriceType)

		params.PriceType = EquityPriceTypeStopLimit
		params.StopPrice = floatPtr(99)
		params.LimitPrice = floatPtr(100)

		props, err := NewEquityOrderChangeProps(params)
		require.NoError(t, err)
		assert.Equal(t, "FILL_OR_KILL", props.PropMap()["orderTerm"])
	})

	t.Run("reserve and all or none rules still apply", func(t *testing.T) {
		params := newEquityChangeParams()
		params.ReserveOrder = true
		params.AllOrNone = true

		_, err := NewEquityOrderChangeProps(params)
		require.ErrorIs(t, err, ErrReserveQuantityRequired)
		require.ErrorIs(t, err, ErrAllOrNonePriceType)
		require.ErrorIs(t, err, ErrAllOrNoneQuantity)
	})

	t.Run("invalid order number is reported with the base rules", func(t *testing.T) {
		params := newEquityChangeParams()
		params.OrderNum = 0
		params.PriceType = EquityPriceTypeLimit

		_, err := NewEquityOrderChangeProps(params)

		var errs ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Len(t, errs, 2)
		require.ErrorIs(t, err, ErrLimitPriceRequired)
	})

	t.Run("preview id is threaded", func(t *testing.T) {
		props, err := NewEquityOrderChangeProps(newEquityChangeParams())
		require.NoError(t, err)

		props.SetPreviewID(1001)
		assert.Equal(t, int64(1001), props.PropMap()["previewId"])
	})
}
