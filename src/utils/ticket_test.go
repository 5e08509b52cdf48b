package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

func TestParseOrderTicket(t *testing.T) {
	t.Run("equity ticket", func(t *testing.T) {
		ticket, err := ParseOrderTicket([]byte(`
equity:
  quantity: 300
  symbol: aapl
  order_action: BUY
  price_type: LIMIT
  limit_price: 187.5
  all_or_none: true
`))
		require.NoError(t, err)
		require.NotNil(t, ticket.Equity)

		props, err := ticket.BuildProps(123)
		require.NoError(t, err)

		equity, ok := props.(*ordermodels.EquityOrderProps)
		require.True(t, ok)
		assert.Equal(t, 123, equity.AccountID())
		assert.Equal(t, "AAPL", equity.Symbol())
		assert.Equal(t, 187.5, equity.PropMap()["limitPrice"])
	})

	t.Run("ticket account wins over the default", func(t *testing.T) {
		ticket, err := ParseOrderTicket([]byte(`
equity_change:
  account_id: 456
  quantity: 10
  order_num: 7
`))
		require.NoError(t, err)

		props, err := ticket.BuildProps(123)
		require.NoError(t, err)
		assert.Equal(t, ordermodels.OrderKindEquityChange, props.Kind())
		assert.Equal(t, 456, props.PropMap()["accountId"])
	})

	t.Run("validation errors surface from BuildProps", func(t *testing.T) {
		ticket, err := ParseOrderTicket([]byte(`
equity:
  quantity: 10
  symbol: ibm
  order_action: SELL
  price_type: STOP
`))
		require.NoError(t, err)

		_, err = ticket.BuildProps(123)
		require.ErrorIs(t, err, ordermodels.ErrStopPriceRequired)
	})

	t.Run("exactly one section", func(t *testing.T) {
		_, err := ParseOrderTicket([]byte(`{}`))
		require.Error(t, err)

		_, err = ParseOrderTicket([]byte(`
equity:
  quantity: 1
option:
  quantity: 1
`))
		require.Error(t, err)
	})

	t.Run("load from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ticket.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
option:
  quantity: 1
  symbol: spy
  order_action: BUY_OPEN
  stop_limit_price: 2.5
  call_or_put: CALL
  strike_price: 450
  expiration_year: 2027
  expiration_month: 3
  expiration_day: 19
`), 0o600))

		ticket, err := LoadOrderTicket(path)
		require.NoError(t, err)

		props, err := ticket.BuildProps(123)
		require.NoError(t, err)
		assert.Equal(t, ordermodels.OrderKindOption, props.Kind())
	})
}
