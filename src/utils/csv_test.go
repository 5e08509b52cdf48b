package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

func newTestOrders() []ordermodels.OrderDTO {
	return []ordermodels.OrderDTO{
		{
			OrderID:         1,
			OrderPlacedTime: 1700000000000,
			OrderStatus:     "OPEN",
			OrderTerm:       "GOOD_FOR_DAY",
			PriceType:       "LIMIT",
			LimitPrice:      1234.5,
			OrderValue:      123450,
			LegDetails: ordermodels.OneOrMany[ordermodels.OrderLegDetailDTO]{
				{
					LegNumber:       1,
					SymbolInfo:      ordermodels.OrderLegSymbolInfoDTO{Symbol: "AAPL"},
					OrderAction:     "BUY",
					OrderedQuantity: 100,
				},
			},
		},
	}
}

func TestExportOrdersToCsv(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportOrdersToCsv(&buf, newTestOrders()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "order_id,placed_at,status,symbol,order_action,quantity,filled_quantity,price_type,order_term,limit_price,stop_price,order_value", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,2023-11-14T22:13:20Z,OPEN,AAPL,BUY,100,0,LIMIT"))
}

func TestOrdersTable(t *testing.T) {
	out := OrdersTable(newTestOrders())

	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "$1,234.50")
	assert.Contains(t, out, "$123,450.00")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$1,211.95", FormatPrice(1211.95))
}
