package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

type OrderCsvRow struct {
	OrderID     int64   `csv:"order_id"`
	PlacedAt    string  `csv:"placed_at"`
	Status      string  `csv:"status"`
	Symbol      string  `csv:"symbol"`
	OrderAction string  `csv:"order_action"`
	Quantity    int     `csv:"quantity"`
	Filled      int     `csv:"filled_quantity"`
	PriceType   string  `csv:"price_type"`
	OrderTerm   string  `csv:"order_term"`
	LimitPrice  float64 `csv:"limit_price"`
	StopPrice   float64 `csv:"stop_price"`
	OrderValue  float64 `csv:"order_value"`
}

// NewOrderCsvRows flattens orders into one row per leg.
func NewOrderCsvRows(orders []ordermodels.OrderDTO) []*OrderCsvRow {
	var rows []*OrderCsvRow
	for _, o := range orders {
		placedAt := ""
		if o.OrderPlacedTime > 0 {
			placedAt = time.UnixMilli(o.OrderPlacedTime).UTC().Format(time.RFC3339)
		}

		for _, leg := range o.LegDetails {
			rows = append(rows, &OrderCsvRow{
				OrderID:     o.OrderID,
				PlacedAt:    placedAt,
				Status:      o.OrderStatus,
				Symbol:      leg.SymbolInfo.Symbol,
				OrderAction: leg.OrderAction,
				Quantity:    leg.OrderedQuantity,
				Filled:      leg.FilledQuantity,
				PriceType:   o.PriceType,
				OrderTerm:   o.OrderTerm,
				LimitPrice:  o.LimitPrice,
				StopPrice:   o.StopPrice,
				OrderValue:  o.OrderValue,
			})
		}
	}

	return rows
}

func ExportOrdersToCsv(out io.Writer, orders []ordermodels.OrderDTO) error {
	rows := NewOrderCsvRows(orders)

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(out))
	if err := gocsv.MarshalCSV(&rows, writer); err != nil {
		return fmt.Errorf("ExportOrdersToCsv: failed to write csv: %w", err)
	}

	return nil
}
