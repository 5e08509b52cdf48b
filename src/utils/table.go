package utils

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

var printer = message.NewPrinter(language.English)

func FormatPrice(price float64) string {
	return fmt.Sprintf("$%s", printer.Sprintf("%.2f", price))
}

func OrdersTable(orders []ordermodels.OrderDTO) string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)
	table.SetHeader([]string{"Order", "Status", "Symbol", "Action", "Qty", "Type", "Limit", "Stop", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, o := range orders {
		symbol, action, qty := "", "", 0
		if len(o.LegDetails) > 0 {
			leg := o.LegDetails[0]
			symbol, action, qty = leg.SymbolInfo.Symbol, leg.OrderAction, leg.OrderedQuantity
		}

		table.Append([]string{
			fmt.Sprintf("%d", o.OrderID),
			o.OrderStatus,
			symbol,
			action,
			printer.Sprintf("%d", qty),
			o.PriceType,
			FormatPrice(o.LimitPrice),
			FormatPrice(o.StopPrice),
			FormatPrice(o.OrderValue),
		})
	}

	table.Render()
	return display.String()
}

func EquityOrderResponseTable(title string, resp ordermodels.EquityOrderResponse) string {
	display := &strings.Builder{}
	display.WriteString(title + ":\n")

	table := tablewriter.NewWriter(display)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Account", fmt.Sprintf("%d", resp.AccountID)})
	table.Append([]string{"Symbol", resp.Symbol})
	table.Append([]string{"Action", resp.OrderAction})
	table.Append([]string{"Quantity", printer.Sprintf("%d", resp.Quantity)})
	table.Append([]string{"Price Type", resp.PriceType})
	table.Append([]string{"Order Term", resp.OrderTerm})

	if resp.PreviewID != 0 {
		table.Append([]string{"Preview ID", fmt.Sprintf("%d", resp.PreviewID)})
	}

	if resp.OrderNum != 0 {
		table.Append([]string{"Order Number", fmt.Sprintf("%d", resp.OrderNum)})
	}

	table.Append([]string{"Est. Commission", FormatPrice(resp.EstimatedCommission)})
	table.Append([]string{"Est. Total", FormatPrice(resp.EstimatedTotalAmount)})

	for _, msg := range resp.MessageList.Message {
		table.Append([]string{fmt.Sprintf("Message %d", msg.MsgCode), msg.MsgDesc})
	}

	table.Render()
	return display.String()
}
