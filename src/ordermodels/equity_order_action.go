package ordermodels

import "fmt"

type EquityOrderAction string

const (
	EquityOrderActionBuy        EquityOrderAction = "BUY"
	EquityOrderActionSell       EquityOrderAction = "SELL"
	EquityOrderActionBuyToCover EquityOrderAction = "BUY_TO_COVER"
	EquityOrderActionSellShort  EquityOrderAction = "SELL_SHORT"
)

func (a EquityOrderAction) Validate() error {
	switch a {
	case EquityOrderActionBuy, EquityOrderActionSell, EquityOrderActionBuyToCover, EquityOrderActionSellShort:
		return nil
	default:
		return fmt.Errorf("invalid equity order action: %s", a)
	}
}
