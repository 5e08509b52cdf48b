package ordermodels

import "fmt"

type OptionOrderAction string

const (
	OptionOrderActionBuyOpen   OptionOrderAction = "BUY_OPEN"
	OptionOrderActionSellOpen  OptionOrderAction = "SELL_OPEN"
	OptionOrderActionBuyClose  OptionOrderAction = "BUY_CLOSE"
	OptionOrderActionSellClose OptionOrderAction = "SELL_CLOSE"
)

func (a OptionOrderAction) Validate() error {
	switch a {
	case OptionOrderActionBuyOpen, OptionOrderActionSellOpen, OptionOrderActionBuyClose, OptionOrderActionSellClose:
		return nil
	default:
		return fmt.Errorf("invalid option order action: %s", a)
	}
}
