package ordermodels

import "fmt"

type OptionPriceType string

const (
	OptionPriceTypeMarket    OptionPriceType = "MARKET"
	OptionPriceTypeLimit     OptionPriceType = "LIMIT"
	OptionPriceTypeStop      OptionPriceType = "STOP"
	OptionPriceTypeStopLimit OptionPriceType = "STOP_LIMIT"
)

func (p OptionPriceType) Validate() error {
	switch p {
	case OptionPriceTypeMarket, OptionPriceTypeLimit, OptionPriceTypeStop, OptionPriceTypeStopLimit:
		return nil
	default:
		return fmt.Errorf("invalid option price type: %s", p)
	}
}

func (p OptionPriceType) String() string {
	return string(p)
}
