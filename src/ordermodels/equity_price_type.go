package ordermodels

import "fmt"

type EquityPriceType string

const (
	EquityPriceTypeMarket        EquityPriceType = "MARKET"
	EquityPriceTypeLimit         EquityPriceType = "LIMIT"
	EquityPriceTypeStop          EquityPriceType = "STOP"
	EquityPriceTypeStopLimit     EquityPriceType = "STOP_LIMIT"
	EquityPriceTypeMarketOnClose EquityPriceType = "MARKET_ON_CLOSE"
)

func (p EquityPriceType) Validate() error {
	switch p {
	case EquityPriceTypeMarket, EquityPriceTypeLimit, EquityPriceTypeStop, EquityPriceTypeStopLimit, EquityPriceTypeMarketOnClose:
		return nil
	default:
		return fmt.Errorf("invalid equity price type: %s", p)
	}
}

func (p EquityPriceType) String() string {
	return string(p)
}
