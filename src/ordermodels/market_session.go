package ordermodels

import "fmt"

type MarketSession string

const (
	MarketSessionRegular  MarketSession = "REGULAR"
	MarketSessionExtended MarketSession = "EXTENDED"
)

func (s MarketSession) Validate() error {
	switch s {
	case MarketSessionRegular, MarketSessionExtended:
		return nil
	default:
		return fmt.Errorf("invalid market session: %s", s)
	}
}
