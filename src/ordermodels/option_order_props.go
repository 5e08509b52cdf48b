package ordermodels

import (
	"encoding/json"
	"strings"
	"time"
)

type OptionOrderParams struct {
	AccountID       int               `yaml:"account_id"`
	Quantity        int               `yaml:"quantity"`
	Symbol          string            `yaml:"symbol"`
	OrderAction     OptionOrderAction `yaml:"order_action"`
	StopLimitPrice  float64           `yaml:"stop_limit_price"`
	CallOrPut       CallOrPut         `yaml:"call_or_put"`
	StrikePrice     float64           `yaml:"strike_price"`
	ExpirationYear  int               `yaml:"expiration_year"`
	ExpirationMonth int               `yaml:"expiration_month"`
	ExpirationDay   int               `yaml:"expiration_day"`
	MarketSession   MarketSession     `yaml:"market_session"`
	OrderTerm       OrderTerm         `yaml:"order_term"`
	PriceType       OptionPriceType   `yaml:"price_type"`
	StopPrice       *float64          `yaml:"stop_price"`
	LimitPrice      *float64          `yaml:"limit_price"`
	AllOrNone       bool              `yaml:"all_or_none"`
	ReserveOrder    bool              `yaml:"reserve_order"`
	ReserveQuantity *int              `yaml:"reserve_quantity"`
	PreviewID       *int64            `yaml:"preview_id"`
}

type OptionSymbolInfo struct {
	Symbol          string
	CallOrPut       CallOrPut
	StrikePrice     float64
	ExpirationYear  int
	ExpirationMonth int
	ExpirationDay   int
}

func (s OptionSymbolInfo) Expiration() time.Time {
	return time.Date(s.ExpirationYear, time.Month(s.ExpirationMonth), s.ExpirationDay, 0, 0, 0, 0, time.UTC)
}

func (s OptionSymbolInfo) propMap() map[string]interface{} {
	return map[string]interface{}{
		"symbol":          s.Symbol,
		"callOrPut":       string(s.CallOrPut),
		"strikePrice":     s.StrikePrice,
		"expirationYear":  s.ExpirationYear,
		"expirationMonth": s.ExpirationMonth,
		"expirationDay":   s.ExpirationDay,
	}
}

// OptionOrderProps are the validated attributes of a new single leg option
// order. Options carry one combined stop limit price next to the shared fields.
type OptionOrderProps struct {
	orderPropsBase
	symbolInfo     OptionSymbolInfo
	orderAction    OptionOrderAction
	marketSession  MarketSession
	stopLimitPrice float64
}

func NewOptionOrderProps(params OptionOrderParams) (*OptionOrderProps, error) {
	if params.MarketSession == "" {
		params.MarketSession = MarketSessionRegular
	}

	if params.PriceType == "" {
		params.PriceType = OptionPriceTypeMarket
	}

	var errs ValidationErrors

	symbol := strings.ToUpper(strings.TrimSpace(params.Symbol))
	if symbol == "" {
		errs.add("symbol", ErrSymbolRequired)
	}

	if err := params.OrderAction.Validate(); err != nil {
		errs.add("orderAction", err)
	}

	if err := params.CallOrPut.Validate(); err != nil {
		errs.add("callOrPut", err)
	}

	if err := params.MarketSession.Validate(); err != nil {
		errs.add("marketSession", err)
	}

	if params.StrikePrice <= 0 {
		errs.add("strikePrice", ErrMustBePositive)
	}

	if params.StopLimitPrice <= 0 {
		errs.add("stopLimitPrice", ErrStopLimitPriceRequired)
	}

	if !isCalendarDate(params.ExpirationYear, params.ExpirationMonth, params.ExpirationDay) {
		errs.add("expiration", ErrInvalidExpirationDate)
	}

	base, err := newOrderPropsBase(orderPropsBaseParams{
		AccountID:       params.AccountID,
		Quantity:        params.Quantity,
		OrderTerm:       params.OrderTerm,
		StopPrice:       params.StopPrice,
		LimitPrice:      params.LimitPrice,
		AllOrNone:       params.AllOrNone,
		ReserveOrder:    params.ReserveOrder,
		ReserveQuantity: params.ReserveQuantity,
		PreviewID:       params.PreviewID,
	}, params.PriceType, &errs)
	if err != nil {
		return nil, err
	}

	if err := errs.orNil(); err != nil {
		return nil, err
	}

	return &OptionOrderProps{
		orderPropsBase: base,
		symbolInfo: OptionSymbolInfo{
			Symbol:          symbol,
			CallOrPut:       params.CallOrPut,
			StrikePrice:     params.StrikePrice,
			ExpirationYear:  params.ExpirationYear,
			ExpirationMonth: params.ExpirationMonth,
			ExpirationDay:   params.ExpirationDay,
		},
		orderAction:    params.OrderAction,
		marketSession:  params.MarketSession,
		stopLimitPrice: params.StopLimitPrice,
	}, nil
}

func (p *OptionOrderProps) Kind() OrderKind {
	return OrderKindOption
}

func (p *OptionOrderProps) SymbolInfo() OptionSymbolInfo {
	return p.symbolInfo
}

func (p *OptionOrderProps) PropMap() map[string]interface{} {
	m := p.propMap()
	m["orderAction"] = string(p.orderAction)
	m["marketSession"] = string(p.marketSession)
	m["stopLimitPrice"] = p.stopLimitPrice
	m["symbolInfo"] = p.symbolInfo.propMap()

	return m
}

func (p *OptionOrderProps) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.PropMap())
}

func isCalendarDate(year, month, day int) bool {
	if year <= 0 || month < 1 || month > 12 || day < 1 {
		return false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
