package ordermodels

import (
	"encoding/json"
	"strings"
)

type EquityOrderParams struct {
	AccountID          int                `yaml:"account_id"`
	Quantity           int                `yaml:"quantity"`
	Symbol             string             `yaml:"symbol"`
	OrderAction        EquityOrderAction  `yaml:"order_action"`
	AllOrNone          bool               `yaml:"all_or_none"`
	OrderTerm          OrderTerm          `yaml:"order_term"`
	MarketSession      MarketSession      `yaml:"market_session"`
	PriceType          EquityPriceType    `yaml:"price_type"`
	RoutingDestination RoutingDestination `yaml:"routing_destination"`
	StopPrice          *float64           `yaml:"stop_price"`
	LimitPrice         *float64           `yaml:"limit_price"`
	ReserveOrder       bool               `yaml:"reserve_order"`
	ReserveQuantity    *int               `yaml:"reserve_quantity"`
	PreviewID          *int64             `yaml:"preview_id"`
}

// EquityOrderProps are the validated attributes of a new equity order.
type EquityOrderProps struct {
	orderPropsBase
	symbol             string
	orderAction        EquityOrderAction
	marketSession      MarketSession
	routingDestination RoutingDestination
}

func NewEquityOrderProps(params EquityOrderParams) (*EquityOrderProps, error) {
	if params.MarketSession == "" {
		params.MarketSession = MarketSessionRegular
	}

	if params.PriceType == "" {
		params.PriceType = EquityPriceTypeMarket
	}

	if params.RoutingDestination == "" {
		params.RoutingDestination = RoutingDestinationAuto
	}

	var errs ValidationErrors

	symbol := strings.ToUpper(strings.TrimSpace(params.Symbol))
	if symbol == "" {
		errs.add("symbol", ErrSymbolRequired)
	}

	if err := params.OrderAction.Validate(); err != nil {
		errs.add("orderAction", err)
	}

	if err := params.MarketSession.Validate(); err != nil {
		errs.add("marketSession", err)
	}

	if err := params.RoutingDestination.Validate(); err != nil {
		errs.add("routingDestination", err)
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

	return &EquityOrderProps{
		orderPropsBase:     base,
		symbol:             symbol,
		orderAction:        params.OrderAction,
		marketSession:      params.MarketSession,
		routingDestination: params.RoutingDestination,
	}, nil
}

func (p *EquityOrderProps) Kind() OrderKind {
	return OrderKindEquity
}

func (p *EquityOrderProps) Symbol() string {
	return p.symbol
}

func (p *EquityOrderProps) OrderAction() EquityOrderAction {
	return p.orderAction
}

func (p *EquityOrderProps) PropMap() map[string]interface{} {
	m := p.propMap()
	m["symbol"] = p.symbol
	m["orderAction"] = string(p.orderAction)
	m["marketSession"] = string(p.marketSession)
	m["routingDestination"] = string(p.routingDestination)

	return m
}

func (p *EquityOrderProps) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.PropMap())
}
