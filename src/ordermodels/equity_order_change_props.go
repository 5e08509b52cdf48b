package ordermodels

import "encoding/json"

type EquityOrderChangeParams struct {
	AccountID       int             `yaml:"account_id"`
	Quantity        int             `yaml:"quantity"`
	OrderNum        int             `yaml:"order_num"`
	AllOrNone       bool            `yaml:"all_or_none"`
	OrderTerm       OrderTerm       `yaml:"order_term"`
	PriceType       EquityPriceType `yaml:"price_type"`
	StopPrice       *float64        `yaml:"stop_price"`
	LimitPrice      *float64        `yaml:"limit_price"`
	ReserveOrder    bool            `yaml:"reserve_order"`
	ReserveQuantity *int            `yaml:"reserve_quantity"`
	PreviewID       *int64          `yaml:"preview_id"`
}

// EquityOrderChangeProps amend an existing equity order identified by its
// brokerage order number.
type EquityOrderChangeProps struct {
	orderPropsBase
	orderNum int
}

func NewEquityOrderChangeProps(params EquityOrderChangeParams) (*EquityOrderChangeProps, error) {
	if params.PriceType == "" {
		params.PriceType = EquityPriceTypeMarket
	}

	var errs ValidationErrors

	if params.OrderNum <= 0 {
		errs.add("orderNum", ErrMustBePositive)
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

	return &EquityOrderChangeProps{
		orderPropsBase: base,
		orderNum:       params.OrderNum,
	}, nil
}

func (p *EquityOrderChangeProps) Kind() OrderKind {
	return OrderKindEquityChange
}

func (p *EquityOrderChangeProps) OrderNum() int {
	return p.orderNum
}

func (p *EquityOrderChangeProps) PropMap() map[string]interface{} {
	m := p.propMap()
	m["orderNum"] = p.orderNum

	return m
}

func (p *EquityOrderChangeProps) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.PropMap())
}
