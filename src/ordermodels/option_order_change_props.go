package ordermodels

import "encoding/json"

type OptionOrderChangeParams struct {
	AccountID       int             `yaml:"account_id"`
	Quantity        int             `yaml:"quantity"`
	OrderNum        int             `yaml:"order_num"`
	StopLimitPrice  *float64        `yaml:"stop_limit_price"`
	OrderTerm       OrderTerm       `yaml:"order_term"`
	PriceType       OptionPriceType `yaml:"price_type"`
	StopPrice       *float64        `yaml:"stop_price"`
	LimitPrice      *float64        `yaml:"limit_price"`
	AllOrNone       bool            `yaml:"all_or_none"`
	ReserveOrder    bool            `yaml:"reserve_order"`
	ReserveQuantity *int            `yaml:"reserve_quantity"`
	PreviewID       *int64          `yaml:"preview_id"`
}

type OptionOrderChangeProps struct {
	orderPropsBase
	orderNum       int
	stopLimitPrice *float64
}

func NewOptionOrderChangeProps(params OptionOrderChangeParams) (*OptionOrderChangeProps, error) {
	if params.PriceType == "" {
		params.PriceType = OptionPriceTypeMarket
	}

	var errs ValidationErrors

	if params.OrderNum <= 0 {
		errs.add("orderNum", ErrMustBePositive)
	}

	if params.StopLimitPrice != nil && *params.StopLimitPrice <= 0 {
		errs.add("stopLimitPrice", ErrMustBePositive)
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

	return &OptionOrderChangeProps{
		orderPropsBase: base,
		orderNum:       params.OrderNum,
		stopLimitPrice: params.StopLimitPrice,
	}, nil
}

func (p *OptionOrderChangeProps) Kind() OrderKind {
	return OrderKindOptionChange
}

func (p *OptionOrderChangeProps) OrderNum() int {
	return p.orderNum
}

func (p *OptionOrderChangeProps) PropMap() map[string]interface{} {
	m := p.propMap()
	m["orderNum"] = p.orderNum

	if p.stopLimitPrice != nil {
		m["stopLimitPrice"] = *p.stopLimitPrice
	}

	return m
}

func (p *OptionOrderChangeProps) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.PropMap())
}
