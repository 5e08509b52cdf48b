package ordermodels

import "fmt"

// orderPropsBaseParams are the attributes shared by every order kind.
type orderPropsBaseParams struct {
	AccountID       int
	Quantity        int
	OrderTerm       OrderTerm
	StopPrice       *float64
	LimitPrice      *float64
	AllOrNone       bool
	ReserveOrder    bool
	ReserveQuantity *int
	PreviewID       *int64
}

type priceType interface {
	Validate() error
	String() string
}

type orderPropsBase struct {
	accountID       int
	quantity        int
	orderTerm       OrderTerm
	priceType       string
	stopPrice       *float64
	limitPrice      *float64
	allOrNone       bool
	reserveOrder    bool
	reserveQuantity *int
	clientOrderID   string
	previewID       *int64
}

// newOrderPropsBase checks every shared rule and appends each failure to errs.
// The returned value is only meaningful when errs is still empty.
func newOrderPropsBase(params orderPropsBaseParams, pt priceType, errs *ValidationErrors) (orderPropsBase, error) {
	if params.OrderTerm == "" {
		params.OrderTerm = OrderTermGoodForDay
	}

	if params.AccountID <= 0 {
		errs.add("accountId", ErrMustBePositive)
	}

	if params.Quantity <= 0 {
		errs.add("quantity", ErrMustBePositive)
	}

	if err := params.OrderTerm.Validate(); err != nil {
		errs.add("orderTerm", err)
	}

	if err := pt.Validate(); err != nil {
		errs.add("priceType", err)
	}

	if params.StopPrice != nil && *params.StopPrice <= 0 {
		errs.add("stopPrice", ErrMustBePositive)
	}

	if params.LimitPrice != nil && *params.LimitPrice <= 0 {
		errs.add("limitPrice", ErrMustBePositive)
	}

	if params.ReserveQuantity != nil && *params.ReserveQuantity <= 0 {
		errs.add("reserveQuantity", ErrMustBePositive)
	}

	req := requirementFor(pt.String())

	if req.stopPrice && params.StopPrice == nil {
		errs.add("stopPrice", ErrStopPriceRequired)
	}

	if req.limitPrice && params.LimitPrice == nil {
		errs.add("limitPrice", ErrLimitPriceRequired)
	}

	if params.ReserveOrder && params.ReserveQuantity == nil {
		errs.add("reserveQuantity", ErrReserveQuantityRequired)
	}

	if params.AllOrNone {
		if !req.limitStyle {
			errs.add("allOrNone", ErrAllOrNonePriceType)
		}

		if params.Quantity < AllOrNoneMinQuantity {
			errs.add("allOrNone", ErrAllOrNoneQuantity)
		}
	}

	if params.OrderTerm.requiresLimit() && !req.limitStyle {
		errs.add("orderTerm", ErrOrderTermPriceType)
	}

	if len(*errs) > 0 {
		return orderPropsBase{}, nil
	}

	clientOrderID, err := NewClientOrderID()
	if err != nil {
		return orderPropsBase{}, fmt.Errorf("newOrderPropsBase: %w", err)
	}

	return orderPropsBase{
		accountID:       params.AccountID,
		quantity:        params.Quantity,
		orderTerm:       params.OrderTerm,
		priceType:       pt.String(),
		stopPrice:       params.StopPrice,
		limitPrice:      params.LimitPrice,
		allOrNone:       params.AllOrNone,
		reserveOrder:    params.ReserveOrder,
		reserveQuantity: params.ReserveQuantity,
		clientOrderID:   clientOrderID,
		previewID:       params.PreviewID,
	}, nil
}

func (p *orderPropsBase) AccountID() int {
	return p.accountID
}

func (p *orderPropsBase) Quantity() int {
	return p.quantity
}

func (p *orderPropsBase) ClientOrderID() string {
	return p.clientOrderID
}

func (p *orderPropsBase) PreviewID() (int64, bool) {
	if p.previewID == nil {
		return 0, false
	}

	return *p.previewID, true
}

// SetPreviewID threads the id returned by a preview call into the matching
// place call.
func (p *orderPropsBase) SetPreviewID(id int64) {
	p.previewID = &id
}

func (p *orderPropsBase) propMap() map[string]interface{} {
	m := map[string]interface{}{
		"accountId":     p.accountID,
		"quantity":      p.quantity,
		"priceType":     p.priceType,
		"reserveOrder":  p.reserveOrder,
		"orderTerm":     string(p.orderTerm),
		"allOrNone":     p.allOrNone,
		"clientOrderId": p.clientOrderID,
	}

	if p.stopPrice != nil {
		m["stopPrice"] = *p.stopPrice
	}

	if p.limitPrice != nil {
		m["limitPrice"] = *p.limitPrice
	}

	if p.reserveQuantity != nil {
		m["reserveQuantity"] = *p.reserveQuantity
	}

	if p.previewID != nil {
		m["previewId"] = *p.previewID
	}

	return m
}
