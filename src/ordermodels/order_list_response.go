package ordermodels

type OrderLegSymbolInfoDTO struct {
	Symbol          string  `json:"symbol"`
	CallOrPut       string  `json:"callOrPut,omitempty"`
	StrikePrice     float64 `json:"strikePrice,omitempty"`
	ExpirationYear  int     `json:"expirationYear,omitempty"`
	ExpirationMonth int     `json:"expirationMonth,omitempty"`
	ExpirationDay   int     `json:"expirationDay,omitempty"`
}

type OrderLegDetailDTO struct {
	LegNumber           int                   `json:"legNumber"`
	SymbolInfo          OrderLegSymbolInfoDTO `json:"symbolInfo"`
	SymbolDescription   string                `json:"symbolDescription"`
	OrderAction         string                `json:"orderAction"`
	OrderedQuantity     int                   `json:"orderedQuantity"`
	FilledQuantity      int                   `json:"filledQuantity"`
	ExecutedPrice       float64               `json:"executedPrice"`
	EstimatedCommission float64               `json:"estimatedCommission"`
}

type OrderDTO struct {
	OrderID           int64                        `json:"orderId"`
	OrderPlacedTime   int64                        `json:"orderPlacedTime"`
	OrderExecutedTime int64                        `json:"orderExecutedTime"`
	OrderValue        float64                      `json:"orderValue"`
	OrderStatus       string                       `json:"orderStatus"`
	OrderType         string                       `json:"orderType"`
	OrderTerm         string                       `json:"orderTerm"`
	PriceType         string                       `json:"priceType"`
	LimitPrice        float64                      `json:"limitPrice"`
	StopPrice         float64                      `json:"stopPrice"`
	AllOrNone         bool                         `json:"allOrNone"`
	LegDetails        OneOrMany[OrderLegDetailDTO] `json:"legDetails"`
}

type OrderDetailDTO struct {
	Order OrderDTO `json:"order"`
}

// OrderListResponse is the body of GetOrderListResponse.orderListResponse.
type OrderListResponse struct {
	Count        int                       `json:"count"`
	Marker       string                    `json:"marker"`
	OrderDetails OneOrMany[OrderDetailDTO] `json:"orderDetails"`
}

func (r *OrderListResponse) Orders() []OrderDTO {
	orders := make([]OrderDTO, 0, len(r.OrderDetails))
	for _, d := range r.OrderDetails {
		orders = append(orders, d.Order)
	}

	return orders
}
