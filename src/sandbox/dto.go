package sandbox

type equityOrderRequestDTO struct {
	AccountID          int      `json:"accountId"`
	Quantity           int      `json:"quantity"`
	Symbol             string   `json:"symbol"`
	OrderAction        string   `json:"orderAction"`
	PriceType          string   `json:"priceType"`
	OrderTerm          string   `json:"orderTerm"`
	MarketSession      string   `json:"marketSession"`
	RoutingDestination string   `json:"routingDestination"`
	StopPrice          *float64 `json:"stopPrice"`
	LimitPrice         *float64 `json:"limitPrice"`
	AllOrNone          bool     `json:"allOrNone"`
	ReserveOrder       bool     `json:"reserveOrder"`
	ReserveQuantity    *int     `json:"reserveQuantity"`
	ClientOrderID      string   `json:"clientOrderId"`
	PreviewID          *int64   `json:"previewId"`
	OrderNum           int64    `json:"orderNum"`
}

type previewEquityOrderDTO struct {
	PreviewEquityOrder struct {
		EquityOrderRequest *equityOrderRequestDTO `json:"EquityOrderRequest"`
	} `json:"PreviewEquityOrder"`
}

type placeEquityOrderDTO struct {
	PlaceEquityOrder struct {
		EquityOrderRequest *equityOrderRequestDTO `json:"EquityOrderRequest"`
	} `json:"PlaceEquityOrder"`
}

type previewChangeEquityOrderDTO struct {
	PreviewChangeEquityOrder struct {
		ChangeEquityOrderRequest *equityOrderRequestDTO `json:"changeEquityOrderRequest"`
	} `json:"previewChangeEquityOrder"`
}

type placeChangeEquityOrderDTO struct {
	PlaceChangeEquityOrder struct {
		Xmlns                    string                 `json:"-xmlns"`
		ChangeEquityOrderRequest *equityOrderRequestDTO `json:"changeEquityOrderRequest"`
	} `json:"placeChangeEquityOrder"`
}

type cancelOrderDTO struct {
	CancelOrder struct {
		Xmlns              string `json:"-xmlns"`
		CancelOrderRequest *struct {
			AccountID int64 `json:"accountId"`
			OrderNum  int64 `json:"orderNum"`
		} `json:"cancelOrderRequest"`
	} `json:"cancelOrder"`
}
