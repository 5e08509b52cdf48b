package ordermodels

type OrderMessageDTO struct {
	MsgDesc string `json:"msgDesc"`
	MsgCode int    `json:"msgCode"`
}

type OrderMessageListDTO struct {
	Message OneOrMany[OrderMessageDTO] `json:"message"`
}

// EquityOrderResponse is the equityOrderResponse object shared by the equity
// preview, place and change calls.
type EquityOrderResponse struct {
	AccountID            int64               `json:"accountId"`
	AllOrNone            bool                `json:"allOrNone"`
	EstimatedCommission  float64             `json:"estimatedCommission"`
	EstimatedTotalAmount float64             `json:"estimatedTotalAmount"`
	MessageList          OrderMessageListDTO `json:"messageList"`
	OrderNum             int64               `json:"orderNum"`
	OrderTime            int64               `json:"orderTime"`
	PreviewTime          int64               `json:"previewTime"`
	PreviewID            int64               `json:"previewId"`
	Quantity             int                 `json:"quantity"`
	ReserveOrder         bool                `json:"reserveOrder"`
	ReserveQuantity      int                 `json:"reserveQuantity"`
	OrderTerm            string              `json:"orderTerm"`
	LimitPrice           float64             `json:"limitPrice"`
	StopPrice            float64             `json:"stopPrice"`
	SymbolDesc           string              `json:"symbolDesc"`
	Symbol               string              `json:"symbol"`
	OrderAction          string              `json:"orderAction"`
	PriceType            string              `json:"priceType"`
}

type EquityOrderPreview struct {
	EquityOrderResponse
}

type EquityOrderPlace struct {
	EquityOrderResponse
}

type EquityOrderChangePreview struct {
	EquityOrderResponse
}

type EquityOrderChangePlace struct {
	EquityOrderResponse
}
