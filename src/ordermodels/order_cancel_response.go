package ordermodels

// OrderCancelResponse is the body of cancelOrderResponse.cancelResponse.
type OrderCancelResponse struct {
	AccountID     int64  `json:"accountId"`
	OrderNum      int64  `json:"orderNum"`
	CancelTime    int64  `json:"cancelTime"`
	ResultMessage string `json:"resultMessage"`
}
