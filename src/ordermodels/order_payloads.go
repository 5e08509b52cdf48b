package ordermodels

const OrderXmlns = "http://order.etws.etrade.com"

func NewPreviewEquityOrderPayload(props *EquityOrderProps) map[string]interface{} {
	return map[string]interface{}{
		"PreviewEquityOrder": map[string]interface{}{
			"EquityOrderRequest": props.PropMap(),
		},
	}
}

func NewPlaceEquityOrderPayload(props *EquityOrderProps) map[string]interface{} {
	return map[string]interface{}{
		"PlaceEquityOrder": map[string]interface{}{
			"EquityOrderRequest": props.PropMap(),
		},
	}
}

func NewPreviewChangeEquityOrderPayload(props *EquityOrderChangeProps) map[string]interface{} {
	return map[string]interface{}{
		"previewChangeEquityOrder": map[string]interface{}{
			"changeEquityOrderRequest": props.PropMap(),
		},
	}
}

func NewPlaceChangeEquityOrderPayload(props *EquityOrderChangeProps) map[string]interface{} {
	return map[string]interface{}{
		"placeChangeEquityOrder": map[string]interface{}{
			"-xmlns":                   OrderXmlns,
			"changeEquityOrderRequest": props.PropMap(),
		},
	}
}

func NewCancelOrderPayload(accountID int, orderNum int) map[string]interface{} {
	return map[string]interface{}{
		"cancelOrder": map[string]interface{}{
			"-xmlns": OrderXmlns,
			"cancelOrderRequest": map[string]interface{}{
				"accountId": accountID,
				"orderNum":  orderNum,
			},
		},
	}
}
