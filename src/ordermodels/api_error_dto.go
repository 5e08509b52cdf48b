package ordermodels

// ApiErrorDTO is the {"Error": {...}} body the order api returns on failure.
// The code arrives as "code" on the v1 api and as "errorCode" on the older
// v0 order endpoints.
type ApiErrorDTO struct {
	Error struct {
		ErrorCode int    `json:"errorCode,omitempty"`
		Code      int    `json:"code,omitempty"`
		Message   string `json:"message"`
	} `json:"Error"`
}

func (d *ApiErrorDTO) BrokerageCode() int {
	if d.Error.ErrorCode != 0 {
		return d.Error.ErrorCode
	}

	return d.Error.Code
}
