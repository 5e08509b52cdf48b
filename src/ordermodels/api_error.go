package ordermodels

import "fmt"

// ApiError is a business level failure returned by the brokerage, e.g. an
// invalid symbol or insufficient funds.
type ApiError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *ApiError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("etrade api error %d (http %d): %s", e.Code, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("etrade api error (http %d): %s", e.StatusCode, e.Message)
}

func NewApiError(statusCode int, code int, message string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}
