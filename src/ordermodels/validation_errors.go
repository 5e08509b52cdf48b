package ordermodels

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStopPriceRequired       = errors.New("stop price is required for STOP and STOP_LIMIT price types")
	ErrLimitPriceRequired      = errors.New("limit price is required for LIMIT and STOP_LIMIT price types")
	ErrReserveQuantityRequired = errors.New("reserve quantity is required for reserve orders")
	ErrAllOrNonePriceType      = errors.New("all or none is only allowed with LIMIT or STOP_LIMIT price types")
	ErrAllOrNoneQuantity       = fmt.Errorf("all or none requires a quantity of %d or more", AllOrNoneMinQuantity)
	ErrOrderTermPriceType      = errors.New("IMMEDIATE_OR_CANCEL and FILL_OR_KILL are only allowed with LIMIT or STOP_LIMIT price types")
	ErrMustBePositive          = errors.New("must be greater than 0")
	ErrSymbolRequired          = errors.New("symbol is required")
	ErrStopLimitPriceRequired  = errors.New("stop limit price is required for option orders")
	ErrInvalidExpirationDate   = errors.New("expiration is not a valid calendar date")
)

// ValidationError reports a single field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{
		Field: field,
		Err:   err,
	}
}

// ValidationErrors is returned by the order props constructors. It holds every
// rule that failed, so errors.Is and errors.As see each of them.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}

	return fmt.Sprintf("invalid order: %s", strings.Join(msgs, "; "))
}

func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		out = append(out, e)
	}

	return out
}

func (errs *ValidationErrors) add(field string, err error) {
	*errs = append(*errs, newValidationError(field, err))
}

func (errs ValidationErrors) orNil() error {
	if len(errs) == 0 {
		return nil
	}

	return errs
}
