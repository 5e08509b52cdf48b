package ordermodels

import "fmt"

type OrderTerm string

const (
	OrderTermGoodUntilCancel   OrderTerm = "GOOD_UNTIL_CANCEL"
	OrderTermGoodForDay        OrderTerm = "GOOD_FOR_DAY"
	OrderTermImmediateOrCancel OrderTerm = "IMMEDIATE_OR_CANCEL"
	OrderTermFillOrKill        OrderTerm = "FILL_OR_KILL"
)

func (t OrderTerm) Validate() error {
	switch t {
	case OrderTermGoodUntilCancel, OrderTermGoodForDay, OrderTermImmediateOrCancel, OrderTermFillOrKill:
		return nil
	default:
		return fmt.Errorf("invalid order term: %s", t)
	}
}

// requiresLimit reports whether the term may only be used with limit style price types.
func (t OrderTerm) requiresLimit() bool {
	return t == OrderTermImmediateOrCancel || t == OrderTermFillOrKill
}
