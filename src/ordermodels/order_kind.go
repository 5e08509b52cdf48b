package ordermodels

type OrderKind string

const (
	OrderKindEquity       OrderKind = "equity"
	OrderKindEquityChange OrderKind = "equity_change"
	OrderKindOption       OrderKind = "option"
	OrderKindOptionChange OrderKind = "option_change"
)

// OrderProps is implemented by every validated order attribute bundle.
type OrderProps interface {
	Kind() OrderKind
	ClientOrderID() string
	PropMap() map[string]interface{}
}
