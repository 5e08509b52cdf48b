package ordermodels

// AllOrNoneMinQuantity is the smallest quantity accepted on an all or none order.
const AllOrNoneMinQuantity = 300

type priceTypeRequirement struct {
	stopPrice  bool
	limitPrice bool
	// limitStyle price types are the only ones allowed with all or none and
	// with IMMEDIATE_OR_CANCEL / FILL_OR_KILL terms.
	limitStyle bool
}

// keyed by wire value, shared by the equity and option price types
var priceTypeRequirements = map[string]priceTypeRequirement{
	"MARKET":          {},
	"LIMIT":           {limitPrice: true, limitStyle: true},
	"STOP":            {stopPrice: true},
	"STOP_LIMIT":      {stopPrice: true, limitPrice: true, limitStyle: true},
	"MARKET_ON_CLOSE": {},
}

func requirementFor(priceType string) priceTypeRequirement {
	return priceTypeRequirements[priceType]
}
