package ordermodels

import "fmt"

const MaxListOrdersCount = 25

type ListOrdersRequest struct {
	Count  int    `schema:"count,omitempty"`
	Marker string `schema:"marker,omitempty"`
}

func (r *ListOrdersRequest) Validate() error {
	if r.Count < 0 || r.Count > MaxListOrdersCount {
		return fmt.Errorf("count must be between 0 and %d: %d", MaxListOrdersCount, r.Count)
	}

	return nil
}
