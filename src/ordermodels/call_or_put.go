package ordermodels

import "fmt"

type CallOrPut string

const (
	Call CallOrPut = "CALL"
	Put  CallOrPut = "PUT"
)

func (c CallOrPut) Validate() error {
	switch c {
	case Call, Put:
		return nil
	default:
		return fmt.Errorf("invalid option right: %s", c)
	}
}
