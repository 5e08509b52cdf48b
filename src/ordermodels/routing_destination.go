package ordermodels

import "fmt"

type RoutingDestination string

const (
	RoutingDestinationAuto RoutingDestination = "AUTO"
	RoutingDestinationArca RoutingDestination = "ARCA"
	RoutingDestinationNsdq RoutingDestination = "NSDQ"
	RoutingDestinationNyse RoutingDestination = "NYSE"
)

func (d RoutingDestination) Validate() error {
	switch d {
	case RoutingDestinationAuto, RoutingDestinationArca, RoutingDestinationNsdq, RoutingDestinationNyse:
		return nil
	default:
		return fmt.Errorf("invalid routing destination: %s", d)
	}
}
