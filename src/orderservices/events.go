package orderservices

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

const (
	OrderAcceptedTopic = "orders:accepted"
	OrderRejectedTopic = "orders:rejected"
	OrderFailedTopic   = "orders:failed"
)

type OrderEvent struct {
	Operation     string
	AccountID     int
	ClientOrderID string
	Err           error
}

func NewOrderEventBus() EventBus.Bus {
	return EventBus.New()
}

// SubscribeOrderEvents registers fn for one of the order topics. fn must have
// the signature func(OrderEvent).
func SubscribeOrderEvents(bus EventBus.Bus, topic string, fn func(OrderEvent)) error {
	if err := bus.Subscribe(topic, fn); err != nil {
		return err
	}

	log.Debugf("Subscribed to topic %s", topic)
	return nil
}
