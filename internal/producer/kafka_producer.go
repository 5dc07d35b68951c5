package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"

	"github.com/segmentio/kafka-go"
)

// OrderEventsProducer publishes order lifecycle events for downstream
// consumers (email confirmations, fulfilment).
type OrderEventsProducer struct {
	writer *kafka.Writer
}

func NewOrderEventsProducer(brokers []string, topic string) *OrderEventsProducer {
	return &OrderEventsProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (p *OrderEventsProducer) publish(ctx context.Context, key string, msg envelope) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *OrderEventsProducer) PublishOrderCreated(ctx context.Context, ev service.OrderCreatedEvent) error {
	return p.publish(ctx, ev.OrderID.String(), envelope{Type: "order.created", Data: ev})
}

func (p *OrderEventsProducer) PublishOrderCancelled(ctx context.Context, ev service.OrderCancelledEvent) error {
	return p.publish(ctx, ev.OrderID.String(), envelope{Type: "order.cancelled", Data: ev})
}

func (p *OrderEventsProducer) Close() error {
	return p.writer.Close()
}
