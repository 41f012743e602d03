// Package kafka publishes order lifecycle events to Kafka topics.
// Events are fire-and-forget: consumers drive buyer notifications and
// partner fulfillment, and a lost event never fails the business
// transaction that produced it.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

// Topics names the Kafka topics the notifier publishes to.
type Topics struct {
	OrderCreated  string
	StatusChanged string
}

// OrderNotifier publishes order events through a sarama async producer.
type OrderNotifier struct {
	producer sarama.AsyncProducer
	topics   Topics
	logger   *slog.Logger
}

// NewOrderNotifier connects an async producer to the given brokers.
// The producer favors throughput: local acks, snappy compression, and
// 500ms batching. Delivery errors are drained and logged in the background.
func NewOrderNotifier(brokers []string, topics Topics, logger *slog.Logger) (*OrderNotifier, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal       // Balance speed and reliability
	config.Producer.Compression = sarama.CompressionSnappy   // Better throughput
	config.Producer.Flush.Frequency = 500 * time.Millisecond // Batch messages
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewAsyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	notifier := &OrderNotifier{
		producer: producer,
		topics:   topics,
		logger:   logger.With("component", "kafka_notifier"),
	}

	// Drain delivery errors so the producer never blocks
	go func() {
		for producerErr := range producer.Errors() {
			notifier.logger.Warn("failed to send kafka message", "error", producerErr)
		}
	}()

	return notifier, nil
}

type orderCreatedEvent struct {
	OrderID    string    `json:"orderId"`
	BuyerID    string    `json:"buyerId"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type statusChangedEvent struct {
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	UpdatedBy      *string   `json:"updatedBy"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NotifyOrderCreated publishes an order created event.
func (n *OrderNotifier) NotifyOrderCreated(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return n.publish(n.topics.OrderCreated, aggregate.ID().String(), orderCreatedEvent{
		OrderID:    aggregate.ID().String(),
		BuyerID:    aggregate.BuyerID().String(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
		ItemCount:  len(aggregate.Items()),
		CreatedAt:  aggregate.CreatedAt(),
	})
}

// NotifyStatusChanged publishes a status changed event. Actor is nil for
// system-initiated changes such as scheduled cancellations.
func (n *OrderNotifier) NotifyStatusChanged(
	_ context.Context,
	aggregate *order.Order,
	previous order.Status,
	actor *kernel.UUID,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var updatedBy *string
	if actor != nil {
		s := actor.String()
		updatedBy = &s
	}

	return n.publish(n.topics.StatusChanged, aggregate.ID().String(), statusChangedEvent{
		OrderID:        aggregate.ID().String(),
		PreviousStatus: previous.String(),
		Status:         aggregate.Status().String(),
		UpdatedBy:      updatedBy,
		UpdatedAt:      aggregate.UpdatedAt(),
	})
}

func (n *OrderNotifier) publish(topic, key string, event any) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	n.producer.Input() <- &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}
	return nil
}

// Close shuts down the underlying producer, flushing buffered messages.
func (n *OrderNotifier) Close() error {
	return n.producer.Close()
}
