package kafka

import (
	"fmt"
	"os"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"fleur-api/events"
	"fleur-api/logger"
)

// Producer publishes storefront events. Publishing is best effort from the
// caller's perspective; request handlers must not fail because a broker is
// down.
type Producer interface {
	PublishEvent(topic string, event events.Event) error
	Close()
}

// NewFromEnv builds a confluent-kafka producer when
// KAFKA_BOOTSTRAP_SERVERS is set, and a no-op producer otherwise, so the
// API runs unchanged without a broker.
func NewFromEnv() (Producer, error) {
	brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if brokers == "" {
		logger.Log.Info("KAFKA_BOOTSTRAP_SERVERS not set, event publishing disabled")
		return nopProducer{}, nil
	}
	return NewProducer(brokers)
}

type kafkaProducer struct {
	producer *kafka.Producer
}

// NewProducer builds a producer against the given brokers.
func NewProducer(brokers string) (Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// drain async delivery reports
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("event delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &kafkaProducer{producer: p}, nil
}

func (k *kafkaProducer) PublishEvent(topic string, event events.Event) error {
	data, eventType, err := events.Serialize(event)
	if err != nil {
		return fmt.Errorf("serialize event: %w", err)
	}

	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.EventID()),
		Value:          data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (k *kafkaProducer) Close() {
	if remaining := k.producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("%d events still unflushed at shutdown", remaining)
	}
	k.producer.Close()
}

type nopProducer struct{}

func (nopProducer) PublishEvent(topic string, event events.Event) error { return nil }
func (nopProducer) Close()                                              {}
