package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher produces audit events to a Kafka topic. Delivery is
// asynchronous; a failed produce is logged by the completion callback rather
// than failing the originating request.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	onErr  func(error)
}

// NewKafkaPublisher connects to the given brokers and produces to topic. onErr
// receives asynchronous delivery failures; nil means they are dropped.
func NewKafkaPublisher(brokers []string, topic string, onErr func(error)) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.ProducerBatchMaxBytes(1<<20),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if onErr == nil {
		onErr = func(error) {}
	}
	return &KafkaPublisher{client: client, topic: topic, onErr: onErr}, nil
}

// Publish serializes the event as JSON keyed by action and produces it.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Action),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.onErr(fmt.Errorf("produce audit event: %w", err))
		}
	})
	return nil
}

// Close flushes buffered records and releases the client.
func (p *KafkaPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
