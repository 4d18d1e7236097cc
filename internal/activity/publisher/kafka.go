// Package publisher streams activity records to Kafka for downstream fraud
// and analytics consumers. The store remains the source of truth; the stream
// is best-effort.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"trustgate/internal/activity"
)

type Kafka struct {
	client *kgo.Client
	topic  string
}

func NewKafka(brokers []string, topic string) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Kafka{client: client, topic: topic}, nil
}

// Publish sends one record, keyed by network origin so records from the same
// origin stay ordered within a partition.
func (k *Kafka) Publish(ctx context.Context, rec activity.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal activity record: %w", err)
	}
	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(rec.NetworkOrigin),
		Value: payload,
	}
	if err := k.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce activity record: %w", err)
	}
	return nil
}

func (k *Kafka) Close() {
	k.client.Close()
}
