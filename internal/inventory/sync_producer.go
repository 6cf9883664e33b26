package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bilheteria/internal/shared/config"

	"github.com/IBM/sarama"
)

// SyncProducer publishes stock-sync events to the storefront mirroring sink.
// The storefront consumes them to refresh its own availability views; the
// authoritative mirror rows are already rebased inside the adjustment
// transaction, so a lost event is a staleness problem, not a correctness one.
type SyncProducer interface {
	PublishStockSync(ctx context.Context, event *StockSyncEvent) error
	Close() error
}

type kafkaSyncProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaSyncProducer creates the stock-sync producer. Idempotent writes and
// a hash partitioner keep per-class ordering on the sink side.
func NewKafkaSyncProducer(cfg config.KafkaConfig) (SyncProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaSyncProducer{
		producer: producer,
		topic:    cfg.StockSyncTopic,
	}, nil
}

func (p *kafkaSyncProducer) PublishStockSync(ctx context.Context, event *StockSyncEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal stock sync event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.AdjustedAt,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send stock sync event: %w", err)
	}
	return nil
}

func (p *kafkaSyncProducer) Close() error {
	return p.producer.Close()
}
