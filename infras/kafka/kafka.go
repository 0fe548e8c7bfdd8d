package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fitstudio/config"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// ErrClientClosed is passed to done callbacks of sends issued after Close.
var ErrClientClosed = errors.New("kafka client closed")

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	// SendMessagesAsync sends in the background and reports the outcome to
	// done. Close waits for every pending send.
	SendMessagesAsync(ctx context.Context, topic string, done func(error), messages ...Message)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// New returns a producer for the configured brokers, or a client that drops
// every message when Kafka is disabled.
func New(config *config.Config) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, events are logged only")

		return noopClient{}
	}

	transport := &kafkaGo.Transport{}
	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) SendMessagesAsync(ctx context.Context, topic string, done func(error), messages ...Message) {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		done(ErrClientClosed)

		return
	}

	k.inflight.Add(1)
	k.mu.Unlock()

	go func() {
		defer k.inflight.Done()

		done(k.SendMessages(ctx, topic, messages...))
	}()
}

func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	k.closed = true
	k.mu.Unlock()

	k.inflight.Wait()

	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

type noopClient struct{}

func (noopClient) SendMessages(_ context.Context, topic string, messages ...Message) error {
	for _, message := range messages {
		log.Debug().Str("topic", topic).Str("key", message.Key).Msg("Kafka disabled, message dropped.")
	}

	return nil
}

func (c noopClient) SendMessagesAsync(ctx context.Context, topic string, done func(error), messages ...Message) {
	done(c.SendMessages(ctx, topic, messages...))
}

func (noopClient) Close() error {
	return nil
}
