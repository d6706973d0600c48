package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// BrokerState tracks the broker connection lifecycle
type BrokerState int

const (
	BrokerDisconnected BrokerState = iota
	BrokerConnecting
	BrokerConnected
)

// Broker is an explicitly constructed handle on the Kafka cluster. It owns the
// startup availability probe and the writer used for engagement events, and is
// injected into the publisher and consumer rather than held as a global.
type Broker struct {
	brokers []string
	state   BrokerState
	writer  *kafka.Writer
}

// NewBroker creates a Broker for a comma-separated broker list
func NewBroker(brokers string) *Broker {
	return &Broker{
		brokers: strings.Split(brokers, ","),
		state:   BrokerDisconnected,
	}
}

// Connect probes the first reachable broker with a bounded retry loop and, on
// success, prepares the writer. Exhausting the attempts is a hard startup
// failure; callers are expected to abort boot.
func (b *Broker) Connect(ctx context.Context, retries int, delay time.Duration) error {
	b.state = BrokerConnecting
	for attempt := 1; attempt <= retries; attempt++ {
		conn, err := kafka.DialContext(ctx, "tcp", b.brokers[0])
		if err == nil {
			conn.Close()
			b.state = BrokerConnected
			log.Printf("Kafka broker reachable at %s", b.brokers[0])
			return nil
		}
		log.Printf("Kafka not ready, retrying in %s... (%d/%d): %v", delay, attempt, retries, err)
		select {
		case <-ctx.Done():
			b.state = BrokerDisconnected
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	b.state = BrokerDisconnected
	return fmt.Errorf("failed to connect to Kafka after %d attempts", retries)
}

// Writer lazily builds the shared writer for a topic
func (b *Broker) Writer(topic string) *kafka.Writer {
	if b.writer == nil {
		b.writer = &kafka.Writer{
			Addr:         kafka.TCP(b.brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		}
	}
	return b.writer
}

// Reader builds a consumer-group reader for a topic
func (b *Broker) Reader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  b.brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		MaxWait:  2 * time.Second,
	})
}

// State reports the current connection state
func (b *Broker) State() BrokerState {
	return b.state
}

// Close releases the writer, if one was built
func (b *Broker) Close() error {
	b.state = BrokerDisconnected
	if b.writer != nil {
		return b.writer.Close()
	}
	return nil
}
