package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/anonto42/content-engagement/backend/internal/metrics"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// LifecycleHandler receives reconciliation calls for post lifecycle events.
// Handlers must be idempotent: delivery is at-least-once and messages may
// arrive duplicated or out of order.
type LifecycleHandler interface {
	HandlePostCreated(ctx context.Context, postID uuid.UUID) error
	HandlePostDeleted(ctx context.Context, postID uuid.UUID) error
}

// PostEventConsumer consumes post lifecycle events and drives reconciliation.
// One consumer runs per process; horizontal scaling goes through the Kafka
// consumer group.
type PostEventConsumer struct {
	reader  *kafka.Reader
	handler LifecycleHandler
}

// NewPostEventConsumer creates a consumer over the broker's reader
func NewPostEventConsumer(broker *Broker, topic, groupID string, handler LifecycleHandler) *PostEventConsumer {
	return &PostEventConsumer{
		reader:  broker.Reader(topic, groupID),
		handler: handler,
	}
}

// Run fetches and dispatches messages until the context is cancelled. A failed
// message is logged and left uncommitted so the transport redelivers it.
func (c *PostEventConsumer) Run(ctx context.Context) error {
	defer func() {
		_ = c.reader.Close()
	}()

	log.Printf("Post event consumer started | group=%s | topic=%s",
		c.reader.Config().GroupID, c.reader.Config().Topic)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Post event consumer shutting down...")
				return nil
			}
			log.Printf("Post event fetch error: %v", err)
			time.Sleep(time.Second)
			continue
		}

		if err := c.dispatch(ctx, string(m.Key), m.Value); err != nil {
			log.Printf("Post event handler error (key=%s): %v", string(m.Key), err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("Post event commit error: %v", err)
		}
	}
}

// dispatch routes one message by its routing key. Unknown keys are logged and
// dropped rather than treated as failures.
func (c *PostEventConsumer) dispatch(ctx context.Context, routingKey string, payload []byte) error {
	switch routingKey {
	case RoutingKeyPostCreated:
		var event PostCreatedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			metrics.LifecycleEvents.WithLabelValues(routingKey, "error").Inc()
			return fmt.Errorf("decode post.created event: %w", err)
		}
		if err := c.handler.HandlePostCreated(ctx, event.PostID); err != nil {
			metrics.LifecycleEvents.WithLabelValues(routingKey, "error").Inc()
			return err
		}
		metrics.LifecycleEvents.WithLabelValues(routingKey, "ok").Inc()
		return nil

	case RoutingKeyPostDeleted:
		var event PostDeletedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			metrics.LifecycleEvents.WithLabelValues(routingKey, "error").Inc()
			return fmt.Errorf("decode post.deleted event: %w", err)
		}
		if err := c.handler.HandlePostDeleted(ctx, event.PostID); err != nil {
			metrics.LifecycleEvents.WithLabelValues(routingKey, "error").Inc()
			return err
		}
		metrics.LifecycleEvents.WithLabelValues(routingKey, "ok").Inc()
		return nil

	default:
		log.Printf("Unhandled routing key: %s", routingKey)
		metrics.LifecycleEvents.WithLabelValues(routingKey, "dropped").Inc()
		return nil
	}
}
