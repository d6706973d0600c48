package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventPublisher publishes engagement events after the owning transaction has
// committed. Implementations must not be relied on for delivery: the coordinator
// treats every publish as best-effort and swallows failures.
type EventPublisher interface {
	PublishPostLiked(ctx context.Context, postID, userID uuid.UUID, occurredAt time.Time) error
	PublishPostUnliked(ctx context.Context, postID, userID uuid.UUID, occurredAt time.Time) error
	PublishPostCommented(ctx context.Context, postID, commentID, userID uuid.UUID, content string, occurredAt time.Time) error
	PublishCommentDeleted(ctx context.Context, postID, commentID, userID uuid.UUID, occurredAt time.Time) error
}

// KafkaEventPublisher implements EventPublisher on the content-events topic.
// The routing key travels in the Kafka message key, prefixed with the
// configured routing prefix ("content" by default).
type KafkaEventPublisher struct {
	writer        *kafka.Writer
	routingPrefix string
}

// NewKafkaEventPublisher creates a publisher over the broker's writer
func NewKafkaEventPublisher(broker *Broker, topic, routingPrefix string) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer:        broker.Writer(topic),
		routingPrefix: routingPrefix,
	}
}

func (p *KafkaEventPublisher) publish(ctx context.Context, routingSuffix string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(p.routingPrefix + "." + routingSuffix),
		Value: payload,
	})
}

// PublishPostLiked publishes a PostLikedEvent
func (p *KafkaEventPublisher) PublishPostLiked(ctx context.Context, postID, userID uuid.UUID, occurredAt time.Time) error {
	return p.publish(ctx, RoutingKeyPostLiked, PostLikedEvent{
		PostID:     postID,
		UserID:     userID,
		OccurredAt: occurredAt,
	})
}

// PublishPostUnliked publishes a PostUnlikedEvent
func (p *KafkaEventPublisher) PublishPostUnliked(ctx context.Context, postID, userID uuid.UUID, occurredAt time.Time) error {
	return p.publish(ctx, RoutingKeyPostUnliked, PostUnlikedEvent{
		PostID:     postID,
		UserID:     userID,
		OccurredAt: occurredAt,
	})
}

// PublishPostCommented publishes a PostCommentedEvent
func (p *KafkaEventPublisher) PublishPostCommented(ctx context.Context, postID, commentID, userID uuid.UUID, content string, occurredAt time.Time) error {
	return p.publish(ctx, RoutingKeyPostCommented, PostCommentedEvent{
		PostID:     postID,
		CommentID:  commentID,
		UserID:     userID,
		Content:    content,
		OccurredAt: occurredAt,
	})
}

// PublishCommentDeleted publishes a CommentDeletedEvent
func (p *KafkaEventPublisher) PublishCommentDeleted(ctx context.Context, postID, commentID, userID uuid.UUID, occurredAt time.Time) error {
	return p.publish(ctx, RoutingKeyCommentDeleted, CommentDeletedEvent{
		PostID:     postID,
		CommentID:  commentID,
		UserID:     userID,
		OccurredAt: occurredAt,
	})
}
