package messaging

import (
	"context"
	"testing"
	"time"
)

func TestBrokerStartsDisconnected(t *testing.T) {
	broker := NewBroker("localhost:9092,localhost:9093")
	if broker.State() != BrokerDisconnected {
		t.Fatalf("expected disconnected state, got %v", broker.State())
	}
	if len(broker.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %v", broker.brokers)
	}
}

func TestConnectGivesUpAfterRetries(t *testing.T) {
	// Nothing listens on this port; every attempt must fail and the loop
	// must surface a hard error after the configured attempts.
	broker := NewBroker("127.0.0.1:1")

	start := time.Now()
	err := broker.Connect(context.Background(), 2, 10*time.Millisecond)
	if err == nil {
		t.Fatal("expected connect failure against a dead broker")
	}
	if broker.State() != BrokerDisconnected {
		t.Fatalf("expected disconnected state after failure, got %v", broker.State())
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("retry loop took too long: %v", elapsed)
	}
}

func TestConnectHonorsContextCancellation(t *testing.T) {
	broker := NewBroker("127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := broker.Connect(ctx, 5, time.Hour)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
