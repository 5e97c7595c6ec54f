package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// LogPublisher writes audit events to the process logger. Used when Kafka is
// not configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	p.logger.InfoContext(ctx, "audit",
		"action", event.Action,
		"actor_id", event.ActorID,
		"object_id", event.ObjectID,
		"request_id", event.RequestID,
	)
	return nil
}

func (p *LogPublisher) Close() {}

// MemoryPublisher records events in memory for test assertions.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (p *MemoryPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *MemoryPublisher) Close() {}

// Events returns a copy of everything published so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
