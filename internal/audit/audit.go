// Package audit records who did what to which court record. Events are
// emitted from domain services after a successful mutation and fanned out to a
// sink; the Kafka sink is authoritative in production, the slog sink covers
// development.
package audit

import (
	"context"
	"time"
)

// Actions emitted by the court workflows.
const (
	ActionAccusationCreated   = "accusation.created"
	ActionAccusationUpdated   = "accusation.updated"
	ActionAccusationDeleted   = "accusation.deleted"
	ActionRatificationCreated = "ratification.created"
	ActionRatificationDeleted = "ratification.deleted"
	ActionConsequenceCreated  = "consequence.created"
	ActionConsequenceUpdated  = "consequence.updated"
	ActionConsequenceDeleted  = "consequence.deleted"
	ActionPersonUpdated       = "person.updated"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id,omitempty"`
	ObjectID  string    `json:"object_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

// Publisher delivers audit events to a sink.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}
