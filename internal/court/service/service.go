// Package service implements the court workflows. Each operation checks
// capabilities first, then validates, then hits the store; audit events are
// emitted only after the store reports success.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"ferry/internal/audit"
	"ferry/internal/court/perms"
	"ferry/internal/court/store"
	"ferry/internal/platform/metrics"
	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
	"ferry/pkg/requestcontext"
)

var (
	// ErrPermissionDenied is deliberately generic so a denial does not reveal
	// whether the target exists.
	ErrPermissionDenied = dErrors.New(dErrors.CodeForbidden, "permission denied")
	// ErrActForOther rejects mutations attributed to a person the actor may
	// not act for.
	ErrActForOther = dErrors.New(dErrors.CodeForbidden, "you cannot act on behalf of other people")
	// ErrNotRatified is returned for ratification reads and deletes on an
	// unratified accusation.
	ErrNotRatified = dErrors.New(dErrors.CodeNotFound, "accusation is not ratified")
)

// Service exposes the court workflows to the transport layer.
type Service struct {
	store   store.Store
	perms   *perms.Engine
	audit   audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New wires a Service. audit and m may be nil in tests.
func New(s store.Store, engine *perms.Engine, publisher audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:   s,
		perms:   engine,
		audit:   publisher,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer("ferry/court"),
	}
}

// require denies with the generic forbidden error when the actor lacks the
// capability for the target.
func (s *Service) require(ctx context.Context, capability perms.Capability, target any) error {
	if !s.perms.Has(requestcontext.Actor(ctx), capability, target) {
		return ErrPermissionDenied
	}
	return nil
}

// requireActFor checks the delegation capability for the person a mutation is
// attributed to.
func (s *Service) requireActFor(ctx context.Context, person domain.PersonID) error {
	if !s.perms.Has(requestcontext.Actor(ctx), perms.ActForPerson, person) {
		return ErrActForOther
	}
	return nil
}

// emit publishes an audit event for a completed mutation. Publish failures are
// logged, not surfaced; the mutation already committed.
func (s *Service) emit(ctx context.Context, action, objectID string) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		ActorID:   requestcontext.Actor(ctx).PersonID.String(),
		ObjectID:  objectID,
		RequestID: requestcontext.RequestID(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		UserAgent: requestcontext.UserAgent(ctx),
	}
	if err := s.audit.Publish(ctx, event); err != nil {
		s.logger.Error("publish audit event", "action", action, "error", err)
	}
}

func (s *Service) span(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name)
}
