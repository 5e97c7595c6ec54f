package service

import (
	"context"
	"fmt"

	"ferry/internal/audit"
	"ferry/internal/court/models"
	"ferry/internal/court/perms"
	"ferry/internal/court/store"
	"ferry/pkg/domain"
	"ferry/pkg/requestcontext"
)

// CreateConsequence adds a consequence to the pool, attributed to createdBy.
func (s *Service) CreateConsequence(ctx context.Context, content string, isEnabled bool, createdBy domain.PersonID) (models.Consequence, error) {
	ctx, span := s.span(ctx, "court.CreateConsequence")
	defer span.End()

	if err := s.require(ctx, perms.ConsequenceCreate, nil); err != nil {
		return models.Consequence{}, err
	}
	if err := s.requireActFor(ctx, createdBy); err != nil {
		return models.Consequence{}, err
	}

	now := requestcontext.Now(ctx)
	consequence := models.Consequence{
		ID:        domain.NewConsequenceID(),
		Content:   content,
		IsEnabled: isEnabled,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := consequence.Validate(); err != nil {
		return models.Consequence{}, err
	}
	if err := s.store.CreateConsequence(ctx, consequence); err != nil {
		return models.Consequence{}, fmt.Errorf("create consequence: %w", err)
	}

	s.emit(ctx, audit.ActionConsequenceCreated, consequence.ID.String())
	return consequence, nil
}

// GetConsequence reads one consequence. A consequence the actor may not view
// reads as NotFound so the response does not reveal that it exists.
func (s *Service) GetConsequence(ctx context.Context, id domain.ConsequenceID) (models.Consequence, error) {
	consequence, err := s.store.GetConsequence(ctx, id)
	if err != nil {
		return models.Consequence{}, fmt.Errorf("get consequence: %w", err)
	}
	if !s.perms.Has(requestcontext.Actor(ctx), perms.ConsequenceView, consequence) {
		return models.Consequence{}, store.ErrNotFound
	}
	return consequence, nil
}

// ListConsequences lists the consequences visible to the actor: everything
// for an elevated actor, otherwise only the actor's own. A non-owner sees an
// empty list, never an error.
func (s *Service) ListConsequences(ctx context.Context) ([]models.Consequence, error) {
	actor := requestcontext.Actor(ctx)
	if actor.Superuser {
		consequences, err := s.store.ListConsequences(ctx)
		if err != nil {
			return nil, fmt.Errorf("list consequences: %w", err)
		}
		return consequences, nil
	}
	if !actor.Linked() {
		return []models.Consequence{}, nil
	}
	consequences, err := s.store.ListConsequencesOwnedBy(ctx, actor.PersonID)
	if err != nil {
		return nil, fmt.Errorf("list consequences: %w", err)
	}
	return consequences, nil
}

// UpdateConsequence replaces the content and enabled flag. Ratifications that
// already reference the consequence keep pointing at the updated row.
func (s *Service) UpdateConsequence(ctx context.Context, id domain.ConsequenceID, content string, isEnabled bool) (models.Consequence, error) {
	ctx, span := s.span(ctx, "court.UpdateConsequence")
	defer span.End()

	consequence, err := s.store.GetConsequence(ctx, id)
	if err != nil {
		return models.Consequence{}, fmt.Errorf("get consequence: %w", err)
	}
	if !s.perms.Has(requestcontext.Actor(ctx), perms.ConsequenceView, consequence) {
		return models.Consequence{}, store.ErrNotFound
	}
	if err := s.require(ctx, perms.ConsequenceEdit, consequence); err != nil {
		return models.Consequence{}, err
	}

	consequence.Content = content
	consequence.IsEnabled = isEnabled
	consequence.UpdatedAt = requestcontext.Now(ctx)
	if err := consequence.Validate(); err != nil {
		return models.Consequence{}, err
	}
	if err := s.store.UpdateConsequence(ctx, consequence); err != nil {
		return models.Consequence{}, fmt.Errorf("update consequence: %w", err)
	}

	s.emit(ctx, audit.ActionConsequenceUpdated, consequence.ID.String())
	return consequence, nil
}

// DeleteConsequence removes a consequence from the pool. One referenced by a
// ratification is protected and fails validation.
func (s *Service) DeleteConsequence(ctx context.Context, id domain.ConsequenceID) error {
	ctx, span := s.span(ctx, "court.DeleteConsequence")
	defer span.End()

	consequence, err := s.store.GetConsequence(ctx, id)
	if err != nil {
		return fmt.Errorf("get consequence: %w", err)
	}
	if !s.perms.Has(requestcontext.Actor(ctx), perms.ConsequenceView, consequence) {
		return store.ErrNotFound
	}
	if err := s.require(ctx, perms.ConsequenceDelete, consequence); err != nil {
		return err
	}
	if err := s.store.DeleteConsequence(ctx, id); err != nil {
		return fmt.Errorf("delete consequence: %w", err)
	}

	s.emit(ctx, audit.ActionConsequenceDeleted, id.String())
	return nil
}
