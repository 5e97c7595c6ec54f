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

// CreateAccusation records a new accusation attributed to createdBy. The actor
// must be allowed to act for createdBy; anyone may accuse.
func (s *Service) CreateAccusation(ctx context.Context, quote string, suspect, createdBy domain.PersonID) (models.Accusation, error) {
	ctx, span := s.span(ctx, "court.CreateAccusation")
	defer span.End()

	if err := s.require(ctx, perms.AccusationCreate, nil); err != nil {
		return models.Accusation{}, err
	}
	if err := s.requireActFor(ctx, createdBy); err != nil {
		return models.Accusation{}, err
	}

	now := requestcontext.Now(ctx)
	accusation := models.Accusation{
		ID:        domain.NewAccusationID(),
		Quote:     quote,
		Suspect:   suspect,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := accusation.Validate(); err != nil {
		return models.Accusation{}, err
	}
	if err := s.store.CreateAccusation(ctx, accusation); err != nil {
		return models.Accusation{}, fmt.Errorf("create accusation: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AccusationsCreated.Inc()
	}
	s.emit(ctx, audit.ActionAccusationCreated, accusation.ID.String())
	return accusation, nil
}

func (s *Service) GetAccusation(ctx context.Context, id domain.AccusationID) (models.Accusation, error) {
	if err := s.require(ctx, perms.AccusationView, nil); err != nil {
		return models.Accusation{}, err
	}
	accusation, err := s.store.GetAccusation(ctx, id)
	if err != nil {
		return models.Accusation{}, fmt.Errorf("get accusation: %w", err)
	}
	return accusation, nil
}

func (s *Service) ListAccusations(ctx context.Context, filter store.AccusationFilter) ([]models.Accusation, error) {
	if err := s.require(ctx, perms.AccusationView, nil); err != nil {
		return nil, err
	}
	accusations, err := s.store.ListAccusations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list accusations: %w", err)
	}
	return accusations, nil
}

// UpdateAccusation replaces the quote. Only the quote is mutable; suspect and
// author are fixed at creation.
func (s *Service) UpdateAccusation(ctx context.Context, id domain.AccusationID, quote string) (models.Accusation, error) {
	ctx, span := s.span(ctx, "court.UpdateAccusation")
	defer span.End()

	accusation, err := s.store.GetAccusation(ctx, id)
	if err != nil {
		return models.Accusation{}, fmt.Errorf("get accusation: %w", err)
	}
	if err := s.require(ctx, perms.AccusationEdit, accusation); err != nil {
		return models.Accusation{}, err
	}
	if err := models.ValidateQuote(quote); err != nil {
		return models.Accusation{}, err
	}

	accusation.Quote = quote
	accusation.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateAccusation(ctx, accusation); err != nil {
		return models.Accusation{}, fmt.Errorf("update accusation: %w", err)
	}

	s.emit(ctx, audit.ActionAccusationUpdated, accusation.ID.String())
	return accusation, nil
}

// DeleteAccusation removes the accusation; an attached ratification cascades
// away with it.
func (s *Service) DeleteAccusation(ctx context.Context, id domain.AccusationID) error {
	ctx, span := s.span(ctx, "court.DeleteAccusation")
	defer span.End()

	accusation, err := s.store.GetAccusation(ctx, id)
	if err != nil {
		return fmt.Errorf("get accusation: %w", err)
	}
	if err := s.require(ctx, perms.AccusationDelete, accusation); err != nil {
		return err
	}
	if err := s.store.DeleteAccusation(ctx, id); err != nil {
		return fmt.Errorf("delete accusation: %w", err)
	}

	s.emit(ctx, audit.ActionAccusationDeleted, id.String())
	return nil
}
