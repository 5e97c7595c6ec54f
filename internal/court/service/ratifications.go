package service

import (
	"context"
	"errors"
	"fmt"

	"ferry/internal/audit"
	"ferry/internal/court/models"
	"ferry/internal/court/perms"
	"ferry/internal/court/store"
	"ferry/pkg/domain"
	"ferry/pkg/requestcontext"
)

// GetRatification returns the ratification of an accusation, or a NotFound
// error naming the unratified state.
func (s *Service) GetRatification(ctx context.Context, accusationID domain.AccusationID) (models.Ratification, error) {
	if err := s.require(ctx, perms.RatificationView, nil); err != nil {
		return models.Ratification{}, err
	}
	if _, err := s.store.GetAccusation(ctx, accusationID); err != nil {
		return models.Ratification{}, fmt.Errorf("get accusation: %w", err)
	}
	rat, err := s.store.GetRatification(ctx, accusationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Ratification{}, ErrNotRatified
		}
		return models.Ratification{}, fmt.Errorf("get ratification: %w", err)
	}
	return rat, nil
}

// CreateRatification ratifies an accusation on behalf of createdBy and assigns
// a random enabled consequence. The check-pick-insert sequence is atomic at
// the store; this layer handles eligibility and the fast-path conflict so most
// duplicates never reach the transaction.
func (s *Service) CreateRatification(ctx context.Context, accusationID domain.AccusationID, createdBy domain.PersonID) (models.Ratification, error) {
	ctx, span := s.span(ctx, "court.CreateRatification")
	defer span.End()

	if err := s.require(ctx, perms.RatificationCreate, nil); err != nil {
		return models.Ratification{}, err
	}
	accusation, err := s.store.GetAccusation(ctx, accusationID)
	if err != nil {
		return models.Ratification{}, fmt.Errorf("get accusation: %w", err)
	}
	if _, err := s.store.GetRatification(ctx, accusationID); err == nil {
		if s.metrics != nil {
			s.metrics.RatificationConflict.Inc()
		}
		return models.Ratification{}, store.ErrAlreadyRatified
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.Ratification{}, fmt.Errorf("check ratification: %w", err)
	}
	if err := s.requireActFor(ctx, createdBy); err != nil {
		return models.Ratification{}, err
	}
	if err := models.ValidateRatifier(accusation, createdBy); err != nil {
		return models.Ratification{}, err
	}

	now := requestcontext.Now(ctx)
	rat, err := s.store.CreateRatification(ctx, models.Ratification{
		ID:         domain.NewRatificationID(),
		Accusation: accusationID,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if s.metrics != nil {
			switch {
			case errors.Is(err, store.ErrAlreadyRatified):
				s.metrics.RatificationConflict.Inc()
			case errors.Is(err, store.ErrNoConsequences):
				s.metrics.EmptyConsequencePool.Inc()
			}
		}
		return models.Ratification{}, fmt.Errorf("create ratification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RatificationsCreated.Inc()
	}
	s.emit(ctx, audit.ActionRatificationCreated, rat.ID.String())
	return rat, nil
}

// DeleteRatification withdraws the ratification of an accusation. Superuser
// only; deleting an unratified accusation's ratification is NotFound, so the
// operation stays idempotent from the client's view.
func (s *Service) DeleteRatification(ctx context.Context, accusationID domain.AccusationID) error {
	ctx, span := s.span(ctx, "court.DeleteRatification")
	defer span.End()

	if _, err := s.store.GetAccusation(ctx, accusationID); err != nil {
		return fmt.Errorf("get accusation: %w", err)
	}
	rat, err := s.store.GetRatification(ctx, accusationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotRatified
		}
		return fmt.Errorf("get ratification: %w", err)
	}
	if err := s.require(ctx, perms.RatificationDelete, rat); err != nil {
		return err
	}
	if err := s.store.DeleteRatification(ctx, accusationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotRatified
		}
		return fmt.Errorf("delete ratification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RatificationsDeleted.Inc()
	}
	s.emit(ctx, audit.ActionRatificationDeleted, rat.ID.String())
	return nil
}
