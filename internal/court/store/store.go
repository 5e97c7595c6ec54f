// Package store persists court records. Stores are interface-driven so the
// workflows stay testable against the in-memory implementation while
// production runs on PostgreSQL.
package store

import (
	"context"
	"time"

	"ferry/internal/court/models"
	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
)

var (
	// ErrNotFound keeps storage-specific 404s consistent across
	// implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")
	// ErrAlreadyRatified signals the one-ratification-per-accusation
	// invariant, whether detected by the pre-insert check or the unique
	// constraint backstop.
	ErrAlreadyRatified = dErrors.New(dErrors.CodeConflict, "accusation is already ratified")
	// ErrNoConsequences signals an empty enabled-consequence pool. This is a
	// configuration gap, not user error.
	ErrNoConsequences = dErrors.New(dErrors.CodeUnavailable, "no consequences available to assign")
	// ErrReferenced signals a protect-on-delete rejection.
	ErrReferenced = dErrors.New(dErrors.CodeValidation, "unable to delete as referenced by other objects")
	// ErrDuplicate signals a uniqueness-constraint violation on insert or
	// update, e.g. a taken display name.
	ErrDuplicate = dErrors.New(dErrors.CodeConflict, "record already exists")
	// ErrSelfAccusation is raised by the store-level check constraint when
	// the application-level validation was bypassed.
	ErrSelfAccusation = dErrors.NewValidation(dErrors.FieldError{
		Field:  "suspect",
		Detail: "unable to create accusation that suspects the creator",
	})
)

// AccusationFilter narrows accusation listings.
type AccusationFilter struct {
	Suspect   domain.PersonID
	CreatedBy domain.PersonID
}

// RatifiedAccusation is the projection the score aggregator folds over: one
// row per ratification, carrying the accusation's suspect and creation time.
type RatifiedAccusation struct {
	Suspect   domain.PersonID
	CreatedAt time.Time
}

type PersonStore interface {
	CreatePerson(ctx context.Context, person models.Person) error
	GetPerson(ctx context.Context, id domain.PersonID) (models.Person, error)
	// ListPeople returns all people ordered by display name.
	ListPeople(ctx context.Context) ([]models.Person, error)
	UpdatePerson(ctx context.Context, person models.Person) error
	DeletePerson(ctx context.Context, id domain.PersonID) error
	// ListRatifiedAccusations returns one row per existing ratification for
	// score aggregation.
	ListRatifiedAccusations(ctx context.Context) ([]RatifiedAccusation, error)
}

type AccusationStore interface {
	CreateAccusation(ctx context.Context, accusation models.Accusation) error
	GetAccusation(ctx context.Context, id domain.AccusationID) (models.Accusation, error)
	// ListAccusations returns accusations newest first, optionally filtered.
	ListAccusations(ctx context.Context, filter AccusationFilter) ([]models.Accusation, error)
	UpdateAccusation(ctx context.Context, accusation models.Accusation) error
	// DeleteAccusation removes the accusation and cascades its ratification.
	DeleteAccusation(ctx context.Context, id domain.AccusationID) error
}

type RatificationStore interface {
	// GetRatification looks up the ratification of an accusation; ErrNotFound
	// when the accusation is unratified.
	GetRatification(ctx context.Context, accusationID domain.AccusationID) (models.Ratification, error)
	// CreateRatification atomically re-checks that the accusation is
	// unratified, picks one enabled consequence uniformly at random, and
	// inserts the ratification, all inside a single transaction with the
	// accusation row locked. rat.Consequence is ignored on input and filled
	// with the chosen consequence.
	CreateRatification(ctx context.Context, rat models.Ratification) (models.Ratification, error)
	DeleteRatification(ctx context.Context, accusationID domain.AccusationID) error
}

type ConsequenceStore interface {
	CreateConsequence(ctx context.Context, consequence models.Consequence) error
	GetConsequence(ctx context.Context, id domain.ConsequenceID) (models.Consequence, error)
	// ListConsequences returns all consequences ordered by content.
	ListConsequences(ctx context.Context) ([]models.Consequence, error)
	// ListConsequencesOwnedBy returns the consequences created by one person.
	ListConsequencesOwnedBy(ctx context.Context, owner domain.PersonID) ([]models.Consequence, error)
	UpdateConsequence(ctx context.Context, consequence models.Consequence) error
	// DeleteConsequence fails with ErrReferenced while any ratification
	// still references the consequence.
	DeleteConsequence(ctx context.Context, id domain.ConsequenceID) error
}

// Store is the full persistence surface the court service depends on.
type Store interface {
	PersonStore
	AccusationStore
	RatificationStore
	ConsequenceStore
}
