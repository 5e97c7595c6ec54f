// Package models defines the court entities and their field-level invariants.
// Cross-record invariants (one ratification per accusation, eligibility of the
// ratifier) live in the workflows and are backstopped by store constraints.
package models

import (
	"strings"
	"time"

	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
)

// MaxQuoteLength bounds the accusation quote.
const MaxQuoteLength = 500

// Person is a registered member. People are referenced by every other entity
// and are never deleted while referenced.
type Person struct {
	ID          domain.PersonID
	DisplayName string
	// ExternalID is the optional chat-platform identifier, unique when set.
	ExternalID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks field-level invariants.
func (p Person) Validate() error {
	var fields []dErrors.FieldError
	if strings.TrimSpace(p.DisplayName) == "" {
		fields = append(fields, dErrors.FieldError{Field: "display_name", Detail: "must not be empty"})
	}
	if len(p.DisplayName) > 255 {
		fields = append(fields, dErrors.FieldError{Field: "display_name", Detail: "must be at most 255 characters"})
	}
	if len(fields) > 0 {
		return dErrors.NewValidation(fields...)
	}
	return nil
}

// Consequence is a punishment template drawn from at random upon ratification.
type Consequence struct {
	ID        domain.ConsequenceID
	Content   string
	IsEnabled bool
	CreatedBy domain.PersonID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks field-level invariants.
func (c Consequence) Validate() error {
	var fields []dErrors.FieldError
	if strings.TrimSpace(c.Content) == "" {
		fields = append(fields, dErrors.FieldError{Field: "content", Detail: "must not be empty"})
	}
	if len(c.Content) > 255 {
		fields = append(fields, dErrors.FieldError{Field: "content", Detail: "must be at most 255 characters"})
	}
	if c.CreatedBy.IsNil() {
		fields = append(fields, dErrors.FieldError{Field: "created_by", Detail: "must reference a person"})
	}
	if len(fields) > 0 {
		return dErrors.NewValidation(fields...)
	}
	return nil
}

// Accusation is a claim that Suspect committed some act, authored by
// CreatedBy. Suspect and CreatedBy must differ, here and at the store level.
type Accusation struct {
	ID        domain.AccusationID
	Quote     string
	Suspect   domain.PersonID
	CreatedBy domain.PersonID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks field-level invariants including self-accusation.
func (a Accusation) Validate() error {
	var fields []dErrors.FieldError
	fields = append(fields, validateQuote(a.Quote)...)
	if a.Suspect.IsNil() {
		fields = append(fields, dErrors.FieldError{Field: "suspect", Detail: "must reference a person"})
	}
	if a.CreatedBy.IsNil() {
		fields = append(fields, dErrors.FieldError{Field: "created_by", Detail: "must reference a person"})
	}
	if !a.Suspect.IsNil() && a.Suspect == a.CreatedBy {
		fields = append(fields, dErrors.FieldError{Field: "suspect", Detail: "unable to create accusation that suspects the creator"})
	}
	if len(fields) > 0 {
		return dErrors.NewValidation(fields...)
	}
	return nil
}

// ValidateQuote checks only the mutable quote field, used by updates.
func ValidateQuote(quote string) error {
	if fields := validateQuote(quote); len(fields) > 0 {
		return dErrors.NewValidation(fields...)
	}
	return nil
}

func validateQuote(quote string) []dErrors.FieldError {
	var fields []dErrors.FieldError
	if strings.TrimSpace(quote) == "" {
		fields = append(fields, dErrors.FieldError{Field: "quote", Detail: "must not be empty"})
	}
	if len([]rune(quote)) > MaxQuoteLength {
		fields = append(fields, dErrors.FieldError{Field: "quote", Detail: "must be at most 500 characters"})
	}
	return fields
}

// Ratification confirms an accusation and records the randomly assigned
// consequence. At most one exists per accusation.
type Ratification struct {
	ID          domain.RatificationID
	Accusation  domain.AccusationID
	Consequence domain.ConsequenceID
	CreatedBy   domain.PersonID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateRatifier enforces ratifier eligibility against the accusation.
func ValidateRatifier(accusation Accusation, ratifier domain.PersonID) error {
	if ratifier == accusation.CreatedBy {
		return dErrors.NewValidation(dErrors.FieldError{
			Field:  "created_by",
			Detail: "you cannot ratify an accusation that you made",
		})
	}
	if ratifier == accusation.Suspect {
		return dErrors.NewValidation(dErrors.FieldError{
			Field:  "created_by",
			Detail: "you cannot ratify an accusation made against you",
		})
	}
	return nil
}
