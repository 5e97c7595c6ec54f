// Package domain holds the UUID-typed identifiers and small value types
// shared across services. Distinct ID types keep a PersonID from ever being
// passed where an AccusationID is expected; the compiler enforces it.
package domain

import (
	"github.com/google/uuid"

	dErrors "ferry/pkg/domain-errors"
)

type (
	// PersonID identifies a registered member.
	PersonID uuid.UUID
	// AccusationID identifies an accusation.
	AccusationID uuid.UUID
	// RatificationID identifies a ratification.
	RatificationID uuid.UUID
	// ConsequenceID identifies a consequence template.
	ConsequenceID uuid.UUID
)

func parseUUID(field, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.NewValidation(dErrors.FieldError{Field: field, Detail: "must not be empty"})
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.NewValidation(dErrors.FieldError{Field: field, Detail: "must be a valid UUID"})
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.NewValidation(dErrors.FieldError{Field: field, Detail: "must not be the nil UUID"})
	}
	return u, nil
}

// ParsePersonID validates and converts a string into a PersonID.
func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID("person_id", s)
	return PersonID(u), err
}

// ParseAccusationID validates and converts a string into an AccusationID.
func ParseAccusationID(s string) (AccusationID, error) {
	u, err := parseUUID("accusation_id", s)
	return AccusationID(u), err
}

// ParseConsequenceID validates and converts a string into a ConsequenceID.
func ParseConsequenceID(s string) (ConsequenceID, error) {
	u, err := parseUUID("consequence_id", s)
	return ConsequenceID(u), err
}

// NewPersonID returns a fresh random PersonID.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// NewAccusationID returns a fresh random AccusationID.
func NewAccusationID() AccusationID { return AccusationID(uuid.New()) }

// NewRatificationID returns a fresh random RatificationID.
func NewRatificationID() RatificationID { return RatificationID(uuid.New()) }

// NewConsequenceID returns a fresh random ConsequenceID.
func NewConsequenceID() ConsequenceID { return ConsequenceID(uuid.New()) }

func (id PersonID) String() string       { return uuid.UUID(id).String() }
func (id AccusationID) String() string   { return uuid.UUID(id).String() }
func (id RatificationID) String() string { return uuid.UUID(id).String() }
func (id ConsequenceID) String() string  { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id PersonID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id AccusationID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id RatificationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ConsequenceID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }

func (id PersonID) MarshalText() ([]byte, error)       { return []byte(id.String()), nil }
func (id AccusationID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id RatificationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id ConsequenceID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }

func (id *PersonID) UnmarshalText(b []byte) error {
	parsed, err := ParsePersonID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *AccusationID) UnmarshalText(b []byte) error {
	parsed, err := ParseAccusationID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ConsequenceID) UnmarshalText(b []byte) error {
	parsed, err := ParseConsequenceID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
