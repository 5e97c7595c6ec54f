package domain

// Actor is the authenticated caller of an operation. It may be linked to a
// Person; an unlinked actor satisfies no ownership-based permission.
type Actor struct {
	// TokenID is the identifier of the credential that authenticated the
	// caller, used for revocation checks and audit attribution.
	TokenID string
	// PersonID links the actor to a Person. Nil UUID when unlinked.
	PersonID PersonID
	// DisplayName is carried for log and audit readability only.
	DisplayName string
	// Superuser actors bypass ownership-based permission checks.
	Superuser bool
}

// Linked reports whether the actor is linked to a Person.
func (a Actor) Linked() bool { return !a.PersonID.IsNil() }
