// Package perms is the capability engine gating every mutating court
// operation. A capability maps to an ordered list of predicates evaluated with
// short-circuit OR; the table is built once at startup and passed explicitly,
// so there is no global mutable registration.
package perms

import (
	"ferry/internal/court/models"
	"ferry/pkg/domain"
)

// Capability names an entity/action pair.
type Capability string

const (
	ActForPerson Capability = "act_for_person"

	AccusationView   Capability = "accusation.view"
	AccusationCreate Capability = "accusation.create"
	AccusationEdit   Capability = "accusation.edit"
	AccusationDelete Capability = "accusation.delete"

	RatificationView   Capability = "ratification.view"
	RatificationCreate Capability = "ratification.create"
	RatificationDelete Capability = "ratification.delete"

	ConsequenceView   Capability = "consequence.view"
	ConsequenceCreate Capability = "consequence.create"
	ConsequenceEdit   Capability = "consequence.edit"
	ConsequenceDelete Capability = "consequence.delete"

	PersonView             Capability = "person.view"
	PersonCreate           Capability = "person.create"
	PersonEdit             Capability = "person.edit"
	PersonDelete           Capability = "person.delete"
	PersonAssignExternalID Capability = "person.assign_external_id"
)

// Predicate is a pure check of an actor against an optional target. No
// predicate has side effects.
type Predicate func(actor domain.Actor, target any) bool

// Policy carries the configurable permission knobs.
type Policy struct {
	// AccuserMayDelete additionally grants accusation.delete to the
	// original accuser. Default is superuser-only.
	AccuserMayDelete bool
}

// Engine evaluates capabilities against the predicate table.
type Engine struct {
	rules map[Capability][]Predicate
}

// Has reports whether the actor holds the capability for the target. Unknown
// capabilities are denied.
func (e *Engine) Has(actor domain.Actor, capability Capability, target any) bool {
	predicates, ok := e.rules[capability]
	if !ok {
		return false
	}
	for _, predicate := range predicates {
		if predicate(actor, target) {
			return true
		}
	}
	return false
}

func alwaysAllow(domain.Actor, any) bool { return true }

func isElevated(actor domain.Actor, _ any) bool { return actor.Superuser }

// isTargetPerson holds when the actor's linked person is the target person.
func isTargetPerson(actor domain.Actor, target any) bool {
	if !actor.Linked() {
		return false
	}
	switch p := target.(type) {
	case models.Person:
		return p.ID == actor.PersonID
	case domain.PersonID:
		return p == actor.PersonID
	default:
		return false
	}
}

// ownsRecord holds when the actor's linked person created the target record.
func ownsRecord(actor domain.Actor, target any) bool {
	if !actor.Linked() {
		return false
	}
	switch t := target.(type) {
	case models.Accusation:
		return t.CreatedBy == actor.PersonID
	case models.Consequence:
		return t.CreatedBy == actor.PersonID
	case models.Ratification:
		return t.CreatedBy == actor.PersonID
	default:
		return false
	}
}

// NewEngine builds the capability table. Defaults mirror the court rules:
// reads are open, ownership unlocks editing where noted, superusers bypass
// everything.
func NewEngine(policy Policy) *Engine {
	rules := map[Capability][]Predicate{
		ActForPerson: {isTargetPerson, isElevated},

		AccusationView:   {alwaysAllow},
		AccusationCreate: {alwaysAllow},
		AccusationEdit:   {ownsRecord, isElevated},
		AccusationDelete: {isElevated},

		RatificationView:   {alwaysAllow},
		RatificationCreate: {alwaysAllow},
		RatificationDelete: {isElevated},

		ConsequenceView:   {ownsRecord, isElevated},
		ConsequenceCreate: {alwaysAllow},
		ConsequenceEdit:   {ownsRecord, isElevated},
		ConsequenceDelete: {ownsRecord, isElevated},

		PersonView:             {alwaysAllow},
		PersonCreate:           {isElevated},
		PersonEdit:             {isTargetPerson, isElevated},
		PersonDelete:           {isElevated},
		PersonAssignExternalID: {isElevated},
	}
	if policy.AccuserMayDelete {
		rules[AccusationDelete] = []Predicate{ownsRecord, isElevated}
	}
	return &Engine{rules: rules}
}
