package service

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"

	"ferry/internal/audit"
	"ferry/internal/court/models"
	"ferry/internal/court/perms"
	"ferry/internal/court/scores"
	"ferry/pkg/domain"
	"ferry/pkg/requestcontext"
	"ferry/pkg/train"
)

// PersonSummary is a person annotated with the read-side aggregates: the
// decayed score, the all-time ratified count, the dense leaderboard rank and
// the decorative train.
type PersonSummary struct {
	Person        models.Person
	Score         domain.Score
	RatifiedCount int
	Rank          int
	Train         string
}

// CreatePerson registers a new member. Superuser only.
func (s *Service) CreatePerson(ctx context.Context, displayName string, externalID *int64) (models.Person, error) {
	ctx, span := s.span(ctx, "court.CreatePerson")
	defer span.End()

	if err := s.require(ctx, perms.PersonCreate, nil); err != nil {
		return models.Person{}, err
	}

	now := requestcontext.Now(ctx)
	person := models.Person{
		ID:          domain.NewPersonID(),
		DisplayName: displayName,
		ExternalID:  externalID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := person.Validate(); err != nil {
		return models.Person{}, err
	}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		return models.Person{}, fmt.Errorf("create person: %w", err)
	}
	return person, nil
}

// GetPerson returns one person with aggregates. Rank is computed against the
// full membership so the detail view agrees with the listing.
func (s *Service) GetPerson(ctx context.Context, id domain.PersonID) (PersonSummary, error) {
	if err := s.require(ctx, perms.PersonView, nil); err != nil {
		return PersonSummary{}, err
	}
	summaries, err := s.summaries(ctx)
	if err != nil {
		return PersonSummary{}, err
	}
	for _, summary := range summaries {
		if summary.Person.ID == id {
			return summary, nil
		}
	}
	if _, err := s.store.GetPerson(ctx, id); err != nil {
		return PersonSummary{}, fmt.Errorf("get person: %w", err)
	}
	return PersonSummary{}, fmt.Errorf("get person: inconsistent listing for %s", id)
}

// ListPeople returns the leaderboard: every person with score, ratified count,
// dense rank and train, ordered by rank then display name.
func (s *Service) ListPeople(ctx context.Context) ([]PersonSummary, error) {
	if err := s.require(ctx, perms.PersonView, nil); err != nil {
		return nil, err
	}
	return s.summaries(ctx)
}

// UpdatePerson replaces the display name and external id. Changing the
// external id is a separate, elevated capability.
func (s *Service) UpdatePerson(ctx context.Context, id domain.PersonID, displayName string, externalID *int64) (models.Person, error) {
	ctx, span := s.span(ctx, "court.UpdatePerson")
	defer span.End()

	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return models.Person{}, fmt.Errorf("get person: %w", err)
	}
	if err := s.require(ctx, perms.PersonEdit, person); err != nil {
		return models.Person{}, err
	}
	if !int64PtrEqual(person.ExternalID, externalID) {
		if err := s.require(ctx, perms.PersonAssignExternalID, person); err != nil {
			return models.Person{}, err
		}
		person.ExternalID = externalID
	}

	person.DisplayName = displayName
	person.UpdatedAt = requestcontext.Now(ctx)
	if err := person.Validate(); err != nil {
		return models.Person{}, err
	}
	if err := s.store.UpdatePerson(ctx, person); err != nil {
		return models.Person{}, fmt.Errorf("update person: %w", err)
	}

	s.emit(ctx, audit.ActionPersonUpdated, person.ID.String())
	return person, nil
}

// DeletePerson removes a member. Superuser only; a person referenced by any
// accusation, ratification or consequence is protected.
func (s *Service) DeletePerson(ctx context.Context, id domain.PersonID) error {
	ctx, span := s.span(ctx, "court.DeletePerson")
	defer span.End()

	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return fmt.Errorf("get person: %w", err)
	}
	if err := s.require(ctx, perms.PersonDelete, person); err != nil {
		return err
	}
	if err := s.store.DeletePerson(ctx, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

// summaries folds every ratified accusation into per-person score and count,
// then assigns dense ranks: equal (score, count) pairs share a rank and the
// next distinct pair gets the next integer.
func (s *Service) summaries(ctx context.Context) ([]PersonSummary, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	ratified, err := s.store.ListRatifiedAccusations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ratified accusations: %w", err)
	}

	perSuspect := make(map[domain.PersonID][]int, len(people))
	now := requestcontext.Now(ctx)
	for _, row := range ratified {
		perSuspect[row.Suspect] = append(perSuspect[row.Suspect], scores.Weight(row.CreatedAt, now))
	}

	summaries := make([]PersonSummary, 0, len(people))
	for _, person := range people {
		total := 0
		for _, weight := range perSuspect[person.ID] {
			total += weight
		}
		count := len(perSuspect[person.ID])
		summaries = append(summaries, PersonSummary{
			Person:        person,
			Score:         domain.ScoreFromHundredths(total),
			RatifiedCount: count,
			Train:         train.Ferrify(count, trainSeed(person.ID)),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Score != summaries[j].Score {
			return summaries[i].Score > summaries[j].Score
		}
		if summaries[i].RatifiedCount != summaries[j].RatifiedCount {
			return summaries[i].RatifiedCount > summaries[j].RatifiedCount
		}
		return summaries[i].Person.DisplayName < summaries[j].Person.DisplayName
	})
	rank := 0
	for i := range summaries {
		if i == 0 || summaries[i].Score != summaries[i-1].Score || summaries[i].RatifiedCount != summaries[i-1].RatifiedCount {
			rank++
		}
		summaries[i].Rank = rank
	}
	return summaries, nil
}

// trainSeed derives a stable per-person seed so a person's train only changes
// when their ratified count does.
func trainSeed(id domain.PersonID) int64 {
	raw := [16]byte(id)
	return int64(binary.BigEndian.Uint64(raw[:8]))
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
