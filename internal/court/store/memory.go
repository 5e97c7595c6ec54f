package store

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"ferry/internal/court/models"
	"ferry/pkg/domain"
)

// Memory is the in-process store used by unit tests and local development.
// A single mutex serializes every operation, which also gives
// CreateRatification the same exactly-one-success guarantee the SQL
// transaction provides.
type Memory struct {
	mu            sync.Mutex
	people        map[domain.PersonID]models.Person
	accusations   map[domain.AccusationID]models.Accusation
	ratifications map[domain.AccusationID]models.Ratification
	consequences  map[domain.ConsequenceID]models.Consequence
	rng           *rand.Rand
}

// NewMemory constructs an empty in-memory store. The consequence pick uses an
// unseeded source; tests needing a deterministic pick use NewMemorySeeded.
func NewMemory() *Memory {
	return newMemory(rand.New(rand.NewSource(rand.Int63())))
}

// NewMemorySeeded constructs an in-memory store whose random consequence
// selection is reproducible.
func NewMemorySeeded(seed int64) *Memory {
	return newMemory(rand.New(rand.NewSource(seed)))
}

func newMemory(rng *rand.Rand) *Memory {
	return &Memory{
		people:        make(map[domain.PersonID]models.Person),
		accusations:   make(map[domain.AccusationID]models.Accusation),
		ratifications: make(map[domain.AccusationID]models.Ratification),
		consequences:  make(map[domain.ConsequenceID]models.Consequence),
		rng:           rng,
	}
}

// ---------------------------------------------------------------------------
// People
// ---------------------------------------------------------------------------

func (s *Memory) CreatePerson(_ context.Context, person models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.people {
		if existing.DisplayName == person.DisplayName {
			return ErrDuplicate
		}
		if existing.ExternalID != nil && person.ExternalID != nil && *existing.ExternalID == *person.ExternalID {
			return ErrDuplicate
		}
	}
	s.people[person.ID] = person
	return nil
}

func (s *Memory) GetPerson(_ context.Context, id domain.PersonID) (models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	person, ok := s.people[id]
	if !ok {
		return models.Person{}, ErrNotFound
	}
	return person, nil
}

func (s *Memory) ListPeople(_ context.Context) ([]models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	people := make([]models.Person, 0, len(s.people))
	for _, person := range s.people {
		people = append(people, person)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].DisplayName < people[j].DisplayName })
	return people, nil
}

func (s *Memory) UpdatePerson(_ context.Context, person models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[person.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range s.people {
		if id == person.ID {
			continue
		}
		if existing.DisplayName == person.DisplayName {
			return ErrDuplicate
		}
		if existing.ExternalID != nil && person.ExternalID != nil && *existing.ExternalID == *person.ExternalID {
			return ErrDuplicate
		}
	}
	s.people[person.ID] = person
	return nil
}

func (s *Memory) DeletePerson(_ context.Context, id domain.PersonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[id]; !ok {
		return ErrNotFound
	}
	for _, accusation := range s.accusations {
		if accusation.Suspect == id || accusation.CreatedBy == id {
			return ErrReferenced
		}
	}
	for _, consequence := range s.consequences {
		if consequence.CreatedBy == id {
			return ErrReferenced
		}
	}
	for _, rat := range s.ratifications {
		if rat.CreatedBy == id {
			return ErrReferenced
		}
	}
	delete(s.people, id)
	return nil
}

func (s *Memory) ListRatifiedAccusations(_ context.Context) ([]RatifiedAccusation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []RatifiedAccusation
	for accusationID := range s.ratifications {
		accusation, ok := s.accusations[accusationID]
		if !ok {
			continue
		}
		out = append(out, RatifiedAccusation{Suspect: accusation.Suspect, CreatedAt: accusation.CreatedAt})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Accusations
// ---------------------------------------------------------------------------

func (s *Memory) CreateAccusation(_ context.Context, accusation models.Accusation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if accusation.Suspect == accusation.CreatedBy {
		return ErrSelfAccusation
	}
	if _, ok := s.people[accusation.Suspect]; !ok {
		return ErrNotFound
	}
	if _, ok := s.people[accusation.CreatedBy]; !ok {
		return ErrNotFound
	}
	s.accusations[accusation.ID] = accusation
	return nil
}

func (s *Memory) GetAccusation(_ context.Context, id domain.AccusationID) (models.Accusation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accusation, ok := s.accusations[id]
	if !ok {
		return models.Accusation{}, ErrNotFound
	}
	return accusation, nil
}

func (s *Memory) ListAccusations(_ context.Context, filter AccusationFilter) ([]models.Accusation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var accusations []models.Accusation
	for _, accusation := range s.accusations {
		if !filter.Suspect.IsNil() && accusation.Suspect != filter.Suspect {
			continue
		}
		if !filter.CreatedBy.IsNil() && accusation.CreatedBy != filter.CreatedBy {
			continue
		}
		accusations = append(accusations, accusation)
	}
	sort.Slice(accusations, func(i, j int) bool {
		return accusations[i].CreatedAt.After(accusations[j].CreatedAt)
	})
	return accusations, nil
}

func (s *Memory) UpdateAccusation(_ context.Context, accusation models.Accusation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.accusations[accusation.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Quote = accusation.Quote
	existing.UpdatedAt = accusation.UpdatedAt
	s.accusations[accusation.ID] = existing
	return nil
}

func (s *Memory) DeleteAccusation(_ context.Context, id domain.AccusationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accusations[id]; !ok {
		return ErrNotFound
	}
	delete(s.accusations, id)
	delete(s.ratifications, id)
	return nil
}

// ---------------------------------------------------------------------------
// Ratifications
// ---------------------------------------------------------------------------

func (s *Memory) GetRatification(_ context.Context, accusationID domain.AccusationID) (models.Ratification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rat, ok := s.ratifications[accusationID]
	if !ok {
		return models.Ratification{}, ErrNotFound
	}
	return rat, nil
}

func (s *Memory) CreateRatification(_ context.Context, rat models.Ratification) (models.Ratification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accusations[rat.Accusation]; !ok {
		return models.Ratification{}, ErrNotFound
	}
	if _, ok := s.ratifications[rat.Accusation]; ok {
		return models.Ratification{}, ErrAlreadyRatified
	}

	var enabled []domain.ConsequenceID
	for id, consequence := range s.consequences {
		if consequence.IsEnabled {
			enabled = append(enabled, id)
		}
	}
	if len(enabled) == 0 {
		return models.Ratification{}, ErrNoConsequences
	}
	// Map iteration order is random but not uniformly so; sort before
	// sampling to make the seeded selection reproducible.
	sort.Slice(enabled, func(i, j int) bool { return enabled[i].String() < enabled[j].String() })
	rat.Consequence = enabled[s.rng.Intn(len(enabled))]

	s.ratifications[rat.Accusation] = rat
	return rat, nil
}

func (s *Memory) DeleteRatification(_ context.Context, accusationID domain.AccusationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ratifications[accusationID]; !ok {
		return ErrNotFound
	}
	delete(s.ratifications, accusationID)
	return nil
}

// ---------------------------------------------------------------------------
// Consequences
// ---------------------------------------------------------------------------

func (s *Memory) CreateConsequence(_ context.Context, consequence models.Consequence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[consequence.CreatedBy]; !ok {
		return ErrNotFound
	}
	s.consequences[consequence.ID] = consequence
	return nil
}

func (s *Memory) GetConsequence(_ context.Context, id domain.ConsequenceID) (models.Consequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	consequence, ok := s.consequences[id]
	if !ok {
		return models.Consequence{}, ErrNotFound
	}
	return consequence, nil
}

func (s *Memory) ListConsequences(_ context.Context) ([]models.Consequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	consequences := make([]models.Consequence, 0, len(s.consequences))
	for _, consequence := range s.consequences {
		consequences = append(consequences, consequence)
	}
	sortConsequences(consequences)
	return consequences, nil
}

func (s *Memory) ListConsequencesOwnedBy(_ context.Context, owner domain.PersonID) ([]models.Consequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var consequences []models.Consequence
	for _, consequence := range s.consequences {
		if consequence.CreatedBy == owner {
			consequences = append(consequences, consequence)
		}
	}
	sortConsequences(consequences)
	return consequences, nil
}

func (s *Memory) UpdateConsequence(_ context.Context, consequence models.Consequence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.consequences[consequence.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Content = consequence.Content
	existing.IsEnabled = consequence.IsEnabled
	existing.UpdatedAt = consequence.UpdatedAt
	s.consequences[consequence.ID] = existing
	return nil
}

func (s *Memory) DeleteConsequence(_ context.Context, id domain.ConsequenceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consequences[id]; !ok {
		return ErrNotFound
	}
	for _, rat := range s.ratifications {
		if rat.Consequence == id {
			return ErrReferenced
		}
	}
	delete(s.consequences, id)
	return nil
}

func sortConsequences(consequences []models.Consequence) {
	sort.Slice(consequences, func(i, j int) bool {
		return consequences[i].Content < consequences[j].Content
	})
}
