package service

import (
	"context"
	"time"

	"ferry/internal/court/models"
	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
	"ferry/pkg/requestcontext"
)

// ratifyAt seeds a ratified accusation against suspect with a controlled
// creation time, bypassing the workflows so tests can pin score inputs.
func (s *ServiceSuite) ratifyAt(suspect models.Person, createdAt time.Time) {
	ctx := context.Background()
	accusation := models.Accusation{
		ID:        domain.NewAccusationID(),
		Quote:     "backdated for scoring",
		Suspect:   suspect.ID,
		CreatedBy: s.alice.ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if suspect.ID == s.alice.ID {
		accusation.CreatedBy = s.bob.ID
	}
	s.Require().NoError(s.store.CreateAccusation(ctx, accusation))
	_, err := s.store.CreateRatification(ctx, models.Ratification{
		ID:         domain.NewRatificationID(),
		Accusation: accusation.ID,
		CreatedBy:  s.carol.ID,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestListPeople_ScoresAndRanks() {
	s.addConsequence(s.carol, "guard the mascot")

	// Evaluated at 2023-01-01; cutoff is 2022-09-01.
	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	s.ratifyAt(s.bob, time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC)) // 1.00, boundary inclusive
	s.ratifyAt(s.bob, time.Date(2022, time.August, 31, 0, 0, 0, 0, time.UTC))   // 0.75
	s.ratifyAt(s.alice, time.Date(2020, time.October, 1, 0, 0, 0, 0, time.UTC)) // 0.50

	ctx := requestcontext.WithTime(s.as(s.alice), now)
	summaries, err := s.service.ListPeople(ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)

	byName := map[string]PersonSummary{}
	for _, summary := range summaries {
		byName[summary.Person.DisplayName] = summary
	}

	s.Equal("1.75", byName["bob"].Score.String())
	s.Equal(2, byName["bob"].RatifiedCount)
	s.Equal(1, byName["bob"].Rank)

	s.Equal("0.50", byName["alice"].Score.String())
	s.Equal(1, byName["alice"].RatifiedCount)
	s.Equal(2, byName["alice"].Rank)

	s.Equal("0.00", byName["carol"].Score.String())
	s.Equal(0, byName["carol"].RatifiedCount)
	s.Equal(3, byName["carol"].Rank)

	// Ordering follows rank.
	s.Equal("bob", summaries[0].Person.DisplayName)
}

func (s *ServiceSuite) TestListPeople_DenseRankOnTies() {
	s.addConsequence(s.carol, "audit the accounts")
	dave := s.addPerson("dave")

	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	when := time.Date(2022, time.October, 1, 0, 0, 0, 0, time.UTC)
	s.ratifyAt(s.alice, when)
	s.ratifyAt(dave, when)
	s.ratifyAt(s.bob, when)
	s.ratifyAt(s.bob, when)

	summaries, err := s.service.ListPeople(requestcontext.WithTime(s.as(s.alice), now))
	s.Require().NoError(err)

	byName := map[string]PersonSummary{}
	for _, summary := range summaries {
		byName[summary.Person.DisplayName] = summary
	}

	s.Equal(1, byName["bob"].Rank)
	// alice and dave tie on score and count and share the dense rank.
	s.Equal(2, byName["alice"].Rank)
	s.Equal(2, byName["dave"].Rank)
	s.Equal(3, byName["carol"].Rank)
}

func (s *ServiceSuite) TestListPeople_Train() {
	s.addConsequence(s.carol, "hold the banner")
	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	when := time.Date(2022, time.November, 5, 0, 0, 0, 0, time.UTC)
	s.ratifyAt(s.bob, when)
	s.ratifyAt(s.bob, when)
	s.ratifyAt(s.bob, when)

	first, err := s.service.ListPeople(requestcontext.WithTime(s.as(s.alice), now))
	s.Require().NoError(err)
	second, err := s.service.ListPeople(requestcontext.WithTime(s.as(s.alice), now))
	s.Require().NoError(err)

	byName := func(summaries []PersonSummary, name string) PersonSummary {
		for _, summary := range summaries {
			if summary.Person.DisplayName == name {
				return summary
			}
		}
		s.FailNow("person missing", name)
		return PersonSummary{}
	}

	bobTrain := byName(first, "bob").Train
	s.Len([]rune(bobTrain), 3)
	// The train is stable across evaluations.
	s.Equal(bobTrain, byName(second, "bob").Train)
	// No ratifications means no train.
	s.Empty(byName(first, "carol").Train)
}

func (s *ServiceSuite) TestGetPerson() {
	s.addConsequence(s.carol, "chair the meeting")
	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	s.ratifyAt(s.bob, time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC))

	summary, err := s.service.GetPerson(requestcontext.WithTime(s.as(s.alice), now), s.bob.ID)
	s.Require().NoError(err)
	s.Equal("1.00", summary.Score.String())
	s.Equal(1, summary.Rank)

	_, err = s.service.GetPerson(s.as(s.alice), domain.NewPersonID())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdatePerson() {
	s.Run("self updates display name", func() {
		updated, err := s.service.UpdatePerson(s.as(s.alice), s.alice.ID, "alice the elder", s.alice.ExternalID)
		s.Require().NoError(err)
		s.Equal("alice the elder", updated.DisplayName)
	})

	s.Run("other member is forbidden", func() {
		_, err := s.service.UpdatePerson(s.as(s.bob), s.alice.ID, "hijacked", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("self cannot assign external id", func() {
		external := int64(12345)
		_, err := s.service.UpdatePerson(s.as(s.bob), s.bob.ID, "bob", &external)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("superuser assigns external id", func() {
		external := int64(12345)
		updated, err := s.service.UpdatePerson(s.asSuperuser(), s.bob.ID, "bob", &external)
		s.Require().NoError(err)
		s.Require().NotNil(updated.ExternalID)
		s.Equal(external, *updated.ExternalID)
	})

	s.Run("duplicate display name conflicts", func() {
		_, err := s.service.UpdatePerson(s.as(s.carol), s.carol.ID, "bob", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *ServiceSuite) TestCreateAndDeletePerson() {
	s.Run("member cannot create", func() {
		_, err := s.service.CreatePerson(s.as(s.alice), "eve", nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("superuser creates and deletes", func() {
		person, err := s.service.CreatePerson(s.asSuperuser(), "eve", nil)
		s.Require().NoError(err)
		s.Require().NoError(s.service.DeletePerson(s.asSuperuser(), person.ID))
	})

	s.Run("referenced person is protected", func() {
		_, err := s.service.CreateAccusation(s.as(s.alice), "pinned", s.bob.ID, s.alice.ID)
		s.Require().NoError(err)
		err = s.service.DeletePerson(s.asSuperuser(), s.bob.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.ErrorContains(err, "unable to delete as referenced by other objects")
	})
}
