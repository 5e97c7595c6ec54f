package service

import (
	"context"
	"sync"
	"time"

	"ferry/internal/audit"
	"ferry/internal/court/models"
	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
	"ferry/pkg/requestcontext"
)

func (s *ServiceSuite) TestCreateRatification() {
	consequence := s.addConsequence(s.carol, "organise the next social")
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "seen doing it", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	s.Run("assigns the enabled consequence", func() {
		rat, err := s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
		s.Require().NoError(err)
		s.Equal(accusation.ID, rat.Accusation)
		s.Equal(consequence.ID, rat.Consequence)
		s.Equal(s.carol.ID, rat.CreatedBy)
	})

	s.Run("second attempt conflicts", func() {
		_, err := s.service.CreateRatification(s.asSuperuser(), accusation.ID, s.carol.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.ErrorContains(err, "accusation is already ratified")
	})

	s.Run("missing accusation is not found", func() {
		_, err := s.service.CreateRatification(s.as(s.carol), domain.NewAccusationID(), s.carol.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestCreateRatification_Eligibility() {
	s.addConsequence(s.carol, "bring biscuits")
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "undeniable", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	s.Run("accuser cannot ratify", func() {
		_, err := s.service.CreateRatification(s.as(s.alice), accusation.ID, s.alice.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.ErrorContains(err, "you cannot ratify an accusation that you made")
	})

	s.Run("suspect cannot ratify", func() {
		_, err := s.service.CreateRatification(s.as(s.bob), accusation.ID, s.bob.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.ErrorContains(err, "you cannot ratify an accusation made against you")
	})

	s.Run("cannot ratify on behalf of another person", func() {
		_, err := s.service.CreateRatification(s.as(s.bob), accusation.ID, s.carol.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.ErrorContains(err, "you cannot act on behalf of other people")
	})
}

func (s *ServiceSuite) TestCreateRatification_EmptyPool() {
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "no punishments configured", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	_, err = s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.ErrorContains(err, "no consequences available to assign")

	// A disabled consequence does not refill the pool.
	consequence := s.addConsequence(s.carol, "benchwarming")
	_, err = s.service.UpdateConsequence(s.as(s.carol), consequence.ID, "benchwarming", false)
	s.Require().NoError(err)

	_, err = s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

// TestCreateRatification_Concurrent drives two simultaneous ratifiers at one
// accusation: exactly one wins, the other observes the conflict, and exactly
// one ratification row exists afterwards.
func (s *ServiceSuite) TestCreateRatification_Concurrent() {
	dave := s.addPerson("dave")
	s.addConsequence(s.carol, "sweep the clubhouse")
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "hotly contested", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	ratifiers := []models.Person{s.carol, dave}
	errs := make([]error, len(ratifiers))
	var wg sync.WaitGroup
	for i, ratifier := range ratifiers {
		wg.Add(1)
		go func(i int, ratifier models.Person) {
			defer wg.Done()
			_, errs[i] = s.service.CreateRatification(s.as(ratifier), accusation.ID, ratifier.ID)
		}(i, ratifier)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case dErrors.HasCode(err, dErrors.CodeConflict):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, successes)
	s.Equal(1, conflicts)

	rat, err := s.service.GetRatification(s.as(s.alice), accusation.ID)
	s.Require().NoError(err)
	s.Equal(accusation.ID, rat.Accusation)
}

func (s *ServiceSuite) TestGetRatification_NotRatified() {
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "pending judgement", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	_, err = s.service.GetRatification(s.as(s.bob), accusation.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.ErrorContains(err, "accusation is not ratified")
}

func (s *ServiceSuite) TestDeleteRatification() {
	s.addConsequence(s.carol, "fetch the teas")
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "to be withdrawn", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)
	_, err = s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
	s.Require().NoError(err)

	s.Run("member cannot delete", func() {
		err := s.service.DeleteRatification(s.as(s.carol), accusation.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("superuser deletes", func() {
		s.Require().NoError(s.service.DeleteRatification(s.asSuperuser(), accusation.ID))
	})

	s.Run("second delete reports not ratified", func() {
		err := s.service.DeleteRatification(s.asSuperuser(), accusation.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.ErrorContains(err, "accusation is not ratified")
	})

	s.Run("accusation can be ratified again", func() {
		_, err := s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
		s.Require().NoError(err)
	})
}

func (s *ServiceSuite) TestRatification_AuditTrail() {
	s.addConsequence(s.carol, "minute the meeting")
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(s.as(s.carol), now)

	accusation, err := s.service.CreateAccusation(requestcontext.WithTime(s.as(s.alice), now), "logged", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)
	rat, err := s.service.CreateRatification(ctx, accusation.ID, s.carol.ID)
	s.Require().NoError(err)
	s.Equal(now, rat.CreatedAt)

	var actions []string
	for _, event := range s.audit.Events() {
		actions = append(actions, event.Action)
	}
	s.Contains(actions, audit.ActionAccusationCreated)
	s.Contains(actions, audit.ActionRatificationCreated)
}

// Guard against the fast path masking store-level errors: a store that lost
// its accusation between the check and the insert still maps to not found.
func (s *ServiceSuite) TestCreateRatification_AccusationRemovedUnderneath() {
	s.addConsequence(s.carol, "stack the chairs")
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "vanishing", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.store.DeleteAccusation(context.Background(), accusation.ID))

	_, err = s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
