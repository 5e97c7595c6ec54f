package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ferry/internal/audit"
	"ferry/internal/court/models"
	"ferry/internal/court/perms"
	"ferry/internal/court/store"
	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
	"ferry/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite

	store   *store.Memory
	audit   *audit.MemoryPublisher
	service *Service

	alice models.Person
	bob   models.Person
	carol models.Person
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = store.NewMemorySeeded(42)
	s.audit = audit.NewMemoryPublisher()
	engine := perms.NewEngine(perms.Policy{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.store, engine, s.audit, nil, logger)

	s.alice = s.addPerson("alice")
	s.bob = s.addPerson("bob")
	s.carol = s.addPerson("carol")
}

func (s *ServiceSuite) addPerson(name string) models.Person {
	person := models.Person{
		ID:          domain.NewPersonID(),
		DisplayName: name,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.Require().NoError(s.store.CreatePerson(context.Background(), person))
	return person
}

// as builds a request context authenticated as the given person.
func (s *ServiceSuite) as(person models.Person) context.Context {
	return requestcontext.WithActor(context.Background(), domain.Actor{
		TokenID:     "test-token",
		PersonID:    person.ID,
		DisplayName: person.DisplayName,
	})
}

func (s *ServiceSuite) asSuperuser() context.Context {
	return requestcontext.WithActor(context.Background(), domain.Actor{
		TokenID:   "admin-token",
		Superuser: true,
	})
}

func (s *ServiceSuite) addConsequence(owner models.Person, content string) models.Consequence {
	consequence, err := s.service.CreateConsequence(s.as(owner), content, true, owner.ID)
	s.Require().NoError(err)
	return consequence
}

// --- accusations ---

func (s *ServiceSuite) TestCreateAccusation() {
	s.Run("creates and audits", func() {
		accusation, err := s.service.CreateAccusation(s.as(s.alice), "said the thing", s.bob.ID, s.alice.ID)
		s.Require().NoError(err)
		s.Equal(s.bob.ID, accusation.Suspect)
		s.Equal(s.alice.ID, accusation.CreatedBy)

		events := s.audit.Events()
		s.Require().Len(events, 1)
		s.Equal(audit.ActionAccusationCreated, events[0].Action)
		s.Equal(accusation.ID.String(), events[0].ObjectID)
	})

	s.Run("rejects self accusation", func() {
		_, err := s.service.CreateAccusation(s.as(s.alice), "guilty of hubris", s.alice.ID, s.alice.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		fields := dErrors.FieldsOf(err)
		s.Require().Len(fields, 1)
		s.Equal("suspect", fields[0].Field)
		s.Equal("unable to create accusation that suspects the creator", fields[0].Detail)
	})

	s.Run("rejects empty quote", func() {
		_, err := s.service.CreateAccusation(s.as(s.alice), "   ", s.bob.ID, s.alice.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects overlong quote", func() {
		long := make([]rune, models.MaxQuoteLength+1)
		for i := range long {
			long[i] = 'q'
		}
		_, err := s.service.CreateAccusation(s.as(s.alice), string(long), s.bob.ID, s.alice.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects acting for another person", func() {
		_, err := s.service.CreateAccusation(s.as(s.carol), "framed", s.bob.ID, s.alice.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.ErrorContains(err, "you cannot act on behalf of other people")
	})

	s.Run("superuser may act for anyone", func() {
		accusation, err := s.service.CreateAccusation(s.asSuperuser(), "on the record", s.bob.ID, s.alice.ID)
		s.Require().NoError(err)
		s.Equal(s.alice.ID, accusation.CreatedBy)
	})
}

func (s *ServiceSuite) TestUpdateAccusation() {
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "first draft", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	s.Run("owner updates quote", func() {
		updated, err := s.service.UpdateAccusation(s.as(s.alice), accusation.ID, "final wording")
		s.Require().NoError(err)
		s.Equal("final wording", updated.Quote)
	})

	s.Run("non-owner is forbidden", func() {
		_, err := s.service.UpdateAccusation(s.as(s.carol), accusation.ID, "tampered")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("missing accusation is not found", func() {
		_, err := s.service.UpdateAccusation(s.as(s.alice), domain.NewAccusationID(), "whatever")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDeleteAccusation() {
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "delete me", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	s.Run("owner cannot delete under default policy", func() {
		err := s.service.DeleteAccusation(s.as(s.alice), accusation.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("superuser deletes", func() {
		s.Require().NoError(s.service.DeleteAccusation(s.asSuperuser(), accusation.ID))
		_, err := s.service.GetAccusation(s.as(s.alice), accusation.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDeleteAccusation_AccuserMayDeletePolicy() {
	engine := perms.NewEngine(perms.Policy{AccuserMayDelete: true})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(s.store, engine, s.audit, nil, logger)

	accusation, err := svc.CreateAccusation(s.as(s.alice), "mine to retract", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)

	s.Require().Error(svc.DeleteAccusation(s.as(s.carol), accusation.ID))
	s.Require().NoError(svc.DeleteAccusation(s.as(s.alice), accusation.ID))
}

func (s *ServiceSuite) TestListAccusations_Filters() {
	_, err := s.service.CreateAccusation(s.as(s.alice), "a against b", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)
	_, err = s.service.CreateAccusation(s.as(s.carol), "c against b", s.bob.ID, s.carol.ID)
	s.Require().NoError(err)
	_, err = s.service.CreateAccusation(s.as(s.bob), "b against a", s.alice.ID, s.bob.ID)
	s.Require().NoError(err)

	all, err := s.service.ListAccusations(s.as(s.alice), store.AccusationFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)

	againstBob, err := s.service.ListAccusations(s.as(s.alice), store.AccusationFilter{Suspect: s.bob.ID})
	s.Require().NoError(err)
	s.Len(againstBob, 2)

	byCarol, err := s.service.ListAccusations(s.as(s.alice), store.AccusationFilter{CreatedBy: s.carol.ID})
	s.Require().NoError(err)
	s.Require().Len(byCarol, 1)
	s.Equal("c against b", byCarol[0].Quote)
}

// --- consequences ---

func (s *ServiceSuite) TestConsequenceVisibility() {
	mine := s.addConsequence(s.alice, "washing up for a week")
	s.addConsequence(s.bob, "buy the next round")

	s.Run("owner lists only their own", func() {
		visible, err := s.service.ListConsequences(s.as(s.alice))
		s.Require().NoError(err)
		s.Require().Len(visible, 1)
		s.Equal(mine.ID, visible[0].ID)
	})

	s.Run("superuser lists all", func() {
		visible, err := s.service.ListConsequences(s.asSuperuser())
		s.Require().NoError(err)
		s.Len(visible, 2)
	})

	s.Run("non-owner read is not found", func() {
		_, err := s.service.GetConsequence(s.as(s.carol), mine.ID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("owner reads their own", func() {
		got, err := s.service.GetConsequence(s.as(s.alice), mine.ID)
		s.Require().NoError(err)
		s.Equal(mine.Content, got.Content)
	})
}

func (s *ServiceSuite) TestUpdateConsequence() {
	consequence := s.addConsequence(s.alice, "polish the trophies")

	s.Run("owner updates", func() {
		updated, err := s.service.UpdateConsequence(s.as(s.alice), consequence.ID, "polish all the trophies", false)
		s.Require().NoError(err)
		s.False(updated.IsEnabled)
	})

	s.Run("non-owner sees not found", func() {
		_, err := s.service.UpdateConsequence(s.as(s.bob), consequence.ID, "hijacked", true)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("empty content is rejected", func() {
		_, err := s.service.UpdateConsequence(s.as(s.alice), consequence.ID, "", true)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestDeleteConsequence_ReferencedIsProtected() {
	consequence := s.addConsequence(s.carol, "sing the society anthem")
	accusation, err := s.service.CreateAccusation(s.as(s.alice), "caught red-handed", s.bob.ID, s.alice.ID)
	s.Require().NoError(err)
	rat, err := s.service.CreateRatification(s.as(s.carol), accusation.ID, s.carol.ID)
	s.Require().NoError(err)
	s.Equal(consequence.ID, rat.Consequence)

	err = s.service.DeleteConsequence(s.as(s.carol), consequence.ID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.ErrorContains(err, "unable to delete as referenced by other objects")

	// Once the ratification is gone the consequence can be removed.
	s.Require().NoError(s.service.DeleteRatification(s.asSuperuser(), accusation.ID))
	s.Require().NoError(s.service.DeleteConsequence(s.as(s.carol), consequence.ID))
}
