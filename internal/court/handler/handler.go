// Package handler binds the court workflows to HTTP. Handlers decode, call
// the service and translate coded errors; no business rule lives here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ferry/internal/court/models"
	"ferry/internal/court/service"
	"ferry/internal/court/store"
	"ferry/pkg/domain"
	dErrors "ferry/pkg/domain-errors"
	"ferry/pkg/platform/httputil"
	"ferry/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/court_mocks.go -package=mocks Service

// Service is the court surface the handlers depend on.
type Service interface {
	CreateAccusation(ctx context.Context, quote string, suspect, createdBy domain.PersonID) (models.Accusation, error)
	GetAccusation(ctx context.Context, id domain.AccusationID) (models.Accusation, error)
	ListAccusations(ctx context.Context, filter store.AccusationFilter) ([]models.Accusation, error)
	UpdateAccusation(ctx context.Context, id domain.AccusationID, quote string) (models.Accusation, error)
	DeleteAccusation(ctx context.Context, id domain.AccusationID) error

	GetRatification(ctx context.Context, accusationID domain.AccusationID) (models.Ratification, error)
	CreateRatification(ctx context.Context, accusationID domain.AccusationID, createdBy domain.PersonID) (models.Ratification, error)
	DeleteRatification(ctx context.Context, accusationID domain.AccusationID) error

	CreateConsequence(ctx context.Context, content string, isEnabled bool, createdBy domain.PersonID) (models.Consequence, error)
	GetConsequence(ctx context.Context, id domain.ConsequenceID) (models.Consequence, error)
	ListConsequences(ctx context.Context) ([]models.Consequence, error)
	UpdateConsequence(ctx context.Context, id domain.ConsequenceID, content string, isEnabled bool) (models.Consequence, error)
	DeleteConsequence(ctx context.Context, id domain.ConsequenceID) error

	CreatePerson(ctx context.Context, displayName string, externalID *int64) (models.Person, error)
	GetPerson(ctx context.Context, id domain.PersonID) (service.PersonSummary, error)
	ListPeople(ctx context.Context) ([]service.PersonSummary, error)
	UpdatePerson(ctx context.Context, id domain.PersonID, displayName string, externalID *int64) (models.Person, error)
	DeletePerson(ctx context.Context, id domain.PersonID) error
}

// Handler serves the court API.
type Handler struct {
	court  Service
	logger *slog.Logger
}

// New creates a court Handler.
func New(court Service, logger *slog.Logger) *Handler {
	return &Handler{court: court, logger: logger}
}

// Register mounts the court routes on the router. Auth and platform
// middleware are applied by the caller.
func (h *Handler) Register(r chi.Router) {
	r.Route("/accusations", func(r chi.Router) {
		r.Get("/", h.handleListAccusations)
		r.Post("/", h.handleCreateAccusation)
		r.Route("/{accusationID}", func(r chi.Router) {
			r.Get("/", h.handleGetAccusation)
			r.Put("/", h.handleUpdateAccusation)
			r.Delete("/", h.handleDeleteAccusation)
			r.Get("/ratification", h.handleGetRatification)
			r.Post("/ratification", h.handleCreateRatification)
			r.Delete("/ratification", h.handleDeleteRatification)
		})
	})
	r.Route("/consequences", func(r chi.Router) {
		r.Get("/", h.handleListConsequences)
		r.Post("/", h.handleCreateConsequence)
		r.Route("/{consequenceID}", func(r chi.Router) {
			r.Get("/", h.handleGetConsequence)
			r.Put("/", h.handleUpdateConsequence)
			r.Delete("/", h.handleDeleteConsequence)
		})
	})
	r.Route("/people", func(r chi.Router) {
		r.Get("/", h.handleListPeople)
		r.Post("/", h.handleCreatePerson)
		r.Route("/{personID}", func(r chi.Router) {
			r.Get("/", h.handleGetPerson)
			r.Put("/", h.handleUpdatePerson)
			r.Delete("/", h.handleDeletePerson)
		})
	})
}

// decode parses a JSON request body, mapping parse failures to BadRequest.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

// writeError logs and writes a coded error. Client errors log at Warn, server
// errors at Error.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	attrs := []any{"request_id", requestcontext.RequestID(ctx), "error", err.Error()}
	if dErrors.ToHTTPStatus(code) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed", attrs...)
	} else {
		h.logger.WarnContext(ctx, "request rejected", attrs...)
	}
	httputil.WriteError(w, err)
}

// actorCreatedBy resolves the created_by attribution: an explicit value wins,
// otherwise the mutation is attributed to the actor's own person.
func actorCreatedBy(ctx context.Context, explicit string) (domain.PersonID, error) {
	if explicit != "" {
		return domain.ParsePersonID(explicit)
	}
	return requestcontext.Actor(ctx).PersonID, nil
}
