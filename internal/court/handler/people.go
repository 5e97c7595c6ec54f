package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ferry/pkg/domain"
	"ferry/pkg/platform/httputil"
)

type createPersonRequest struct {
	DisplayName string `json:"display_name"`
	ExternalID  *int64 `json:"external_id"`
}

type updatePersonRequest struct {
	DisplayName string `json:"display_name"`
	ExternalID  *int64 `json:"external_id"`
}

func (h *Handler) handleListPeople(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.court.ListPeople(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderPersonSummaries(summaries))
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createPersonRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	person, err := h.court.CreatePerson(ctx, req.DisplayName, req.ExternalID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, renderPerson(person))
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	summary, err := h.court.GetPerson(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderPersonSummary(summary))
}

func (h *Handler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req updatePersonRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	person, err := h.court.UpdatePerson(ctx, id, req.DisplayName, req.ExternalID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderPerson(person))
}

func (h *Handler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.court.DeletePerson(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
