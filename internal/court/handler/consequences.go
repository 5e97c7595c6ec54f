package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ferry/pkg/domain"
	"ferry/pkg/platform/httputil"
)

type createConsequenceRequest struct {
	Content   string `json:"content"`
	IsEnabled *bool  `json:"is_enabled"`
	CreatedBy string `json:"created_by"`
}

type updateConsequenceRequest struct {
	Content   string `json:"content"`
	IsEnabled bool   `json:"is_enabled"`
}

func (h *Handler) handleListConsequences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	consequences, err := h.court.ListConsequences(ctx)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderConsequences(consequences))
}

func (h *Handler) handleCreateConsequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createConsequenceRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	createdBy, err := actorCreatedBy(ctx, req.CreatedBy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	// New consequences join the pool enabled unless the request says otherwise.
	isEnabled := true
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}

	consequence, err := h.court.CreateConsequence(ctx, req.Content, isEnabled, createdBy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, renderConsequence(consequence))
}

func (h *Handler) handleGetConsequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseConsequenceID(chi.URLParam(r, "consequenceID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	consequence, err := h.court.GetConsequence(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderConsequence(consequence))
}

func (h *Handler) handleUpdateConsequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseConsequenceID(chi.URLParam(r, "consequenceID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req updateConsequenceRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	consequence, err := h.court.UpdateConsequence(ctx, id, req.Content, req.IsEnabled)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderConsequence(consequence))
}

func (h *Handler) handleDeleteConsequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseConsequenceID(chi.URLParam(r, "consequenceID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.court.DeleteConsequence(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
