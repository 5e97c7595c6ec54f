package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ferry/internal/court/store"
	"ferry/pkg/domain"
	"ferry/pkg/platform/httputil"
)

type createAccusationRequest struct {
	Quote     string `json:"quote"`
	Suspect   string `json:"suspect"`
	CreatedBy string `json:"created_by"`
}

type updateAccusationRequest struct {
	Quote string `json:"quote"`
}

type createRatificationRequest struct {
	CreatedBy string `json:"created_by"`
}

func (h *Handler) handleListAccusations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter store.AccusationFilter
	if raw := r.URL.Query().Get("suspect"); raw != "" {
		suspect, err := domain.ParsePersonID(raw)
		if err != nil {
			h.writeError(ctx, w, err)
			return
		}
		filter.Suspect = suspect
	}
	if raw := r.URL.Query().Get("created_by"); raw != "" {
		createdBy, err := domain.ParsePersonID(raw)
		if err != nil {
			h.writeError(ctx, w, err)
			return
		}
		filter.CreatedBy = createdBy
	}

	accusations, err := h.court.ListAccusations(ctx, filter)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderAccusations(accusations))
}

func (h *Handler) handleCreateAccusation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createAccusationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	suspect, err := domain.ParsePersonID(req.Suspect)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	createdBy, err := actorCreatedBy(ctx, req.CreatedBy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	accusation, err := h.court.CreateAccusation(ctx, req.Quote, suspect, createdBy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, renderAccusation(accusation))
}

func (h *Handler) handleGetAccusation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseAccusationID(chi.URLParam(r, "accusationID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	accusation, err := h.court.GetAccusation(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderAccusation(accusation))
}

func (h *Handler) handleUpdateAccusation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseAccusationID(chi.URLParam(r, "accusationID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var req updateAccusationRequest
	if err := decode(r, &req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	accusation, err := h.court.UpdateAccusation(ctx, id, req.Quote)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderAccusation(accusation))
}

func (h *Handler) handleDeleteAccusation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseAccusationID(chi.URLParam(r, "accusationID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.court.DeleteAccusation(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetRatification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseAccusationID(chi.URLParam(r, "accusationID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	rat, err := h.court.GetRatification(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, renderRatification(rat))
}

func (h *Handler) handleCreateRatification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseAccusationID(chi.URLParam(r, "accusationID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	// An empty body ratifies as the actor.
	req := createRatificationRequest{}
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			h.writeError(ctx, w, err)
			return
		}
	}
	createdBy, err := actorCreatedBy(ctx, req.CreatedBy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	rat, err := h.court.CreateRatification(ctx, id, createdBy)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, renderRatification(rat))
}

func (h *Handler) handleDeleteRatification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseAccusationID(chi.URLParam(r, "accusationID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.court.DeleteRatification(ctx, id); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
