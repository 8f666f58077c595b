package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pubtag/internal/core/port"
)

// handleGenerateForOrder triggers generation for all eligible creatives of
// the order's campaign against this order. Missing order or campaign is a
// hard failure (404, no partial writes); zero eligible creatives is a 200
// with zero counts and an advisory message.
func (h *Handler) handleGenerateForOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.uuidParam(w, r, "orderID")
	if !ok {
		return
	}
	res, err := h.svc.GenerateForOrder(r.Context(), orderID)
	h.writeGenerationResult(w, res, err)
}

// handleGenerateForAsset triggers generation for one newly uploaded creative
// across all orders of its campaign.
func (h *Handler) handleGenerateForAsset(w http.ResponseWriter, r *http.Request) {
	creativeID, ok := h.uuidParam(w, r, "creativeID")
	if !ok {
		return
	}
	res, err := h.svc.GenerateForAsset(r.Context(), creativeID)
	h.writeGenerationResult(w, res, err)
}

// handleRefresh soft-deletes the order's active scripts and regenerates from
// current creatives.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.uuidParam(w, r, "orderID")
	if !ok {
		return
	}
	res, err := h.svc.Refresh(r.Context(), orderID)
	h.writeGenerationResult(w, res, err)
}

func (h *Handler) uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeGenerationResult(w http.ResponseWriter, res *port.GenerationResult, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrOrderNotFound),
		errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrCreativeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("generation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
