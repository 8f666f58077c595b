package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleExport returns the order's trafficking document: one self-contained
// HTML page with every active tag grouped by placement and pre-transformed
// for the publication's configured platform.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.uuidParam(w, r, "orderID")
	if !ok {
		return
	}
	doc, err := h.svc.Export(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = w.Write([]byte(doc)); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}
