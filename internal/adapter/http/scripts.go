package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pubtag/internal/core/port"
)

// scriptView is the JSON shape of one script in listings. The tag is the
// display rendering: transformed for the requested platform when the
// ?platform= query parameter is set, otherwise the stored base tag with
// literal macro tokens.
type scriptView struct {
	ID           string `json:"id"`
	CreativeID   string `json:"creativeId"`
	ItemPath     string `json:"itemPath,omitempty"`
	Channel      string `json:"channel"`
	CreativeName string `json:"creativeName"`
	Size         string `json:"size"`
	Comment      string `json:"comment"`
	Impression   string `json:"impressionUrl"`
	ClickTracker string `json:"clickTrackerUrl"`
	Asset        string `json:"assetUrl"`
	Tag          string `json:"tag"`
	SimpleTag    string `json:"simpleTag,omitempty"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
}

// handleListScripts returns the order's active scripts for display in a
// placements UI.
func (h *Handler) handleListScripts(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.uuidParam(w, r, "orderID")
	if !ok {
		return
	}
	platform := r.URL.Query().Get("platform")
	scripts, err := h.svc.ListScripts(r.Context(), orderID, platform)
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]scriptView, 0, len(scripts))
	for _, rs := range scripts {
		views = append(views, toView(rs))
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(views); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func toView(rs port.RenderedScript) scriptView {
	s := rs.Script
	return scriptView{
		ID:           s.ID.String(),
		CreativeID:   s.CreativeID.String(),
		ItemPath:     s.ItemPath,
		Channel:      s.Channel.String(),
		CreativeName: s.CreativeName,
		Size:         s.Size(),
		Comment:      s.Comment,
		Impression:   s.ImpressionURL,
		ClickTracker: s.ClickTrackerURL,
		Asset:        s.AssetURL,
		Tag:          rs.Tag,
		SimpleTag:    s.SimpleTag,
		Impressions:  s.Impressions,
		Clicks:       s.Clicks,
	}
}
