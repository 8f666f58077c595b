package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScriptStatus is the lifecycle state of a tracking script. Scripts are never
// edited in place: a refresh soft-deletes and regenerates.
type ScriptStatus string

const (
	ScriptActive  ScriptStatus = "active"
	ScriptDeleted ScriptStatus = "deleted"
)

// TrackingScript is the engine's output entity: the embeddable tag plus the
// attribution URLs generated for one (creative, placement) pair. At most one
// active script exists per (campaign, publication, creative, item path)
// tuple; the storage layer enforces this with a partial unique index.
type TrackingScript struct {
	ID            uuid.UUID
	CampaignID    uuid.UUID
	PublicationID uuid.UUID
	OrderID       uuid.UUID
	CreativeID    uuid.UUID
	// ItemPath is the placement group identifier, empty for legacy
	// order-level scripts.
	ItemPath string
	Channel  Channel

	// Creative rendering info, denormalised so a script stays renderable
	// after the source creative changes.
	CreativeName string
	ClickURL     string
	ImageURL     string
	Width        int
	Height       int
	Headline     string
	Body         string
	CTA          string

	ImpressionURL   string
	ClickTrackerURL string
	AssetURL        string

	// Tag is the full rendered markup with macro tokens left literal.
	// SimpleTag is the URL-only variant, populated for image newsletters.
	Tag       string
	SimpleTag string
	Comment   string

	Status ScriptStatus
	// Impressions and Clicks are owned by the external redirect/pixel
	// handler; the engine only reads them back for display.
	Impressions int64
	Clicks      int64
	CreatedAt   time.Time
}

// Size returns the script's dimensions in the WxH wire form used in
// attribution URLs, e.g. "970x90".
func (s TrackingScript) Size() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
