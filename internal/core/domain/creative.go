package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreativeAsset is an uploaded creative file plus its digital-ad properties
// and placement assignments. Owned by the upload subsystem; the engine only
// reads it.
type CreativeAsset struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	FileName   string
	MimeType   string
	// StorageURL is the raw storage location, possibly a time-limited
	// signed URL. Normalised to a stable CDN URL before rendering.
	StorageURL string
	ClickURL   string
	AltText    string
	// Headline, Body and CTA are populated only for text-style newsletter
	// ads.
	Headline string
	Body     string
	CTA      string
	// Width and Height are the declared creative dimensions, zero when
	// unknown.
	Width  int
	Height int
	// Channel is the creative's own channel association, a raw label.
	Channel     string
	Assignments []Assignment
	CreatedAt   time.Time
}

// Assignment ties a creative to one concrete order placement. Recorded at
// upload/assignment time by the asset subsystem.
type Assignment struct {
	PublicationID uuid.UUID `json:"publicationId"`
	PlacementID   string    `json:"placementId"`
	PlacementName string    `json:"placementName"`
	Channel       string    `json:"channel"`
}

// HasText reports whether the creative carries newsletter-style text content.
func (c CreativeAsset) HasText() bool {
	return c.Headline != "" || c.Body != ""
}

// AssignmentsFor returns the creative's assignments targeting the given
// publication.
func (c CreativeAsset) AssignmentsFor(publicationID uuid.UUID) []Assignment {
	var out []Assignment
	for _, a := range c.Assignments {
		if a.PublicationID == publicationID {
			out = append(out, a)
		}
	}
	return out
}

// Assigned reports whether the creative has any placement assignment at all.
// Unassigned creatives predate placement assignment and take the legacy
// one-script-per-order path.
func (c CreativeAsset) Assigned() bool {
	return len(c.Assignments) > 0
}
