package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents an advertiser's campaign. The engine reads it for the
// advertiser/campaign display names and for the legacy per-publication
// inventory hints; it never writes campaigns.
type Campaign struct {
	ID             uuid.UUID
	AdvertiserName string
	Name           string
	// SelectedInventory maps a publication id (string form) to the legacy
	// channel-by-dimension hints recorded when the campaign selected
	// inventory. Used only when a creative/placement lacks an explicit
	// channel.
	SelectedInventory map[string][]AssetRef
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AssetRef is a legacy hint pairing a raw channel label with the pixel
// dimensions it was sold at. Pre-assignment creatives are matched against
// these by size.
type AssetRef struct {
	Channel string `json:"channel"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}
