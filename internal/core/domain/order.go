package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is one campaign x publication agreement. It carries the publication's
// resolved inventory items and optional legacy asset references. Read-only
// input to the engine.
type Order struct {
	ID              uuid.UUID
	CampaignID      uuid.UUID
	PublicationID   uuid.UUID
	PublicationName string
	// Platform is the publication's configured ad server or email platform
	// identifier, used to pre-transform tags at export time.
	Platform   string
	Placements []Placement
	AssetRefs  []AssetRef
	CreatedAt  time.Time
}

// Placement is a single sellable slot in the publication's inventory.
type Placement struct {
	// ID is the placement group identifier, e.g. "leaderboard@970x90" or
	// "print-fullpage-q3". It doubles as the script's item path.
	ID string `json:"id"`
	// Name is the display name shown to traffickers, which may embed the
	// slot size, e.g. "Leaderboard (970x90)".
	Name string `json:"name"`
	// Channel is the raw, free-text channel label for the slot.
	Channel string `json:"channel"`
}

// PlacementByID returns the order placement with the given group identifier.
func (o Order) PlacementByID(id string) (Placement, bool) {
	for _, p := range o.Placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}
