package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pubtag/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCreativeNotFound = errors.New("creative not found")
)

// TrackingRepository is the outbound port to the record store. Campaigns,
// orders and creatives are read-only inputs resolved by surrounding systems;
// tracking scripts are the engine's own entity. Implementations must make
// InsertScriptIfAbsent atomic so concurrent generation runs cannot create
// duplicates.
type TrackingRepository interface {
	// GetCampaign returns a campaign by id, nil when missing.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetOrder returns an order by id, nil when missing.
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// ListOrdersByCampaign returns every order for a campaign.
	ListOrdersByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Order, error)
	// GetCreative returns a creative by id, nil when missing.
	GetCreative(ctx context.Context, id uuid.UUID) (*domain.CreativeAsset, error)
	// ListCreativesByCampaign returns every creative uploaded to a campaign.
	ListCreativesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.CreativeAsset, error)

	// InsertScriptIfAbsent inserts the script unless an active script
	// already exists for its (campaign, publication, creative, itemPath)
	// key. It reports whether a row was inserted; false means the key was
	// already covered, which is a normal idempotent no-op.
	InsertScriptIfAbsent(ctx context.Context, script *domain.TrackingScript) (bool, error)
	// ListScripts returns scripts matching the filter, ordered by item
	// path then creation time.
	ListScripts(ctx context.Context, f ScriptFilter) ([]domain.TrackingScript, error)
	// SoftDeleteScripts marks all active scripts for the (campaign,
	// publication) pair as deleted and returns how many were affected.
	SoftDeleteScripts(ctx context.Context, campaignID, publicationID uuid.UUID) (int64, error)
}

// ScriptFilter narrows ListScripts. Nil fields are not filtered on; empty
// Status means any status.
type ScriptFilter struct {
	CampaignID    *uuid.UUID
	PublicationID *uuid.UUID
	Status        domain.ScriptStatus
}
