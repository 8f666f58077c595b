package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pubtag/internal/core/domain"
	"pubtag/internal/core/port"
)

// TrackingRepository implements port.TrackingRepository using pgxpool for
// PostgreSQL. Idempotency is enforced by the partial unique index on
// (campaign_id, publication_id, creative_id, item_path) WHERE
// status = 'active'; InsertScriptIfAbsent rides that index with ON CONFLICT
// DO NOTHING, so concurrent invocations cannot create duplicates.
type TrackingRepository struct {
	pool *pgxpool.Pool
}

var _ port.TrackingRepository = (*TrackingRepository)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewTrackingRepository returns a new repository instance.
func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{pool: pool}
}

// GetCampaign returns a campaign by id, nil when missing.
func (r *TrackingRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var (
		c            domain.Campaign
		inventoryRaw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, advertiser_name, name, selected_inventory, created_at, updated_at
		 FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.AdvertiserName, &c.Name, &inventoryRaw, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(inventoryRaw) > 0 {
		if err = json.Unmarshal(inventoryRaw, &c.SelectedInventory); err != nil {
			return nil, fmt.Errorf("decode selected inventory: %w", err)
		}
	}
	return &c, nil
}

// GetOrder returns an order by id, nil when missing.
func (r *TrackingRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	rows, err := r.pool.Query(ctx, orderQuery+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

// ListOrdersByCampaign returns every order for a campaign.
func (r *TrackingRepository) ListOrdersByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, orderQuery+` WHERE campaign_id = $1 ORDER BY created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanOrder)
}

const orderQuery = `
	SELECT id, campaign_id, publication_id, publication_name, platform,
	       placements, asset_refs, created_at
	FROM orders`

func scanOrder(row pgx.CollectableRow) (domain.Order, error) {
	var o domain.Order
	var placementsRaw, refsRaw []byte
	err := row.Scan(&o.ID, &o.CampaignID, &o.PublicationID, &o.PublicationName,
		&o.Platform, &placementsRaw, &refsRaw, &o.CreatedAt)
	if err != nil {
		return o, err
	}
	if len(placementsRaw) > 0 {
		if err = json.Unmarshal(placementsRaw, &o.Placements); err != nil {
			return o, fmt.Errorf("decode placements: %w", err)
		}
	}
	if len(refsRaw) > 0 {
		if err = json.Unmarshal(refsRaw, &o.AssetRefs); err != nil {
			return o, fmt.Errorf("decode asset refs: %w", err)
		}
	}
	return o, nil
}

// GetCreative returns a creative by id, nil when missing.
func (r *TrackingRepository) GetCreative(ctx context.Context, id uuid.UUID) (*domain.CreativeAsset, error) {
	rows, err := r.pool.Query(ctx, creativeQuery+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	creatives, err := pgx.CollectRows(rows, scanCreative)
	if err != nil {
		return nil, err
	}
	if len(creatives) == 0 {
		return nil, nil
	}
	return &creatives[0], nil
}

// ListCreativesByCampaign returns every creative uploaded to a campaign.
func (r *TrackingRepository) ListCreativesByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.CreativeAsset, error) {
	rows, err := r.pool.Query(ctx, creativeQuery+` WHERE campaign_id = $1 ORDER BY created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCreative)
}

const creativeQuery = `
	SELECT id, campaign_id, file_name, mime_type, storage_url, click_url,
	       alt_text, headline, body, cta, width, height, channel,
	       assignments, created_at
	FROM creatives`

func scanCreative(row pgx.CollectableRow) (domain.CreativeAsset, error) {
	var (
		c              domain.CreativeAsset
		assignmentsRaw []byte
	)
	err := row.Scan(&c.ID, &c.CampaignID, &c.FileName, &c.MimeType, &c.StorageURL,
		&c.ClickURL, &c.AltText, &c.Headline, &c.Body, &c.CTA,
		&c.Width, &c.Height, &c.Channel, &assignmentsRaw, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	if len(assignmentsRaw) > 0 {
		if err = json.Unmarshal(assignmentsRaw, &c.Assignments); err != nil {
			return c, fmt.Errorf("decode assignments: %w", err)
		}
	}
	return c, nil
}

// InsertScriptIfAbsent inserts the script unless an active one already
// covers its key. Reports whether a row was inserted.
func (r *TrackingRepository) InsertScriptIfAbsent(ctx context.Context, s *domain.TrackingScript) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO tracking_scripts (
			id, campaign_id, publication_id, order_id, creative_id, item_path,
			channel, creative_name, click_url, image_url, width, height,
			headline, body, cta, impression_url, click_tracker_url, asset_url,
			tag, simple_tag, comment, status, created_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,
			$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23
		)
		ON CONFLICT (campaign_id, publication_id, creative_id, item_path)
			WHERE status = 'active'
		DO NOTHING`,
		s.ID, s.CampaignID, s.PublicationID, s.OrderID, s.CreativeID, s.ItemPath,
		s.Channel, s.CreativeName, s.ClickURL, s.ImageURL, s.Width, s.Height,
		s.Headline, s.Body, s.CTA, s.ImpressionURL, s.ClickTrackerURL, s.AssetURL,
		s.Tag, s.SimpleTag, s.Comment, s.Status, s.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListScripts returns scripts matching the filter, ordered by item path then
// creation time.
func (r *TrackingRepository) ListScripts(ctx context.Context, f port.ScriptFilter) ([]domain.TrackingScript, error) {
	q := psql.Select(
		"id", "campaign_id", "publication_id", "order_id", "creative_id",
		"item_path", "channel", "creative_name", "click_url", "image_url",
		"width", "height", "headline", "body", "cta", "impression_url",
		"click_tracker_url", "asset_url", "tag", "simple_tag", "comment",
		"status", "impressions", "clicks", "created_at").
		From("tracking_scripts").
		OrderBy("item_path", "created_at")
	if f.CampaignID != nil {
		q = q.Where(sq.Eq{"campaign_id": *f.CampaignID})
	}
	if f.PublicationID != nil {
		q = q.Where(sq.Eq{"publication_id": *f.PublicationID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": string(f.Status)})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanScript)
}

func scanScript(row pgx.CollectableRow) (domain.TrackingScript, error) {
	var s domain.TrackingScript
	err := row.Scan(&s.ID, &s.CampaignID, &s.PublicationID, &s.OrderID, &s.CreativeID,
		&s.ItemPath, &s.Channel, &s.CreativeName, &s.ClickURL, &s.ImageURL,
		&s.Width, &s.Height, &s.Headline, &s.Body, &s.CTA, &s.ImpressionURL,
		&s.ClickTrackerURL, &s.AssetURL, &s.Tag, &s.SimpleTag, &s.Comment,
		&s.Status, &s.Impressions, &s.Clicks, &s.CreatedAt)
	return s, err
}

// SoftDeleteScripts marks all active scripts for the (campaign, publication)
// pair as deleted.
func (r *TrackingRepository) SoftDeleteScripts(ctx context.Context, campaignID, publicationID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tracking_scripts SET status = 'deleted'
		WHERE campaign_id = $1 AND publication_id = $2 AND status = 'active'`,
		campaignID, publicationID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
