package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pubtag/internal/config/configs"
	"pubtag/internal/core/domain"
	"pubtag/internal/core/port"
	"pubtag/internal/core/tracking"
	"pubtag/internal/metrics"
)

// Generator drives tag generation: it loads the already-resolved campaign,
// order and creative records, walks every uncovered (creative, placement)
// pair through dimension resolution, channel classification, URL building
// and rendering, and persists the resulting scripts. It holds no state
// across invocations; the record store is the only shared resource, and
// idempotency makes every invocation safely retryable.
type Generator struct {
	repo      port.TrackingRepository
	urls      *tracking.URLBuilder
	cdn       *tracking.CDNNormalizer
	platforms *tracking.Transformer
	logger    *slog.Logger
	counters  *metrics.Generation
}

var _ port.ScriptGenerator = (*Generator)(nil)

// NewGenerator wires the engine from explicit configuration. The tracking
// section was validated at startup; an empty base URL or CDN domain is a
// configured degradation, not an error here.
func NewGenerator(repo port.TrackingRepository, track configs.Tracking, envName string, logger *slog.Logger, counters *metrics.Generation) (*Generator, error) {
	platforms, err := tracking.NewTransformer()
	if err != nil {
		return nil, err
	}
	return &Generator{
		repo: repo,
		urls: &tracking.URLBuilder{
			BaseURL:            track.BaseURL,
			PixelPath:          track.PixelPath,
			ClickPath:          track.ClickPath,
			AssetPath:          track.AssetPath,
			PlaceholderLanding: track.PlaceholderLanding,
			Logger:             logger,
		},
		cdn: &tracking.CDNNormalizer{
			Domain: track.CDNDomain,
			Env:    envName,
			Logger: logger,
		},
		platforms: platforms,
		logger:    logger,
		counters:  counters,
	}, nil
}

// GenerateForOrder generates scripts for all eligible creatives of the
// order's campaign against this one order.
func (g *Generator) GenerateForOrder(ctx context.Context, orderID uuid.UUID) (*port.GenerationResult, error) {
	ord, camp, err := g.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	res := &port.GenerationResult{}
	if err = g.runOrder(ctx, camp, ord, "order", res); err != nil {
		return nil, err
	}
	finishResult(res)
	return res, nil
}

// GenerateForAsset generates scripts for one newly uploaded creative across
// all orders of its campaign.
func (g *Generator) GenerateForAsset(ctx context.Context, creativeID uuid.UUID) (*port.GenerationResult, error) {
	cr, err := g.repo.GetCreative(ctx, creativeID)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, port.ErrCreativeNotFound
	}
	camp, err := g.repo.GetCampaign(ctx, cr.CampaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	orders, err := g.repo.ListOrdersByCampaign(ctx, cr.CampaignID)
	if err != nil {
		return nil, err
	}
	res := &port.GenerationResult{}
	for i := range orders {
		g.generatePairs(ctx, camp, &orders[i], *cr, "asset", res)
	}
	finishResult(res)
	return res, nil
}

// Refresh soft-deletes every active script for the order's (campaign,
// publication) pair and regenerates from current creatives. This is the only
// path that produces a net change when source data is unchanged.
func (g *Generator) Refresh(ctx context.Context, orderID uuid.UUID) (*port.GenerationResult, error) {
	ord, camp, err := g.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	deleted, err := g.repo.SoftDeleteScripts(ctx, ord.CampaignID, ord.PublicationID)
	if err != nil {
		return nil, err
	}
	res := &port.GenerationResult{Deleted: int(deleted)}
	if err = g.runOrder(ctx, camp, ord, "refresh", res); err != nil {
		return nil, err
	}
	finishResult(res)
	return res, nil
}

// ListScripts returns the order's active scripts, each tag transformed for
// the requested platform when one is given.
func (g *Generator) ListScripts(ctx context.Context, orderID uuid.UUID, platform string) ([]port.RenderedScript, error) {
	ord, _, err := g.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	scripts, err := g.activeScripts(ctx, ord)
	if err != nil {
		return nil, err
	}
	out := make([]port.RenderedScript, 0, len(scripts))
	for _, s := range scripts {
		tag := s.Tag
		if platform != "" {
			tag = g.platforms.Apply(tag, s.ClickTrackerURL, platform)
		}
		out = append(out, port.RenderedScript{Script: s, Tag: tag})
	}
	return out, nil
}

func (g *Generator) loadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, *domain.Campaign, error) {
	ord, err := g.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if ord == nil {
		return nil, nil, port.ErrOrderNotFound
	}
	camp, err := g.repo.GetCampaign(ctx, ord.CampaignID)
	if err != nil {
		return nil, nil, err
	}
	if camp == nil {
		return nil, nil, port.ErrCampaignNotFound
	}
	return ord, camp, nil
}

func (g *Generator) activeScripts(ctx context.Context, ord *domain.Order) ([]domain.TrackingScript, error) {
	return g.repo.ListScripts(ctx, port.ScriptFilter{
		CampaignID:    &ord.CampaignID,
		PublicationID: &ord.PublicationID,
		Status:        domain.ScriptActive,
	})
}

func (g *Generator) runOrder(ctx context.Context, camp *domain.Campaign, ord *domain.Order, entry string, res *port.GenerationResult) error {
	creatives, err := g.repo.ListCreativesByCampaign(ctx, ord.CampaignID)
	if err != nil {
		return err
	}
	for _, cr := range creatives {
		g.generatePairs(ctx, camp, ord, cr, entry, res)
	}
	return nil
}

// generatePairs runs the pipeline for every candidate pair of one creative
// against one order. A failing pair is counted and logged, never aborts the
// rest of the batch.
func (g *Generator) generatePairs(ctx context.Context, camp *domain.Campaign, ord *domain.Order, cr domain.CreativeAsset, entry string, res *port.GenerationResult) {
	for _, cand := range tracking.MatchPlacements(cr, *ord) {
		script := g.buildScript(camp, ord, cr, cand)
		inserted, err := g.repo.InsertScriptIfAbsent(ctx, script)
		switch {
		case err != nil:
			g.logger.Error("script generation failed for pair",
				slog.String("creative_id", cr.ID.String()),
				slog.String("item_path", cand.ItemPath),
				slog.Any("error", err))
			res.Failed++
			g.counters.Failed.WithLabelValues(entry).Inc()
		case !inserted:
			res.Skipped++
			g.counters.Skipped.WithLabelValues(entry).Inc()
		default:
			res.Generated++
			g.counters.Generated.WithLabelValues(entry).Inc()
		}
	}
}

// buildScript is the per-pair pipeline: dimensions, channel, landing URL,
// CDN rewrite, attribution URLs, tag rendering.
func (g *Generator) buildScript(camp *domain.Campaign, ord *domain.Order, cr domain.CreativeAsset, cand tracking.Candidate) *domain.TrackingScript {
	dims := tracking.ResolveDimensions(cand.PlacementName, cand.ItemPath, cr)
	refs := ord.AssetRefs
	if len(refs) == 0 {
		refs = camp.SelectedInventory[ord.PublicationID.String()]
	}
	channel := tracking.ResolveChannel(cand.Channel, cr.Channel, refs, dims, cr.HasText())

	script := &domain.TrackingScript{
		ID:            uuid.New(),
		CampaignID:    ord.CampaignID,
		PublicationID: ord.PublicationID,
		OrderID:       ord.ID,
		CreativeID:    cr.ID,
		ItemPath:      cand.ItemPath,
		Channel:       channel,
		CreativeName:  cr.FileName,
		ClickURL:      g.urls.ResolveLanding(cr.ID, cr.ClickURL),
		ImageURL:      g.cdn.Normalize(cr.StorageURL),
		Width:         dims.Width,
		Height:        dims.Height,
		Headline:      cr.Headline,
		Body:          cr.Body,
		CTA:           cr.CTA,
		Status:        domain.ScriptActive,
		CreatedAt:     time.Now().UTC(),
	}

	urls := g.urls.Build(tracking.URLParams{
		OrderID:       ord.ID,
		CampaignID:    ord.CampaignID,
		PublicationID: ord.PublicationID,
		CreativeID:    cr.ID,
		Channel:       channel,
		Size:          script.Size(),
		ItemPath:      cand.ItemPath,
		LandingURL:    script.ClickURL,
	})
	script.ImpressionURL = urls.Impression
	script.ClickTrackerURL = urls.Click
	script.AssetURL = urls.Asset

	script.Comment = tracking.Comment(camp.AdvertiserName, camp.Name, script.Size())
	script.Tag, script.SimpleTag = tracking.Render(channel, tracking.Creative{
		Name:     script.CreativeName,
		AltText:  cr.AltText,
		Headline: cr.Headline,
		Body:     cr.Body,
		CTA:      cr.CTA,
		Width:    dims.Width,
		Height:   dims.Height,
	}, urls, camp.AdvertiserName, camp.Name, script.Size())
	return script
}

func finishResult(res *port.GenerationResult) {
	if res.Generated == 0 && res.Skipped == 0 && res.Failed == 0 {
		res.Message = "no eligible digital creatives, nothing to generate"
	}
}
