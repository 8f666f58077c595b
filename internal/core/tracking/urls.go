package tracking

import (
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"pubtag/internal/core/domain"
)

// Macro tokens stored literally in generated URLs and tags. Platform
// transformers rewrite them on read; hosting platforms resolve them at
// render/send time.
const (
	CacheBusterMacro = "%%CACHE_BUSTER%%"
	EmailIDMacro     = "%%EMAIL_ID%%"
)

// NoItemPath is the itemPath query value when a script has no placement
// identifier (legacy order-level scripts).
const NoItemPath = "none"

// AttributionURLs are the three URLs generated per (creative, placement).
type AttributionURLs struct {
	Impression string
	Click      string
	Asset      string
}

// URLParams is the identity encoded into every attribution URL. The query
// parameter names are wire format and must not change: deployed tags depend
// on them.
type URLParams struct {
	OrderID       uuid.UUID
	CampaignID    uuid.UUID
	PublicationID uuid.UUID
	CreativeID    uuid.UUID
	Channel       domain.Channel
	Size          string
	ItemPath      string
	// LandingURL is the resolved click-through destination, carried on the
	// click tracker only.
	LandingURL string
}

// URLBuilder composes impression, click and asset URLs from configured
// tracking endpoints. An empty BaseURL degrades to empty-prefixed URLs
// rather than failing.
type URLBuilder struct {
	BaseURL            string
	PixelPath          string
	ClickPath          string
	AssetPath          string
	PlaceholderLanding string
	Logger             *slog.Logger
}

// ResolveLanding returns the creative's click-through URL, substituting the
// configured placeholder when the creative declares none. The missing URL is
// a data-quality problem, not a generation failure: an ad with a broken
// destination beats no ad.
func (b *URLBuilder) ResolveLanding(creativeID uuid.UUID, clickURL string) string {
	if clickURL != "" {
		return clickURL
	}
	if b.Logger != nil {
		b.Logger.Warn("creative has no click-through URL, using placeholder landing",
			slog.String("creative_id", creativeID.String()),
			slog.String("placeholder", b.PlaceholderLanding))
	}
	return b.PlaceholderLanding
}

// Build produces the three attribution URLs for one pair. Newsletter
// channels carry the literal recipient-id macro, appended unescaped so the
// email platform can substitute it textually.
func (b *URLBuilder) Build(p URLParams) AttributionURLs {
	return AttributionURLs{
		Impression: b.compose(b.PixelPath, p, false),
		Click:      b.compose(b.ClickPath, p, true),
		Asset:      b.compose(b.AssetPath, p, false),
	}
}

func (b *URLBuilder) compose(path string, p URLParams, click bool) string {
	q := url.Values{}
	q.Set("orderId", p.OrderID.String())
	q.Set("campaignId", p.CampaignID.String())
	q.Set("publicationId", p.PublicationID.String())
	q.Set("channel", p.Channel.String())
	q.Set("creativeId", p.CreativeID.String())
	q.Set("size", p.Size)
	if p.ItemPath != "" {
		q.Set("itemPath", p.ItemPath)
	} else {
		q.Set("itemPath", NoItemPath)
	}
	if click {
		q.Set("redirectUrl", p.LandingURL)
	}
	raw := q.Encode()
	if p.Channel.IsNewsletter() {
		// Deliberately not escaped: the token must survive as-is in
		// the tag text for the ESP to substitute.
		raw += "&emailId=" + EmailIDMacro
	}
	return b.BaseURL + path + "?" + raw
}
