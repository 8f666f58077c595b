package tracking

import (
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubtag/internal/core/domain"
)

func testBuilder() *URLBuilder {
	return &URLBuilder{
		BaseURL:            "https://t.example.com",
		PixelPath:          "/i",
		ClickPath:          "/c",
		AssetPath:          "/a",
		PlaceholderLanding: "https://example.com/landing-not-set",
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBuildRoundTripAttribution(t *testing.T) {
	b := testBuilder()
	p := URLParams{
		OrderID:       uuid.New(),
		CampaignID:    uuid.New(),
		PublicationID: uuid.New(),
		CreativeID:    uuid.New(),
		Channel:       domain.ChannelWebsite,
		Size:          "970x90",
		ItemPath:      "leaderboard@970x90",
		LandingURL:    "https://acme.example.com/sale?utm=spring",
	}
	urls := b.Build(p)

	for _, raw := range []string{urls.Impression, urls.Click, urls.Asset} {
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "t.example.com", u.Host)
		q := u.Query()
		assert.Equal(t, p.OrderID.String(), q.Get("orderId"))
		assert.Equal(t, p.CampaignID.String(), q.Get("campaignId"))
		assert.Equal(t, p.PublicationID.String(), q.Get("publicationId"))
		assert.Equal(t, p.CreativeID.String(), q.Get("creativeId"))
		assert.Equal(t, "website", q.Get("channel"))
		assert.Equal(t, "970x90", q.Get("size"))
		assert.Equal(t, "leaderboard@970x90", q.Get("itemPath"))
	}

	imp, err := url.Parse(urls.Impression)
	require.NoError(t, err)
	assert.Equal(t, "/i", imp.Path)
	assert.Empty(t, imp.Query().Get("redirectUrl"))

	click, err := url.Parse(urls.Click)
	require.NoError(t, err)
	assert.Equal(t, "/c", click.Path)
	assert.Equal(t, p.LandingURL, click.Query().Get("redirectUrl"))
}

func TestBuildNewsletterCarriesLiteralEmailMacro(t *testing.T) {
	b := testBuilder()
	urls := b.Build(URLParams{
		Channel:    domain.ChannelNewsletterImage,
		Size:       "600x200",
		LandingURL: "https://acme.example.com",
	})
	// The macro must survive unescaped for the ESP to substitute.
	assert.True(t, strings.HasSuffix(urls.Impression, "&emailId="+EmailIDMacro))
	assert.Contains(t, urls.Click, "&emailId="+EmailIDMacro)
}

func TestBuildNoItemPathFallbackToken(t *testing.T) {
	b := testBuilder()
	urls := b.Build(URLParams{Channel: domain.ChannelWebsite, Size: "300x250"})
	u, err := url.Parse(urls.Impression)
	require.NoError(t, err)
	assert.Equal(t, NoItemPath, u.Query().Get("itemPath"))
}

func TestBuildEmptyBaseURLDegrades(t *testing.T) {
	b := testBuilder()
	b.BaseURL = ""
	urls := b.Build(URLParams{Channel: domain.ChannelWebsite, Size: "300x250"})
	assert.True(t, strings.HasPrefix(urls.Impression, "/i?"))
}

func TestResolveLanding(t *testing.T) {
	b := testBuilder()
	assert.Equal(t, "https://acme.example.com", b.ResolveLanding(uuid.New(), "https://acme.example.com"))
	assert.Equal(t, b.PlaceholderLanding, b.ResolveLanding(uuid.New(), ""))
}
