package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubtag/internal/core/domain"
	"pubtag/internal/core/tracking"
)

func addNewsletterTextCreative(repo *fakeRepo, orderID uuid.UUID) uuid.UUID {
	ord := repo.orders[orderID]
	id := uuid.New()
	repo.creatives[id] = domain.CreativeAsset{
		ID: id, CampaignID: ord.CampaignID,
		FileName: "sponsored_note.txt", MimeType: "text/plain",
		StorageURL: "https://acme.s3.us-east-1.amazonaws.com/creatives/note.txt",
		ClickURL:   "https://acme.example.com/guide",
		Headline:   "Free trail guide", Body: "20% off spring gear.", CTA: "Get the guide",
		Channel: "newsletter",
		Assignments: []domain.Assignment{{
			PublicationID: ord.PublicationID,
			PlacementID:   "newsletter-banner",
			PlacementName: "Newsletter Banner",
			Channel:       "newsletter",
		}},
	}
	return id
}

func TestExportGroupsByPlacementAndTransforms(t *testing.T) {
	repo := newFakeRepo()
	orderID, _ := fixture(repo)
	addNewsletterTextCreative(repo, orderID)
	g, _ := newTestGenerator(t, repo)

	_, err := g.GenerateForOrder(context.Background(), orderID)
	require.NoError(t, err)

	docStr, err := g.Export(context.Background(), orderID)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(docStr))
	require.NoError(t, err)

	headings := doc.Find("h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	require.Len(t, headings, 2)
	assert.Contains(t, headings[0], "Leaderboard (970x90)")
	assert.Contains(t, headings[1], "Newsletter Banner")

	// Trafficking context strings accompany each tag.
	assert.Contains(t, docStr, "Advertiser: Acme")
	assert.Contains(t, docStr, "Spring Sale")
	assert.Contains(t, docStr, "Platform: mailchimp")

	// The order's platform is mailchimp: recipient-id macros are rewritten
	// into its merge-tag syntax, no literal tokens remain.
	assert.Contains(t, docStr, "*|UNIQID|*")
	assert.NotContains(t, docStr, tracking.EmailIDMacro)
	assert.NotContains(t, docStr, tracking.CacheBusterMacro)
}

func TestListScriptsPlatformTransformOnRead(t *testing.T) {
	repo := newFakeRepo()
	orderID, _ := fixture(repo)
	g, _ := newTestGenerator(t, repo)

	_, err := g.GenerateForOrder(context.Background(), orderID)
	require.NoError(t, err)

	// Without a platform the stored tag keeps literal macros.
	stored, err := g.ListScripts(context.Background(), orderID, "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Contains(t, stored[0].Tag, tracking.CacheBusterMacro)

	// With a platform the same stored script is rewritten on read.
	transformed, err := g.ListScripts(context.Background(), orderID, "google_ad_manager")
	require.NoError(t, err)
	require.Len(t, transformed, 1)
	assert.Contains(t, transformed[0].Tag, "%%CACHEBUSTER%%")
	assert.NotContains(t, transformed[0].Tag, tracking.CacheBusterMacro)
	// The stored entity itself is untouched.
	assert.Contains(t, transformed[0].Script.Tag, tracking.CacheBusterMacro)
}
