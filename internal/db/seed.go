package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a demo campaign, one publication order and a few creatives so
// generation can be exercised locally. Idempotent via fixed UUIDs and
// ON CONFLICT DO NOTHING.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	campaignID := uuid.MustParse("6f1a2f60-0000-4000-8000-000000000001")
	publicationID := uuid.MustParse("6f1a2f60-0000-4000-8000-000000000002")
	orderID := uuid.MustParse("6f1a2f60-0000-4000-8000-000000000003")

	inventory, _ := json.Marshal(map[string][]map[string]any{
		publicationID.String(): {
			{"channel": "website", "width": 970, "height": 90},
			{"channel": "newsletter", "width": 600, "height": 200},
		},
	})
	_, err := db.Exec(ctx, `INSERT INTO campaigns
		(id, advertiser_name, name, selected_inventory, created_at, updated_at)
		VALUES ($1,$2,$3,$4,now(),now()) ON CONFLICT DO NOTHING`,
		campaignID, "Acme Outdoor Co", "Spring Hiking Sale", inventory)
	if err != nil {
		return err
	}

	placements, _ := json.Marshal([]map[string]string{
		{"id": "leaderboard@970x90", "name": "Leaderboard (970x90)", "channel": "website"},
		{"id": "newsletter-banner", "name": "Daily Newsletter Banner", "channel": "newsletter"},
		{"id": "print-fullpage", "name": "Print Full Page", "channel": "print"},
	})
	_, err = db.Exec(ctx, `INSERT INTO orders
		(id, campaign_id, publication_id, publication_name, platform, placements, asset_refs, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,'[]',now()) ON CONFLICT DO NOTHING`,
		orderID, campaignID, publicationID, "The Morning Dispatch", "mailchimp", placements)
	if err != nil {
		return err
	}

	type seedCreative struct {
		id          string
		fileName    string
		mimeType    string
		storageURL  string
		clickURL    string
		headline    string
		body        string
		cta         string
		channel     string
		assignments []map[string]string
	}
	creatives := []seedCreative{
		{
			id:         "6f1a2f60-0000-4000-8000-000000000011",
			fileName:   "leaderboard_970x90.png",
			mimeType:   "image/png",
			storageURL: "https://acme-assets.s3.us-east-1.amazonaws.com/creatives/leaderboard_970x90.png?X-Amz-Expires=3600",
			clickURL:   "https://acme.example.com/spring-sale",
			channel:    "website",
			assignments: []map[string]string{{
				"publicationId": publicationID.String(),
				"placementId":   "leaderboard@970x90",
				"placementName": "Leaderboard (970x90)",
				"channel":       "website",
			}},
		},
		{
			id:         "6f1a2f60-0000-4000-8000-000000000012",
			fileName:   "newsletter_600x200.png",
			mimeType:   "image/png",
			storageURL: "https://acme-assets.s3.us-east-1.amazonaws.com/creatives/newsletter_600x200.png?X-Amz-Expires=3600",
			clickURL:   "https://acme.example.com/spring-sale",
			channel:    "newsletter",
			assignments: []map[string]string{{
				"publicationId": publicationID.String(),
				"placementId":   "newsletter-banner",
				"placementName": "Daily Newsletter Banner",
				"channel":       "newsletter",
			}},
		},
		{
			// Legacy creative with no assignments: takes the
			// one-script-per-order fallback.
			id:         "6f1a2f60-0000-4000-8000-000000000013",
			fileName:   "banner_300x250.png",
			mimeType:   "image/png",
			storageURL: "https://acme-assets.s3.us-east-1.amazonaws.com/creatives/banner_300x250.png?X-Amz-Expires=3600",
			clickURL:   "",
			channel:    "",
		},
		{
			id:         "6f1a2f60-0000-4000-8000-000000000014",
			fileName:   "sponsored_note.txt",
			mimeType:   "text/plain",
			storageURL: "https://acme-assets.s3.us-east-1.amazonaws.com/creatives/sponsored_note.txt",
			clickURL:   "https://acme.example.com/trail-guide",
			headline:   "Free trail guide for subscribers",
			body:       "Download our 2026 trail guide and get 20% off spring gear.",
			cta:        "Get the guide",
			channel:    "newsletter",
			assignments: []map[string]string{{
				"publicationId": publicationID.String(),
				"placementId":   "newsletter-banner",
				"placementName": "Daily Newsletter Banner",
				"channel":       "newsletter",
			}},
		},
	}
	for _, c := range creatives {
		assignments := []byte("[]")
		if c.assignments != nil {
			assignments, _ = json.Marshal(c.assignments)
		}
		_, err = db.Exec(ctx, `INSERT INTO creatives
			(id, campaign_id, file_name, mime_type, storage_url, click_url,
			 alt_text, headline, body, cta, width, height, channel, assignments, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,'',$7,$8,$9,0,0,$10,$11,now())
			ON CONFLICT DO NOTHING`,
			uuid.MustParse(c.id), campaignID, c.fileName, c.mimeType, c.storageURL,
			c.clickURL, c.headline, c.body, c.cta, c.channel, assignments)
		if err != nil {
			return err
		}
	}
	return nil
}
