package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingValidate(t *testing.T) {
	valid := Tracking{
		BaseURL:            "https://t.example.com",
		PixelPath:          "/i",
		ClickPath:          "/c",
		AssetPath:          "/a",
		CDNDomain:          "cdn.example.com",
		PlaceholderLanding: "https://example.com/landing-not-set",
	}
	assert.NoError(t, valid.Validate())

	// Empty base URL and CDN domain are allowed degradations.
	degraded := valid
	degraded.BaseURL = ""
	degraded.CDNDomain = ""
	assert.NoError(t, degraded.Validate())

	tests := []struct {
		name   string
		mutate func(*Tracking)
	}{
		{"relative base URL", func(c *Tracking) { c.BaseURL = "t.example.com" }},
		{"path without slash", func(c *Tracking) { c.PixelPath = "i" }},
		{"empty placeholder landing", func(c *Tracking) { c.PlaceholderLanding = "" }},
		{"CDN domain with path", func(c *Tracking) { c.CDNDomain = "cdn.example.com/assets" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
