package configs

import (
	"fmt"
	"net/url"
	"strings"
)

// Tracking configures the attribution URL builder and CDN normalizer. All
// values are externally supplied. An empty BaseURL degrades gracefully to
// empty-prefixed (unusable but non-crashing) URLs; an empty CDNDomain
// degrades to pass-through storage URLs.
type Tracking struct {
	// BaseURL is the tracking host prefix, e.g. "https://t.example.com".
	BaseURL string `env:"BASE_URL"`
	// PixelPath, ClickPath and AssetPath are appended to BaseURL for the
	// impression pixel, click tracker and creative asset URLs.
	PixelPath string `env:"PIXEL_PATH" envDefault:"/i"`
	ClickPath string `env:"CLICK_PATH" envDefault:"/c"`
	AssetPath string `env:"ASSET_PATH" envDefault:"/a"`
	// CDNDomain is the permanent public host storage URLs are rewritten
	// under, e.g. "cdn.example.com".
	CDNDomain string `env:"CDN_DOMAIN"`
	// PlaceholderLanding substitutes for a missing click-through URL.
	PlaceholderLanding string `env:"PLACEHOLDER_LANDING_URL" envDefault:"https://example.com/landing-not-set"`
}

// Validate reports malformed values at startup rather than mid-generation.
// Empty optional values are allowed; syntactically broken ones are not.
func (c Tracking) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("tracking base URL %q is not an absolute URL", c.BaseURL)
		}
	}
	for name, p := range map[string]string{
		"pixel": c.PixelPath, "click": c.ClickPath, "asset": c.AssetPath,
	} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("tracking %s path %q must start with /", name, p)
		}
	}
	if c.PlaceholderLanding == "" {
		return fmt.Errorf("placeholder landing URL must not be empty")
	}
	if strings.Contains(c.CDNDomain, "/") {
		return fmt.Errorf("CDN domain %q must be a bare host", c.CDNDomain)
	}
	return nil
}
