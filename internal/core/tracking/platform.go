package tracking

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed platforms.yaml
var platformsYAML []byte

// Instructive placeholders substituted for macro tokens when the target
// platform is unknown or unconfigured. The tag stays usable: the trafficker
// fills these in by hand.
const (
	genericCacheBuster = "REPLACE_WITH_CACHE_BUSTER"
	genericEmailID     = "REPLACE_WITH_RECIPIENT_ID"
)

// Dialect describes one platform's macro syntax.
type Dialect struct {
	Name        string `yaml:"name"`
	CacheBuster string `yaml:"cache_buster"`
	EmailID     string `yaml:"email_id"`
	// ClickPrefix is prepended to the click tracker URL for ad servers
	// that wrap clicks with their own redirect macro.
	ClickPrefix string `yaml:"click_prefix"`
}

type platformsFile struct {
	Platforms map[string]Dialect `yaml:"platforms"`
}

// Transformer rewrites a stored tag's literal macro tokens into a target
// platform's dialect. Transformation happens on read and is never persisted:
// the same stored script renders for any number of platforms.
type Transformer struct {
	dialects map[string]Dialect
}

// NewTransformer parses the embedded dialect table.
func NewTransformer() (*Transformer, error) {
	var f platformsFile
	if err := yaml.Unmarshal(platformsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse platform dialects: %w", err)
	}
	return &Transformer{dialects: f.Platforms}, nil
}

// Platforms returns the known platform identifiers, sorted.
func (t *Transformer) Platforms() []string {
	out := make([]string, 0, len(t.dialects))
	for k := range t.dialects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Apply rewrites tag for the given platform. clickTrackerURL is the script's
// stored click tracker, needed to anchor the click-prefix rewrite. Unknown
// platforms fall back to instructive placeholder text rather than failing.
func (t *Transformer) Apply(tag, clickTrackerURL, platform string) string {
	d, ok := t.dialects[strings.ToLower(platform)]
	if !ok {
		tag = strings.ReplaceAll(tag, CacheBusterMacro, genericCacheBuster)
		tag = strings.ReplaceAll(tag, EmailIDMacro, genericEmailID)
		return tag
	}
	if d.ClickPrefix != "" && clickTrackerURL != "" {
		tag = strings.ReplaceAll(tag, `href="`+clickTrackerURL, `href="`+d.ClickPrefix+clickTrackerURL)
	}
	cb := d.CacheBuster
	if cb == "" {
		cb = genericCacheBuster
	}
	eid := d.EmailID
	if eid == "" {
		eid = genericEmailID
	}
	tag = strings.ReplaceAll(tag, CacheBusterMacro, cb)
	tag = strings.ReplaceAll(tag, EmailIDMacro, eid)
	return tag
}
