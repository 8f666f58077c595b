package usecase

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/google/uuid"

	"pubtag/internal/core/domain"
)

// Export produces a single self-contained HTML document with the order's
// active scripts grouped by placement, each tag pre-transformed for the
// publication's configured platform and annotated with trafficking context.
func (g *Generator) Export(ctx context.Context, orderID uuid.UUID) (string, error) {
	ord, camp, err := g.loadOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	scripts, err := g.activeScripts(ctx, ord)
	if err != nil {
		return "", err
	}

	groups := map[string][]domain.TrackingScript{}
	for _, s := range scripts {
		groups[s.ItemPath] = append(groups[s.ItemPath], s)
	}
	paths := make([]string, 0, len(groups))
	for p := range groups {
		paths = append(paths, p)
	}
	// Named placements first, the legacy order-level group last.
	sort.Slice(paths, func(i, j int) bool {
		if (paths[i] == "") != (paths[j] == "") {
			return paths[j] == ""
		}
		return paths[i] < paths[j]
	})

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\" />\n")
	fmt.Fprintf(&b, "<title>Tags: %s / %s</title>\n</head>\n<body>\n",
		html.EscapeString(camp.Name), html.EscapeString(ord.PublicationName))
	fmt.Fprintf(&b, "<h1>Trafficking tags for %s</h1>\n", html.EscapeString(ord.PublicationName))
	fmt.Fprintf(&b, "<p>Advertiser: %s | Campaign: %s | Platform: %s | Active tags: %d</p>\n",
		html.EscapeString(camp.AdvertiserName), html.EscapeString(camp.Name),
		html.EscapeString(platformLabel(ord.Platform)), len(scripts))

	for _, path := range paths {
		fmt.Fprintf(&b, "<h2>Placement: %s</h2>\n", html.EscapeString(placementLabel(ord, path)))
		for _, s := range groups[path] {
			fmt.Fprintf(&b, "<p>%s | channel %s | creative %s</p>\n",
				html.EscapeString(s.Comment), html.EscapeString(s.Channel.String()),
				html.EscapeString(s.CreativeName))
			tag := g.platforms.Apply(s.Tag, s.ClickTrackerURL, ord.Platform)
			fmt.Fprintf(&b, "<pre>%s</pre>\n", html.EscapeString(tag))
			if s.SimpleTag != "" {
				simple := g.platforms.Apply(s.SimpleTag, s.ClickTrackerURL, ord.Platform)
				b.WriteString("<p>Simplified version for platforms with restricted HTML:</p>\n")
				fmt.Fprintf(&b, "<pre>%s</pre>\n", html.EscapeString(simple))
			}
		}
	}
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func placementLabel(ord *domain.Order, itemPath string) string {
	if itemPath == "" {
		return "order level (no placement)"
	}
	if p, ok := ord.PlacementByID(itemPath); ok && p.Name != "" {
		return fmt.Sprintf("%s (%s)", p.Name, itemPath)
	}
	return itemPath
}

func platformLabel(platform string) string {
	if platform == "" {
		return "not configured"
	}
	return platform
}
