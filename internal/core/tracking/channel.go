package tracking

import (
	"strings"

	"pubtag/internal/core/domain"
)

// ClassifyChannel maps a raw free-text channel label onto the closed channel
// set. Labels containing "newsletter" split on whether the creative carries
// text content; labels containing "streaming" map to streaming; everything
// else, including the empty label, is website.
func ClassifyChannel(label string, hasText bool) domain.Channel {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "newsletter"):
		if hasText {
			return domain.ChannelNewsletterText
		}
		return domain.ChannelNewsletterImage
	case strings.Contains(l, "streaming"):
		return domain.ChannelStreaming
	default:
		return domain.ChannelWebsite
	}
}

// ResolveChannel picks the raw label to classify, in precedence order:
// the placement-declared channel, the creative's own channel association,
// then the legacy dimension match against the order's asset references.
// With no match anywhere the result is website.
func ResolveChannel(placementChannel, creativeChannel string, refs []domain.AssetRef, dims Dimensions, hasText bool) domain.Channel {
	if placementChannel != "" {
		return ClassifyChannel(placementChannel, hasText)
	}
	if creativeChannel != "" {
		return ClassifyChannel(creativeChannel, hasText)
	}
	if label, ok := legacyChannelByDimension(refs, dims); ok {
		return ClassifyChannel(label, hasText)
	}
	return domain.ChannelWebsite
}

// legacyChannelByDimension matches a creative to a channel label purely by
// pixel size against the order's historical asset references. It exists for
// placements created before explicit channel tagging and can be removed once
// no unassigned creatives remain. Exact size match wins; otherwise the
// reference with the smallest combined edge delta is taken.
func legacyChannelByDimension(refs []domain.AssetRef, dims Dimensions) (string, bool) {
	best := -1
	bestDelta := 0
	for i, r := range refs {
		if r.Channel == "" || r.Width <= 0 || r.Height <= 0 {
			continue
		}
		if r.Width == dims.Width && r.Height == dims.Height {
			return r.Channel, true
		}
		delta := abs(r.Width-dims.Width) + abs(r.Height-dims.Height)
		if best < 0 || delta < bestDelta {
			best = i
			bestDelta = delta
		}
	}
	if best < 0 {
		return "", false
	}
	return refs[best].Channel, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
