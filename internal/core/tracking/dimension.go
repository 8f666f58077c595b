package tracking

import (
	"regexp"
	"strconv"

	"pubtag/internal/core/domain"
)

// Dimensions is a rendered ad size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// DefaultDimensions is applied when no source declares a size. Medium
// rectangle, the most common display slot.
var DefaultDimensions = Dimensions{Width: 300, Height: 250}

var (
	// "Leaderboard (970x90)" style display names.
	parenSizeRe = regexp.MustCompile(`\((\d{1,5})\s*[xX]\s*(\d{1,5})\)`)
	// "dim:970x90" tokens embedded in placement group identifiers.
	tokenSizeRe = regexp.MustCompile(`dim:(\d{1,5})[xX](\d{1,5})`)
	// "banner_300x250.png" style filenames.
	fileSizeRe = regexp.MustCompile(`(\d{2,5})[xX](\d{2,5})`)
)

// ResolveDimensions determines the rendered size for a creative/placement
// pair. The placement-declared size always wins over the file-native size:
// the slot size is fixed by the publisher's layout, not by the uploaded
// file. Resolution order: placement display name, placement group
// identifier, creative metadata, filename, then the 300x250 fallback. It
// never fails.
func ResolveDimensions(placementName, placementID string, creative domain.CreativeAsset) Dimensions {
	if d, ok := matchSize(parenSizeRe, placementName); ok {
		return d
	}
	if d, ok := matchSize(tokenSizeRe, placementID); ok {
		return d
	}
	if creative.Width > 0 && creative.Height > 0 {
		return Dimensions{Width: creative.Width, Height: creative.Height}
	}
	if d, ok := matchSize(fileSizeRe, creative.FileName); ok {
		return d
	}
	return DefaultDimensions
}

func matchSize(re *regexp.Regexp, s string) (Dimensions, bool) {
	if s == "" {
		return Dimensions{}, false
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return Dimensions{}, false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return Dimensions{}, false
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return Dimensions{}, false
	}
	if w == 0 || h == 0 {
		return Dimensions{}, false
	}
	return Dimensions{Width: w, Height: h}, true
}
