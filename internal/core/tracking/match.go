package tracking

import (
	"path/filepath"
	"strings"

	"pubtag/internal/core/domain"
)

// Candidate is one (creative, placement) pair the engine should generate a
// script for. ItemPath is empty on the legacy order-level path.
type Candidate struct {
	ItemPath      string
	PlacementName string
	// Channel is the raw label declared on the assignment or placement,
	// empty when neither declares one.
	Channel string
}

// nonDigitalPrefixes tags placement groups that never carry a digital tag.
var nonDigitalPrefixes = []string{"print", "radio", "podcast"}

// nonDigitalExts are file extensions of document, audio and video formats
// that cannot be embedded as display or newsletter creatives.
var nonDigitalExts = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
	".xls": {}, ".xlsx": {}, ".txt": {}, ".rtf": {},
	".mp3": {}, ".wav": {}, ".aiff": {}, ".flac": {}, ".m4a": {},
	".mp4": {}, ".mov": {}, ".avi": {}, ".wmv": {}, ".mkv": {},
	".zip": {}, ".eps": {}, ".ai": {}, ".indd": {},
}

// MatchPlacements maps a creative to the candidates it serves on the given
// order. Explicit placement assignments for the order's publication are
// authoritative: one candidate per assignment. A creative with no
// assignments anywhere falls back to a single order-level candidate, the
// deprecated pre-assignment behaviour. A creative assigned elsewhere but not
// to this publication produces nothing.
func MatchPlacements(creative domain.CreativeAsset, order domain.Order) []Candidate {
	if creative.Assigned() {
		var out []Candidate
		for _, a := range creative.AssignmentsFor(order.PublicationID) {
			if !EligiblePair(creative, a.PlacementID) {
				continue
			}
			c := Candidate{
				ItemPath:      a.PlacementID,
				PlacementName: a.PlacementName,
				Channel:       a.Channel,
			}
			// Backfill name and channel from the order's inventory
			// when the assignment was recorded without them.
			if p, ok := order.PlacementByID(a.PlacementID); ok {
				if c.PlacementName == "" {
					c.PlacementName = p.Name
				}
				if c.Channel == "" {
					c.Channel = p.Channel
				}
			}
			out = append(out, c)
		}
		return out
	}
	if !EligiblePair(creative, "") {
		return nil
	}
	return []Candidate{{}}
}

// EligiblePair reports whether a creative/placement pair should produce a
// script. Pairs are excluded when the placement group is tagged non-digital
// or the file format is non-digital, unless the asset is explicitly digital
// by MIME type or channel.
func EligiblePair(creative domain.CreativeAsset, placementID string) bool {
	if excludedPlacement(placementID) {
		return false
	}
	if nonDigitalFile(creative.FileName) && !explicitlyDigital(creative) {
		return false
	}
	return true
}

func excludedPlacement(placementID string) bool {
	id := strings.ToLower(placementID)
	for _, p := range nonDigitalPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

func nonDigitalFile(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	_, ok := nonDigitalExts[ext]
	return ok
}

func explicitlyDigital(creative domain.CreativeAsset) bool {
	mt := strings.ToLower(creative.MimeType)
	if strings.HasPrefix(mt, "image/") || mt == "text/html" {
		return true
	}
	ch := strings.ToLower(creative.Channel)
	for _, label := range []string{"website", "newsletter", "streaming", "display", "digital"} {
		if strings.Contains(ch, label) {
			return true
		}
	}
	return false
}
