package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pubtag/internal/core/domain"
)

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name          string
		placementName string
		placementID   string
		creative      domain.CreativeAsset
		want          Dimensions
	}{
		{
			name:          "placement name beats filename",
			placementName: "Leaderboard (970x90)",
			creative:      domain.CreativeAsset{FileName: "banner_300x250.png"},
			want:          Dimensions{970, 90},
		},
		{
			name:        "dim token in placement id",
			placementID: "sidebar-dim:160x600",
			creative:    domain.CreativeAsset{FileName: "tower.png"},
			want:        Dimensions{160, 600},
		},
		{
			name:     "creative metadata",
			creative: domain.CreativeAsset{Width: 728, Height: 90, FileName: "header_300x250.png"},
			want:     Dimensions{728, 90},
		},
		{
			name:     "filename fallback",
			creative: domain.CreativeAsset{FileName: "spring_sale_600x200.jpg"},
			want:     Dimensions{600, 200},
		},
		{
			name:     "default when nothing matches",
			creative: domain.CreativeAsset{FileName: "hero.jpg"},
			want:     DefaultDimensions,
		},
		{
			name:          "placement name without size falls through",
			placementName: "Sponsored Slot",
			placementID:   "slot-dim:300x600",
			want:          Dimensions{300, 600},
		},
		{
			name:          "uppercase x in placement name",
			placementName: "Billboard (970X250)",
			want:          Dimensions{970, 250},
		},
		{
			name:     "partial creative metadata ignored",
			creative: domain.CreativeAsset{Width: 728, FileName: "wide_468x60.gif"},
			want:     Dimensions{468, 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDimensions(tt.placementName, tt.placementID, tt.creative)
			assert.Equal(t, tt.want, got)
		})
	}
}
