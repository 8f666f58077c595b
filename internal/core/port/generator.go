package port

import (
	"context"

	"github.com/google/uuid"

	"pubtag/internal/core/domain"
)

// ScriptGenerator is the inbound port of the generation engine. Both entry
// points are idempotent and converge to the same final script set regardless
// of invocation order; Refresh is the only operation that produces a net
// change when source creatives are unchanged.
type ScriptGenerator interface {
	// GenerateForOrder generates scripts for all eligible creatives of the
	// order's campaign against this one order.
	GenerateForOrder(ctx context.Context, orderID uuid.UUID) (*GenerationResult, error)
	// GenerateForAsset generates scripts for one creative across all
	// orders of its campaign.
	GenerateForAsset(ctx context.Context, creativeID uuid.UUID) (*GenerationResult, error)
	// Refresh soft-deletes all active scripts for the order's (campaign,
	// publication) pair and regenerates from current creatives.
	Refresh(ctx context.Context, orderID uuid.UUID) (*GenerationResult, error)

	// ListScripts returns the order's active scripts. When platform is
	// non-empty each tag is transformed into that platform's macro
	// dialect; transformation is computed on read, never persisted.
	ListScripts(ctx context.Context, orderID uuid.UUID, platform string) ([]RenderedScript, error)
	// Export produces the self-contained trafficking document for the
	// order, grouped by placement and pre-transformed for the order's
	// configured platform.
	Export(ctx context.Context, orderID uuid.UUID) (string, error)
}

// GenerationResult reports what one generation run did. Per-pair failures do
// not abort the batch; they are counted here instead.
type GenerationResult struct {
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Deleted   int    `json:"deleted,omitempty"`
	Message   string `json:"message,omitempty"`
}

// RenderedScript pairs a stored script with its display tag, which may have
// been transformed for a viewer's platform.
type RenderedScript struct {
	Script domain.TrackingScript
	Tag    string
}
