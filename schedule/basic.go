package schedule

import "context"

// BasicGenerator is the fallback for format families without a dedicated
// algorithm (swiss system, knockout-as-structure, other). Structurally it is
// the pairwise schedule without league-specific validation, which runs in the
// gate rather than here.
type BasicGenerator struct{}

func NewBasicGenerator() Generator {
	return &BasicGenerator{}
}

func (g *BasicGenerator) Name() string { return "Basic" }

func (g *BasicGenerator) Generate(ctx context.Context, params Params) ([]*MatchSpec, error) {
	return pairwiseSchedule(params)
}
