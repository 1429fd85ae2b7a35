package engine

import (
	"errors"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// DiscardDirective is the message surfaced when any sensory flag is
// selected. The sensory override is an absolute veto: it wins over every
// computed window.
const DiscardDirective = "Sensory warning: discard immediately based on the selected sensory signs."

// Request bundles one user selection for assessment.
type Request struct {
	Food      string   `json:"food"`
	State     string   `json:"state"`
	Storage   string   `json:"storage"`
	Modifiers []string `json:"modifiers,omitempty"`
	Sensory   []string `json:"sensory,omitempty"`
}

// Outcome is the result of assessing a request. Exactly one of three shapes
// holds: Discard (with Directive set), Available with a Result, or neither
// when no data exists for the combination.
type Outcome struct {
	Discard   bool                 `json:"discard"`
	Directive string               `json:"directive,omitempty"`
	Available bool                 `json:"available"`
	Result    types.EstimateResult `json:"result,omitzero"`
}

// Assess applies the sensory veto and then delegates to Estimate. When any
// sensory flag is selected the numeric path is never entered; the outcome is
// the discard directive regardless of food, state, storage, or modifiers.
// A missing state/storage combination yields an unavailable outcome rather
// than an error.
func Assess(ds *types.RulesDataset, req Request) (Outcome, error) {
	if len(req.Sensory) > 0 {
		return Outcome{Discard: true, Directive: DiscardDirective}, nil
	}

	result, err := Estimate(ds, req.Food, req.State, req.Storage, req.Modifiers)
	if err != nil {
		if errors.Is(err, types.ErrNoData) {
			return Outcome{}, nil
		}
		return Outcome{}, err
	}

	return Outcome{Available: true, Result: result}, nil
}
