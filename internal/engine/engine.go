// Package engine implements the shelf-life estimation core: base-hours
// lookup, modifier composition, the conservative window, and risk
// classification. All functions are pure and synchronous; the engine performs
// only in-memory lookups and arithmetic over a read-only dataset.
package engine

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Window and classification constants, in hours. These are fixed policy
// values, not configuration.
const (
	// maxWindowHours caps the upper bound at one year. Unbounded
	// multiplicative stacking of modifiers could otherwise produce
	// physically implausible values.
	maxWindowHours = 24 * 365

	// fastPerishingHours is the base-hours threshold below which the lower
	// bound uses the tighter margin. Inclusive: base == 6 counts as
	// fast-perishing.
	fastPerishingHours = 6

	// lowerFactorDefault and lowerFactorFast set the conservative lower
	// bound. Fast-perishing base items have less buffer, so their safety
	// margin shrinks.
	lowerFactorDefault = 0.75
	lowerFactorFast    = 0.5

	// Risk tier thresholds on the upper bound.
	highRiskMaxHours     = 6
	moderateRiskMaxHours = 72
)

// Estimate computes the shelf-life window for a food in a given state and
// storage, adjusted by the selected modifiers.
//
// Unknown food keys return types.ErrFoodNotFound. A food with no shelf-life
// entry for the state/storage pair returns types.ErrNoData; that is a
// legitimate no-data outcome, not malformed input. Unknown modifier keys are
// silently ignored (factor 1.0), and non-positive factors are treated as a
// data integrity issue and clamped to 1.0 rather than allowed to zero or
// invert the window.
func Estimate(ds *types.RulesDataset, foodKey, state, storage string, modifierKeys []string) (types.EstimateResult, error) {
	food, ok := ds.Foods[foodKey]
	if !ok {
		return types.EstimateResult{}, fmt.Errorf("food %q: %w", foodKey, types.ErrFoodNotFound)
	}

	base, ok := food.BaseHours(state, storage)
	if !ok {
		return types.EstimateResult{}, fmt.Errorf("food %q state %q storage %q: %w", foodKey, state, storage, types.ErrNoData)
	}

	multiplier := 1.0
	for _, key := range modifierKeys {
		mod, ok := ds.Modifiers[key]
		if !ok {
			continue
		}
		if mod.Factor <= 0 {
			continue
		}
		multiplier *= mod.Factor
	}

	estimated := base * multiplier

	upper := estimated
	if upper > maxWindowHours {
		upper = maxWindowHours
	}

	lowerFactor := lowerFactorDefault
	if base <= fastPerishingHours {
		lowerFactor = lowerFactorFast
	}
	lower := estimated * lowerFactor
	if lower > upper {
		lower = upper
	}

	return types.EstimateResult{
		BaseHours:  base,
		LowerHours: lower,
		UpperHours: upper,
		Risk:       riskFor(upper),
	}, nil
}

// riskFor classifies the upper bound into a risk tier. Classification uses
// the upper bound only, never base hours or the lower bound.
func riskFor(upper float64) string {
	switch {
	case upper <= highRiskMaxHours:
		return types.RiskHigh
	case upper <= moderateRiskMaxHours:
		return types.RiskModerate
	default:
		return types.RiskLow
	}
}
