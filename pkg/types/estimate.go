package types

// EstimateResult is the computed shelf-life window for one engine
// invocation. It is owned by the caller and holds no references into the
// dataset.
type EstimateResult struct {
	BaseHours  float64 `json:"base_hours"`  // unmodified shelf life from the dataset
	LowerHours float64 `json:"lower_hours"` // conservative lower bound
	UpperHours float64 `json:"upper_hours"` // upper bound, clamped to one year
	Risk       string  `json:"risk"`        // one of the Risk constants
}
