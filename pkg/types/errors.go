package types

import "errors"

// Dataset loading errors.
var (
	// ErrDatasetInvalid reports a rules source that is unreadable, not valid
	// JSON, or missing one of the required top-level keys (foods, modifiers,
	// sensory_flags). Fatal at load time; retrying the same source cannot
	// succeed.
	ErrDatasetInvalid = errors.New("invalid rules dataset")
)

// Estimation errors.
var (
	// ErrFoodNotFound reports a food key absent from the dataset. The CLI only
	// offers known keys, so hitting this indicates an integration error at the
	// call boundary.
	ErrFoodNotFound = errors.New("food not found")

	// ErrNoData reports a valid food with no shelf-life entry for the
	// requested state/storage combination. This is a legitimate "no data"
	// outcome, not a failure.
	ErrNoData = errors.New("no data for state/storage combination")
)

// History backend lifecycle errors.
var (
	ErrBackendDetached = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
	ErrNotFound        = errors.New("record not found")
)
