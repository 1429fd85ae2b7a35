package types

// FoodEntry describes one food in the rules dataset: the preparation states
// and storage methods it declares, and the base shelf-life table keyed by
// (state, storage).
type FoodEntry struct {
	States         []string                      `json:"states"`
	Storages       []string                      `json:"storages"`
	ShelfLifeHours map[string]map[string]float64 `json:"shelf_life_hours"`
}

// BaseHours returns the base shelf life for a state/storage pair. The second
// return value is false when either level of the lookup is missing. Entries
// outside the declared States/Storages lists are tolerated and treated the
// same as any other table entry; declaration mismatches are a data issue, not
// a lookup failure.
func (f FoodEntry) BaseHours(state, storage string) (float64, bool) {
	byStorage, ok := f.ShelfLifeHours[state]
	if !ok {
		return 0, false
	}
	hours, ok := byStorage[storage]
	if !ok {
		return 0, false
	}
	return hours, true
}

// HasState reports whether the state appears in the declared States list.
func (f FoodEntry) HasState(state string) bool {
	for _, s := range f.States {
		if s == state {
			return true
		}
	}
	return false
}

// HasStorage reports whether the storage appears in the declared Storages list.
func (f FoodEntry) HasStorage(storage string) bool {
	for _, s := range f.Storages {
		if s == storage {
			return true
		}
	}
	return false
}
