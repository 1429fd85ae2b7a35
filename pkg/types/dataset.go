package types

import (
	"encoding/json"
	"sort"
)

// Notes holds the free-text portion of the rules dataset.
type Notes struct {
	Disclaimer string `json:"disclaimer"`
}

// RulesDataset is the aggregate root for the rules data: foods, modifiers,
// sensory flags, and notes. It is loaded once at process start and treated
// as read-only for the process lifetime; any number of concurrent readers
// may use it without synchronization.
type RulesDataset struct {
	Foods        map[string]FoodEntry
	Modifiers    map[string]Modifier
	SensoryFlags map[string]SensoryFlag
	Notes        Notes
}

// datasetJSON mirrors the external file format. Modifiers are stored as bare
// factors and sensory flags as bare labels; the in-memory structs carry
// derived fields that never hit the wire.
type datasetJSON struct {
	Foods        map[string]FoodEntry `json:"foods"`
	Modifiers    map[string]float64   `json:"modifiers"`
	SensoryFlags map[string]string    `json:"sensory_flags"`
	Notes        Notes                `json:"notes"`
}

// MarshalJSON serializes the dataset back to the external file format.
// Output is deterministic (map keys sort lexically), so serialization is
// byte-for-byte reproducible from the in-memory model.
func (d RulesDataset) MarshalJSON() ([]byte, error) {
	wire := datasetJSON{
		Foods:        d.Foods,
		Modifiers:    make(map[string]float64, len(d.Modifiers)),
		SensoryFlags: make(map[string]string, len(d.SensoryFlags)),
		Notes:        d.Notes,
	}
	if wire.Foods == nil {
		wire.Foods = map[string]FoodEntry{}
	}
	for k, m := range d.Modifiers {
		wire.Modifiers[k] = m.Factor
	}
	for k, f := range d.SensoryFlags {
		wire.SensoryFlags[k] = f.Label
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the external file format, deriving modifier labels
// from their keys.
func (d *RulesDataset) UnmarshalJSON(data []byte) error {
	var wire datasetJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	d.Foods = wire.Foods
	if d.Foods == nil {
		d.Foods = map[string]FoodEntry{}
	}

	d.Modifiers = make(map[string]Modifier, len(wire.Modifiers))
	for k, factor := range wire.Modifiers {
		d.Modifiers[k] = Modifier{Key: k, Label: LabelForKey(k), Factor: factor}
	}

	d.SensoryFlags = make(map[string]SensoryFlag, len(wire.SensoryFlags))
	for k, label := range wire.SensoryFlags {
		d.SensoryFlags[k] = SensoryFlag{Key: k, Label: label}
	}

	d.Notes = wire.Notes
	return nil
}

// FoodKeys returns the food keys in lexical order.
func (d *RulesDataset) FoodKeys() []string {
	return sortedKeys(d.Foods)
}

// ModifierKeys returns the modifier keys in lexical order.
func (d *RulesDataset) ModifierKeys() []string {
	return sortedKeys(d.Modifiers)
}

// SensoryKeys returns the sensory flag keys in lexical order.
func (d *RulesDataset) SensoryKeys() []string {
	return sortedKeys(d.SensoryFlags)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
