package types

import "strings"

// Modifier is a multiplicative shelf-life adjustment for a situational
// factor (reheating, ambient heat, packaging). Factors compose
// multiplicatively and commutatively.
type Modifier struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// SensoryFlag is an observable spoilage sign. Selecting any sensory flag
// unconditionally overrides numeric estimation with a discard directive.
type SensoryFlag struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// LabelForKey derives a display label from a snake_case key:
// underscores become spaces and each word is capitalized.
func LabelForKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
