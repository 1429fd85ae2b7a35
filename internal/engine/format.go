package engine

import (
	"fmt"
	"strings"
)

// FormatHours renders a non-negative duration in hours as "Xd Yh", with
// both components truncated toward zero and zero-valued components omitted.
// When both are zero the result is "0h".
func FormatHours(hours float64) string {
	days := int(hours) / 24
	rem := int(hours) % 24

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if rem > 0 {
		parts = append(parts, fmt.Sprintf("%dh", rem))
	}
	if len(parts) == 0 {
		return "0h"
	}
	return strings.Join(parts, " ")
}
