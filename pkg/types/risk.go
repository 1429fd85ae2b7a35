package types

// Risk tiers. The engine classifies every estimate into exactly one tier
// from the upper bound of the conservative window.
const (
	RiskHigh     = "High perishability"
	RiskModerate = "Moderate perishability"
	RiskLow      = "Low perishability"
)

// validRisks is the set of recognized risk tier values.
var validRisks = map[string]bool{
	RiskHigh:     true,
	RiskModerate: true,
	RiskLow:      true,
}

// ValidRisk reports whether the value is a recognized risk tier.
func ValidRisk(risk string) bool {
	return validRisks[risk]
}
