// Package types defines the rules dataset model, estimate result types,
// and standard errors for the Larder shelf-life estimation system.
// See docs/ARCHITECTURE.md § Main Interface.
package types
