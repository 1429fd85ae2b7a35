// Package larder holds module-level metadata.
package larder

// Version is the current larder release.
const Version = "v0.1.0"
