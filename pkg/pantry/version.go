// Package pantry exposes release metadata for the Pantry tool.
package pantry

// Version is the current Pantry release.
const Version = "0.1.0"
