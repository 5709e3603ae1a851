// Package types defines the Inventory and Journal entity types, the Store
// interface, the Config structure, and standard errors for the Pantry
// inventory system.
package types
