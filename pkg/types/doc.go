// Package types defines the core types and interfaces shared across dotlink.
// This includes the FS abstraction used by every filesystem-touching
// operation, the link state classification, and the report structures
// returned by commands and consumed by the renderers.
package types
