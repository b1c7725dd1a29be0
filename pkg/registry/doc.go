// Package registry provides a generic, type-safe registry keyed by name.
// The exporter uses it to hold the renderers a Factory dispatches to.
package registry
