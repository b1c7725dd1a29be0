// Package testutil provides utilities for testing exporter components.
//
// Key components:
//   - Environment: XDG directories isolated under a temp dir, so tests never
//     read the developer's config or write to their state dir
//   - CreateFile: fixture files with parents created on demand
//   - AssertPanicCode: checks the coded panics raised by the export core
package testutil
