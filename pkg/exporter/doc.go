// Package exporter renders arbitrary values as deterministic, human-readable
// text for diagnostics such as test-failure diffs.
//
// The output is write-only: it is not meant to be parsed back into values.
//
// Rendering is split between renderers, each accepting one category of
// value (containers, scalars, strings, objects, native maps and slices,
// resources). A Factory dispatches every value to the one renderer that
// accepts it. Renderers that recurse into children ask the Factory again for
// each child.
//
// Every container expanded during one export pass is labelled with a key
// from a Context: `Array &1 (...)`. A container reached a second time in the
// same pass, whether through a cycle or through a shared reference, renders
// as the short backreference `Array &1` instead of being expanded again.
// Identity decides repeats, not equal contents.
//
// Typical usage:
//
//	a := array.New(1, 2)
//	fmt.Println(exporter.Export(a))
//	// Array &1 (
//	//     0 => 1
//	//     1 => 2
//	// )
package exporter
