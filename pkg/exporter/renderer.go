package exporter

// Renderer renders one category of values.
type Renderer interface {
	// Accepts reports whether the renderer handles value.
	Accepts(value interface{}) bool

	// RecursiveExport renders value, expanding its children. indentation is
	// the nesting level of value; continuation lines are indented by four
	// spaces per level. A nil ctx starts a new export pass.
	RecursiveExport(value interface{}, indentation int, ctx *Context) string

	// ShortenedExport renders value on a single line without walking its
	// children.
	ShortenedExport(value interface{}) string
}
