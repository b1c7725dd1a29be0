package exporter

import (
	"unicode/utf8"

	"github.com/arthur-debert/exporter/pkg/logging"
)

// Config controls the top-level export.
type Config struct {
	// MaxLength caps the length, in characters, of a multi-line export.
	// Longer exports fall back to the single-line form. Zero means no cap.
	MaxLength int `koanf:"max_length"`
}

// Exporter is the entry point for rendering values. Every call starts a new
// pass with its own Context, so one Exporter can serve concurrent callers.
type Exporter struct {
	factory *Factory
	config  Config
}

// New returns an Exporter using the built-in renderers.
func New(cfg Config) *Exporter {
	return NewWithFactory(DefaultFactory(), cfg)
}

// NewWithFactory returns an Exporter dispatching through f.
func NewWithFactory(f *Factory, cfg Config) *Exporter {
	return &Exporter{factory: f, config: cfg}
}

// Factory returns the Factory the Exporter dispatches through.
func (e *Exporter) Factory() *Factory {
	return e.factory
}

// Export renders value over multiple lines.
func (e *Exporter) Export(value interface{}) string {
	return e.ExportIndented(value, 0)
}

// ExportIndented renders value as if it were nested indentation levels
// deep: continuation lines are indented by four spaces per level.
func (e *Exporter) ExportIndented(value interface{}, indentation int) string {
	logger := logging.GetLogger("exporter")

	ctx := NewContext()
	out := e.factory.export(value, indentation, ctx)

	if e.config.MaxLength > 0 && utf8.RuneCountInString(out) > e.config.MaxLength {
		logger.Debug().
			Int("length", utf8.RuneCountInString(out)).
			Int("maxLength", e.config.MaxLength).
			Msg("Export exceeds max length, using shortened form")
		return e.ShortenedExport(value)
	}

	logger.Trace().
		Int("references", ctx.Len()).
		Int("length", len(out)).
		Msg("Export completed")
	return out
}

// ShortenedExport renders value on a single line without expanding
// children.
func (e *Exporter) ShortenedExport(value interface{}) string {
	return e.factory.RendererFor(value).ShortenedExport(value)
}

var defaultExporter = New(Config{})

// Export renders value over multiple lines with the built-in renderers.
func Export(value interface{}) string {
	return defaultExporter.Export(value)
}

// ShortenedExport renders value on a single line with the built-in
// renderers.
func ShortenedExport(value interface{}) string {
	return defaultExporter.ShortenedExport(value)
}
