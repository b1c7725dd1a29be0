package exporter

import (
	"strings"

	"github.com/arthur-debert/exporter/pkg/errors"
	"github.com/arthur-debert/exporter/pkg/registry"
)

// Factory dispatches values to renderers. Exactly one registered renderer
// must accept any value passed to RendererFor.
//
// A Factory is safe for concurrent use once its renderers are registered.
type Factory struct {
	renderers registry.Registry[Renderer]
}

// NewFactory returns a Factory with no renderers.
func NewFactory() *Factory {
	return &Factory{renderers: registry.New[Renderer]()}
}

// DefaultFactory returns a Factory with the built-in renderers registered.
func DefaultFactory() *Factory {
	f := NewFactory()
	f.MustRegister("array", NewArrayRenderer(f))
	f.MustRegister("map", NewMapRenderer(f))
	f.MustRegister("object", NewObjectRenderer(f))
	f.MustRegister("pointer", NewPointerRenderer(f))
	f.MustRegister("resource", ResourceRenderer{})
	f.MustRegister("scalar", ScalarRenderer{})
	f.MustRegister("slice", NewSliceRenderer(f))
	f.MustRegister("string", StringRenderer{})
	return f
}

// Register adds a renderer under name.
func (f *Factory) Register(name string, r Renderer) error {
	return f.renderers.Register(name, r)
}

// MustRegister adds a renderer and panics on error.
func (f *Factory) MustRegister(name string, r Renderer) {
	registry.MustRegister(f.renderers, name, r)
}

// Names returns the names of the registered renderers in sorted order.
func (f *Factory) Names() []string {
	return f.renderers.List()
}

// RendererFor returns the renderer that accepts value. It panics with an
// ErrNoRenderer error when none does and with an ErrAmbiguousRenderer error
// when more than one does.
func (f *Factory) RendererFor(value interface{}) Renderer {
	names := f.renderers.Filter(func(r Renderer) bool {
		return r.Accepts(value)
	})

	switch len(names) {
	case 0:
		panic(errors.Newf(errors.ErrNoRenderer, "no renderer accepts value of type %T", value))
	case 1:
		return registry.MustGet(f.renderers, names[0])
	default:
		panic(errors.Newf(errors.ErrAmbiguousRenderer, "renderers %s all accept value of type %T",
			strings.Join(names, ", "), value).
			WithDetail("renderers", names))
	}
}

// export renders value through whichever renderer accepts it.
func (f *Factory) export(value interface{}, indentation int, ctx *Context) string {
	return f.RendererFor(value).RecursiveExport(value, indentation, ctx)
}
