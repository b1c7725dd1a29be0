package exporter

import (
	"reflect"

	"github.com/arthur-debert/exporter/pkg/errors"
)

// maxDerefs bounds how many pointers ShortenedExport follows.
const maxDerefs = 32

// PointerRenderer renders pointers to anything but structs by rendering
// what they point to. A pointer that leads back to itself renders as
// *RECURSION*.
type PointerRenderer struct {
	factory *Factory
}

// NewPointerRenderer returns a PointerRenderer dispatching targets through f.
func NewPointerRenderer(f *Factory) *PointerRenderer {
	return &PointerRenderer{factory: f}
}

// Accepts reports whether value is a non-nil pointer to a non-struct.
func (r *PointerRenderer) Accepts(value interface{}) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() != reflect.Struct
}

func (r *PointerRenderer) RecursiveExport(value interface{}, indentation int, ctx *Context) string {
	if ctx == nil {
		ctx = NewContext()
	}

	rv := r.mustPointer(value)
	if !ctx.enter(rv) {
		return "*RECURSION*"
	}
	defer ctx.leave(rv)

	return r.factory.export(rv.Elem().Interface(), indentation, ctx)
}

func (r *PointerRenderer) ShortenedExport(value interface{}) string {
	target := value
	for hops := 0; r.Accepts(target); hops++ {
		if hops == maxDerefs {
			return "*RECURSION*"
		}
		target = reflect.ValueOf(target).Elem().Interface()
	}
	return r.factory.RendererFor(target).ShortenedExport(target)
}

func (r *PointerRenderer) mustPointer(value interface{}) reflect.Value {
	if !r.Accepts(value) {
		panic(errors.Newf(errors.ErrInvalidInput, "pointer renderer cannot export %T", value))
	}
	return reflect.ValueOf(value)
}
