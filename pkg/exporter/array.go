package exporter

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
)

// ArrayRenderer renders *array.Array containers.
type ArrayRenderer struct {
	factory *Factory
}

// NewArrayRenderer returns an ArrayRenderer dispatching entries through f.
func NewArrayRenderer(f *Factory) *ArrayRenderer {
	return &ArrayRenderer{factory: f}
}

// Accepts reports whether value is an Array. Array values (not pointers)
// are accepted too; each one is a distinct container.
func (r *ArrayRenderer) Accepts(value interface{}) bool {
	switch a := value.(type) {
	case *array.Array:
		return a != nil
	case array.Array:
		return true
	}
	return false
}

// RecursiveExport renders the container and every entry in insertion
// order. A container already seen in ctx renders as "Array &<key>".
func (r *ArrayRenderer) RecursiveExport(value interface{}, indentation int, ctx *Context) string {
	if ctx == nil {
		ctx = NewContext()
	}

	a := r.mustArray(value)
	if key, seen := ctx.Contains(a); seen {
		return fmt.Sprintf("Array &%d", key)
	}
	key := ctx.Add(a)

	return "Array " + r.factory.exportBody(key, a.Entries(), indentation, ctx)
}

// ShortenedExport returns "Array (...)" or "Array ()" without looking at
// the entries.
func (r *ArrayRenderer) ShortenedExport(value interface{}) string {
	if r.mustArray(value).Len() > 0 {
		return "Array (...)"
	}
	return "Array ()"
}

func (r *ArrayRenderer) mustArray(value interface{}) *array.Array {
	switch a := value.(type) {
	case *array.Array:
		if a != nil {
			return a
		}
	case array.Array:
		return &a
	}
	panic(errors.Newf(errors.ErrInvalidInput, "array renderer cannot export %T", value))
}

// exportBody renders "&<key> (...)": one line per entry, keys at the
// container's own indentation and values one level deeper. Keys are
// rendered outside ctx; values share it.
func (f *Factory) exportBody(key int, entries []array.Entry, indentation int, ctx *Context) string {
	whitespace := strings.Repeat(" ", 4*indentation)
	if len(entries) == 0 {
		return fmt.Sprintf("&%d ()", key)
	}

	var lines strings.Builder
	for _, e := range entries {
		k := f.export(e.Key, indentation, nil)
		v := f.export(e.Value, indentation+1, ctx)
		fmt.Fprintf(&lines, "%s    %s => %s\n", whitespace, k, v)
	}

	return fmt.Sprintf("&%d (\n%s%s)", key, lines.String(), whitespace)
}
