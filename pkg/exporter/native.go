package exporter

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
)

// MapRenderer renders Go maps the way Arrays are rendered. Map order is
// random, so entries are sorted by key.
type MapRenderer struct {
	factory *Factory
}

// NewMapRenderer returns a MapRenderer dispatching entries through f.
func NewMapRenderer(f *Factory) *MapRenderer {
	return &MapRenderer{factory: f}
}

// Accepts reports whether value is a non-nil map.
func (r *MapRenderer) Accepts(value interface{}) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Map && !rv.IsNil()
}

func (r *MapRenderer) RecursiveExport(value interface{}, indentation int, ctx *Context) string {
	if ctx == nil {
		ctx = NewContext()
	}

	rv := r.mustMap(value)
	if key, seen := ctx.Contains(value); seen {
		return fmt.Sprintf("Array &%d", key)
	}
	key := ctx.Add(value)

	// MapIndex cannot find NaN keys, so keys and values are read together.
	type pair struct{ k, v reflect.Value }
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{iter.Key(), iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if lessKey(a.k, b.k) || lessKey(b.k, a.k) {
			return lessKey(a.k, b.k)
		}
		// Equal-ranking keys (several NaNs) fall back to their values.
		return fmt.Sprint(a.v.Interface()) < fmt.Sprint(b.v.Interface())
	})

	entries := make([]array.Entry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, array.Entry{Key: p.k.Interface(), Value: p.v.Interface()})
	}

	return "Array " + r.factory.exportBody(key, entries, indentation, ctx)
}

func (r *MapRenderer) ShortenedExport(value interface{}) string {
	return shortenedArray(r.mustMap(value).Len())
}

func (r *MapRenderer) mustMap(value interface{}) reflect.Value {
	if !r.Accepts(value) {
		panic(errors.Newf(errors.ErrInvalidInput, "map renderer cannot export %T", value))
	}
	return reflect.ValueOf(value)
}

// SliceRenderer renders Go slices and arrays the way Arrays are rendered,
// keyed by index. Non-empty slices have identity; Go arrays are values and
// always get a fresh key.
type SliceRenderer struct {
	factory *Factory
}

// NewSliceRenderer returns a SliceRenderer dispatching elements through f.
func NewSliceRenderer(f *Factory) *SliceRenderer {
	return &SliceRenderer{factory: f}
}

// Accepts reports whether value is a non-nil slice or a Go array.
func (r *SliceRenderer) Accepts(value interface{}) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

func (r *SliceRenderer) RecursiveExport(value interface{}, indentation int, ctx *Context) string {
	if ctx == nil {
		ctx = NewContext()
	}

	rv := r.mustSlice(value)
	var key int
	if _, ok := identityOf(value); ok {
		if seen, found := ctx.Contains(value); found {
			return fmt.Sprintf("Array &%d", seen)
		}
		key = ctx.Add(value)
	} else {
		key = ctx.AddAnonymous()
	}

	entries := make([]array.Entry, rv.Len())
	for i := range entries {
		entries[i] = array.Entry{Key: i, Value: rv.Index(i).Interface()}
	}

	return "Array " + r.factory.exportBody(key, entries, indentation, ctx)
}

func (r *SliceRenderer) ShortenedExport(value interface{}) string {
	return shortenedArray(r.mustSlice(value).Len())
}

func (r *SliceRenderer) mustSlice(value interface{}) reflect.Value {
	if !r.Accepts(value) {
		panic(errors.Newf(errors.ErrInvalidInput, "slice renderer cannot export %T", value))
	}
	return reflect.ValueOf(value)
}

func shortenedArray(n int) string {
	if n > 0 {
		return "Array (...)"
	}
	return "Array ()"
}

// keyRank orders map keys of different kinds: nil first, then booleans,
// numbers, strings and everything else. NaN sorts before other floats.
func keyRank(k reflect.Value) int {
	switch k.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Bool:
		return 1
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 2
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 3
	case reflect.Float32, reflect.Float64:
		return 4
	case reflect.String:
		return 5
	default:
		return 6
	}
}

func lessKey(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}

	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra < rb
	}

	switch ra {
	case 0:
		return false
	case 1:
		return !a.Bool() && b.Bool()
	case 2:
		return a.Int() < b.Int()
	case 3:
		return a.Uint() < b.Uint()
	case 4:
		if an, bn := math.IsNaN(a.Float()), math.IsNaN(b.Float()); an || bn {
			return an && !bn
		}
		return a.Float() < b.Float()
	case 5:
		return a.String() < b.String()
	default:
		return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
	}
}
