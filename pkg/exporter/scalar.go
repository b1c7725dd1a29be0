package exporter

import (
	"math"
	"reflect"
	"strconv"

	"github.com/arthur-debert/exporter/pkg/errors"
)

// ScalarRenderer renders nil, booleans and numbers. Nil references of any
// kind (pointers, maps, slices, channels, funcs) render as null too.
type ScalarRenderer struct{}

// Accepts reports whether value is a scalar or a nil reference.
func (ScalarRenderer) Accepts(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// RecursiveExport renders the scalar. Scalars have no children, so
// indentation and ctx are unused.
func (s ScalarRenderer) RecursiveExport(value interface{}, _ int, _ *Context) string {
	return s.ShortenedExport(value)
}

// ShortenedExport renders the scalar.
func (ScalarRenderer) ShortenedExport(value interface{}) string {
	if value == nil {
		return "null"
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
	}
	panic(errors.Newf(errors.ErrInvalidInput, "scalar renderer cannot export %T", value))
}

// formatFloat prints the shortest representation, keeping a ".0" suffix on
// integral values so floats stay distinguishable from integers.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, bitSize) + ".0"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
