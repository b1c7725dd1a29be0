package exporter

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
)

var arrayType = reflect.TypeOf(array.Array{})

// ObjectRenderer renders structs and pointers to structs as
//
//	pkg.Type Object &<key> (
//	    'Field' => value
//	)
//
// Only exported fields are shown, in declaration order. A pointer seen
// before in the same pass renders as "pkg.Type Object &<key>". Struct values
// and pointers to zero-size structs have no identity and always get a fresh
// key.
type ObjectRenderer struct {
	factory *Factory
}

// NewObjectRenderer returns an ObjectRenderer dispatching fields through f.
func NewObjectRenderer(f *Factory) *ObjectRenderer {
	return &ObjectRenderer{factory: f}
}

// Accepts reports whether value is a struct or a non-nil pointer to one.
// Arrays are left to the ArrayRenderer.
func (r *ObjectRenderer) Accepts(value interface{}) bool {
	_, ok := structOf(value)
	return ok
}

func (r *ObjectRenderer) RecursiveExport(value interface{}, indentation int, ctx *Context) string {
	if ctx == nil {
		ctx = NewContext()
	}

	sv := r.mustStruct(value)
	name := sv.Type().String()

	var key int
	if _, ok := identityOf(value); ok {
		if seen, ok := ctx.Contains(value); ok {
			return fmt.Sprintf("%s Object &%d", name, seen)
		}
		key = ctx.Add(value)
	} else {
		key = ctx.AddAnonymous()
	}

	return name + " Object " + r.factory.exportBody(key, exportedFields(sv), indentation, ctx)
}

func (r *ObjectRenderer) ShortenedExport(value interface{}) string {
	sv := r.mustStruct(value)
	if len(exportedFields(sv)) > 0 {
		return sv.Type().String() + " Object (...)"
	}
	return sv.Type().String() + " Object ()"
}

func (r *ObjectRenderer) mustStruct(value interface{}) reflect.Value {
	sv, ok := structOf(value)
	if !ok {
		panic(errors.Newf(errors.ErrInvalidInput, "object renderer cannot export %T", value))
	}
	return sv
}

// structOf returns the struct value itself, or the struct a pointer points
// to.
func structOf(value interface{}) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct || rv.Type() == arrayType {
		return reflect.Value{}, false
	}
	return rv, true
}

func exportedFields(sv reflect.Value) []array.Entry {
	t := sv.Type()
	fields := make([]array.Entry, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, array.Entry{Key: f.Name, Value: sv.Field(i).Interface()})
	}
	return fields
}
