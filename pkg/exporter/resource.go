package exporter

import (
	"fmt"
	"reflect"
)

// ResourceRenderer renders handles whose contents cannot be shown: channels,
// funcs and unsafe pointers.
type ResourceRenderer struct{}

// Accepts reports whether value is a non-nil channel, func or unsafe
// pointer.
func (ResourceRenderer) Accepts(value interface{}) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return false
}

func (r ResourceRenderer) RecursiveExport(value interface{}, _ int, _ *Context) string {
	return r.ShortenedExport(value)
}

func (ResourceRenderer) ShortenedExport(value interface{}) string {
	return fmt.Sprintf("resource of type (%T)", value)
}
