package exporter

import "reflect"

func valueOf(v interface{}) reflect.Value {
	return reflect.ValueOf(v)
}
