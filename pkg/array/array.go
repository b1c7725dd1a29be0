package array

import (
	"math"
	"reflect"
	"strconv"

	"github.com/arthur-debert/exporter/pkg/errors"
)

// Entry is a single key/value pair of an Array.
type Entry struct {
	Key   interface{}
	Value interface{}
}

// Array is an ordered key/value container. The zero value is an empty
// Array ready to use.
type Array struct {
	keys   []interface{}
	values map[interface{}]interface{}
	next   int
}

// New returns a list-style Array holding values under keys 0..n-1.
func New(values ...interface{}) *Array {
	a := &Array{}
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// Set stores value under key. An existing key keeps its position.
// It panics with an ErrInvalidKey error if key is neither an integer nor a
// string.
func (a *Array) Set(key, value interface{}) *Array {
	k, err := NormalizeKey(key)
	if err != nil {
		panic(err)
	}
	if a.values == nil {
		a.values = make(map[interface{}]interface{})
	}
	if _, exists := a.values[k]; !exists {
		a.keys = append(a.keys, k)
	}
	a.values[k] = value

	if n, ok := k.(int); ok && n >= a.next {
		a.next = n + 1
	}
	return a
}

// Append stores value under the next integer key: one past the largest
// integer key ever set, or 0.
func (a *Array) Append(value interface{}) *Array {
	return a.Set(a.next, value)
}

// Get returns the value stored under key.
func (a *Array) Get(key interface{}) (interface{}, bool) {
	k, err := NormalizeKey(key)
	if err != nil {
		return nil, false
	}
	v, ok := a.values[k]
	return v, ok
}

// Has reports whether key is present.
func (a *Array) Has(key interface{}) bool {
	_, ok := a.Get(key)
	return ok
}

// Delete removes key. It reports whether the key was present. The next
// integer key used by Append is not lowered.
func (a *Array) Delete(key interface{}) bool {
	k, err := NormalizeKey(key)
	if err != nil {
		return false
	}
	if _, ok := a.values[k]; !ok {
		return false
	}
	delete(a.values, k)
	for i, existing := range a.keys {
		if existing == k {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (a *Array) Len() int {
	return len(a.keys)
}

// Keys returns the keys in insertion order.
func (a *Array) Keys() []interface{} {
	keys := make([]interface{}, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Entries returns the entries in insertion order.
func (a *Array) Entries() []Entry {
	entries := make([]Entry, 0, len(a.keys))
	for _, k := range a.keys {
		entries = append(entries, Entry{Key: k, Value: a.values[k]})
	}
	return entries
}

// NormalizeKey converts key to the form an Array stores it under: an int
// or a string.
func NormalizeKey(key interface{}) (interface{}, error) {
	switch k := key.(type) {
	case int:
		return k, nil
	case int8:
		return int(k), nil
	case int16:
		return int(k), nil
	case int32:
		return int(k), nil
	case int64:
		if k > math.MaxInt || k < math.MinInt {
			return nil, errors.Newf(errors.ErrInvalidKey, "integer key %d overflows int", k)
		}
		return int(k), nil
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u := reflect.ValueOf(k).Uint()
		if u > math.MaxInt {
			return nil, errors.Newf(errors.ErrInvalidKey, "integer key %d overflows int", u)
		}
		return int(u), nil
	case string:
		if n, ok := canonicalInt(k); ok {
			return n, nil
		}
		return k, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidKey, "unsupported key type %T", key).
			WithDetail("key", key)
	}
}

// canonicalInt reports whether s is the decimal form strconv.Itoa would
// produce for some int.
func canonicalInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}
