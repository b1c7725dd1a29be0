package exporter

import (
	"reflect"
	"unsafe"

	"github.com/arthur-debert/exporter/pkg/errors"
)

// identity distinguishes one allocation from another. The type is part of
// the identity so that a struct and its first field, which share an
// address, are still different values.
type identity struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
}

// Context records the containers seen during one export pass and the key
// assigned to each. Keys start at 1 and follow first-visit order.
//
// A Context belongs to a single top-level export call and is threaded
// through every recursive call of that pass. It must not be reused across
// passes or shared between goroutines.
type Context struct {
	keys   map[identity]int
	last   int
	derefs map[identity]struct{}
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{
		keys:   make(map[identity]int),
		derefs: make(map[identity]struct{}),
	}
}

// Contains returns the key assigned to value, if value was added before.
func (c *Context) Contains(value interface{}) (int, bool) {
	id, ok := identityOf(value)
	if !ok {
		return 0, false
	}
	key, found := c.keys[id]
	return key, found
}

// Add registers value and returns its key. Adding a value twice returns the
// key it was first given. It panics with an ErrNoIdentity error when value
// has no identity of its own (scalars, struct values, nil references,
// pointers to zero-size values).
func (c *Context) Add(value interface{}) int {
	id, ok := identityOf(value)
	if !ok {
		panic(errors.Newf(errors.ErrNoIdentity, "value of type %T has no identity", value))
	}
	if key, found := c.keys[id]; found {
		return key
	}
	c.last++
	c.keys[id] = c.last
	return c.last
}

// AddAnonymous returns a fresh key for a value without identity. Nothing
// can ever refer back to it.
func (c *Context) AddAnonymous() int {
	c.last++
	return c.last
}

// Len returns the number of keys handed out so far.
func (c *Context) Len() int {
	return c.last
}

// enter marks a transparent pointer as being dereferenced. It returns false
// if the pointer is already being dereferenced further up the stack.
func (c *Context) enter(ptr reflect.Value) bool {
	id := identity{typ: ptr.Type(), ptr: ptr.UnsafePointer()}
	if _, busy := c.derefs[id]; busy {
		return false
	}
	c.derefs[id] = struct{}{}
	return true
}

func (c *Context) leave(ptr reflect.Value) {
	delete(c.derefs, identity{typ: ptr.Type(), ptr: ptr.UnsafePointer()})
}

// identityOf returns the identity of reference values. Empty slices and
// pointers or slices to zero-size types have none: zero-size allocations
// may share one address.
func identityOf(value interface{}) (identity, bool) {
	if value == nil {
		return identity{}, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() || rv.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.UnsafePointer()}, true
	case reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.UnsafePointer()}, true
	case reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 || rv.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.UnsafePointer(), len: rv.Len()}, true
	default:
		return identity{}, false
	}
}
