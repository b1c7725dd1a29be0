package array_test

import (
	"testing"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ListKeys(t *testing.T) {
	a := array.New("a", "b", "c")

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []interface{}{0, 1, 2}, a.Keys())

	v, ok := a.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestZeroValueIsUsable(t *testing.T) {
	var a array.Array
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Has("x"))

	a.Set("x", 1)
	assert.True(t, a.Has("x"))
}

func TestSet_PreservesInsertionOrder(t *testing.T) {
	a := &array.Array{}
	a.Set("zeta", 1).Set("alpha", 2).Set(10, 3)

	assert.Equal(t, []interface{}{"zeta", "alpha", 10}, a.Keys())
	assert.Equal(t, []array.Entry{
		{Key: "zeta", Value: 1},
		{Key: "alpha", Value: 2},
		{Key: 10, Value: 3},
	}, a.Entries())
}

func TestSet_ExistingKeyKeepsPosition(t *testing.T) {
	a := &array.Array{}
	a.Set("first", 1).Set("second", 2).Set("first", 3)

	assert.Equal(t, []interface{}{"first", "second"}, a.Keys())
	v, _ := a.Get("first")
	assert.Equal(t, 3, v)
}

func TestAppend_UsesNextIntegerKey(t *testing.T) {
	a := &array.Array{}
	a.Append("a")
	a.Set(5, "b")
	a.Set("name", "c")
	a.Append("d")

	assert.Equal(t, []interface{}{0, 5, "name", 6}, a.Keys())

	// Deleting the highest key does not lower the next key.
	assert.True(t, a.Delete(6))
	a.Append("e")
	assert.Equal(t, []interface{}{0, 5, "name", 7}, a.Keys())
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		key  interface{}
		want interface{}
	}{
		{"int", 3, 3},
		{"int8", int8(-2), -2},
		{"int64", int64(42), 42},
		{"uint16", uint16(7), 7},
		{"plain string", "name", "name"},
		{"canonical integer string", "12", 12},
		{"negative integer string", "-4", -4},
		{"leading zero stays string", "012", "012"},
		{"plus sign stays string", "+1", "+1"},
		{"negative zero stays string", "-0", "-0"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.NormalizeKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeKey_RejectsOtherTypes(t *testing.T) {
	for _, key := range []interface{}{1.5, true, nil, []int{1}, struct{}{}} {
		_, err := array.NormalizeKey(key)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey), "key %#v: got %v", key, err)
	}
}

func TestSet_InvalidKeyPanics(t *testing.T) {
	a := &array.Array{}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.Equal(t, errors.ErrInvalidKey, errors.CodeOf(r))
	}()
	a.Set(2.5, "x")
}

func TestStringAndIntKeysCollapse(t *testing.T) {
	a := &array.Array{}
	a.Set("1", "from string").Set(1, "from int")

	assert.Equal(t, 1, a.Len())
	v, ok := a.Get("1")
	require.True(t, ok)
	assert.Equal(t, "from int", v)
}

func TestDelete(t *testing.T) {
	a := array.New("a", "b", "c")

	assert.True(t, a.Delete(1))
	assert.False(t, a.Delete(1))
	assert.False(t, a.Delete(1.5))
	assert.Equal(t, []interface{}{0, 2}, a.Keys())
}

func TestKeysReturnsCopy(t *testing.T) {
	a := array.New("a")
	keys := a.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []interface{}{0}, a.Keys())
}

func TestSelfReference(t *testing.T) {
	a := array.New(1)
	a.Set("self", a)

	v, ok := a.Get("self")
	require.True(t, ok)
	assert.Same(t, a, v)
}
