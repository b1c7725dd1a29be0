package exporter_test

import (
	"testing"
	"time"
	"unsafe"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
	"github.com/arthur-debert/exporter/pkg/exporter"
	"github.com/arthur-debert/exporter/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

type point struct {
	X, Y   int
	hidden string
}

func TestDefaultFactory_Names(t *testing.T) {
	f := exporter.DefaultFactory()
	assert.Equal(t,
		[]string{"array", "map", "object", "pointer", "resource", "scalar", "slice", "string"},
		f.Names())
}

func TestDefaultFactory_ExactlyOneRendererPerValue(t *testing.T) {
	x := 3
	arr := array.New()

	values := map[string]interface{}{
		"nil":            nil,
		"bool":           true,
		"int":            1,
		"int8":           int8(-1),
		"uint":           uint(1),
		"float":          1.5,
		"complex":        complex(1, 2),
		"string":         "s",
		"named string":   label("x"),
		"array":          arr,
		"array value":    array.Array{},
		"nil array":      (*array.Array)(nil),
		"pointer array":  &arr,
		"struct":         point{},
		"struct pointer": &point{},
		"nil struct ptr": (*point)(nil),
		"time":           time.Time{},
		"map":            map[string]int{},
		"nil map":        (map[string]int)(nil),
		"slice":          []int{},
		"nil slice":      ([]int)(nil),
		"go array":       [2]int{},
		"chan":           make(chan int),
		"nil chan":       (chan int)(nil),
		"func":           func() {},
		"unsafe pointer": unsafe.Pointer(&x),
		"int pointer":    &x,
		"nil int ptr":    (*int)(nil),
		"error":          errors.New(errors.ErrInternal, "boom"),
	}

	f := exporter.DefaultFactory()
	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { f.RendererFor(v) })
		})
	}
}

func TestFactory_NoRenderer(t *testing.T) {
	f := exporter.NewFactory()
	f.MustRegister("string", exporter.StringRenderer{})

	testutil.AssertPanicCode(t, errors.ErrNoRenderer, func() { f.RendererFor(1) })
}

func TestFactory_AmbiguousRenderer(t *testing.T) {
	f := exporter.NewFactory()
	f.MustRegister("scalar", exporter.ScalarRenderer{})
	f.MustRegister("numbers", exporter.ScalarRenderer{})

	err := testutil.AssertPanicCode(t, errors.ErrAmbiguousRenderer, func() { f.RendererFor(1) })
	require.NotNil(t, err)
	assert.Equal(t, []string{"numbers", "scalar"}, err.Details["renderers"])
}

func TestFactory_RegisterDuplicate(t *testing.T) {
	f := exporter.NewFactory()
	require.NoError(t, f.Register("string", exporter.StringRenderer{}))

	err := f.Register("string", exporter.StringRenderer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

// upperRenderer shows that renderers can be swapped without touching the
// container renderer.
type upperRenderer struct{}

func (upperRenderer) Accepts(v interface{}) bool { _, ok := v.(string); return ok }
func (upperRenderer) RecursiveExport(v interface{}, _ int, _ *exporter.Context) string {
	return "<" + v.(string) + ">"
}
func (upperRenderer) ShortenedExport(v interface{}) string { return "<...>" }

func TestFactory_CustomRenderer(t *testing.T) {
	f := exporter.NewFactory()
	f.MustRegister("array", exporter.NewArrayRenderer(f))
	f.MustRegister("scalar", exporter.ScalarRenderer{})
	f.MustRegister("string", upperRenderer{})

	a := &array.Array{}
	a.Set("k", "v")

	e := exporter.NewWithFactory(f, exporter.Config{})
	assert.Equal(t, "Array &1 (\n    <k> => <v>\n)", e.Export(a))
	assert.Same(t, f, e.Factory())
}
