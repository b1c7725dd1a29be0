package exporter_test

import (
	"math"
	"strings"
	"testing"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/exporter"
	"github.com/stretchr/testify/assert"
)

type node struct {
	Name string
	Next *node
}

type blank struct{}

type empty struct {
	secret int
}

func TestScalarRenderer(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"uint8", uint8(7), "7"},
		{"integral float", 1.0, "1.0"},
		{"negative integral float", -2.0, "-2.0"},
		{"fraction", 1.5, "1.5"},
		{"float32", float32(0.1), "0.1"},
		{"large float", 1e20, "1e+20"},
		{"nan", math.NaN(), "NAN"},
		{"inf", math.Inf(1), "INF"},
		{"negative inf", math.Inf(-1), "-INF"},
		{"complex", complex(1, 2), "(1+2i)"},
		{"nil pointer", (*node)(nil), "null"},
		{"nil map", (map[string]int)(nil), "null"},
		{"nil slice", ([]int)(nil), "null"},
		{"nil array", (*array.Array)(nil), "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exporter.Export(tt.value))
			assert.Equal(t, tt.want, exporter.ShortenedExport(tt.value))
		})
	}
}

func TestStringRenderer(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"plain", "foo", "'foo'"},
		{"empty", "", "''"},
		{"named type", label("bar"), "'bar'"},
		{"newline", "a\nb", "'a\\n\nb'"},
		{"crlf", "a\r\nb", "'a\\r\\n\nb'"},
		{"lfcr", "a\n\rb", "'a\\n\\r\nb'"},
		{"carriage return", "a\rb", "'a\\r\nb'"},
		{"tab stays", "a\tb", "'a\tb'"},
		{"escape stays", "\x1b[0m", "'\x1b[0m'"},
		{"unicode", "héllo", "'héllo'"},
		{"nul byte", "\x00", "Binary String: 0x00"},
		{"control byte", "ab\x01", "Binary String: 0x616201"},
		{"invalid utf8", "\xff", "Binary String: 0xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exporter.Export(tt.value))
		})
	}
}

func TestStringRenderer_ShortenedExport(t *testing.T) {
	r := exporter.StringRenderer{}

	assert.Equal(t, "'short'", r.ShortenedExport("short"))
	assert.Equal(t, "'a\\n\\nb'", r.ShortenedExport("a\nb"))

	long := strings.Repeat("a", 50)
	assert.Equal(t, "'"+strings.Repeat("a", 29)+"..."+strings.Repeat("a", 6)+"'", r.ShortenedExport(long))

	// 38 characters plus quotes is exactly at the limit.
	atLimit := strings.Repeat("b", 38)
	assert.Equal(t, "'"+atLimit+"'", r.ShortenedExport(atLimit))

	// Cutting counts characters, not bytes.
	wide := strings.Repeat("é", 50)
	assert.Equal(t, "'"+strings.Repeat("é", 29)+"..."+strings.Repeat("é", 6)+"'", r.ShortenedExport(wide))
}

func TestObjectRenderer(t *testing.T) {
	t.Run("pointer", func(t *testing.T) {
		want := "exporter_test.point Object &1 (\n" +
			"    'X' => 1\n" +
			"    'Y' => 2\n" +
			")"
		assert.Equal(t, want, exporter.Export(&point{X: 1, Y: 2, hidden: "h"}))
	})

	t.Run("value", func(t *testing.T) {
		want := "exporter_test.point Object &1 (\n" +
			"    'X' => 0\n" +
			"    'Y' => 0\n" +
			")"
		assert.Equal(t, want, exporter.Export(point{}))
	})

	t.Run("no exported fields", func(t *testing.T) {
		assert.Equal(t, "exporter_test.empty Object &1 ()", exporter.Export(&empty{secret: 1}))
	})

	t.Run("self reference", func(t *testing.T) {
		n := &node{Name: "a"}
		n.Next = n
		want := "exporter_test.node Object &1 (\n" +
			"    'Name' => 'a'\n" +
			"    'Next' => exporter_test.node Object &1\n" +
			")"
		assert.Equal(t, want, exporter.Export(n))
	})

	t.Run("chain", func(t *testing.T) {
		n := &node{Name: "a", Next: &node{Name: "b"}}
		want := "exporter_test.node Object &1 (\n" +
			"    'Name' => 'a'\n" +
			"    'Next' => exporter_test.node Object &2 (\n" +
			"        'Name' => 'b'\n" +
			"        'Next' => null\n" +
			"    )\n" +
			")"
		assert.Equal(t, want, exporter.Export(n))
	})

	t.Run("zero-size pointers stay distinct", func(t *testing.T) {
		want := "Array &1 (\n" +
			"    0 => exporter_test.blank Object &2 ()\n" +
			"    1 => exporter_test.blank Object &3 ()\n" +
			")"
		assert.Equal(t, want, exporter.Export(array.New(&blank{}, &blank{})))
	})

	t.Run("shortened", func(t *testing.T) {
		assert.Equal(t, "exporter_test.point Object (...)", exporter.ShortenedExport(&point{}))
		assert.Equal(t, "exporter_test.empty Object ()", exporter.ShortenedExport(empty{}))
	})
}

func TestMapRenderer(t *testing.T) {
	t.Run("sorted keys", func(t *testing.T) {
		m := map[string]int{"b": 2, "a": 1, "c": 3}
		want := "Array &1 (\n    'a' => 1\n    'b' => 2\n    'c' => 3\n)"
		assert.Equal(t, want, exporter.Export(m))
	})

	t.Run("mixed keys", func(t *testing.T) {
		m := map[interface{}]string{"x": "s", 10: "ten", 2: "two", false: "no"}
		want := "Array &1 (\n" +
			"    false => 'no'\n" +
			"    2 => 'two'\n" +
			"    10 => 'ten'\n" +
			"    'x' => 's'\n" +
			")"
		assert.Equal(t, want, exporter.Export(m))
	})

	t.Run("self reference", func(t *testing.T) {
		m := map[string]interface{}{}
		m["self"] = m
		assert.Equal(t, "Array &1 (\n    'self' => Array &1\n)", exporter.Export(m))
	})

	t.Run("nan keys", func(t *testing.T) {
		assert.Equal(t, "Array &1 (\n    NAN => 1\n    2.0 => 3\n)",
			exporter.Export(map[float64]int{math.NaN(): 1, 2: 3}))

		m := map[float64]int{1.5: 0}
		m[math.NaN()] = 5
		m[math.NaN()] = 4
		assert.Equal(t, "Array &1 (\n    NAN => 4\n    NAN => 5\n    1.5 => 0\n)", exporter.Export(m))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "Array &1 ()", exporter.Export(map[int]int{}))
		assert.Equal(t, "Array ()", exporter.ShortenedExport(map[int]int{}))
		assert.Equal(t, "Array (...)", exporter.ShortenedExport(map[int]int{1: 1}))
	})
}

func TestSliceRenderer(t *testing.T) {
	t.Run("slice", func(t *testing.T) {
		assert.Equal(t, "Array &1 (\n    0 => 'x'\n    1 => 'y'\n)", exporter.Export([]string{"x", "y"}))
	})

	t.Run("go array", func(t *testing.T) {
		assert.Equal(t, "Array &1 (\n    0 => 1\n    1 => 2\n)", exporter.Export([2]int{1, 2}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "Array &1 ()", exporter.Export([]int{}))
		assert.Equal(t, "Array ()", exporter.ShortenedExport([]int{}))
	})

	t.Run("zero-size elements stay distinct", func(t *testing.T) {
		want := "Array &1 (\n" +
			"    0 => Array &2 (\n" +
			"        0 => struct {} Object &3 ()\n" +
			"        1 => struct {} Object &4 ()\n" +
			"    )\n" +
			"    1 => Array &5 (\n" +
			"        0 => struct {} Object &6 ()\n" +
			"        1 => struct {} Object &7 ()\n" +
			"    )\n" +
			")"
		assert.Equal(t, want, exporter.Export(array.New(make([]struct{}, 2), make([]struct{}, 2))))
	})

	t.Run("self reference", func(t *testing.T) {
		s := []interface{}{nil}
		s[0] = s
		assert.Equal(t, "Array &1 (\n    0 => Array &1\n)", exporter.Export(s))
	})

	t.Run("nested in array", func(t *testing.T) {
		a := &array.Array{}
		a.Set("tags", []string{"go"})
		want := "Array &1 (\n" +
			"    'tags' => Array &2 (\n" +
			"        0 => 'go'\n" +
			"    )\n" +
			")"
		assert.Equal(t, want, exporter.Export(a))
	})
}

func TestResourceRenderer(t *testing.T) {
	assert.Equal(t, "resource of type (chan int)", exporter.Export(make(chan int)))
	assert.Equal(t, "resource of type (func())", exporter.Export(func() {}))
	assert.Equal(t, "resource of type (func(int) error)", exporter.ShortenedExport(func(int) error { return nil }))
}

func TestPointerRenderer(t *testing.T) {
	x := 5
	assert.Equal(t, "5", exporter.Export(&x))

	s := "text"
	ps := &s
	assert.Equal(t, "'text'", exporter.Export(&ps))
	assert.Equal(t, "'text'", exporter.ShortenedExport(&ps))

	a := array.New(1)
	assert.Equal(t, "Array &1 (\n    0 => 1\n)", exporter.Export(&a))

	loop := new(interface{})
	*loop = loop
	assert.Equal(t, "*RECURSION*", exporter.Export(loop))
	assert.Equal(t, "*RECURSION*", exporter.ShortenedExport(loop))
}
