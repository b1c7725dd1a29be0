package exporter

import (
	"encoding/hex"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/exporter/pkg/errors"
)

const (
	shortStringLimit  = 40
	shortStringPrefix = 30
	shortStringSuffix = 7
)

// lineBreaks shows every line break as its escape sequence while keeping
// the break itself, so multi-line strings stay readable in diffs.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\\r\\n\n",
	"\n\r", "\\n\\r\n",
	"\r", "\\r\n",
	"\n", "\\n\n",
)

// StringRenderer renders strings, including named string types.
type StringRenderer struct{}

// Accepts reports whether value is a string.
func (StringRenderer) Accepts(value interface{}) bool {
	return value != nil && reflect.ValueOf(value).Kind() == reflect.String
}

// RecursiveExport renders the string quoted with single quotes. Strings
// holding control bytes or invalid UTF-8 render as hex.
func (s StringRenderer) RecursiveExport(value interface{}, _ int, _ *Context) string {
	str := s.mustString(value)
	if isBinary(str) {
		return "Binary String: 0x" + hex.EncodeToString([]byte(str))
	}
	return "'" + lineBreaks.Replace(str) + "'"
}

// ShortenedExport renders the string on one line, cutting the middle out of
// long strings.
func (s StringRenderer) ShortenedExport(value interface{}) string {
	exported := s.RecursiveExport(value, 0, nil)

	if utf8.RuneCountInString(exported) > shortStringLimit {
		runes := []rune(exported)
		exported = string(runes[:shortStringPrefix]) + "..." + string(runes[len(runes)-shortStringSuffix:])
	}
	return strings.ReplaceAll(exported, "\n", `\n`)
}

func (StringRenderer) mustString(value interface{}) string {
	if value != nil {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
			return rv.String()
		}
	}
	panic(errors.Newf(errors.ErrInvalidInput, "string renderer cannot export %T", value))
}

// isBinary reports whether s holds bytes other than printable text, tab,
// line breaks, vertical tab, form feed and escape.
func isBinary(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x09 || (c > 0x0d && c < 0x20 && c != 0x1b) {
			return true
		}
	}
	return false
}
