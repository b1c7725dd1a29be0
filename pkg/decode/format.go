package decode

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/exporter/pkg/errors"
)

// Format identifies an input document format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatTOML, FormatXML}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat, "unsupported format %q", s).
			WithDetail("format", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrUnsupportedFormat, "cannot detect format of %s", path).
			WithDetail("path", path)
	}
	return ParseFormat(ext)
}

// Decode decodes data in the given format.
func Decode(format Format, data []byte) (interface{}, error) {
	switch format {
	case FormatYAML, FormatJSON:
		return FromYAML(data)
	case FormatTOML:
		return FromTOML(data)
	case FormatXML:
		return FromXML(data)
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unsupported format %q", format)
	}
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader, format Format) (interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read input")
	}
	return Decode(format, data)
}

// DecodeFile reads and decodes the file at path. An empty format is
// detected from the extension.
func DecodeFile(path string, format Format) (interface{}, error) {
	if format == "" {
		detected, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return Decode(format, data)
}
