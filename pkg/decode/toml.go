package decode

import (
	"fmt"
	"sort"
	"time"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// FromTOML decodes a TOML document. Tables become Arrays with their keys
// sorted; dates and times become text.
func FromTOML(data []byte) (interface{}, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "cannot decode toml")
	}
	return fromNative(doc), nil
}

func fromNative(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		a := &array.Array{}
		for _, k := range keys {
			a.Set(k, fromNative(t[k]))
		}
		return a
	case []interface{}:
		a := &array.Array{}
		for _, item := range t {
			a.Append(fromNative(item))
		}
		return a
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return fmt.Sprint(t)
	default:
		return v
	}
}
