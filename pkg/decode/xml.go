package decode

import (
	"strings"

	"github.com/arthur-debert/exporter/pkg/array"
	"github.com/arthur-debert/exporter/pkg/errors"
	"github.com/beevik/etree"
)

// FromXML decodes an XML document. Each element becomes an Array holding
// its "name", then "attributes", "text" and "children" when present.
func FromXML(data []byte) (interface{}, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "cannot decode xml")
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDecode, "xml document has no root element")
	}
	return elementArray(root), nil
}

func elementArray(e *etree.Element) *array.Array {
	a := &array.Array{}
	a.Set("name", e.FullTag())

	if len(e.Attr) > 0 {
		attrs := &array.Array{}
		for _, attr := range e.Attr {
			attrs.Set(attr.FullKey(), attr.Value)
		}
		a.Set("attributes", attrs)
	}

	if text := strings.TrimSpace(e.Text()); text != "" {
		a.Set("text", text)
	}

	if children := e.ChildElements(); len(children) > 0 {
		list := &array.Array{}
		for _, child := range children {
			list.Append(elementArray(child))
		}
		a.Set("children", list)
	}

	return a
}
