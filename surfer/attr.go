package surfer

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Attr returns the attribute of the first element. Further elements are
// ignored.
func (c *Collection) Attr(name string) (string, bool) {
	first := c.FirstNode()
	if first == nil {
		return "", false
	}
	return selection(first).Attr(name)
}

// SetAttr sets the attribute on every element.
func (c *Collection) SetAttr(name, value string) *Collection {
	return c.EachNode(func(_ int, n *html.Node) {
		selection(n).SetAttr(name, value)
	})
}

func (c *Collection) RemoveAttr(name string) *Collection {
	return c.EachNode(func(_ int, n *html.Node) {
		selection(n).RemoveAttr(name)
	})
}

// Data returns a data attribute of the first element. name is looked up as
// a dataset key first ("fooBar" reads data-foo-bar) and then as the
// literal suffix of a data- attribute ("foo-bar" reads data-foo-bar too).
func (c *Collection) Data(name string) (string, bool) {
	first := c.FirstNode()
	if first == nil {
		return "", false
	}
	if attr, ok := datasetAttr(name); ok {
		if v, found := selection(first).Attr(attr); found {
			return v, true
		}
	}
	return c.Attr("data-" + name)
}

// datasetAttr returns the attribute name for a dataset key. Keys with a
// dash followed by a lowercase letter have no attribute.
func datasetAttr(key string) (string, bool) {
	var b strings.Builder
	b.WriteString("data-")
	for i, r := range key {
		if r == '-' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			return "", false
		}
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), true
}
