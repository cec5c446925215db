package surfer

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// StyleMap maps inline style properties to their values.
type StyleMap map[string]string

// CSS returns the inline style of the first element, nil for an empty
// collection.
func (c *Collection) CSS() StyleMap {
	first := c.FirstNode()
	if first == nil {
		return nil
	}
	styles := StyleMap{}
	for _, d := range c.declarations(first) {
		styles[d.Property] = d.Value
	}
	return styles
}

// CSSValue returns one inline style property of the first element.
// Properties may be given in CSS (font-size) or camel case (fontSize).
func (c *Collection) CSSValue(property string) string {
	first := c.FirstNode()
	if first == nil {
		return ""
	}
	property = cssProperty(property)
	value := ""
	for _, d := range c.declarations(first) {
		if d.Property == property {
			value = d.Value
		}
	}
	return value
}

// SetCSS writes inline style properties of the first element. An empty
// value removes the property.
func (c *Collection) SetCSS(properties map[string]string) *Collection {
	first := c.FirstNode()
	if first == nil {
		return c
	}
	decls := c.declarations(first)
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		decls = setDeclaration(decls, cssProperty(k), properties[k])
	}
	writeDeclarations(first, decls)
	return c
}

// Show removes the display property from every element.
func (c *Collection) Show() *Collection {
	return c.setDisplay("")
}

// Hide sets display: none on every element.
func (c *Collection) Hide() *Collection {
	return c.setDisplay("none")
}

func (c *Collection) setDisplay(value string) *Collection {
	return c.EachNode(func(_ int, n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		writeDeclarations(n, setDeclaration(c.declarations(n), "display", value))
	})
}

// declarations parses the style attribute of n. Unparsable styles are
// logged and treated as empty.
func (c *Collection) declarations(n *html.Node) []*css.Declaration {
	style, _ := selection(n).Attr("style")
	if strings.TrimSpace(style) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		c.logger().Warn("invalid inline style", slog.String("style", style), slog.String("err", err.Error()))
		return nil
	}
	for _, d := range decls {
		if !strings.HasPrefix(d.Property, "--") {
			d.Property = strings.ToLower(d.Property)
		}
	}
	return decls
}

// setDeclaration replaces the value of property in place, appends it if
// missing, or removes it when value is empty.
func setDeclaration(decls []*css.Declaration, property, value string) []*css.Declaration {
	if value == "" {
		return slices.DeleteFunc(decls, func(d *css.Declaration) bool {
			return d.Property == property
		})
	}
	found := false
	decls = slices.DeleteFunc(decls, func(d *css.Declaration) bool {
		if d.Property != property {
			return false
		}
		if found {
			return true
		}
		found = true
		d.Value = value
		d.Important = false
		return false
	})
	if !found {
		decls = append(decls, &css.Declaration{Property: property, Value: value})
	}
	return decls
}

func writeDeclarations(n *html.Node, decls []*css.Declaration) {
	if len(decls) == 0 {
		selection(n).RemoveAttr("style")
		return
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		part := fmt.Sprintf("%s: %s", d.Property, d.Value)
		if d.Important {
			part += " !important"
		}
		parts = append(parts, part+";")
	}
	selection(n).SetAttr("style", strings.Join(parts, " "))
}

// cssProperty converts camel case names (backgroundColor) to CSS property
// names (background-color).
func cssProperty(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
