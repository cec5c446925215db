package surfer

import (
	"log/slog"
	"regexp"

	"golang.org/x/net/html"
)

// HasClass reports whether the single element in c has the class.
func (c *Collection) HasClass(class string) bool {
	c.assertOne("hasClass")
	first := c.FirstNode()
	if first == nil {
		return false
	}
	return selection(first).HasClass(class)
}

// HasClassMatch reports whether any class of the single element in c
// matches re.
func (c *Collection) HasClassMatch(re *regexp.Regexp) bool {
	c.assertOne("hasClass")
	first := c.FirstNode()
	if first == nil || re == nil {
		return false
	}
	return len(classesMatching(first, re)) > 0
}

func (c *Collection) LacksClass(class string) bool {
	return !c.HasClass(class)
}

func (c *Collection) LacksClassMatch(re *regexp.Regexp) bool {
	return !c.HasClassMatch(re)
}

func (c *Collection) AddClass(class string) *Collection {
	return c.EachNode(func(_ int, n *html.Node) {
		selection(n).AddClass(class)
	})
}

func (c *Collection) RemoveClass(class string) *Collection {
	if class == "" {
		// goquery drops the whole class attribute for an empty name
		c.logger().Warn("cannot remove an empty class name")
		return c
	}
	return c.EachNode(func(_ int, n *html.Node) {
		selection(n).RemoveClass(class)
	})
}

// RemoveClassMatch removes, from each element, the classes matching re.
func (c *Collection) RemoveClassMatch(re *regexp.Regexp) *Collection {
	if re == nil {
		c.logger().Warn("class pattern must not be nil")
		return c
	}
	return c.EachNode(func(_ int, n *html.Node) {
		if matches := classesMatching(n, re); len(matches) > 0 {
			selection(n).RemoveClass(matches...)
		}
	})
}

func (c *Collection) ToggleClass(class string) *Collection {
	if class == "" {
		return c
	}
	return c.EachNode(func(_ int, n *html.Node) {
		selection(n).ToggleClass(class)
	})
}

// ClassContext is handed to SetClassFunc predicates. E and W are short
// aliases of Element and Wrapped.
type ClassContext struct {
	Element *html.Node
	Wrapped *Collection
	E       *html.Node
	W       *Collection
}

// SetClass adds the class to every element if on is true and removes it
// otherwise.
func (c *Collection) SetClass(class string, on bool) *Collection {
	return c.SetClassFunc(class, func(ClassContext) bool { return on })
}

// SetClassFunc adds or removes the class per element depending on pred.
// A nil pred logs a warning and changes nothing.
func (c *Collection) SetClassFunc(class string, pred func(ctx ClassContext) bool) *Collection {
	if pred == nil {
		c.logger().Warn("invalid class predicate", slog.String("class", class))
		return c
	}
	return c.EachNode(func(_ int, n *html.Node) {
		w := c.wrap(n)
		on := pred(ClassContext{Element: n, Wrapped: w, E: n, W: w})
		if on {
			selection(n).AddClass(class)
		} else if class != "" {
			selection(n).RemoveClass(class)
		}
	})
}
