package surfer

import (
	"github.com/jakopako/domsurfer/document"
	"golang.org/x/net/html"
)

// Find returns the descendants of the single element in c that match
// selector. Holding more or fewer elements logs a warning; the first one
// is searched regardless.
func (c *Collection) Find(selector string) (*Collection, error) {
	c.assertOne("find")
	m, err := document.Compile(selector)
	if err != nil {
		return c.wrap(nil), err
	}
	first := c.FirstNode()
	if first == nil {
		return c.wrap(nil), nil
	}
	return c.wrap(selection(first).FindMatcher(m)), nil
}

// Filter keeps the elements matching selector.
func (c *Collection) Filter(selector string) (*Collection, error) {
	m, err := document.Compile(selector)
	if err != nil {
		return c, err
	}
	c.nodes = m.Filter(c.nodes)
	return c, nil
}

// FilterFunc keeps the elements for which keep returns true. i is the
// position of n before filtering.
func (c *Collection) FilterFunc(keep func(i int, n *html.Node) bool) *Collection {
	if keep == nil {
		c.logger().Warn("filter predicate must not be nil")
		return c
	}
	kept := make([]*html.Node, 0, len(c.nodes))
	for i, n := range c.nodes {
		if keep(i, n) {
			kept = append(kept, n)
		}
	}
	c.nodes = kept
	return c
}

// ParentNode returns the parent element of the first element, or nil.
func (c *Collection) ParentNode() *html.Node {
	return parentElement(c.FirstNode())
}

func (c *Collection) Parent() *Collection {
	return c.wrap(c.ParentNode())
}

// ChildNodes returns the live list of element children of the first
// element.
func (c *Collection) ChildNodes() *document.ChildList {
	return document.Children(c.FirstNode())
}

// Children wraps the element children of the first element as they are
// now.
func (c *Collection) Children() *Collection {
	return c.wrap(c.ChildNodes())
}

// ClosestNode returns the first element matching selector, starting with
// the first element of c and going up through its ancestors.
func (c *Collection) ClosestNode(selector string) (*html.Node, error) {
	m, err := document.Compile(selector)
	if err != nil {
		return nil, err
	}
	return closest(c.FirstNode(), m), nil
}

func (c *Collection) Closest(selector string) (*Collection, error) {
	n, err := c.ClosestNode(selector)
	return c.wrap(n), err
}
