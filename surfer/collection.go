package surfer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jakopako/domsurfer/document"
	"golang.org/x/net/html"
)

var (
	// ErrUnsupportedValue is returned by Add for values of KindInvalid.
	ErrUnsupportedValue = errors.New("unsupported value for collection")
	// ErrNoDocument is returned by Add for selectors, markup and ready
	// callbacks on a collection that was not created by a Surfer.
	ErrNoDocument = errors.New("collection has no document")
)

// Collection is an ordered set of element nodes. Every member is an
// element or document node and appears only once, in first-seen order.
//
// Collections are created by Surfer.Wrap. The zero value holds no elements
// and has no document: it accepts nodes but no selectors or markup.
type Collection struct {
	surfer *Surfer
	origin string
	nodes  []*html.Node
}

// Add normalizes value into elements and appends the ones not yet present.
// On error the collection keeps the elements it had before the call.
func (c *Collection) Add(value any) (*Collection, error) {
	defer c.normalize()

	kind := Classify(value)
	s := c.owner()
	if s.doc == nil && (kind == KindReadyCallback || kind == KindMarkup || kind == KindSelector) {
		return c, fmt.Errorf("%w: cannot add %s", ErrNoDocument, kind)
	}

	switch kind {
	case KindEmpty:
	case KindReadyCallback:
		s.doc.OnReady(s.readyCallback(value))
	case KindMarkup:
		nodes, err := s.doc.ParseMarkup(value.(string))
		if err != nil {
			return c, err
		}
		return c.Add(nodes)
	case KindSelector:
		nodes, err := s.doc.QueryAll(value.(string))
		if err != nil {
			return c, err
		}
		return c.Add(nodes)
	case KindElement:
		c.nodes = append(c.nodes, value.(*html.Node))
	case KindNodeGroup:
		c.nodes = append(c.nodes, nodeGroup(value)...)
	case KindArray:
		for _, item := range value.([]any) {
			if n, ok := item.(*html.Node); ok {
				c.nodes = append(c.nodes, n)
			}
		}
	case KindCollection:
		c.logger().Warn("nesting collections", slog.String("origin", c.origin))
		c.nodes = append(c.nodes, value.(*Collection).nodes...)
	default:
		return c, fmt.Errorf("%w '%T'", ErrUnsupportedValue, value)
	}
	return c, nil
}

// normalize drops non-elements and repeated nodes, keeping the first
// occurrence of each.
func (c *Collection) normalize() {
	seen := make(map[*html.Node]struct{}, len(c.nodes))
	kept := c.nodes[:0]
	for _, n := range c.nodes {
		if !IsElement(n) {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		kept = append(kept, n)
	}
	clear(c.nodes[len(kept):])
	c.nodes = kept
}

// owner returns the Surfer that created c, or a Surfer without document
// for zero value collections.
func (c *Collection) owner() *Surfer {
	if c.surfer == nil {
		c.surfer = detached()
	}
	return c.surfer
}

func (c *Collection) logger() *slog.Logger {
	return c.owner().logger
}

func (c *Collection) wrap(value any) *Collection {
	return c.owner().Wrap(value)
}

// Document returns the document the collection belongs to, nil for zero
// value collections.
func (c *Collection) Document() document.Document {
	return c.owner().doc
}

func (c *Collection) Len() int {
	return len(c.nodes)
}

// Nodes returns a copy of the elements.
func (c *Collection) Nodes() []*html.Node {
	nodes := make([]*html.Node, len(c.nodes))
	copy(nodes, c.nodes)
	return nodes
}

func (c *Collection) Any() bool {
	return len(c.nodes) > 0
}

func (c *Collection) None() bool {
	return !c.Any()
}

// FirstNode returns the first element or nil.
func (c *Collection) FirstNode() *html.Node {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[0]
}

// First wraps the first element in a new collection.
func (c *Collection) First() *Collection {
	return c.wrap(c.FirstNode())
}

// NodeAt returns the element at index i. Negative indexes count from the
// end. Out of range indexes return nil.
func (c *Collection) NodeAt(i int) *html.Node {
	if i < 0 {
		i += len(c.nodes)
	}
	if i < 0 || i >= len(c.nodes) {
		return nil
	}
	return c.nodes[i]
}

func (c *Collection) At(i int) *Collection {
	return c.wrap(c.NodeAt(i))
}

// HasOneElement reports whether the collection holds exactly one element.
func (c *Collection) HasOneElement() bool {
	return len(c.nodes) == 1 && IsElement(c.nodes[0])
}

// assertOne logs a warning unless the collection holds exactly one
// element. The caller carries on either way.
func (c *Collection) assertOne(op string) bool {
	ok := c.HasOneElement()
	if !ok {
		c.logger().Warn("expected only one element",
			slog.String("op", op),
			slog.Int("elements", len(c.nodes)),
			slog.String("origin", c.origin))
	}
	return ok
}

// EachNode calls fn for every element in order and returns c.
func (c *Collection) EachNode(fn func(i int, n *html.Node)) *Collection {
	for i, n := range c.nodes {
		if IsElement(n) {
			fn(i, n)
		}
	}
	return c
}

// Each is like EachNode but hands fn a one-element collection.
func (c *Collection) Each(fn func(i int, e *Collection)) *Collection {
	return c.EachNode(func(i int, n *html.Node) {
		fn(i, c.wrap(n))
	})
}
