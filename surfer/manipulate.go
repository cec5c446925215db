package surfer

import (
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/jakopako/domsurfer/document"
	"golang.org/x/net/html"
)

// Append appends items to every element of c. A *Collection contributes
// its elements, node groups are spread, a []any contributes its nodes and
// collections, nodes are appended as they are and any other value becomes
// a text node. nil entries are skipped.
//
// Nodes are moved, not copied: appending the same node to several
// elements leaves it under the last one.
func (c *Collection) Append(items ...any) *Collection {
	return c.EachNode(func(_ int, target *html.Node) {
		for _, item := range items {
			for _, n := range appendable(item) {
				if n == nil {
					continue
				}
				if n.Type == html.DocumentNode || contains(n, target) {
					c.logger().Warn("cannot append a node into itself", slog.String("origin", c.origin))
					continue
				}
				selection(target).AppendNodes(n)
			}
		}
	})
}

func appendable(item any) []*html.Node {
	switch v := item.(type) {
	case nil:
		return nil
	case *Collection:
		if v == nil {
			return nil
		}
		return v.Nodes()
	case *html.Node:
		if v == nil {
			return nil
		}
		return []*html.Node{v}
	case []*html.Node:
		return v
	case *goquery.Selection:
		if v == nil {
			return nil
		}
		return v.Nodes
	case *goquery.Document:
		if v == nil || v.Selection == nil {
			return nil
		}
		return v.Nodes
	case []any:
		var nodes []*html.Node
		for _, member := range v {
			switch m := member.(type) {
			case *html.Node:
				nodes = append(nodes, m)
			case *Collection:
				nodes = append(nodes, appendable(m)...)
			}
		}
		return nodes
	case document.NodeList:
		return document.Snapshot(v)
	case string:
		return []*html.Node{{Type: html.TextNode, Data: v}}
	}
	return []*html.Node{{Type: html.TextNode, Data: fmt.Sprint(item)}}
}

// contains reports whether n is target or one of its ancestors.
func contains(n, target *html.Node) bool {
	for p := target; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// HTML returns the inner HTML of the first element.
func (c *Collection) HTML() (string, error) {
	first := c.FirstNode()
	if first == nil {
		return "", nil
	}
	return selection(first).Html()
}

// SetHTML replaces the children of every element with the parsed markup.
func (c *Collection) SetHTML(markup string) *Collection {
	return c.EachNode(func(_ int, n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		selection(n).SetHtml(markup)
	})
}

// Text returns the text content of the first element.
func (c *Collection) Text() string {
	first := c.FirstNode()
	if first == nil {
		return ""
	}
	return selection(first).Text()
}

// SetText replaces the children of every element with a text node.
func (c *Collection) SetText(text string) *Collection {
	return c.EachNode(func(_ int, n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		selection(n).SetText(text)
	})
}
