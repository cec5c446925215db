package document

import "golang.org/x/net/html"

// A NodeList is an ordered group of nodes. Some lists are live and reflect
// later changes of the tree, so consumers that need a stable set should
// take a Snapshot.
type NodeList interface {
	Len() int
	Item(i int) *html.Node
}

// ChildList is the live list of element children of a node.
type ChildList struct {
	parent *html.Node
}

func Children(parent *html.Node) *ChildList {
	return &ChildList{parent: parent}
}

func (l *ChildList) Len() int {
	count := 0
	for c := l.first(); c != nil; c = nextElement(c) {
		count++
	}
	return count
}

func (l *ChildList) Item(i int) *html.Node {
	if i < 0 {
		return nil
	}
	for c := l.first(); c != nil; c = nextElement(c) {
		if i == 0 {
			return c
		}
		i--
	}
	return nil
}

func (l *ChildList) first() *html.Node {
	if l == nil || l.parent == nil {
		return nil
	}
	c := l.parent.FirstChild
	if c != nil && c.Type != html.ElementNode {
		c = nextElement(c)
	}
	return c
}

func nextElement(n *html.Node) *html.Node {
	for n = n.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

// StaticList is a NodeList that never changes.
type StaticList []*html.Node

func (l StaticList) Len() int {
	return len(l)
}

func (l StaticList) Item(i int) *html.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// Snapshot copies the current content of l.
func Snapshot(l NodeList) []*html.Node {
	if l == nil {
		return nil
	}
	n := l.Len()
	nodes := make([]*html.Node, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, l.Item(i))
	}
	return nodes
}
