package surfer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jakopako/domsurfer/document"
	"golang.org/x/net/html"
)

// Kind is the variant of a value handed to Add.
type Kind int

const (
	KindInvalid Kind = iota
	// KindEmpty values (nil, booleans, empty strings, nil pointers) add nothing.
	KindEmpty
	// KindReadyCallback is a func() or func(*Collection) run once the document is ready.
	KindReadyCallback
	// KindMarkup is a string starting with '<'.
	KindMarkup
	// KindSelector is any other non-empty string.
	KindSelector
	// KindElement is an element or document *html.Node.
	KindElement
	// KindNodeGroup is a []*html.Node, *goquery.Selection, *goquery.Document
	// or document.NodeList.
	KindNodeGroup
	// KindArray is a []any whose elements are kept and everything else dropped.
	KindArray
	// KindCollection is another *Collection.
	KindCollection
)

var kindNames = map[Kind]string{
	KindInvalid:       "invalid",
	KindEmpty:         "empty",
	KindReadyCallback: "ready-callback",
	KindMarkup:        "markup",
	KindSelector:      "selector",
	KindElement:       "element",
	KindNodeGroup:     "node-group",
	KindArray:         "array",
	KindCollection:    "collection",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Classify returns the variant of value.
func Classify(value any) Kind {
	switch v := value.(type) {
	case nil, bool:
		return KindEmpty
	case func():
		if v == nil {
			return KindEmpty
		}
		return KindReadyCallback
	case func(*Collection):
		if v == nil {
			return KindEmpty
		}
		return KindReadyCallback
	case string:
		if v == "" {
			return KindEmpty
		}
		if strings.HasPrefix(v, "<") {
			return KindMarkup
		}
		return KindSelector
	case *html.Node:
		if v == nil {
			return KindEmpty
		}
		if IsElement(v) {
			return KindElement
		}
		return KindInvalid
	case []*html.Node:
		return KindNodeGroup
	case *goquery.Selection:
		if v == nil {
			return KindEmpty
		}
		return KindNodeGroup
	case *goquery.Document:
		if v == nil || v.Selection == nil {
			return KindEmpty
		}
		return KindNodeGroup
	case document.NodeList:
		return KindNodeGroup
	case []any:
		return KindArray
	case *Collection:
		if v == nil {
			return KindEmpty
		}
		return KindCollection
	}
	return KindInvalid
}

// nodeGroup snapshots the nodes of a KindNodeGroup value.
func nodeGroup(value any) []*html.Node {
	switch v := value.(type) {
	case []*html.Node:
		return v
	case *goquery.Selection:
		return v.Nodes
	case *goquery.Document:
		return v.Nodes
	case document.NodeList:
		return document.Snapshot(v)
	}
	return nil
}
