// Package document provides the element tree that collections operate on.
//
// A Document is the capability a collection needs from its environment:
// resolving selectors against the whole tree, parsing markup into detached
// elements, running callbacks once the document is ready and registering
// event listeners. HTMLDocument implements it on top of golang.org/x/net/html
// and goquery.
package document

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the externally owned tree a collection reads and mutates.
type Document interface {
	// Root returns the document node.
	Root() *html.Node
	// QueryAll returns all elements of the tree matching selector, in
	// document order. Malformed selectors return a *SelectorError.
	QueryAll(selector string) ([]*html.Node, error)
	// ParseMarkup parses markup into detached top-level elements.
	ParseMarkup(markup string) ([]*html.Node, error)
	// OnReady registers fn to run once when the document is ready.
	OnReady(fn func())
	// AddEventListener registers l for events of the given type on n.
	AddEventListener(n *html.Node, event string, l Listener)
}

// HTMLDocument is a Document backed by a parsed HTML tree.
type HTMLDocument struct {
	doc    *goquery.Document
	logger *slog.Logger

	readyOnce sync.Once
	isReady   bool
	ready     []func()

	listeners map[*html.Node]map[string][]Listener
}

var _ Document = &HTMLDocument{}

// New returns an empty document (<html><head></head><body></body></html>).
func New() *HTMLDocument {
	d, _ := ParseString("")
	return d
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return newHTMLDocument(doc), nil
}

func ParseString(s string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(s))
}

// FromNode wraps an existing tree. root is usually a document node.
func FromNode(root *html.Node) *HTMLDocument {
	return newHTMLDocument(goquery.NewDocumentFromNode(root))
}

func newHTMLDocument(doc *goquery.Document) *HTMLDocument {
	return &HTMLDocument{
		doc:       doc,
		logger:    slog.Default(),
		listeners: map[*html.Node]map[string][]Listener{},
	}
}

// SetLogger replaces the logger used for diagnostics.
func (d *HTMLDocument) SetLogger(logger *slog.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

func (d *HTMLDocument) Root() *html.Node {
	return d.doc.Nodes[0]
}

// Body returns the body element or nil.
func (d *HTMLDocument) Body() *html.Node {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		return nil
	}
	return body.Get(0)
}

func (d *HTMLDocument) QueryAll(selector string) ([]*html.Node, error) {
	m, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	return d.doc.FindMatcher(m).Nodes, nil
}

// ParseMarkup parses markup the way a <template> element would and returns
// its top-level elements. Text and comments between them are dropped.
func (d *HTMLDocument) ParseMarkup(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Template.String(),
		DataAtom: atom.Template,
	}
	nodes, err := html.ParseFragment(strings.NewReader(strings.TrimSpace(markup)), context)
	if err != nil {
		return nil, err
	}
	elements := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	d.logger.Debug("parsed markup", slog.Int("elements", len(elements)))
	return elements, nil
}

// OuterHTML renders n including its own tag.
func OuterHTML(n *html.Node) (string, error) {
	return goquery.OuterHtml(goquery.NewDocumentFromNode(n).Selection)
}
