package surfer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jakopako/domsurfer/document"
	"github.com/jakopako/domsurfer/log"
	"golang.org/x/net/html"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>test</title></head>
<body>
	<div id="outer" class="wrapper">
		<ul id="menu" class="menu">
			<li id="one" class="item a ab b" data-user-id="7" data-kind="x">One</li>
			<li id="two" class="item">Two</li>
			<li id="three" class="item" style="color: red; display: none">Three</li>
		</ul>
	</div>
	<form id="login"><input name="user"></form>
</body>
</html>`

// newTestSurfer parses src and returns a Surfer whose diagnostics end up
// in the returned buffer.
func newTestSurfer(t *testing.T, src string) (*Surfer, *document.HTMLDocument, *bytes.Buffer) {
	t.Helper()
	doc, err := document.ParseString(src)
	if err != nil {
		t.Fatalf("got unexpected error while parsing: %v", err)
	}
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(log.ContextWithLogger(context.Background(), logger), doc), doc, buf
}

// ids returns the id attribute (or tag name) of every element in c.
func ids(c *Collection) []string {
	result := []string{}
	for _, n := range c.Nodes() {
		result = append(result, nodeID(n))
	}
	return result
}

func nodeID(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Type == html.DocumentNode {
		return "#document"
	}
	for _, a := range n.Attr {
		if a.Key == "id" {
			return a.Val
		}
	}
	return n.Data
}

// mustQuery returns the single element matching selector.
func mustQuery(t *testing.T, doc *document.HTMLDocument, selector string) *html.Node {
	t.Helper()
	nodes, err := doc.QueryAll(selector)
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected exactly one node for '%s' but got %d", selector, len(nodes))
	}
	return nodes[0]
}
