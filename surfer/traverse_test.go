package surfer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jakopako/domsurfer/document"
	"golang.org/x/net/html"
)

const nestedPage = `<html><body>
<section id="top" class="top">
	<div id="middle">
		<p id="inner" class="top-like">
			<span id="start"></span>
		</p>
	</div>
</section>
</body></html>`

func TestFind(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	c, err := s.Wrap("#menu").Find("li.item")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, ids(c)); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestFindExcludesSelf(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	c, err := s.Wrap("#outer").Find("div")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected no elements but got %v", ids(c))
	}
}

func TestFindOnManyUsesFirst(t *testing.T) {
	s, _, buf := newTestSurfer(t, testPage)
	c, err := s.Wrap("ul, form").Find("input, li")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected the items of the first element but got %v", ids(c))
	}
	if !strings.Contains(buf.String(), "op=find") {
		t.Fatalf("expected a warning, got log output %q", buf.String())
	}
}

func TestFindOnEmpty(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	c, err := s.Wrap(nil).Find("li")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected no elements but got %d", c.Len())
	}
}

func TestFindInvalidSelector(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	_, err := s.Wrap("#menu").Find("li[")
	var selErr *document.SelectorError
	if !errors.As(err, &selErr) {
		t.Fatalf("expected a *document.SelectorError but got %v", err)
	}
}

func TestFilter(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	c, err := s.Wrap("li").Filter(".a, #three")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "three"}, ids(c)); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
	if _, err := s.Wrap("li").Filter("li["); err == nil {
		t.Fatalf("expected an error for a malformed selector")
	}
}

func TestFilterFunc(t *testing.T) {
	s, _, buf := newTestSurfer(t, testPage)
	c := s.Wrap("li").FilterFunc(func(i int, n *html.Node) bool {
		return i%2 == 0
	})
	if diff := cmp.Diff([]string{"one", "three"}, ids(c)); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
	c = s.Wrap("li").FilterFunc(nil)
	if c.Len() != 3 {
		t.Fatalf("expected a nil predicate to keep all elements but got %d", c.Len())
	}
	if !strings.Contains(buf.String(), "filter predicate must not be nil") {
		t.Fatalf("expected a warning, got log output %q", buf.String())
	}
}

func TestClosest(t *testing.T) {
	s, doc, _ := newTestSurfer(t, nestedPage)
	start := s.Wrap("#start")

	tests := []struct {
		name     string
		from     *Collection
		selector string
		want     string
	}{
		{name: "ancestor", from: start, selector: ".top", want: "top"},
		{name: "nearest ancestor", from: start, selector: "div, section", want: "middle"},
		{name: "self", from: start, selector: "span", want: "start"},
		{name: "prefix class is no match", from: s.Wrap("#inner"), selector: ".top", want: "top"},
		{name: "none", from: start, selector: ".missing", want: "<nil>"},
		{name: "up to html", from: start, selector: "html", want: "html"},
		{name: "empty collection", from: s.Wrap(nil), selector: "section", want: "<nil>"},
		{name: "document", from: s.Wrap(doc.Root()), selector: "section", want: "<nil>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.from.ClosestNode(tc.selector)
			if err != nil {
				t.Fatalf("got unexpected error: %v", err)
			}
			if got := nodeID(n); got != tc.want {
				t.Fatalf("expected %s but got %s", tc.want, got)
			}
		})
	}
}

func TestClosestWrapsResult(t *testing.T) {
	s, _, _ := newTestSurfer(t, nestedPage)
	c, err := s.Wrap("#start").Closest("section")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"top"}, ids(c)); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
	c, err = s.Wrap("#start").Closest("article")
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected an empty collection but got %v", ids(c))
	}
	if _, err := s.Wrap("#start").Closest("p["); err == nil {
		t.Fatalf("expected an error for a malformed selector")
	}
}

func TestParentAndChildren(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	if got := nodeID(s.Wrap("#one").ParentNode()); got != "menu" {
		t.Fatalf("expected parent 'menu' but got '%s'", got)
	}
	if got := s.Wrap("html").Parent().Len(); got != 0 {
		t.Fatalf("expected the root element to have no parent element")
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, ids(s.Wrap("#menu").Children())); diff != "" {
		t.Fatalf("unexpected children (-want +got):\n%s", diff)
	}
	if s.Wrap(nil).ChildNodes().Len() != 0 {
		t.Fatalf("expected an empty collection to have no children")
	}
}
