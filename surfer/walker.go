package surfer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// IsElement reports whether value is an element or document node. Text,
// comment and doctype nodes are not elements.
func IsElement(value any) bool {
	n, ok := value.(*html.Node)
	return ok && n != nil && (n.Type == html.ElementNode || n.Type == html.DocumentNode)
}

// parentElement returns the parent of n if it is an element.
func parentElement(n *html.Node) *html.Node {
	if n == nil || n.Parent == nil || n.Parent.Type != html.ElementNode {
		return nil
	}
	return n.Parent
}

// closest walks from start up through its ancestors and returns the first
// node matching m, or nil once it runs out of elements.
func closest(start *html.Node, m cascadia.Matcher) *html.Node {
	for candidate := start; IsElement(candidate); candidate = parentElement(candidate) {
		if m.Match(candidate) {
			return candidate
		}
	}
	return nil
}

// selection wraps a single node for goquery's manipulation helpers.
func selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

func classTokens(n *html.Node) []string {
	class, _ := selection(n).Attr("class")
	return strings.Fields(class)
}

// classesMatching returns the class tokens of n matched by re.
func classesMatching(n *html.Node, re *regexp.Regexp) []string {
	var matches []string
	for _, token := range classTokens(n) {
		if re.MatchString(token) {
			matches = append(matches, token)
		}
	}
	return matches
}
