// Package suggest proposes selectors that are close to a selector which
// matched nothing.
package suggest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
	"golang.org/x/net/html"
)

type candidate struct {
	selector string
	distance int
}

// Selectors returns up to max selectors built from the elements below root
// ordered by their levenshtein distance to query. Candidates are tag names,
// ids, classes and "parent > child" pairs. Anything farther away than about
// a third of the length of query is left out.
func Selectors(root *html.Node, query string, max int) []string {
	query = strings.TrimSpace(query)
	if root == nil || query == "" || max <= 0 {
		return nil
	}
	limit := len(query)/3 + 1
	seen := map[string]bool{query: true}
	candidates := []candidate{}
	consider := func(selector string) {
		if selector == "" || seen[selector] {
			return
		}
		seen[selector] = true
		if d := levenshtein.ComputeDistance(query, selector); d <= limit {
			candidates = append(candidates, candidate{selector: selector, distance: d})
		}
	}

	goquery.NewDocumentFromNode(root).Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		for _, t := range tokens(n) {
			consider(t)
		}
		if p := n.Parent; p != nil && p.Type == html.ElementNode {
			consider(compound(p) + " > " + compound(n))
		}
	})

	slices.SortFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}
		return strings.Compare(a.selector, b.selector)
	})
	result := []string{}
	for _, c := range candidates[:min(max, len(candidates))] {
		result = append(result, c.selector)
	}
	return result
}

// tokens returns the simple selectors matching n: its tag, id and classes.
func tokens(n *html.Node) []string {
	result := []string{n.Data}
	s := goquery.NewDocumentFromNode(n).Selection
	if id, ok := s.Attr("id"); ok && id != "" {
		result = append(result, "#"+id)
	}
	class, _ := s.Attr("class")
	for _, c := range strings.Fields(class) {
		result = append(result, "."+c)
	}
	return result
}

// compound returns tag.class1.class2 for n.
func compound(n *html.Node) string {
	class, _ := goquery.NewDocumentFromNode(n).Attr("class")
	parts := append([]string{n.Data}, strings.Fields(class)...)
	return strings.Join(parts, ".")
}
