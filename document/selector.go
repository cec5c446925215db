package document

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// A SelectorError is returned for selectors that cannot be compiled.
type SelectorError struct {
	Selector string
	Err      error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector '%s': %v", e.Selector, e.Err)
}

func (e *SelectorError) Unwrap() error {
	return e.Err
}

// Compile compiles a CSS selector (or a comma separated group).
func Compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &SelectorError{Selector: selector, Err: err}
	}
	return sel, nil
}

// Matches reports whether n matches selector.
func Matches(n *html.Node, selector string) (bool, error) {
	sel, err := Compile(selector)
	if err != nil {
		return false, err
	}
	return n != nil && sel.Match(n), nil
}
