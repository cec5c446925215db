// Package surfer provides Collection, an ordered set of HTML elements with
// chainable traversal, mutation and event-binding operations.
//
// A Surfer binds collections to a document:
//
//	doc, _ := document.ParseString(page)
//	s := surfer.New(ctx, doc)
//	s.Wrap("ul.menu > li").AddClass("item").OnClick(handleClick)
//
// Wrap accepts selectors, markup, nodes, node groups, other collections and
// ready callbacks (see Classify). It never fails: unsupported values are
// logged and leave an empty collection. Calling Add directly returns the
// error instead.
package surfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jakopako/domsurfer/document"
	"github.com/jakopako/domsurfer/log"
	"golang.org/x/net/html"
)

// Surfer creates collections over one document.
type Surfer struct {
	doc    document.Document
	logger *slog.Logger
}

// New returns a Surfer for doc that logs to the logger carried by ctx.
func New(ctx context.Context, doc document.Document) *Surfer {
	return &Surfer{
		doc:    doc,
		logger: log.LoggerFromContext(ctx).With(slog.String("component", "surfer")),
	}
}

// detached returns a Surfer without document.
func detached() *Surfer {
	return &Surfer{logger: slog.Default().With(slog.String("component", "surfer"))}
}

func (s *Surfer) Document() document.Document {
	return s.doc
}

// Wrap creates a collection from value. Errors are logged, not returned.
func (s *Surfer) Wrap(value any) *Collection {
	c := &Collection{surfer: s, origin: describe(value)}
	if _, err := c.Add(value); err != nil {
		s.logger.Error(err.Error(), slog.String("origin", c.origin))
	}
	return c
}

// readyCallback adapts the supported callback signatures to func().
func (s *Surfer) readyCallback(value any) func() {
	switch fn := value.(type) {
	case func():
		return fn
	case func(*Collection):
		return func() {
			fn(s.Wrap(s.doc.Root()))
		}
	}
	return nil
}

// describe renders a constructor value for diagnostics.
func describe(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case *html.Node:
		if v != nil && v.Type == html.ElementNode {
			return fmt.Sprintf("<%s>", v.Data)
		}
	}
	return fmt.Sprintf("%T", value)
}
