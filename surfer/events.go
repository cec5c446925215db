package surfer

import (
	"log/slog"

	"github.com/jakopako/domsurfer/document"
	"golang.org/x/net/html"
)

// On registers l for the event on every element.
func (c *Collection) On(event string, l document.Listener) *Collection {
	doc := c.Document()
	if doc == nil {
		c.logger().Warn("cannot listen without a document", slog.String("event", event))
		return c
	}
	return c.EachNode(func(_ int, n *html.Node) {
		doc.AddEventListener(n, event, l)
	})
}

func (c *Collection) OnClick(l document.Listener) *Collection {
	return c.On(document.EventClick, l)
}

func (c *Collection) OnSubmit(l document.Listener) *Collection {
	return c.On(document.EventSubmit, l)
}

func (c *Collection) OnLoad(l document.Listener) *Collection {
	return c.On(document.EventLoad, l)
}
