package document

import (
	"slices"

	"golang.org/x/net/html"
)

// Event is passed to listeners during Dispatch.
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node

	stopped bool
}

// StopPropagation keeps the event from bubbling to further ancestors.
// Remaining listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

func (e *Event) Stopped() bool {
	return e.stopped
}

// A Listener handles events dispatched to a node.
type Listener func(e *Event)

const (
	EventClick  = "click"
	EventSubmit = "submit"
	EventLoad   = "load"
)

func (d *HTMLDocument) AddEventListener(n *html.Node, event string, l Listener) {
	if n == nil || l == nil {
		return
	}
	byType, ok := d.listeners[n]
	if !ok {
		byType = map[string][]Listener{}
		d.listeners[n] = byType
	}
	byType[event] = append(byType[event], l)
}

// Dispatch fires an event of the given type at target. Listeners on target
// run first, then the event bubbles up through the ancestors.
func (d *HTMLDocument) Dispatch(target *html.Node, event string) *Event {
	e := &Event{Type: event, Target: target}
	for n := target; n != nil && !e.stopped; n = n.Parent {
		ls := d.listeners[n][event]
		if len(ls) == 0 {
			continue
		}
		e.CurrentTarget = n
		// listeners added while dispatching wait for the next event
		for _, l := range slices.Clone(ls) {
			l(e)
		}
	}
	e.CurrentTarget = nil
	return e
}

// ListenerCount returns the number of listeners for event on n.
func (d *HTMLDocument) ListenerCount(n *html.Node, event string) int {
	return len(d.listeners[n][event])
}
