package dom

import (
	"time"

	"github.com/heathj/delegate/dom/webidl"
)

type eventPhase uint

const (
	noneEventPhase eventPhase = iota
	capturingPhase
	atTargetPhase
	bubblingPhase
)

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	eventType        webidl.DOMString
	target           *Node
	currentTarget    *Node
	eventPhase       eventPhase
	cancelBubble     bool
	bubbles          bool
	cancelable       bool
	defaultPrevented bool
	isTrusted        bool
	timeStamp        webidl.DOMHighResTimeStamp
}

// NewEvent returns a bubbling, cancelable event of the given type. The
// target is assigned by DispatchEvent.
func NewEvent(eventType webidl.DOMString) *Event {
	return &Event{
		eventType:  eventType,
		bubbles:    true,
		cancelable: true,
		timeStamp:  webidl.DOMHighResTimeStamp(time.Now().UnixMilli()),
	}
}

func (e *Event) Type() webidl.DOMString                { return e.eventType }
func (e *Event) Target() *Node                         { return e.target }
func (e *Event) CurrentTarget() *Node                  { return e.currentTarget }
func (e *Event) Bubbles() bool                         { return e.bubbles }
func (e *Event) TimeStamp() webidl.DOMHighResTimeStamp { return e.timeStamp }
func (e *Event) DefaultPrevented() bool                { return e.defaultPrevented }

func (e *Event) StopPropagation() { e.cancelBubble = true }
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// EventListener is a raw listener attached to a single node.
type EventListener func(*Event)

// EventHandle identifies one registered listener entry. Listener funcs are
// not comparable, so removal goes through the handle returned at
// registration time.
type EventHandle struct {
	kinds map[webidl.DOMString]bool
	fn    EventListener
}

// AddEventListener attaches one listener entry to n, observing the given
// event kinds. An empty kind set observes every kind. The returned handle
// is the unit of removal.
func (n *Node) AddEventListener(fn EventListener, kinds ...webidl.DOMString) *EventHandle {
	h := &EventHandle{fn: fn}
	if len(kinds) > 0 {
		h.kinds = make(map[webidl.DOMString]bool, len(kinds))
		for _, k := range kinds {
			h.kinds[k] = true
		}
	}
	n.listeners = append(n.listeners, h)
	return h
}

// RemoveEventListener detaches the listener entry identified by h and
// reports whether it was attached.
func (n *Node) RemoveEventListener(h *EventHandle) bool {
	for i := range n.listeners {
		if n.listeners[i] == h {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount reports how many listener entries are attached to n.
func (n *Node) ListenerCount() int { return len(n.listeners) }

func (h *EventHandle) observes(kind webidl.DOMString) bool {
	return h.kinds == nil || h.kinds[kind]
}

func (n *Node) handle(e *Event) {
	e.currentTarget = n
	snapshot := n.listeners
	for _, h := range snapshot {
		if !h.observes(e.eventType) {
			continue
		}
		h.fn(e)
	}
}

// DispatchEvent fires e at n and bubbles it up the parent chain, invoking
// each visited node's listeners that observe the event's type. Propagation
// stops when a listener calls StopPropagation. Reports whether the
// default action is still permitted.
// https://dom.spec.whatwg.org/#concept-event-dispatch
func (n *Node) DispatchEvent(e *Event) bool {
	e.target = n

	e.eventPhase = atTargetPhase
	n.handle(e)

	if e.bubbles {
		e.eventPhase = bubblingPhase
		for ancestor := n.ParentNode; ancestor != nil; ancestor = ancestor.ParentNode {
			if e.cancelBubble {
				break
			}
			ancestor.handle(e)
		}
	}

	e.eventPhase = noneEventPhase
	e.currentTarget = nil
	return !e.defaultPrevented
}
