// Package router implements delegated event dispatch over a dom tree: one
// listener on a stable container node routes events from any descendant,
// present or future, to handlers selected by predicate matchers. Children
// added after registration are covered without rebinding anything.
package router

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/heathj/delegate/dom"
	"github.com/heathj/delegate/dom/webidl"
)

// Handler consumes the matched node and the event that reached it. A
// handler that panics propagates out of the host's DispatchEvent call; the
// router installs no recovery.
type Handler func(*dom.Node, *dom.Event)

// BindingID identifies one registered (matcher, handler) pair. IDs grow
// monotonically within a router and are never reused.
type BindingID uint64

type binding struct {
	id      BindingID
	matcher Matcher
	handler Handler
}

// Router owns exactly one low-level listener on its container node,
// however many bindings are registered. Events delivered to that listener
// are walked from their origin node up to and including the container; at
// each node the bindings are tested in registration order and the first
// match wins, so the innermost matching node beats any outer one.
//
// A Router expects the single-threaded cooperative scheduling of its host:
// registration and dispatch are never locked. Handlers may freely call
// Register and Unregister on their own router mid-dispatch; the mutation
// is visible from the next dispatch on, never the current one. A
// multi-threaded host must serialize all calls into one router itself.
type Router struct {
	id        string
	container *dom.Node
	handle    *dom.EventHandle
	kinds     []webidl.DOMString
	log       logrus.FieldLogger
	metrics   *routerMetrics

	// bindings is copy-on-write: dispatch snapshots the slice header once
	// and Register/Unregister always install a fresh slice.
	bindings []binding
	nextID   BindingID
}

// Option configures a Router at construction time.
type Option func(*Router)

// WithKinds sets the event kinds the router's listener observes. The
// default is "click".
func WithKinds(kinds ...webidl.DOMString) Option {
	return func(r *Router) { r.kinds = kinds }
}

// WithLogger replaces the router's logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Router) { r.log = log }
}

// New attaches a router to container. The router registers its one
// low-level listener immediately; ErrInvalidContainer is returned for a
// nil container.
func New(container *dom.Node, opts ...Option) (*Router, error) {
	if container == nil {
		return nil, ErrInvalidContainer
	}

	r := &Router{
		id:        uuid.NewString(),
		container: container,
		kinds:     []webidl.DOMString{"click"},
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithField("router", r.id)

	m, err := newRouterMetrics()
	if err != nil {
		return nil, err
	}
	r.metrics = m

	r.handle = container.AddEventListener(func(e *dom.Event) {
		r.dispatch(e)
	}, r.kinds...)
	return r, nil
}

// Register appends a binding after all existing ones and returns its id.
// Nil matchers and handlers are rejected immediately with
// ErrInvalidBinding.
func (r *Router) Register(m Matcher, h Handler) (BindingID, error) {
	if m == nil || h == nil {
		return 0, ErrInvalidBinding
	}

	r.nextID++
	id := r.nextID

	next := make([]binding, len(r.bindings), len(r.bindings)+1)
	copy(next, r.bindings)
	r.bindings = append(next, binding{id: id, matcher: m, handler: h})

	r.log.WithField("binding", id).Debug("registered binding")
	return id, nil
}

// Unregister removes the binding with the given id and reports whether it
// was present. Removing an unknown id mutates nothing.
func (r *Router) Unregister(id BindingID) bool {
	i := -1
	for j := range r.bindings {
		if r.bindings[j].id == id {
			i = j
			break
		}
	}
	if i < 0 {
		return false
	}

	next := make([]binding, 0, len(r.bindings)-1)
	next = append(next, r.bindings[:i]...)
	next = append(next, r.bindings[i+1:]...)
	r.bindings = next

	r.log.WithField("binding", id).Debug("unregistered binding")
	return true
}

// Dispose detaches the router's listener from the container and drops all
// bindings. Safe to call more than once.
func (r *Router) Dispose() {
	if r.handle == nil {
		return
	}
	r.container.RemoveEventListener(r.handle)
	r.handle = nil
	r.bindings = nil
	r.log.Debug("disposed")
}

// dispatch runs the ancestor walk for one event. It is only ever invoked
// by the router's own listener on the container.
func (r *Router) dispatch(e *dom.Event) {
	origin := e.Target()
	if origin == nil {
		return
	}

	// The walk covers origin up to and including the container. An origin
	// outside the container subtree is a normal no-match, not an error, and
	// none of its ancestors are ever tested against the bindings.
	var path []*dom.Node
	for n := origin; n != nil; n = n.ParentNode {
		path = append(path, n)
		if n == r.container {
			break
		}
	}
	if path[len(path)-1] != r.container {
		r.metrics.record(e, false, 0)
		return
	}

	snapshot := r.bindings
	for depth, n := range path {
		for i := range snapshot {
			if snapshot[i].matcher(n) {
				r.metrics.record(e, true, depth+1)
				snapshot[i].handler(n, e)
				return
			}
		}
	}

	r.metrics.record(e, false, len(path))
	r.log.WithField("kind", e.Type()).Debug("no binding matched")
}
