package router

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/delegate/dom"
)

func newQuietRouter(t *testing.T, container *dom.Node) *Router {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	r, err := New(container, WithLogger(log))
	require.NoError(t, err)
	t.Cleanup(r.Dispose)
	return r
}

// A host that violates the event-source contract and hands the listener an
// event originating outside the container subtree gets a silent no-match,
// not an error and not a spurious match against unrelated ancestors.
func TestDispatchOriginOutsideContainer(t *testing.T) {
	doc := dom.NewDocumentNode()
	ul := doc.AppendChild(dom.NewElement(doc, "ul"))
	aside := doc.AppendChild(dom.NewElement(doc, "aside"))
	strayItem := aside.AppendChild(dom.NewElement(doc, "li"))

	r := newQuietRouter(t, ul)

	var hits int
	_, err := r.Register(TagIs("li"), func(*dom.Node, *dom.Event) { hits++ })
	require.NoError(t, err)
	_, err = r.Register(TagIs("aside"), func(*dom.Node, *dom.Event) { hits++ })
	require.NoError(t, err)

	e := dom.NewEvent("click")
	strayItem.DispatchEvent(e)
	r.dispatch(e)

	assert.Zero(t, hits)
}

func TestDispatchNilOrigin(t *testing.T) {
	doc := dom.NewDocumentNode()
	ul := doc.AppendChild(dom.NewElement(doc, "ul"))

	r := newQuietRouter(t, ul)

	var hits int
	_, err := r.Register(TagIs("li"), func(*dom.Node, *dom.Event) { hits++ })
	require.NoError(t, err)

	// An event that was never dispatched by the host has no origin.
	r.dispatch(dom.NewEvent("click"))
	assert.Zero(t, hits)
}

func TestDispatchSnapshotIsolation(t *testing.T) {
	doc := dom.NewDocumentNode()
	ul := doc.AppendChild(dom.NewElement(doc, "ul"))
	li := ul.AppendChild(dom.NewElement(doc, "li"))

	r := newQuietRouter(t, ul)

	handler := func(*dom.Node, *dom.Event) {}
	a, err := r.Register(TagIs("em"), handler)
	require.NoError(t, err)
	_, err = r.Register(TagIs("li"), func(*dom.Node, *dom.Event) {
		// Mutating the binding list mid-dispatch must not disturb the
		// snapshot the walk is iterating.
		r.Unregister(a)
	})
	require.NoError(t, err)
	before := r.bindings

	li.DispatchEvent(dom.NewEvent("click"))

	assert.Len(t, before, 2, "snapshot slice must be untouched")
	assert.Len(t, r.bindings, 1)
}
