package router

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/heathj/delegate/dom"
)

const meterName = "github.com/heathj/delegate"

// routerMetrics holds the router's metric instruments. They come from the
// global meter provider, which is a noop unless the host installs one.
type routerMetrics struct {
	// dispatches counts dispatched events, attributed by kind and whether
	// a binding matched.
	dispatches metric.Int64Counter

	// walkDepth records how many nodes the ancestor walk visited before
	// stopping.
	walkDepth metric.Int64Histogram
}

func newRouterMetrics() (*routerMetrics, error) {
	meter := otel.Meter(meterName)
	m := &routerMetrics{}
	var err error

	m.dispatches, err = meter.Int64Counter(
		"delegate.dispatch.count",
		metric.WithDescription("Events dispatched through the router"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "delegate: create dispatch counter")
	}

	m.walkDepth, err = meter.Int64Histogram(
		"delegate.dispatch.walk_depth",
		metric.WithDescription("Nodes visited by the ancestor walk per dispatch"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "delegate: create walk depth histogram")
	}

	return m, nil
}

func (m *routerMetrics) record(e *dom.Event, matched bool, depth int) {
	ctx := context.Background()
	opts := metric.WithAttributes(
		attribute.String("kind", string(e.Type())),
		attribute.Bool("matched", matched),
	)
	m.dispatches.Add(ctx, 1, opts)
	m.walkDepth.Record(ctx, int64(depth), opts)
}
