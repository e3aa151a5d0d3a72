package router

import "github.com/pkg/errors"

var (
	// ErrInvalidContainer is returned by New when the container node is nil.
	// Construction fails; there is no recovery inside the router.
	ErrInvalidContainer = errors.New("delegate: invalid container")

	// ErrInvalidBinding is returned by Register when the matcher or handler
	// is nil. The failure is synchronous; a nil binding is never deferred to
	// dispatch time.
	ErrInvalidBinding = errors.New("delegate: invalid binding")
)
