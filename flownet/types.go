package flownet

import "errors"

// ErrInvalidOrder indicates that a requested node count is non-positive.
var ErrInvalidOrder = errors.New("flownet: node count must be > 0")

// ErrNodeOutOfRange indicates that a node index is outside 0..N-1.
var ErrNodeOutOfRange = errors.New("flownet: node index out of range")

// ErrNegativeCapacity indicates that an edge was registered with cap < 0.
var ErrNegativeCapacity = errors.New("flownet: negative edge capacity")

// ErrSourceIsSink indicates that MaxFlow was asked to route flow from a
// node to itself.
var ErrSourceIsSink = errors.New("flownet: source equals sink")

// EdgeFlow reports the flow carried across one unordered node pair after
// MaxFlow has run. U < V always holds; Flow is strictly positive.
type EdgeFlow struct {
	U, V int
	Flow int64
}

// AugmentFunc observes a single augmentation: the path from source to sink
// (node indices, in order) and the bottleneck amount pushed along it.
// The path slice is reused between calls; copy it if it must outlive the
// callback.
type AugmentFunc func(path []int, bottleneck int64)

// Option configures a single MaxFlow run.
type Option func(*options)

// options collects per-run settings; the zero value is a valid default.
type options struct {
	onAugment AugmentFunc
}

// WithOnAugment registers fn as an observer of every augmentation.
// Useful for tracing, verbose reporting, and bounding iteration counts in
// tests. fn must not mutate the network.
func WithOnAugment(fn AugmentFunc) Option {
	return func(o *options) { o.onAugment = fn }
}

// applyOptions folds opts over the default configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
