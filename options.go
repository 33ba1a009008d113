package qstore

import "github.com/prometheus/client_golang/prometheus"

// Option configures a Store at construction time, following the
// functional-options idiom the teacher uses for graph.Options. No option
// changes query or write semantics; they only affect preallocation and
// observability.
type Option func(*options)

type options struct {
	capacityHint int
	registerer   prometheus.Registerer
}

// WithArenaCapacityHint pre-sizes the node table's dense backing storage
// for at least n entries, avoiding repeated reallocation on a known-size
// bulk load.
func WithArenaCapacityHint(n int) Option {
	return func(o *options) { o.capacityHint = n }
}

// WithMetrics registers the Store's prometheus metrics against reg
// instead of a private registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}
