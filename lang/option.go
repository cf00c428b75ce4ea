package lang

import "github.com/ardnew/phparr/log"

// options holds the configuration of a single conversion.
type options struct {
	maxDepth int
	grammar  Grammar
	logger   log.Logger
}

// Option configures parsing or resolution behavior.
type Option func(*options)

// WithMaxDepth sets the maximum node nesting depth. Zero or a negative depth
// disables the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithGrammar replaces the grammar collaborator used by [Parse].
func WithGrammar(g Grammar) Option {
	return func(o *options) {
		if g != nil {
			o.grammar = g
		}
	}
}

// WithLogger sets the logger used to trace parsing.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts ...Option) options {
	o := options{
		maxDepth: DefaultMaxDepth,
		grammar:  TreeSitter{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
