package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures an instrumented Deque using the functional options
// pattern.
type Option func(*options)

// options holds internal configuration. Statistics are always collected and
// are not an option.
type options struct {
	// registerer is optional. If set, statistics are also exported as
	// Prometheus metrics labelled with component.
	registerer prometheus.Registerer
	component  string

	logger *zap.Logger
}

// WithRegisterer exports the Deque statistics as Prometheus metrics on reg,
// with a "component" label set to component. It is ignored if reg is nil or
// component is empty.
func WithRegisterer(reg prometheus.Registerer, component string) Option {
	return func(o *options) {
		if reg != nil && component != "" {
			o.registerer = reg
			o.component = component
		}
	}
}

// WithLogger sets the logger rejected elements are reported to, at debug
// level. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
