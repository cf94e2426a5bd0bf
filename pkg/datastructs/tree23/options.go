package tree23

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures a Tree.
type Option func(*options)

// WithLogger sets the logger used for debug tracing of node allocation,
// splits and root growth. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
