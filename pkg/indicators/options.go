package indicators

import "github.com/peter-kozarec/slidingstat/pkg/methods"

type Option func(*options)

type options struct {
	source  Source
	methods []methods.Option
}

func WithSource(source Source) Option {
	return func(o *options) {
		if source != nil {
			o.source = source
		}
	}
}

// WithResync is forwarded to methods.WithResync.
func WithResync(every uint) Option {
	return func(o *options) {
		o.methods = append(o.methods, methods.WithResync(every))
	}
}
