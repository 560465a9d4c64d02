package methods

import "go.uber.org/zap"

type Option func(*config)

type config struct {
	logger      *zap.Logger
	resyncEvery uint
}

func newConfig(options ...Option) config {
	c := config{logger: zap.NewNop()}
	for _, option := range options {
		option(&c)
	}
	return c
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithResync makes LinReg recompute its running sums from the window every
// `every` samples. Zero disables it. Other methods ignore the option.
func WithResync(every uint) Option {
	return func(c *config) {
		c.resyncEvery = every
	}
}
