package indicators

import (
	"github.com/peter-kozarec/slidingstat/pkg/common"
	"github.com/peter-kozarec/slidingstat/pkg/methods"
	"github.com/peter-kozarec/slidingstat/pkg/utility/fixed"
	"go.uber.org/zap"
)

type constructor[M methods.Method[float64, float64]] func(length uint, value float64, options ...methods.Option) (M, error)

// window drives a method with one price per bar. The method is created on the
// first bar, which pre-fills its whole window.
type window[M methods.Method[float64, float64]] struct {
	name   string
	logger *zap.Logger
	length uint
	source Source
	create constructor[M]
	opts   []methods.Option

	method  M
	created bool
	bars    uint
	value   fixed.Point
}

func newWindow[M methods.Method[float64, float64]](name string, logger *zap.Logger, length uint, create constructor[M], opts []Option) window[M] {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{source: Close}
	for _, opt := range opts {
		opt(&o)
	}
	return window[M]{
		name:   name,
		logger: logger,
		length: length,
		source: o.source,
		create: create,
		opts:   append(o.methods, methods.WithLogger(logger)),
		value:  fixed.Zero,
	}
}

func (w *window[M]) OnBar(b common.Bar) {
	p := w.source(b)
	price, ok := p.Float64()
	if !ok {
		w.logger.Warn("price out of float range", zap.String("indicator", w.name), zap.Stringer("price", p))
		return
	}

	if !w.created {
		m, err := w.create(w.length, price, w.opts...)
		if err != nil {
			w.logger.Warn("unable to create method", zap.String("indicator", w.name), zap.Error(err))
			return
		}
		w.method = m
		w.created = true
	}

	w.value = fixed.FromFloat64(w.method.Next(price))

	if w.bars < w.length {
		w.bars++
		if w.bars == w.length {
			w.logger.Debug("indicator ready",
				zap.String("indicator", w.name),
				zap.String("symbol", b.Symbol),
				zap.Uint("length", w.length))
		}
	}
}

// Value returns the last computed value, zero before the first bar.
func (w *window[M]) Value() fixed.Point {
	return w.value
}

// Ready reports whether length bars have been observed, so no slot of the
// window holds the pre-filled first price any more.
func (w *window[M]) Ready() bool {
	return w.bars >= w.length
}

func (w *window[M]) Reset() {
	var zero M
	w.method = zero
	w.created = false
	w.bars = 0
	w.value = fixed.Zero
}
