package methods

import (
	"fmt"
	"math"

	"github.com/peter-kozarec/slidingstat/pkg/utility/circular"
	"go.uber.org/zap"
)

const MinLinRegLength = 2

// LinReg is a least squares moving average: for every sample it fits a line
// to the last length values and returns the fitted value at the newest one.
//
// Window positions are ranked x = 0 at the newest sample up to length-1 at the
// oldest, so the fitted value is the intercept b of y = a*x + b.
// Each sample costs O(1) regardless of length.
type LinReg struct {
	logger *zap.Logger
	window *circular.Window[float64]

	n       float64
	nInv    float64
	sumX    float64
	divider float64

	sumY  float64
	sumXY float64

	resyncEvery uint
	sinceResync uint
}

// LSMA is an alias of LinReg.
type LSMA = LinReg

func NewLinReg(length uint, value float64, options ...Option) (*LinReg, error) {
	if length < MinLinRegLength {
		return nil, fmt.Errorf("linreg length %d, must be at least %d: %w", length, MinLinRegLength, ErrInvalidParameters)
	}

	c := newConfig(options...)
	l := newLinReg(c, length)
	l.window = circular.NewWindow(length, value)
	l.sumY = value * l.n
	l.sumXY = value * l.sumX

	l.logger.Debug("linreg created", zap.Uint("length", length), zap.Float64("value", value))
	return l, nil
}

// RestoreLinReg rebuilds a LinReg from a State taken with LinReg.State.
// The captured sums are used as they are.
func RestoreLinReg(state State, options ...Option) (*LinReg, error) {
	if state.Length < MinLinRegLength {
		return nil, fmt.Errorf("linreg state length %d, must be at least %d: %w", state.Length, MinLinRegLength, ErrInvalidParameters)
	}
	if uint(len(state.Window)) != state.Length {
		return nil, fmt.Errorf("linreg state holds %d values for length %d: %w", len(state.Window), state.Length, ErrInvalidParameters)
	}

	c := newConfig(options...)
	l := newLinReg(c, state.Length)
	l.window = circular.WindowFrom(state.Window)
	l.sumY = state.SumY
	l.sumXY = state.SumXY

	l.logger.Debug("linreg restored", zap.Uint("length", state.Length))
	return l, nil
}

func newLinReg(c config, length uint) *LinReg {
	n := float64(length)
	sumX := n * (n - 1) / 2
	sumX2 := sumX * (2*n - 1) / 3

	return &LinReg{
		logger:      c.logger,
		n:           n,
		nInv:        1 / n,
		sumX:        sumX,
		divider:     1 / (n*sumX2 - sumX*sumX),
		resyncEvery: c.resyncEvery,
	}
}

func (l *LinReg) Next(value float64) float64 {
	evicted := l.window.Push(value)

	// Every remaining rank grows by one and the evicted value leaves at rank n-1.
	l.sumXY = math.FMA(-l.n, evicted, l.sumXY+l.sumY)
	l.sumY += value - evicted

	if l.resyncEvery > 0 {
		l.sinceResync++
		if l.sinceResync >= l.resyncEvery {
			l.resync()
		}
	}

	return l.Value()
}

// Value returns the fitted value at the newest sample.
func (l *LinReg) Value() float64 {
	return math.FMA(-l.sumX, l.rankSlope(), l.sumY) * l.nInv
}

// Slope returns the fitted change per sample, in time order.
func (l *LinReg) Slope() float64 {
	return -l.rankSlope()
}

func (l *LinReg) Length() uint {
	return l.window.Capacity()
}

func (l *LinReg) State() State {
	return State{
		Length: l.window.Capacity(),
		Window: l.window.Data(),
		SumY:   l.sumY,
		SumXY:  l.sumXY,
	}
}

func (l *LinReg) rankSlope() float64 {
	return math.FMA(l.n, l.sumXY, -l.sumX*l.sumY) * l.divider
}

func (l *LinReg) resync() {
	l.sinceResync = 0

	var sumY, sumXY float64
	for i := uint(0); i < l.window.Capacity(); i++ {
		y := l.window.Get(i)
		sumY += y
		sumXY = math.FMA(float64(i), y, sumXY)
	}

	if ce := l.logger.Check(zap.DebugLevel, "linreg resync"); ce != nil {
		ce.Write(zap.Float64("sum_y_drift", l.sumY-sumY), zap.Float64("sum_xy_drift", l.sumXY-sumXY))
	}

	l.sumY = sumY
	l.sumXY = sumXY
}
