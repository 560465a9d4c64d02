package methods

import (
	"fmt"
	"math"
	"slices"

	"github.com/peter-kozarec/slidingstat/pkg/utility/circular"
	"go.uber.org/zap"
)

const MinSMMLength = 1

// SMM is a simple moving median over the last length samples.
//
// It keeps a sorted copy of the window. Each sample costs two binary searches
// plus a shift of the values lying between the evicted and the inserted
// position, so O(length) in the worst case. Samples must be finite.
type SMM struct {
	logger *zap.Logger
	window *circular.Window[float64]
	sorted []float64

	half   uint
	halfM1 uint
}

func NewSMM(length uint, value float64, options ...Option) (*SMM, error) {
	if length < MinSMMLength {
		return nil, fmt.Errorf("smm length %d, must be at least %d: %w", length, MinSMMLength, ErrInvalidParameters)
	}
	if !isFinite(value) {
		return nil, fmt.Errorf("smm first value %v: %w", value, ErrInvalidInput)
	}

	c := newConfig(options...)
	s := newSMM(c, length)
	s.window = circular.NewWindow(length, value)
	s.sorted = make([]float64, length)
	for i := range s.sorted {
		s.sorted[i] = value
	}

	s.logger.Debug("smm created", zap.Uint("length", length), zap.Float64("value", value))
	return s, nil
}

// RestoreSMM rebuilds an SMM from a State taken with SMM.State.
func RestoreSMM(state State, options ...Option) (*SMM, error) {
	if state.Length < MinSMMLength {
		return nil, fmt.Errorf("smm state length %d, must be at least %d: %w", state.Length, MinSMMLength, ErrInvalidParameters)
	}
	if uint(len(state.Window)) != state.Length || uint(len(state.Sorted)) != state.Length {
		return nil, fmt.Errorf("smm state holds %d window and %d sorted values for length %d: %w",
			len(state.Window), len(state.Sorted), state.Length, ErrInvalidParameters)
	}
	for _, v := range state.Window {
		if !isFinite(v) {
			return nil, fmt.Errorf("smm state value %v: %w", v, ErrInvalidInput)
		}
	}
	if !slices.IsSorted(state.Sorted) {
		return nil, fmt.Errorf("smm state sorted values are out of order: %w", ErrInvalidInput)
	}
	expected := slices.Clone(state.Window)
	slices.Sort(expected)
	if !slices.Equal(expected, state.Sorted) {
		return nil, fmt.Errorf("smm state sorted values do not match the window: %w", ErrInvalidInput)
	}

	c := newConfig(options...)
	s := newSMM(c, state.Length)
	s.window = circular.WindowFrom(state.Window)
	s.sorted = expected

	s.logger.Debug("smm restored", zap.Uint("length", state.Length))
	return s, nil
}

func newSMM(c config, length uint) *SMM {
	half := length / 2
	halfM1 := half
	if length%2 == 0 {
		halfM1--
	}
	return &SMM{
		logger: c.logger,
		half:   half,
		halfM1: halfM1,
	}
}

// Next panics if value is NaN or infinite.
func (s *SMM) Next(value float64) float64 {
	if !isFinite(value) {
		s.logger.Panic("smm cannot operate with non-finite values", zap.Float64("value", value))
	}

	evicted := s.window.Push(value)

	oldIndex, _ := slices.BinarySearch(s.sorted, evicted)
	index, _ := slices.BinarySearch(s.sorted, value)

	// The evicted slot is removed before value goes in, which moves every
	// later position one step back.
	if oldIndex < index {
		index--
	}

	switch {
	case index > oldIndex:
		copy(s.sorted[oldIndex:index], s.sorted[oldIndex+1:index+1])
	case index < oldIndex:
		copy(s.sorted[index+1:oldIndex+1], s.sorted[index:oldIndex])
	}
	s.sorted[index] = value

	return s.Value()
}

// Value returns the current median.
func (s *SMM) Value() float64 {
	return (s.sorted[s.half] + s.sorted[s.halfM1]) * 0.5
}

func (s *SMM) Length() uint {
	return s.window.Capacity()
}

// Sorted returns a copy of the window contents in non-decreasing order.
func (s *SMM) Sorted() []float64 {
	return slices.Clone(s.sorted)
}

func (s *SMM) State() State {
	return State{
		Length: s.window.Capacity(),
		Window: s.window.Data(),
		Sorted: slices.Clone(s.sorted),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
