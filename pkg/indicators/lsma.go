package indicators

import (
	"fmt"

	"github.com/peter-kozarec/slidingstat/pkg/methods"
	"github.com/peter-kozarec/slidingstat/pkg/utility/fixed"
	"go.uber.org/zap"
)

// Lsma is the least squares moving average of a bar price.
type Lsma struct {
	window[*methods.LinReg]
}

func NewLsma(logger *zap.Logger, length uint, options ...Option) (*Lsma, error) {
	if length < methods.MinLinRegLength {
		return nil, fmt.Errorf("lsma length %d: %w", length, methods.ErrInvalidParameters)
	}
	return &Lsma{
		window: newWindow("lsma", logger, length, methods.NewLinReg, options),
	}, nil
}

// Slope returns the change of the fitted line per bar, zero before the first bar.
func (l *Lsma) Slope() fixed.Point {
	if !l.created {
		return fixed.Zero
	}
	return fixed.FromFloat64(l.method.Slope())
}
