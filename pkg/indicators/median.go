package indicators

import (
	"fmt"

	"github.com/peter-kozarec/slidingstat/pkg/methods"
	"go.uber.org/zap"
)

// MovingMedian is the median of a bar price over the last length bars.
type MovingMedian struct {
	window[*methods.SMM]
}

func NewMovingMedian(logger *zap.Logger, length uint, options ...Option) (*MovingMedian, error) {
	if length < methods.MinSMMLength {
		return nil, fmt.Errorf("moving median length %d: %w", length, methods.ErrInvalidParameters)
	}
	return &MovingMedian{
		window: newWindow("moving median", logger, length, methods.NewSMM, options),
	}, nil
}
