package indicators

import (
	"github.com/peter-kozarec/slidingstat/pkg/common"
	"github.com/peter-kozarec/slidingstat/pkg/utility/fixed"
)

// Source picks the price of a bar an indicator is computed from.
type Source func(common.Bar) fixed.Point

func Open(b common.Bar) fixed.Point  { return b.Open }
func High(b common.Bar) fixed.Point  { return b.High }
func Low(b common.Bar) fixed.Point   { return b.Low }
func Close(b common.Bar) fixed.Point { return b.Close }

// Median is (high + low) / 2.
func Median(b common.Bar) fixed.Point {
	return b.High.Add(b.Low).DivInt(2)
}

// Typical is (high + low + close) / 3.
func Typical(b common.Bar) fixed.Point {
	return b.High.Add(b.Low).Add(b.Close).DivInt(3)
}
