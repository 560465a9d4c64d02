package fixed

import (
	"github.com/govalues/decimal"
)

// Point is an unsafe wrapper around decimal implementation. Caller must make sure the calculations
// are correct and will not result in an error state, otherwise it will panic
type Point struct {
	v decimal.Decimal
}

var Zero = Point{decimal.Zero}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

// FromFloat64 panics for NaN and infinities.
func FromFloat64(value float64) Point {
	return Point{must(decimal.NewFromFloat64(value))}
}

func (p Point) String() string           { return p.v.String() }
func (p Point) Float64() (float64, bool) { return p.v.Float64() }

func (p Point) Add(o Point) Point { return Point{must(p.v.Add(o.v))} }
func (p Point) Sub(o Point) Point { return Point{must(p.v.Sub(o.v))} }

func (p Point) DivInt(o int) Point { return Point{must(p.v.Quo(decimal.MustNew(int64(o), 0)))} }

func (p Point) Eq(o Point) bool { return p.v.Cmp(o.v) == 0 }
func (p Point) Gt(o Point) bool { return p.v.Cmp(o.v) > 0 }
func (p Point) Lt(o Point) bool { return p.v.Cmp(o.v) < 0 }

func (p Point) IsZero() bool { return p.v.IsZero() }

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		// Return in the happy path
		return v
	}
	panic(err)
}
