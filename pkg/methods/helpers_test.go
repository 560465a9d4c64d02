package methods

import (
	"math"
	"math/rand/v2"
	"slices"
)

const sigma = 1e-8

// randomPrices returns a deterministic random walk around 100.
func randomPrices(seed uint64, count int) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x5deece66d))
	out := make([]float64, count)
	price := 100.0
	for i := range out {
		price *= 1 + (r.Float64()-0.5)*0.02
		out[i] = price
	}
	return out
}

// windowAt returns the window after src[:i+1] was fed into a tracker created
// with src[0], ordered newest first.
func windowAt(src []float64, i int, length int) []float64 {
	out := make([]float64, length)
	for j := range out {
		out[j] = src[max(0, i-j)]
	}
	return out
}

// leastSquares fits y = a*x + b where x is the index in values and returns b.
func leastSquares(values []float64) float64 {
	n := float64(len(values))
	var sx, sx2, sy, sxy float64
	for x, y := range values {
		fx := float64(x)
		sx += fx
		sx2 += fx * fx
		sy += y
		sxy += fx * y
	}
	a := (n*sxy - sx*sy) / (n*sx2 - sx*sx)
	return (sy - a*sx) / n
}

func median(values []float64) float64 {
	s := slices.Clone(values)
	slices.Sort(s)
	if len(s)%2 == 0 {
		return (s[len(s)/2] + s[len(s)/2-1]) / 2
	}
	return s[len(s)/2]
}

func tolerance(expected float64) float64 {
	return sigma * math.Max(1, math.Abs(expected))
}
