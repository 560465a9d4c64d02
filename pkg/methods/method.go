// Package methods implements streaming statistics over a fixed-size sliding
// window. Every tracker is created from a length and the first sample, which
// pre-fills the whole window, and then turns each new sample into an updated
// statistic with Next.
//
// Trackers are not safe for concurrent use; run one tracker per stream.
package methods

// Method consumes one sample and produces one output.
type Method[I, O any] interface {
	Next(value I) O
}

var (
	_ Method[float64, float64] = (*LinReg)(nil)
	_ Method[float64, float64] = (*SMM)(nil)
)

// Apply feeds every value of src through m and appends the outputs to dst[:0].
func Apply[M Method[I, O], I, O any](m M, dst []O, src []I) []O {
	dst = dst[:0]
	for _, v := range src {
		dst = append(dst, m.Next(v))
	}
	return dst
}
