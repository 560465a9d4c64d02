package methods

// State is a snapshot of a tracker. Window is ordered oldest to newest.
// Sorted is only set for SMM, SumY and SumXY only for LinReg.
type State struct {
	Length uint      `json:"length"`
	Window []float64 `json:"window"`
	Sorted []float64 `json:"sorted,omitempty"`
	SumY   float64   `json:"sum_y,omitempty"`
	SumXY  float64   `json:"sum_xy,omitempty"`
}
