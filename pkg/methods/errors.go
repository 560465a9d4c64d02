package methods

import "errors"

var (
	ErrInvalidParameters = errors.New("invalid method parameters")
	ErrInvalidInput      = errors.New("invalid method input")
)
