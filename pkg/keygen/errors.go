package keygen

import "errors"

var (
	ErrEmptySecret       = errors.New("keygen.empty_secret")
	ErrInvalidIterations = errors.New("keygen.invalid_iterations")
)
