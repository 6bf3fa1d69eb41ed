package wave

import (
	"errors"
	"fmt"
)

// Domain errors for sampling and parameter operations.
var (
	// ErrParse indicates a control value that could not be parsed as a number.
	ErrParse = errors.New("wave: value is not a number")

	// ErrOutOfRange indicates a parsed control value outside its valid range.
	ErrOutOfRange = errors.New("wave: value out of valid range")

	// ErrZeroAmplitude indicates a stroke scaling with a zero amplitude divisor.
	ErrZeroAmplitude = errors.New("wave: amplitude is zero")

	// ErrInvalidSample indicates a sampler produced NaN or Inf.
	ErrInvalidSample = errors.New("wave: invalid sample (NaN or Inf detected)")

	// ErrUnknownDemo indicates a demo name missing from the registry.
	ErrUnknownDemo = errors.New("wave: unknown demo")
)

// FrameError wraps a sampling failure with loop context.
type FrameError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
