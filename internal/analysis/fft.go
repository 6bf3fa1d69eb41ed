package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X_k| for k in [0, n/2). The mean is removed first
// so a DC offset does not mask the oscillation.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest bin of a
// series sampled every step seconds, and the bin resolution.
func DominantFrequency(data []float64, step float64) (freq, resolution float64, err error) {
	if step <= 0 {
		return 0, 0, fmt.Errorf("step must be positive, got %f", step)
	}
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0, 0, fmt.Errorf("need at least 4 samples, got %d", len(data))
	}

	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}

	resolution = 1 / (float64(len(data)) * step)
	return float64(maxIdx) * resolution, resolution, nil
}
