// Package analysis provides spectral checks on recorded waveforms.
//
//   - [PowerSpectrum]: one-sided FFT magnitude of a series
//   - [DominantFrequency]: strongest non-DC component, in Hz
package analysis
