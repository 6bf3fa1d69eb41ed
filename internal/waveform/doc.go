// Package waveform provides the deterministic samplers behind each demo.
//
// Each sampler implements [wave.Sampler]:
//
//   - [MotorBank]: N phase-offset sinusoidal channels (stepper motors)
//   - [ECG]: piecewise cardiac-cycle approximation, one scalar per tick
//   - [Sine]: a 100-point sine curve whose phase follows time
//
// [Mode] turns bank channel values into rendered bars the way each
// historical variant of the motor demo did.
package waveform
