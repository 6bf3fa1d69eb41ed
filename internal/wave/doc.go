// Package wave provides the core primitives shared by every motorwave demo.
//
// The package defines the types that flow between parameter controls,
// samplers and renderers:
//
//   - [Params]: live parameters (amplitude, wave factor, stroke length)
//   - [Vector]: one sample, either per-channel or a single scalar
//   - [Clock]: simulated time advanced by a fixed step
//   - [Sampler]: deterministic waveform generator
//   - [Observer]: receives every produced [Frame]
//
// # Example
//
//	p := wave.DefaultParams()
//	bank := waveform.NewMotorBank(12)
//	loop := anim.New(bank, p, wave.NewClock(0.05))
//	frame, _ := loop.Tick()
//
// # Thread Safety
//
// Params are shared by pointer and are NOT synchronized. All reads and
// writes must happen on the goroutine that drives the animation loop.
package wave
