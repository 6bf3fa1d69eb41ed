// Package anim drives a sampler on a fixed cadence.
//
// A [Loop] owns the simulated clock. Each [Loop.Tick] samples at the
// current time, advances the clock by one step and hands the frame to
// every observer. Sampling failures are fatal to the loop.
//
// [Loop.Run] paces ticks on the wall clock (nominally 50ms); [Loop.Record]
// runs a fixed number of ticks as fast as possible for headless capture.
package anim
