// Package metrics summarises a run as it is produced. Every metric is a
// loop observer so it sees exactly the frames that were recorded.
package metrics

import (
	"sort"

	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

type Metric interface {
	Name() string
	Observe(f wave.Frame)
	Value() float64
	Reset()
}

// Set feeds frames to a group of metrics.
type Set []Metric

// OnFrame implements wave.Observer.
func (s Set) OnFrame(f wave.Frame) {
	for _, m := range s {
		m.Observe(f)
	}
}

func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Names returns the metric names in sorted order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForDemo returns the metrics worth reporting for a demo recorded with the
// live parameters p.
func ForDemo(demo string, p *wave.Params) Set {
	switch demo {
	case waveform.DemoBank:
		return Set{NewRMS(), NewPeak(), NewSpread(), NewFrequency(0, 0)}
	case waveform.DemoECG:
		// the R wave is the only level above half the amplitude
		return Set{NewRMS(), NewPeak(), NewRelativeFrequency(0, 0.5, p)}
	default:
		return Set{NewRMS(), NewPeak()}
	}
}
