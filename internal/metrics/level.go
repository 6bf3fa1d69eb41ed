package metrics

import (
	"math"

	"github.com/san-kum/motorwave/internal/wave"
)

// RMS is the root mean square over every channel of every frame.
type RMS struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMS() *RMS {
	return &RMS{name: "rms"}
}

func (r *RMS) Name() string { return r.name }

func (r *RMS) Observe(f wave.Frame) {
	for _, v := range f.Values {
		r.sumSq += v * v
		r.samples++
	}
}

func (r *RMS) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMS) Reset() {
	r.sumSq = 0
	r.samples = 0
}

// Peak is the largest absolute value seen on any channel.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(f wave.Frame) {
	if m := f.Values.MaxAbs(); m > p.max {
		p.max = m
	}
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() { p.max = 0 }

// Spread is the mean over frames of the distance between the highest and
// lowest channel. In-phase channels give zero.
type Spread struct {
	name    string
	sum     float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(f wave.Frame) {
	if len(f.Values) == 0 {
		return
	}
	lo, hi := f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	s.sum += hi - lo
	s.samples++
}

func (s *Spread) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *Spread) Reset() {
	s.sum = 0
	s.samples = 0
}
