package anim

import "time"

// Pacer drives a loop from a caller's own frame loop: elapsed wall time is
// accumulated and the loop ticks once per whole interval.
type Pacer struct {
	loop     *Loop
	interval time.Duration
	pending  time.Duration
}

func NewPacer(loop *Loop, interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pacer{loop: loop, interval: interval}
}

func (p *Pacer) Interval() time.Duration { return p.interval }
func (p *Pacer) Pending() time.Duration  { return p.pending }

// Step adds elapsed and returns the number of frames produced. Time left
// over after a failed tick is kept.
func (p *Pacer) Step(elapsed time.Duration) (int, error) {
	if elapsed > 0 {
		p.pending += elapsed
	}
	n := 0
	for p.pending >= p.interval {
		p.pending -= p.interval
		if _, err := p.loop.Tick(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
