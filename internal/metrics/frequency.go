package metrics

import "github.com/san-kum/motorwave/internal/wave"

// Frequency estimates the oscillation frequency of one channel from the
// spacing of its upward crossings of a threshold.
type Frequency struct {
	name      string
	channel   int
	threshold float64
	params    *wave.Params
	prev      float64
	hasPrev   bool
	first     float64
	last      float64
	crossings int
}

func NewFrequency(channel int, threshold float64) *Frequency {
	return &Frequency{name: "frequency", channel: channel, threshold: threshold}
}

// NewRelativeFrequency measures the threshold in units of the live
// amplitude, so the same crossing is found at any gain or sign.
func NewRelativeFrequency(channel int, fraction float64, p *wave.Params) *Frequency {
	return &Frequency{name: "frequency", channel: channel, threshold: fraction, params: p}
}

func (q *Frequency) Name() string { return q.name }

func (q *Frequency) Observe(f wave.Frame) {
	if q.channel >= len(f.Values) {
		return
	}
	v := f.Values[q.channel]
	if q.params != nil {
		if q.params.Amplitude == 0 {
			v = 0
		} else {
			v /= q.params.Amplitude
		}
	}
	if q.hasPrev && q.prev < q.threshold && v >= q.threshold {
		if q.crossings == 0 {
			q.first = f.Time
		}
		q.last = f.Time
		q.crossings++
	}
	q.prev, q.hasPrev = v, true
}

// Value is zero until two crossings have been seen.
func (q *Frequency) Value() float64 {
	if q.crossings < 2 || q.last <= q.first {
		return 0
	}
	return float64(q.crossings-1) / (q.last - q.first)
}

func (q *Frequency) Reset() {
	*q = Frequency{name: q.name, channel: q.channel, threshold: q.threshold, params: q.params}
}
