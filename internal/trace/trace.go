// Package trace holds the scrolling time series behind the ECG view.
package trace

import "github.com/san-kum/motorwave/internal/wave"

const DefaultWindow = 10.0

type Point struct {
	T, V float64
}

// Buffer keeps the points of a trace that can still be seen. Points left of
// the horizon are dropped, except the last one so the polyline reaches the
// left edge.
type Buffer struct {
	window  float64
	channel int
	points  []Point
}

func New(window float64) *Buffer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Buffer{window: window, points: make([]Point, 0, 256)}
}

// ForChannel makes the buffer follow channel i when used as an observer.
func (b *Buffer) ForChannel(i int) *Buffer {
	b.channel = i
	return b
}

func (b *Buffer) Window() float64 { return b.window }
func (b *Buffer) Len() int        { return len(b.points) }
func (b *Buffer) Points() []Point { return b.points }

func (b *Buffer) Latest() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	return b.points[len(b.points)-1], true
}

// OnFrame implements wave.Observer.
func (b *Buffer) OnFrame(f wave.Frame) {
	if b.channel < len(f.Values) {
		b.Append(f.Time, f.Values[b.channel])
	}
}

func (b *Buffer) Append(t, v float64) {
	b.points = append(b.points, Point{T: t, V: v})
	b.trim()
}

func (b *Buffer) trim() {
	lo, _ := b.Horizon()
	cut := 0
	for cut+1 < len(b.points) && b.points[cut+1].T <= lo {
		cut++
	}
	if cut > 0 {
		b.points = append(b.points[:0], b.points[cut:]...)
	}
}

// Horizon is the visible time range: [0, window] until the trace passes
// the window, then [t-window, t] for the latest time t.
func (b *Buffer) Horizon() (lo, hi float64) {
	last, ok := b.Latest()
	if !ok || last.T <= b.window {
		return 0, b.window
	}
	return last.T - b.window, last.T
}

// Visible returns the points inside the horizon.
func (b *Buffer) Visible() []Point {
	lo, hi := b.Horizon()
	out := make([]Point, 0, len(b.points))
	for _, p := range b.points {
		if p.T >= lo && p.T <= hi {
			out = append(out, p)
		}
	}
	return out
}

// Resample returns n values evenly spaced over the horizon, each holding
// the latest point at or before its time. Columns before the first point
// are zero.
func (b *Buffer) Resample(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	lo, hi := b.Horizon()
	j := 0
	for i := range out {
		t := lo
		if n > 1 {
			t = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		for j < len(b.points) && b.points[j].T <= t {
			j++
		}
		if j > 0 {
			out[i] = b.points[j-1].V
		}
	}
	return out
}
