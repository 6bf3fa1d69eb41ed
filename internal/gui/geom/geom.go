// Package geom maps demo data onto window pixels for the raylib front end.
package geom

import (
	"math"

	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/trace"
	"github.com/san-kum/motorwave/internal/waveform"
)

// BarWidth is the width of a bank bar in channel units.
const BarWidth = 0.5

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

type Point struct {
	X, Y float64
}

// Scale maps data coordinates in [X0, X1] x [Y0, Y1] onto Rect. Screen y
// grows downwards, so Y1 lands on the top edge.
type Scale struct {
	Rect
	X0, X1 float64
	Y0, Y1 float64
}

func (s Scale) PX(x float64) float64 {
	if s.X1 == s.X0 {
		return s.X
	}
	return s.X + (x-s.X0)/(s.X1-s.X0)*s.W
}

func (s Scale) PY(y float64) float64 {
	if s.Y1 == s.Y0 {
		return s.Y + s.H/2
	}
	return s.Y + (s.Y1-y)/(s.Y1-s.Y0)*s.H
}

// clampY keeps a screen y inside the plot area.
func (s Scale) clampY(py float64) float64 {
	return math.Max(s.Y, math.Min(s.Y+s.H, py))
}

// BankScale lays out n channels on x in [-1, n] like a bar chart with a
// margin of one slot on each side.
func BankScale(r Rect, n int, lo, hi float64) Scale {
	return Scale{Rect: r, X0: -1, X1: float64(n), Y0: lo, Y1: hi}
}

// BarRects returns the screen rectangle of each bar, clipped to the plot.
func BarRects(bars []waveform.Bar, s Scale) []Rect {
	out := make([]Rect, len(bars))
	for i, b := range bars {
		left := s.PX(float64(i) - BarWidth/2)
		right := s.PX(float64(i) + BarWidth/2)
		top := s.clampY(s.PY(b.Top()))
		bottom := s.clampY(s.PY(b.Bottom))
		out[i] = Rect{X: left, Y: top, W: right - left, H: bottom - top}
	}
	return out
}

// TracePolyline maps trace points inside [t0, t1] onto the plot. The first
// point left of t0 is kept and pinned to the left edge.
func TracePolyline(points []trace.Point, t0, t1 float64, s Scale) []Point {
	s.X0, s.X1 = t0, t1
	out := make([]Point, 0, len(points))
	for _, p := range points {
		x := s.PX(p.T)
		if x < s.X {
			x = s.X
		}
		out = append(out, Point{X: x, Y: s.clampY(s.PY(p.V))})
	}
	return out
}

// Polyline maps paired xs and ys onto the plot.
func Polyline(xs, ys []float64, s Scale) []Point {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = Point{X: s.PX(xs[i]), Y: s.clampY(s.PY(ys[i]))}
	}
	return out
}

// SliderPosition converts a click at px on a horizontal track into a knob
// position in [min, max].
func SliderPosition(track Rect, px float64, min, max int) int {
	if track.W <= 0 || max <= min {
		return min
	}
	ratio := (px - track.X) / track.W
	ratio = math.Max(0, math.Min(1, ratio))
	return min + int(math.Round(ratio*float64(max-min)))
}

// KnobX is the inverse of SliderPosition.
func KnobX(track Rect, pos, min, max int) float64 {
	if max <= min {
		return track.X
	}
	return track.X + float64(pos-min)/float64(max-min)*track.W
}

// trackSlop widens a slider track vertically so the knob is easy to hit.
const trackSlop = 8

// ClickSliders moves the knob of the slider whose track contains the point.
// tracks[i] belongs to ctrls[i]; controls that are not sliders are skipped.
func ClickSliders(ctrls []controls.Control, tracks []Rect, px, py float64) bool {
	for i, c := range ctrls {
		s, ok := c.(*controls.Slider)
		if !ok || i >= len(tracks) {
			continue
		}
		hit := tracks[i]
		hit.Y -= trackSlop
		hit.H += 2 * trackSlop
		if hit.Contains(px, py) {
			s.SetPosition(SliderPosition(tracks[i], px, s.Min, s.Max))
			return true
		}
	}
	return false
}
