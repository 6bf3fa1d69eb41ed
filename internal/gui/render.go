package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/gui/geom"
	"github.com/san-kum/motorwave/internal/waveform"
)

func (a *App) drawPlot() {
	r := a.plotArea
	rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), ColGrid)

	lo, hi := a.Cfg.Extent(a.Mode, a.Loop.Params())
	a.drawText(fmt.Sprintf("%.1f", hi), int(r.X)-30, int(r.Y), 12, ColTextDim)
	a.drawText(fmt.Sprintf("%.1f", lo), int(r.X)-30, int(r.Y+r.H)-12, 12, ColTextDim)

	switch a.Cfg.Demo {
	case waveform.DemoECG:
		a.RenderTrace(lo, hi)
	case waveform.DemoSine:
		a.RenderCurve(lo, hi)
	default:
		a.RenderBank(lo, hi)
	}
}

func (a *App) zeroLine(s geom.Scale) {
	y := float32(s.PY(0))
	rl.DrawLineEx(rl.NewVector2(float32(s.X), y), rl.NewVector2(float32(s.X+s.W), y), 1, ColGrid)
}

func (a *App) RenderBank(lo, hi float64) {
	values := a.Loop.Last().Values
	if len(values) == 0 {
		return
	}
	bars, err := a.Mode.Bars(values, a.Loop.Params())
	if err != nil {
		a.Err, a.quit = err, true
		return
	}
	s := geom.BankScale(a.plotArea, len(bars), lo, hi)
	a.zeroLine(s)
	for _, b := range geom.BarRects(bars, s) {
		rl.DrawRectangleRec(rl.NewRectangle(float32(b.X), float32(b.Y), float32(b.W), float32(b.H)), ColBar)
	}
}

func (a *App) RenderTrace(lo, hi float64) {
	t0, t1 := a.Trace.Horizon()
	s := geom.Scale{Rect: a.plotArea, Y0: lo, Y1: hi}
	a.zeroLine(s)
	a.drawText(fmt.Sprintf("%.0fs", t0), int(s.X), int(s.Y+s.H)+6, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%.0fs", t1), int(s.X+s.W)-24, int(s.Y+s.H)+6, 12, ColTextDim)
	a.drawStrip(geom.TracePolyline(a.Trace.Points(), t0, t1, s))
}

func (a *App) RenderCurve(lo, hi float64) {
	values := a.Loop.Last().Values
	if len(values) == 0 {
		return
	}
	xs := make([]float64, len(values))
	if sine, ok := a.Sampler.(*waveform.Sine); ok && len(sine.X()) == len(values) {
		copy(xs, sine.X())
	} else {
		for i := range xs {
			xs[i] = float64(i)
		}
	}
	s := geom.Scale{Rect: a.plotArea, X0: xs[0], X1: xs[len(xs)-1], Y0: lo, Y1: hi}
	a.zeroLine(s)
	a.drawStrip(geom.Polyline(xs, values, s))
}

func (a *App) drawStrip(pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	strip := make([]rl.Vector2, len(pts))
	for i, p := range pts {
		strip[i] = rl.NewVector2(float32(p.X), float32(p.Y))
	}
	rl.DrawLineStrip(strip, ColTrace)
}

func (a *App) drawPanel() {
	x := screenW - panelW
	rl.DrawRectangle(int32(x), 0, panelW, screenH, rl.NewColor(16, 16, 16, 255))
	a.drawText("controls", x+20, 80, 20, ColSelect)

	p := a.Loop.Params()
	a.drawText(fmt.Sprintf("amplitude %g  wave factor %g  stroke %d", p.Amplitude, p.WaveFactor, p.StrokeLength), x+20, 120, 12, ColText)

	if a.Panel.Len() == 0 {
		a.drawText("no adjustable parameters", x+20, 200, 16, ColTextDim)
		return
	}
	for i, c := range a.Panel.Controls() {
		y := 200 + i*70
		col := ColText
		prefix := "  "
		if i == a.Panel.SelectedIndex() {
			col, prefix = ColSelect, "> "
		}
		text := c.Text()
		if a.Editing && i == a.Panel.SelectedIndex() {
			text = a.EditBuf + "_"
		}
		a.drawText(fmt.Sprintf("%s%-14s %s", prefix, c.Name(), text), x+20, y, 16, col)
		if i < len(a.tracks) {
			a.drawTrack(c, a.tracks[i])
		}
	}
}

func (a *App) drawTrack(c controls.Control, track geom.Rect) {
	rl.DrawRectangle(int32(track.X), int32(track.Y+track.H/2)-1, int32(track.W), 2, ColGrid)
	var kx float64
	if s, ok := c.(*controls.Slider); ok {
		kx = geom.KnobX(track, s.Position(), s.Min, s.Max)
	} else {
		lo, hi := c.Bounds()
		kx = geom.Scale{Rect: track, X0: lo, X1: hi}.PX(c.Value())
	}
	rl.DrawCircle(int32(kx), int32(track.Y+track.H/2), 6, ColAccent)
}
