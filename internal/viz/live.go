package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/motorwave/internal/anim"
	"github.com/san-kum/motorwave/internal/config"
	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/trace"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

const (
	width      = 60
	height     = 18
	graphWidth = 30
	gaugeWidth = 10
	GIFPath    = "motorwave.gif"
)

var titles = map[string]string{
	waveform.DemoBank: "MOTOR BANK",
	waveform.DemoECG:  "ECG MONITOR",
	waveform.DemoSine: "SINE VIEWER",
}

type TickMsg time.Time

// Model is the live terminal view of one demo. The loop, panel and trace
// are shared pointers, so copies made by Bubble Tea stay in sync.
type Model struct {
	cfg       *config.Config
	sampler   wave.Sampler
	mode      waveform.Mode
	loop      *anim.Loop
	panel     *controls.Panel
	trace     *trace.Buffer
	canvas    *Canvas
	running   bool
	editing   bool
	editBuf   string
	recorder  *gifRecorder
	showHelp  bool
	err       error
	saveErr   error
	lastSaved string
}

// NewModel builds the view for cfg around sampler.
func NewModel(cfg *config.Config, sampler wave.Sampler) (Model, error) {
	mode, err := waveform.ParseMode(string(cfg.Mode))
	if err != nil {
		return Model{}, err
	}
	m := Model{
		cfg:     cfg,
		sampler: sampler,
		mode:    mode,
		canvas:  NewCanvas(width, height),
		running: true,
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reset restarts the clock from zero with the configured parameters.
func (m *Model) reset() error {
	params := m.cfg.NewParams()
	panel, err := controls.Build(m.cfg.Controls, params, m.cfg.StrokeFallback)
	if err != nil {
		return err
	}
	m.panel = panel
	m.trace = trace.New(m.cfg.Window)
	m.loop = anim.New(m.sampler, params, wave.NewClock(m.cfg.Step))
	m.loop.AddObserver(m.trace)
	m.editing, m.editBuf = false, ""
	m.canvas.Clear()
	return nil
}

// Err is the failure that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Params() *wave.Params    { return m.loop.Params() }
func (m Model) Panel() *controls.Panel  { return m.panel }
func (m Model) Clock() *wave.Clock      { return m.loop.Clock() }
func (m Model) Trace() *trace.Buffer    { return m.trace }
func (m Model) Canvas() *Canvas         { return m.canvas }
func (m Model) Running() bool           { return m.running }
func (m Model) Recording() bool         { return m.recorder != nil }
func (m Model) Editing() (bool, string) { return m.editing, m.editBuf }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys and advances the loop on every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m, m.editKey(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.reset(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "tab":
			m.panel.Next()
		case "up", "k", "+", "=":
			if c := m.panel.Selected(); c != nil {
				c.Increment()
			}
		case "down", "j", "-", "_":
			if c := m.panel.Selected(); c != nil {
				c.Decrement()
			}
		case "e", "enter":
			if m.panel.Selected() != nil {
				m.editing, m.editBuf = true, ""
			}
		case "g":
			m.toggleRecording()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if _, err := m.loop.Tick(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		if err := m.draw(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.recorder != nil {
			m.recorder.capture(m.canvas)
		}
		return m, m.tick()
	}
	return m, nil
}

// editKey collects typed text for the selected control. Enter commits it;
// a rejected entry has already reset the control, so the error is dropped.
func (m *Model) editKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter:
		if c := m.panel.Selected(); c != nil {
			_ = c.Apply(m.editBuf)
		}
		m.editing, m.editBuf = false, ""
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuf); len(r) > 0 {
			m.editBuf = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.editBuf += string(msg.Runes)
	}
	return nil
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = &gifRecorder{}
		return
	}
	m.saveErr = m.recorder.save(GIFPath)
	if m.saveErr == nil && m.recorder.Len() > 0 {
		m.lastSaved = GIFPath
	}
	m.recorder = nil
}

// FinishRecording flushes a recording still running when the session ends.
func (m *Model) FinishRecording() error {
	if m.recorder == nil {
		return nil
	}
	m.toggleRecording()
	return m.saveErr
}

func (m *Model) draw() error {
	m.canvas.Clear()
	lo, hi := m.cfg.Extent(m.mode, m.loop.Params())
	switch m.cfg.Demo {
	case waveform.DemoECG:
		m.drawTrace(lo, hi)
	case waveform.DemoSine:
		m.drawCurve(lo, hi)
	default:
		return m.drawBars(lo, hi)
	}
	return nil
}

// yDot maps a value to a canvas row, clamped one dot past either edge.
func (m *Model) yDot(v, lo, hi float64) int {
	_, h := m.canvas.Dots()
	y := int(math.Round((hi - v) / (hi - lo) * float64(h-1)))
	if y < -1 {
		return -1
	}
	if y > h {
		return h
	}
	return y
}

func (m *Model) drawBars(lo, hi float64) error {
	values := m.loop.Last().Values
	if len(values) == 0 {
		return nil
	}
	bars, err := m.mode.Bars(values, m.loop.Params())
	if err != nil {
		return err
	}

	w, _ := m.canvas.Dots()
	slot := float64(w) / float64(len(bars))
	m.canvas.DashedHLine(m.yDot(0, lo, hi))
	for i, b := range bars {
		x0 := int(float64(i)*slot + slot*0.25)
		x1 := int(float64(i)*slot+slot*0.75) - 1
		if x1 < x0 {
			x1 = x0
		}
		m.canvas.FillRect(x0, m.yDot(b.Top(), lo, hi), x1, m.yDot(b.Bottom, lo, hi))
	}
	return nil
}

func (m *Model) drawTrace(lo, hi float64) {
	t0, t1 := m.trace.Horizon()
	w, _ := m.canvas.Dots()
	m.canvas.DashedHLine(m.yDot(0, lo, hi))

	var px, py int
	for i, pt := range m.trace.Points() {
		x := int(math.Round((pt.T - t0) / (t1 - t0) * float64(w-1)))
		y := m.yDot(pt.V, lo, hi)
		if i == 0 {
			m.canvas.Set(x, y)
		} else {
			m.canvas.DrawLine(px, py, x, y)
		}
		px, py = x, y
	}
}

// drawCurve plots the latest frame against the sampler's x axis, or
// against the channel index for samplers without one.
func (m *Model) drawCurve(lo, hi float64) {
	values := m.loop.Last().Values
	if len(values) == 0 {
		return
	}
	xs := make([]float64, len(values))
	x0, x1 := 0.0, float64(len(values)-1)
	if s, ok := m.sampler.(*waveform.Sine); ok && len(s.X()) == len(values) {
		copy(xs, s.X())
		x0, x1 = xs[0], xs[len(xs)-1]
	} else {
		for i := range xs {
			xs[i] = float64(i)
		}
	}
	if x1 == x0 {
		x1 = x0 + 1
	}

	w, _ := m.canvas.Dots()
	m.canvas.DashedHLine(m.yDot(0, lo, hi))
	var px, py int
	for i, v := range values {
		x := int(math.Round((xs[i] - x0) / (x1 - x0) * float64(w-1)))
		y := m.yDot(v, lo, hi)
		if i > 0 {
			m.canvas.DrawLine(px, py, x, y)
		}
		px, py = x, y
	}
}

// View renders the canvas next to the status and control panel.
func (m Model) View() string {
	st := currentStyles()
	canvasView := canvasStyle.Render(lipgloss.NewStyle().Foreground(CurrentTheme.Trace).Render(m.canvas.String()))

	var s strings.Builder
	title := titles[m.cfg.Demo]
	if title == "" {
		title = strings.ToUpper(m.cfg.Demo)
	}
	s.WriteString(st.header.Render(title+" · "+m.cfg.Variant) + "\n")

	switch {
	case m.recorder != nil:
		s.WriteString(st.recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())) + "\n\n")
	case !m.running:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	default:
		s.WriteString("RUNNING\n\n")
	}

	if m.trace.Len() > 1 {
		lo, hi := m.cfg.Extent(m.mode, m.loop.Params())
		chart := asciigraph.Plot(m.trace.Resample(graphWidth),
			asciigraph.Height(4), asciigraph.Width(graphWidth),
			asciigraph.LowerBound(lo), asciigraph.UpperBound(hi),
			asciigraph.Caption("channel 0"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	p := m.loop.Params()
	s.WriteString(st.label.Render("Time") + st.value.Render(fmt.Sprintf("%.2fs", m.loop.Last().Time)) + "\n")
	s.WriteString(st.label.Render("Frame") + st.value.Render(fmt.Sprintf("%d", m.loop.Clock().Ticks())) + "\n")
	s.WriteString(st.label.Render("Amplitude") + st.value.Render(fmt.Sprintf("%g", p.Amplitude)) + "\n")
	if m.cfg.Demo == waveform.DemoBank {
		s.WriteString(st.label.Render("Wave factor") + st.value.Render(fmt.Sprintf("%g", p.WaveFactor)) + "\n")
		s.WriteString(st.label.Render("Stroke") + st.value.Render(fmt.Sprintf("%d", p.StrokeLength)) + "\n")
		s.WriteString(st.label.Render("Mode") + st.value.Render(string(m.mode)) + "\n")
	}

	s.WriteString("\nCONTROLS\n")
	if m.panel.Len() == 0 {
		s.WriteString(st.label.Render("  (none)") + "\n")
	}
	for i, c := range m.panel.Controls() {
		lo, hi := c.Bounds()
		line := fmt.Sprintf("%-13s %s %s", c.Name(), levelBar(c.Value(), lo, hi, gaugeWidth), c.Text())
		if i == m.panel.SelectedIndex() {
			if m.editing {
				line = fmt.Sprintf("%-13s %s_", c.Name(), m.editBuf)
			}
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.value.Render(line) + "\n")
		}
	}

	if m.saveErr != nil {
		s.WriteString("\n" + st.recording.Render("gif: "+m.saveErr.Error()) + "\n")
	} else if m.lastSaved != "" {
		s.WriteString("\n" + st.label.Render("saved "+m.lastSaved) + "\n")
	}

	s.WriteString(st.help.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTAB:Select ↑↓:Step E:Edit\nT:Theme G:Record ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset clock and params   ║
║  Q        - Quit                     ║
║  Tab      - Select next control      ║
║  Up/K/+   - Increment control        ║
║  Down/J/- - Decrement control        ║
║  E/Enter  - Type a value, Enter set  ║
║  Esc      - Cancel typing            ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run opens the live view and blocks until the user quits. A sampler
// failure ends the session and is returned.
func Run(cfg *config.Config, sampler wave.Sampler) error {
	m, err := NewModel(cfg, sampler)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	return finish(final)
}

func finish(final tea.Model) error {
	var fm Model
	switch v := final.(type) {
	case Model:
		fm = v
	case *menu:
		if v.live == nil {
			return nil
		}
		fm = *v.live
	default:
		return nil
	}
	if err := fm.FinishRecording(); err != nil {
		return err
	}
	return fm.Err()
}
