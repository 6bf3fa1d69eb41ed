package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/motorwave/internal/anim"
	"github.com/san-kum/motorwave/internal/config"
	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/gui/geom"
	"github.com/san-kum/motorwave/internal/trace"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
	ColBar     = rl.NewColor(70, 130, 220, 255)
	ColTrace   = rl.NewColor(0, 230, 170, 255)
)

const (
	screenW, screenH = 1280, 720
	panelW           = 360
)

type App struct {
	Cfg      *config.Config
	Sampler  wave.Sampler
	Mode     waveform.Mode
	Loop     *anim.Loop
	Panel    *controls.Panel
	Trace    *trace.Buffer
	Running  bool
	Editing  bool
	EditBuf  string
	Font     rl.Font
	Err      error
	quit     bool
	pacer    *anim.Pacer
	tracks   []geom.Rect
	plotArea geom.Rect
}

func initWindow(title string) {
	rl.InitWindow(screenW, screenH, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads the Liberation Mono font when present; raylib falls back to
// its built-in font otherwise.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wires the loop, controls and trace for cfg. It needs no window, so
// the returned App can be driven headlessly through Step and the control
// helpers.
func NewApp(cfg *config.Config, sampler wave.Sampler) (*App, error) {
	mode, err := waveform.ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	a := &App{
		Cfg:      cfg,
		Sampler:  sampler,
		Mode:     mode,
		Running:  true,
		plotArea: geom.Rect{X: 40, Y: 80, W: screenW - panelW - 80, H: screenH - 160},
	}
	if err := a.Reset(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset restarts the clock from zero with the configured parameters.
func (a *App) Reset() error {
	params := a.Cfg.NewParams()
	panel, err := controls.Build(a.Cfg.Controls, params, a.Cfg.StrokeFallback)
	if err != nil {
		return err
	}
	a.Panel = panel
	a.Trace = trace.New(a.Cfg.Window)
	a.Loop = anim.New(a.Sampler, params, wave.NewClock(a.Cfg.Step))
	a.Loop.AddObserver(a.Trace)
	a.pacer = anim.NewPacer(a.Loop, a.Cfg.Interval())
	a.Editing, a.EditBuf = false, ""
	a.layoutTracks()
	return nil
}

func (a *App) layoutTracks() {
	a.tracks = a.tracks[:0]
	x := float64(screenW - panelW + 20)
	for i := range a.Panel.Controls() {
		a.tracks = append(a.tracks, geom.Rect{X: x, Y: float64(200 + i*70 + 30), W: panelW - 60, H: 12})
	}
}

// Step feeds elapsed wall time to the loop and ticks once per configured
// interval. It returns the number of frames produced.
func (a *App) Step(elapsed time.Duration) (int, error) {
	if !a.Running {
		return 0, nil
	}
	return a.pacer.Step(elapsed)
}

// Commit applies the edit buffer to the selected control and leaves edit
// mode. The control has already reset itself when the text is rejected.
func (a *App) Commit() error {
	var err error
	if c := a.Panel.Selected(); c != nil {
		err = c.Apply(a.EditBuf)
	}
	a.Editing, a.EditBuf = false, ""
	return err
}

// Click moves a slider knob when the point lies on its track.
func (a *App) Click(px, py float64) bool {
	return geom.ClickSliders(a.Panel.Controls(), a.tracks, px, py)
}

// Run opens a window for cfg and blocks until it is closed. A sampler
// failure closes the window and is returned.
func Run(cfg *config.Config, sampler wave.Sampler) error {
	app, err := NewApp(cfg, sampler)
	if err != nil {
		return err
	}
	title := "motorwave :: " + cfg.Demo
	if cfg.Variant != "" {
		title += "/" + cfg.Variant
	}
	initWindow(title)
	defer rl.CloseWindow()
	app.Font = loadFont()
	defer rl.UnloadFont(app.Font)

	app.RunLoop()
	return app.Err
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if a.Editing {
		a.updateEditing()
	} else {
		a.updateKeys()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		m := rl.GetMousePosition()
		a.Click(float64(m.X), float64(m.Y))
	}

	elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	if _, err := a.Step(elapsed); err != nil {
		a.Err = err
		a.quit = true
	}
}

func (a *App) updateKeys() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if err := a.Reset(); err != nil {
			a.Err, a.quit = err, true
			return
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Panel.Next()
	}
	c := a.Panel.Selected()
	if c == nil {
		return
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) || rl.IsKeyPressed(rl.KeyRight) {
		c.Increment()
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) || rl.IsKeyPressed(rl.KeyLeft) {
		c.Decrement()
	}
	if rl.IsKeyPressed(rl.KeyE) || rl.IsKeyPressed(rl.KeyEnter) {
		a.Editing, a.EditBuf = true, ""
		// drain the key that opened the editor
		for rl.GetCharPressed() != 0 {
		}
	}
}

func (a *App) updateEditing() {
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if r >= 32 && r < 127 {
			a.EditBuf += string(rune(r))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(a.EditBuf) > 0 {
		a.EditBuf = a.EditBuf[:len(a.EditBuf)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.Editing, a.EditBuf = false, ""
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		_ = a.Commit()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawPlot()
	a.DrawHUD()
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("motorwave", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s/%s", a.Cfg.Demo, a.Cfg.Variant), 180, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, screenW-panelW-120, 30, 16, col)
	a.drawText(fmt.Sprintf("t = %.2fs", a.Loop.Last().Time), 40, screenH-60, 16, ColText)

	a.drawText("[SPACE] PAUSE  [R] RESET  [TAB] SELECT  [E] EDIT  [Q] QUIT", 560, 690, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 690, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
