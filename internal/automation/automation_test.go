package automation

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

const scenarioYAML = `
name: ramp
demo: bank
preset: tk
frames: 100
actions:
  - at: 2.0
    control: stroke length
    op: apply
    value: "0"
  - at: 1.0
    control: wave factor
    op: apply
    value: "0.5"
  - at: 3.0
    control: wave factor
    op: increment
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ramp.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "ramp" || sc.Frames != 100 || len(sc.Actions) != 3 {
		t.Errorf("unexpected scenario %+v", sc)
	}
}

func TestLoadScenario_RequiresFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	os.WriteFile(path, []byte("name: empty\ndemo: ecg\n"), 0644)
	if _, err := LoadScenario(path); err == nil {
		t.Error("expected error for missing frames")
	}
}

func TestPlayer_FiresOnceInOrder(t *testing.T) {
	p := wave.DefaultParams()
	panel, _ := controls.Build(controls.LayoutFields, p, 10)
	player := NewPlayer(panel, []Action{
		{At: 0.2, Control: "wave factor", Op: OpIncrement},
		{At: 0.1, Control: "wave factor", Op: OpApply, Value: "0.5"},
	})

	player.OnFrame(wave.Frame{Time: 0.0})
	if player.Fired != 0 {
		t.Fatal("nothing should fire at t=0")
	}
	player.OnFrame(wave.Frame{Time: 0.3})
	if player.Fired != 2 || player.Pending() != 0 {
		t.Fatalf("expected both actions fired, fired=%d", player.Fired)
	}
	if math.Abs(p.WaveFactor-0.6) > 1e-12 {
		t.Errorf("apply then increment should give 0.6, got %v", p.WaveFactor)
	}
	player.OnFrame(wave.Frame{Time: 0.4})
	if player.Fired != 2 {
		t.Error("actions must not fire twice")
	}
}

func TestPlayer_RecordsRejectedInput(t *testing.T) {
	p := wave.DefaultParams()
	panel, _ := controls.Build(controls.LayoutFields, p, 10)
	player := NewPlayer(panel, []Action{
		{At: 0, Control: "stroke length", Op: OpApply, Value: "0"},
		{At: 0, Control: "volume", Op: OpIncrement},
	})

	player.OnFrame(wave.Frame{Time: 0})
	if len(player.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", player.Errors)
	}
	if p.StrokeLength != 10 {
		t.Errorf("stroke length = %d, want fallback 10", p.StrokeLength)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t))
	if err != nil {
		t.Fatal(err)
	}

	res, err := RunScenario(context.Background(), sc, waveform.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Frames) != 100 {
		t.Errorf("expected 100 frames, got %d", len(res.Frames))
	}
	if res.Fired != 3 {
		t.Errorf("expected 3 actions fired, got %d", res.Fired)
	}
	if res.Params.StrokeLength != 10 {
		t.Errorf("stroke length = %d, want tk fallback 10", res.Params.StrokeLength)
	}
	if math.Abs(res.Params.WaveFactor-0.6) > 1e-12 {
		t.Errorf("wave factor = %v, want 0.6", res.Params.WaveFactor)
	}

	early := res.Frames[10].Values
	if early[0] != early[1] {
		t.Error("channels should be in phase before the first action")
	}
	late := res.Frames[50].Values
	if late[0] == late[1] {
		t.Error("channels should be phase shifted after the wave factor change")
	}
}

func TestRunScenario_UnknownPreset(t *testing.T) {
	sc := &Scenario{Name: "x", Demo: "bank", Preset: "nope", Frames: 1}
	if _, err := RunScenario(context.Background(), sc, waveform.NewRegistry()); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPlayer_Slide(t *testing.T) {
	p := wave.DefaultParams()
	panel, _ := controls.Build(controls.LayoutSliders, p, 5)
	player := NewPlayer(panel, []Action{
		{At: 0, Control: "wave factor", Op: OpSlide, Value: "25"},
		{At: 0, Control: "stroke length", Op: OpSlide, Value: "40"},
		{At: 0, Control: "wave factor", Op: OpSlide, Value: "half"},
	})

	player.OnFrame(wave.Frame{Time: 0})
	if p.WaveFactor != 0.25 {
		t.Errorf("wave factor = %v, want 0.25", p.WaveFactor)
	}
	if p.StrokeLength != wave.MaxStrokeLength {
		t.Errorf("stroke length = %d, want clamp to %d", p.StrokeLength, wave.MaxStrokeLength)
	}
	if len(player.Errors) != 1 {
		t.Errorf("expected one parse error, got %v", player.Errors)
	}
}

func TestPlayer_SlideNeedsSlider(t *testing.T) {
	p := wave.DefaultParams()
	panel, _ := controls.Build(controls.LayoutFields, p, 10)
	player := NewPlayer(panel, []Action{{At: 0, Control: "wave factor", Op: OpSlide, Value: "3"}})
	player.OnFrame(wave.Frame{Time: 0})
	if len(player.Errors) != 1 || p.WaveFactor != 0 {
		t.Errorf("slide on a field should fail, errors=%v wf=%v", player.Errors, p.WaveFactor)
	}
}
