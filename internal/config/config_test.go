package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Demo != "bank" {
		t.Errorf("expected demo bank, got %s", cfg.Demo)
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Interval().Milliseconds() != 50 {
		t.Errorf("expected 50ms interval, got %v", cfg.Interval())
	}
}

func TestPresetsAreValid(t *testing.T) {
	for demo, presets := range Presets {
		for name, cfg := range presets {
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", demo, name, err)
			}
			if cfg.Demo != demo {
				t.Errorf("%s/%s: demo field is %s", demo, name, cfg.Demo)
			}
		}
	}
}

// render samples cfg's demo at t and lays the values out in cfg's mode.
func render(t *testing.T, cfg *Config, p *wave.Params, at float64) []waveform.Bar {
	t.Helper()
	sampler, err := waveform.NewRegistry().Get(cfg.Demo, cfg.Channels)
	if err != nil {
		t.Fatal(err)
	}
	values, err := sampler.Sample(at, p)
	if err != nil {
		t.Fatal(err)
	}
	bars, err := cfg.Mode.Bars(values, p)
	if err != nil {
		t.Fatal(err)
	}
	return bars
}

func TestPresetControlsAffectDisplay(t *testing.T) {
	for demo, presets := range Presets {
		for name, cfg := range presets {
			panel, err := controls.Build(cfg.Controls, cfg.NewParams(), cfg.StrokeFallback)
			if err != nil {
				t.Fatalf("%s/%s: %v", demo, name, err)
			}
			for i := range panel.Controls() {
				p := cfg.NewParams()
				fresh, _ := controls.Build(cfg.Controls, p, cfg.StrokeFallback)
				c := fresh.Controls()[i]

				before := render(t, cfg, p, 0.7)
				if _, hi := c.Bounds(); c.Value() >= hi {
					c.Decrement()
				} else {
					c.Increment()
				}
				after := render(t, cfg, p, 0.7)

				if reflect.DeepEqual(before, after) {
					t.Errorf("%s/%s: control %q does not change the %s display", demo, name, c.Name(), cfg.Mode)
				}
			}
		}
	}
}

func TestEntryPresetExposesOnlyWaveFactor(t *testing.T) {
	cfg := GetPreset("bank", "entry")
	panel, err := controls.Build(cfg.Controls, cfg.NewParams(), cfg.StrokeFallback)
	if err != nil {
		t.Fatal(err)
	}
	if panel.Len() != 1 || panel.Controls()[0].Name() != "wave factor" {
		t.Errorf("entry preset controls: %d, first %q", panel.Len(), panel.Selected().Name())
	}
}

func TestCoarsePreset(t *testing.T) {
	cfg := GetPreset("bank", "coarse")
	if cfg == nil {
		t.Fatal("coarse preset missing")
	}
	p := cfg.NewParams()
	panel, err := controls.Build(cfg.Controls, p, cfg.StrokeFallback)
	if err != nil {
		t.Fatal(err)
	}
	wf, ok := panel.Find("wave factor")
	if !ok {
		t.Fatal("coarse preset has no wave factor slider")
	}
	if s, ok := wf.(*controls.Slider); !ok || s.Max != 10 {
		t.Errorf("expected a 0..10 slider, got %#v", wf)
	}
	if lo, hi := cfg.Extent(cfg.Mode, p); lo != -15 || hi != 15 {
		t.Errorf("coarse extent = [%v, %v], want [-15, 15]", lo, hi)
	}
}

func TestExtent_FallsBackToDemo(t *testing.T) {
	cfg := GetPreset("bank", "sliders")
	p := cfg.NewParams()
	wantLo, wantHi := waveform.Extent(cfg.Demo, cfg.Mode, p)
	if lo, hi := cfg.Extent(cfg.Mode, p); lo != wantLo || hi != wantHi {
		t.Errorf("extent = [%v, %v], want [%v, %v]", lo, hi, wantLo, wantHi)
	}

	cfg.Axis = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative axis should be rejected")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bank", "qt")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.StrokeFallback != 1 {
		t.Errorf("qt stroke fallback = %d, want 1", cfg.StrokeFallback)
	}
	if tk := GetPreset("bank", "tk"); tk.StrokeFallback != 10 {
		t.Errorf("tk stroke fallback = %d, want 10", tk.StrokeFallback)
	}

	cfg.Step = 99
	if Presets["bank"]["qt"].Step == 99 {
		t.Error("GetPreset must not hand out the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bank", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "tk") != nil {
		t.Error("expected nil for nonexistent demo")
	}
	if ForDemo("nonexistent") != nil {
		t.Error("expected nil default for nonexistent demo")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("bank")
	if len(presets) != 6 || presets[0] != "basic" || presets[1] != "coarse" {
		t.Errorf("unexpected bank presets %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent demo")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motorwave.yaml")

	cfg := ForDemo("bank")
	cfg.Params.WaveFactor = 0.4
	cfg.Mode = waveform.ModeAmplitude
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Params.WaveFactor != 0.4 || loaded.Mode != waveform.ModeAmplitude {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("demo: ecg\nstep: 0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Demo != "ecg" || cfg.Step != 0.1 || cfg.Channels != DefaultChannels {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_RejectsInvalidParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("params:\n  wave_factor: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for out-of-range wave factor")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, GetPreset("bank", "qt")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"variant: qt", "stroke_fallback: 1", "  wave_factor: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded config missing %q:\n%s", want, out)
		}
	}
}

func TestSave_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full on this system")
	}
	if err := Save("/dev/full", DefaultConfig()); err == nil {
		t.Error("expected an error writing to a full device")
	}
}
