package config

import (
	"sort"

	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
)

// Presets reproduce the historical variants of each demo. The stroke
// fallback differs between the tk and qt variants on purpose.
var Presets = map[string]map[string]*Config{
	"bank": {
		"basic": {
			Demo: "bank", Variant: "basic", Step: 0.05, IntervalMs: 50, Channels: 12, Window: DefaultWindow,
			Mode: waveform.ModePosition, Controls: controls.LayoutNone, StrokeFallback: 10,
			Params: wave.Params{Amplitude: 1.0, WaveFactor: 1.0, StrokeLength: 1},
		},
		"entry": {
			Demo: "bank", Variant: "entry", Step: 0.05, IntervalMs: 50, Channels: 12, Window: DefaultWindow,
			Mode: waveform.ModePosition, Controls: controls.LayoutWaveFactor, StrokeFallback: 10,
			Params: wave.Params{Amplitude: 1.0, WaveFactor: 0.0, StrokeLength: 1},
		},
		"tk": {
			Demo: "bank", Variant: "tk", Step: 0.05, IntervalMs: 50, Channels: 12, Window: DefaultWindow,
			Mode: waveform.ModeStroke, Controls: controls.LayoutFields, StrokeFallback: 10,
			Params: wave.Params{Amplitude: 1.0, WaveFactor: 0.0, StrokeLength: 1},
		},
		"qt": {
			Demo: "bank", Variant: "qt", Step: 0.05, IntervalMs: 50, Channels: 12, Window: DefaultWindow,
			Mode: waveform.ModeStroke, Controls: controls.LayoutFields, StrokeFallback: 1,
			Params: wave.Params{Amplitude: 1.0, WaveFactor: 0.0, StrokeLength: 1},
		},
		"sliders": {
			Demo: "bank", Variant: "sliders", Step: 0.05, IntervalMs: 50, Channels: 12, Window: DefaultWindow,
			Mode: waveform.ModeAmplitude, Controls: controls.LayoutSliders, StrokeFallback: 5,
			Params: wave.Params{Amplitude: 1.0, WaveFactor: 1.0, StrokeLength: 5},
		},
		"coarse": {
			Demo: "bank", Variant: "coarse", Step: 0.05, IntervalMs: 50, Channels: 12, Window: DefaultWindow,
			Mode: waveform.ModeAmplitude, Controls: controls.LayoutCoarseSliders, StrokeFallback: 1, Axis: 15,
			Params: wave.Params{Amplitude: 1.0, WaveFactor: 0.0, StrokeLength: 1},
		},
	},
	"ecg": {
		"classic": {
			Demo: "ecg", Variant: "classic", Step: 0.1, IntervalMs: 50, Channels: 1, Window: DefaultWindow,
			Mode: waveform.ModePosition, Controls: controls.LayoutNone, StrokeFallback: 10,
			Params: wave.Params{Amplitude: 1.0, StrokeLength: 1},
		},
		"fine": {
			Demo: "ecg", Variant: "fine", Step: 0.01, IntervalMs: 50, Channels: 1, Window: DefaultWindow,
			Mode: waveform.ModePosition, Controls: controls.LayoutNone, StrokeFallback: 10,
			Params: wave.Params{Amplitude: 1.0, StrokeLength: 1},
		},
	},
	"sine": {
		"slider": {
			Demo: "sine", Variant: "slider", Step: 0.05, IntervalMs: 50, Channels: waveform.SinePoints, Window: DefaultWindow,
			Mode: waveform.ModePosition, Controls: controls.LayoutSine, StrokeFallback: 10,
			Params: wave.Params{Amplitude: 1.0, StrokeLength: 1},
		},
	},
}

// DefaultVariants is the preset a demo starts with when none is named.
var DefaultVariants = map[string]string{
	"bank": "tk",
	"ecg":  "classic",
	"sine": "slider",
}

// GetPreset returns a copy so callers may edit it freely.
func GetPreset(demo, preset string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	cfg, ok := demoPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ForDemo returns the default preset of demo, or nil for an unknown demo.
func ForDemo(demo string) *Config {
	return GetPreset(demo, DefaultVariants[demo])
}

func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
