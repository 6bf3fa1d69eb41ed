package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDemo           = "bank"
	DefaultVariant        = "tk"
	DefaultStep           = 0.05
	DefaultIntervalMs     = 50
	DefaultChannels       = 12
	DefaultWindow         = 10.0
	DefaultStrokeFallback = 10
)

type Config struct {
	Demo           string          `yaml:"demo"`
	Variant        string          `yaml:"variant"`
	Step           float64         `yaml:"step"`
	IntervalMs     int             `yaml:"interval_ms"`
	Channels       int             `yaml:"channels"`
	Window         float64         `yaml:"window"`
	Mode           waveform.Mode   `yaml:"mode"`
	Controls       controls.Layout `yaml:"controls"`
	StrokeFallback int             `yaml:"stroke_fallback"`
	Params         wave.Params     `yaml:"params"`
	// Axis fixes the vertical extent to ±Axis; zero lets the demo choose.
	Axis           float64         `yaml:"axis,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Demo:           DefaultDemo,
		Variant:        DefaultVariant,
		Step:           DefaultStep,
		IntervalMs:     DefaultIntervalMs,
		Channels:       DefaultChannels,
		Window:         DefaultWindow,
		Mode:           waveform.ModeStroke,
		Controls:       controls.LayoutFields,
		StrokeFallback: DefaultStrokeFallback,
		Params: wave.Params{
			Amplitude:    wave.DefaultAmplitude,
			WaveFactor:   wave.MinWaveFactor,
			StrokeLength: wave.DefaultStrokeLength,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes cfg as yaml with two space indentation.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %f", c.Step)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("interval_ms must be positive, got %d", c.IntervalMs)
	}
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive, got %f", c.Window)
	}
	if c.StrokeFallback < wave.MinStrokeLength || c.StrokeFallback > wave.MaxStrokeLength {
		return fmt.Errorf("stroke_fallback %d: %w", c.StrokeFallback, wave.ErrOutOfRange)
	}
	if c.Axis < 0 {
		return fmt.Errorf("axis must not be negative, got %f", c.Axis)
	}
	if _, err := waveform.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return c.Params.Validate()
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Extent is the vertical axis extent for mode m at the live parameters p.
func (c *Config) Extent(m waveform.Mode, p *wave.Params) (lo, hi float64) {
	if c.Axis > 0 {
		return -c.Axis, c.Axis
	}
	return waveform.Extent(c.Demo, m, p)
}

// NewParams returns a fresh copy of the configured starting parameters.
func (c *Config) NewParams() *wave.Params {
	return c.Params.Clone()
}
