package automation

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/motorwave/internal/anim"
	"github.com/san-kum/motorwave/internal/config"
	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/metrics"
	"github.com/san-kum/motorwave/internal/wave"
	"github.com/san-kum/motorwave/internal/waveform"
	"gopkg.in/yaml.v3"
)

// Op is a control action a scenario can perform.
type Op string

const (
	OpApply     Op = "apply"
	OpIncrement Op = "increment"
	OpDecrement Op = "decrement"
	// OpSlide moves a slider knob to an integer position.
	OpSlide Op = "slide"
)

// Scenario defines a scripted session: a demo preset plus timed control
// actions, as if a user edited the controls while it ran.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Demo        string   `yaml:"demo"`
	Preset      string   `yaml:"preset"`
	Step        float64  `yaml:"step"`
	Frames      int      `yaml:"frames"`
	Actions     []Action `yaml:"actions"`
}

// Action fires once the loop reaches simulated time At.
type Action struct {
	At      float64 `yaml:"at"`
	Control string  `yaml:"control"`
	Op      Op      `yaml:"op"`
	Value   string  `yaml:"value"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if scenario.Frames <= 0 {
		return nil, fmt.Errorf("scenario %q: frames must be positive", scenario.Name)
	}

	return &scenario, nil
}

// Player is a loop observer that performs due actions on a panel.
type Player struct {
	panel   *controls.Panel
	actions []Action
	next    int
	Fired   int
	Errors  []error
}

func NewPlayer(panel *controls.Panel, actions []Action) *Player {
	sorted := make([]Action, len(actions))
	copy(sorted, actions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return &Player{panel: panel, actions: sorted}
}

// Pending reports how many actions have not fired yet.
func (p *Player) Pending() int { return len(p.actions) - p.next }

// OnFrame implements wave.Observer. Rejected input is recorded, not fatal:
// the control has already reset itself to its fallback.
func (p *Player) OnFrame(f wave.Frame) {
	for p.next < len(p.actions) && p.actions[p.next].At <= f.Time {
		a := p.actions[p.next]
		p.next++
		p.Fired++
		if err := p.perform(a); err != nil {
			p.Errors = append(p.Errors, fmt.Errorf("t=%.2f: %w", f.Time, err))
		}
	}
}

func (p *Player) perform(a Action) error {
	c, ok := p.panel.Find(a.Control)
	if !ok {
		return fmt.Errorf("unknown control: %s", a.Control)
	}
	switch a.Op {
	case OpApply:
		return c.Apply(a.Value)
	case OpIncrement:
		c.Increment()
	case OpDecrement:
		c.Decrement()
	case OpSlide:
		s, ok := c.(*controls.Slider)
		if !ok {
			return fmt.Errorf("%s is not a slider", a.Control)
		}
		pos, err := strconv.Atoi(strings.TrimSpace(a.Value))
		if err != nil {
			return fmt.Errorf("slide %s to %q: %w", a.Control, a.Value, wave.ErrParse)
		}
		s.SetPosition(pos)
	default:
		return fmt.Errorf("unknown op: %s", a.Op)
	}
	return nil
}

// Result is the outcome of a scenario run.
type Result struct {
	Config *config.Config
	Params *wave.Params
	Frames  []wave.Frame
	Metrics map[string]float64
	Fired   int
	Errors  []error
}

// RunScenario executes the scenario headlessly.
func RunScenario(ctx context.Context, scenario *Scenario, registry *waveform.Registry) (*Result, error) {
	fmt.Printf("running scenario %q: %s/%s, %d frames\n", scenario.Name, scenario.Demo, scenario.Preset, scenario.Frames)

	preset := scenario.Preset
	if preset == "" {
		preset = config.DefaultVariants[scenario.Demo]
	}
	cfg := config.GetPreset(scenario.Demo, preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s/%s", scenario.Demo, preset)
	}
	if scenario.Step > 0 {
		cfg.Step = scenario.Step
	}

	sampler, err := registry.Get(cfg.Demo, cfg.Channels)
	if err != nil {
		return nil, err
	}

	params := cfg.NewParams()
	panel, err := controls.Build(cfg.Controls, params, cfg.StrokeFallback)
	if err != nil {
		return nil, err
	}

	loop := anim.New(sampler, params, wave.NewClock(cfg.Step))
	player := NewPlayer(panel, scenario.Actions)
	summary := metrics.ForDemo(cfg.Demo, params)
	loop.AddObserver(player)
	loop.AddObserver(summary)

	frames, err := loop.Record(ctx, scenario.Frames)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	return &Result{
		Config:  cfg,
		Params:  params,
		Frames:  frames,
		Metrics: summary.Values(),
		Fired:   player.Fired,
		Errors:  player.Errors,
	}, nil
}
