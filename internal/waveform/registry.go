package waveform

import (
	"fmt"
	"sort"

	"github.com/san-kum/motorwave/internal/wave"
)

const (
	DemoBank = "bank"
	DemoECG  = "ecg"
	DemoSine = "sine"
)

type Registry struct {
	demos map[string]func(channels int) wave.Sampler
}

func NewRegistry() *Registry {
	r := &Registry{
		demos: make(map[string]func(int) wave.Sampler),
	}

	r.demos[DemoBank] = func(channels int) wave.Sampler { return NewMotorBank(channels) }
	r.demos[DemoECG] = func(int) wave.Sampler { return NewECG() }
	r.demos[DemoSine] = func(int) wave.Sampler { return NewSine() }

	return r
}

func (r *Registry) Get(name string, channels int) (wave.Sampler, error) {
	fn, ok := r.demos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", wave.ErrUnknownDemo, name)
	}
	return fn(channels), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
