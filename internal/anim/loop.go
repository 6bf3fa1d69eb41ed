package anim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/motorwave/internal/wave"
)

const DefaultInterval = 50 * time.Millisecond

type Loop struct {
	sampler   wave.Sampler
	params    *wave.Params
	clock     *wave.Clock
	observers []wave.Observer
	last      wave.Frame
}

func New(sampler wave.Sampler, params *wave.Params, clock *wave.Clock) *Loop {
	if clock == nil {
		clock = wave.NewClock(wave.DefaultStep)
	}
	return &Loop{
		sampler:   sampler,
		params:    params,
		clock:     clock,
		observers: make([]wave.Observer, 0),
	}
}

func (l *Loop) AddObserver(o wave.Observer) { l.observers = append(l.observers, o) }

func (l *Loop) Params() *wave.Params  { return l.params }
func (l *Loop) Clock() *wave.Clock    { return l.clock }
func (l *Loop) Sampler() wave.Sampler { return l.sampler }
func (l *Loop) Last() wave.Frame      { return l.last }

// Tick produces the frame at the current time and advances the clock.
func (l *Loop) Tick() (wave.Frame, error) {
	t := l.clock.T
	step := l.clock.Ticks()

	values, err := l.sampler.Sample(t, l.params)
	if err != nil {
		return wave.Frame{}, &wave.FrameError{Step: step, Time: t, Wrapped: err}
	}

	l.clock.Advance()
	f := wave.Frame{Step: step, Time: t, Values: values}
	l.last = f
	for _, obs := range l.observers {
		obs.OnFrame(f)
	}
	return f, nil
}

// Run ticks every interval until ctx is done or a tick fails. A cancelled
// context is a normal stop and returns nil.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := l.Tick(); err != nil {
				return err
			}
		}
	}
}

// Record runs n ticks without pacing and returns the frames.
func (l *Loop) Record(ctx context.Context, n int) ([]wave.Frame, error) {
	if n <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", n)
	}

	frames := make([]wave.Frame, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}

		f, err := l.Tick()
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
