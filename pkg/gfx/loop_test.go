package gfx

import (
	"errors"
	"testing"

	"github.com/shish/gosdl/pkg/sdl"
)

// fakeClock backs the loop's ticks/delay injection: Delay advances the
// clock, frames take work ms each.
type fakeClock struct {
	now  uint32
	work uint32
}

func (c *fakeClock) ticks() uint32   { return c.now }
func (c *fakeClock) delay(ms uint32) { c.now += ms }

func newTestLoop(fps int, clock *fakeClock, events []sdl.Event) *Loop {
	l := NewLoop(fps, nil)
	l.poll = queuePoller(events)
	l.ticks = clock.ticks
	l.delay = clock.delay
	return l
}

func TestLoopStopsFromHandler(t *testing.T) {
	clock := &fakeClock{}
	l := newTestLoop(60, clock, []sdl.Event{sdl.QuitEvent{}})

	frames := 0
	err := l.Run(
		func(e sdl.Event) {
			if _, ok := e.(sdl.QuitEvent); ok {
				l.Stop()
			}
		},
		func() error { frames++; return nil },
	)
	if err != nil {
		t.Fatal(err)
	}
	if frames != 0 {
		t.Errorf("ran %d frames after stop", frames)
	}
}

func TestLoopStopsFromFrame(t *testing.T) {
	clock := &fakeClock{}
	l := newTestLoop(60, clock, nil)

	frames := 0
	err := l.Run(func(sdl.Event) {}, func() error {
		frames++
		if frames == 3 {
			l.Stop()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 3 {
		t.Errorf("ran %d frames", frames)
	}
}

func TestLoopReturnsFrameError(t *testing.T) {
	clock := &fakeClock{}
	l := newTestLoop(60, clock, nil)

	wantErr := errors.New("render failed")
	err := l.Run(func(sdl.Event) {}, func() error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoopPacesFrames(t *testing.T) {
	clock := &fakeClock{}
	l := newTestLoop(50, clock, nil) // 20ms budget

	frames := 0
	err := l.Run(func(sdl.Event) {}, func() error {
		clock.now += 5 // 5ms of work
		frames++
		if frames == 4 {
			l.Stop()
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// 4 frames of a 20ms budget: 5ms work + 15ms delay each.
	if clock.now != 80 {
		t.Errorf("clock = %dms, want 80ms", clock.now)
	}
}
