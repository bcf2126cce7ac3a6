// Package gfx provides a fixed-rate frame loop over the sdl package:
// per-frame event draining plus tick-based pacing. It adds no
// goroutines; everything runs on the caller's thread, as the native
// event pump requires.
package gfx

import "github.com/shish/gosdl/pkg/sdl"

// Loop drives a poll-update-present cycle at a fixed frame rate.
type Loop struct {
	strategy   EventsConsumerStrategy
	frameDelay uint32
	running    bool

	// Injected for tests; default to the sdl package.
	poll  func() sdl.Event
	ticks func() uint32
	delay func(uint32)
}

// NewLoop creates a loop targeting fps frames per second. A nil
// strategy drains the whole queue each frame.
func NewLoop(fps int, strategy EventsConsumerStrategy) *Loop {
	if fps <= 0 {
		fps = 60
	}
	if strategy == nil {
		strategy = DrainAll()
	}
	return &Loop{
		strategy:   strategy,
		frameDelay: uint32(1000 / fps),
		poll:       sdl.PollEvent,
		ticks:      sdl.GetTicks,
		delay:      sdl.Delay,
	}
}

// Stop makes Run return after the current frame. Safe to call from the
// event handler or the frame callback.
func (l *Loop) Stop() {
	l.running = false
}

// Run consumes events through handle and calls frame once per cycle,
// sleeping off whatever remains of the frame budget. It returns the
// first error from frame, or nil after Stop.
func (l *Loop) Run(handle func(sdl.Event), frame func() error) error {
	l.running = true
	for l.running {
		start := l.ticks()
		l.strategy.Consume(l.poll, handle)
		if !l.running {
			break
		}
		if err := frame(); err != nil {
			l.running = false
			return err
		}
		if elapsed := l.ticks() - start; elapsed < l.frameDelay {
			l.delay(l.frameDelay - elapsed)
		}
	}
	return nil
}
