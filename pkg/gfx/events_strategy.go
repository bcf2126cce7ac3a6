package gfx

import "github.com/shish/gosdl/pkg/sdl"

// EventsConsumerStrategy decides how many queued events one frame
// consumes. poll yields nil when the queue is empty.
type EventsConsumerStrategy interface {
	Consume(poll func() sdl.Event, handle func(sdl.Event)) int
}

// DrainAllStrategy empties the whole queue every frame.
type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll func() sdl.Event, handle func(sdl.Event)) int {
	count := 0
	for {
		event := poll()
		if event == nil {
			return count
		}
		handle(event)
		count++
	}
}

// DrainMaxStrategy consumes at most Max events per frame, bounding the
// time spent on input when the queue floods.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll func() sdl.Event, handle func(sdl.Event)) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	count := 0
	for count < max {
		event := poll()
		if event == nil {
			return count
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
