// Package sdlinput polls SDL2 window events and keyboard state.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/rlb/internal/engine/input"
)

// EventType identifies a window event the frame loop reacts to.
type EventType int

const (
	EventQuit EventType = iota + 1
	EventWindowResize
)

// Event represents a processed window event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Input polls SDL once per frame. It implements input.KeyState.
type Input struct {
	events   []Event
	keyboard []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 4),
	}
}

// Update drains the SDL event queue and snapshots the keyboard.
// Returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
		}
	}

	// Owned by SDL, refreshed by PollEvent.
	i.keyboard = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Pressed reports whether k was held down at the last Update.
func (i *Input) Pressed(k input.Key) bool {
	sc, ok := scancodes[k]
	if !ok || int(sc) >= len(i.keyboard) {
		return false
	}
	return i.keyboard[sc] != 0
}

var scancodes = map[input.Key]sdl.Scancode{
	input.KeyEscape: sdl.SCANCODE_ESCAPE,
	input.KeyUp:     sdl.SCANCODE_UP,
	input.KeyDown:   sdl.SCANCODE_DOWN,
	input.KeyRight:  sdl.SCANCODE_RIGHT,
	input.KeyLeft:   sdl.SCANCODE_LEFT,
	input.KeySpace:  sdl.SCANCODE_SPACE,
	input.KeyTab:    sdl.SCANCODE_TAB,
}
