// Package input turns SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventAction
	EventDrag
	EventWheel
	EventPick
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Action Action
	Width  int
	Height int
	DX, DY float32 // drag distance in pixels, or wheel steps
	X, Y   float32 // cursor position for picks
}

// Input polls SDL and tracks mouse drag state.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			action := ActionFor(e.Keysym.Scancode)
			if action == ActionNone || (e.Repeat != 0 && !action.Repeats()) {
				continue
			}
			if action == ActionQuit {
				i.events = append(i.events, Event{Type: EventQuit})
				return true
			}
			i.events = append(i.events, Event{Type: EventAction, Action: action})

		case *sdl.MouseButtonEvent:
			switch {
			case e.Button == sdl.BUTTON_LEFT:
				i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			case e.Button == sdl.BUTTON_RIGHT && e.Type == sdl.MOUSEBUTTONDOWN:
				i.events = append(i.events, Event{Type: EventPick, X: float32(e.X), Y: float32(e.Y)})
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.events = append(i.events, Event{
					Type: EventDrag,
					DX:   float32(e.XRel),
					DY:   float32(e.YRel),
				})
			}

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{Type: EventWheel, DY: float32(e.Y)})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
