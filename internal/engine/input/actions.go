package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoreSegments
	ActionFewerSegments
	ActionToggleShading
	ActionToggleLayout
	ActionNextSurface
	ActionToggleCamera
	ActionToggleWireframe
	ActionToggleBounds
	ActionCameraUp    // +v on the surface
	ActionCameraDown  // -v
	ActionCameraLeft  // -u
	ActionCameraRight // +u
	ActionRaise
	ActionLower
	ActionScreenshot
	ActionSaveConfig
)

var bindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE:   ActionQuit,
	sdl.SCANCODE_EQUALS:   ActionMoreSegments,
	sdl.SCANCODE_KP_PLUS:  ActionMoreSegments,
	sdl.SCANCODE_MINUS:    ActionFewerSegments,
	sdl.SCANCODE_KP_MINUS: ActionFewerSegments,
	sdl.SCANCODE_F:        ActionToggleShading,
	sdl.SCANCODE_L:        ActionToggleLayout,
	sdl.SCANCODE_TAB:      ActionNextSurface,
	sdl.SCANCODE_C:        ActionToggleCamera,
	sdl.SCANCODE_W:        ActionToggleWireframe,
	sdl.SCANCODE_B:        ActionToggleBounds,
	sdl.SCANCODE_UP:       ActionCameraUp,
	sdl.SCANCODE_DOWN:     ActionCameraDown,
	sdl.SCANCODE_LEFT:     ActionCameraLeft,
	sdl.SCANCODE_RIGHT:    ActionCameraRight,
	sdl.SCANCODE_PAGEUP:   ActionRaise,
	sdl.SCANCODE_PAGEDOWN: ActionLower,
	sdl.SCANCODE_F12:      ActionScreenshot,
	sdl.SCANCODE_F5:       ActionSaveConfig,
}

// ActionFor returns the action bound to a key, or ActionNone.
func ActionFor(key sdl.Scancode) Action {
	return bindings[key]
}

// Repeats reports whether holding the key should repeat the action.
func (a Action) Repeats() bool {
	switch a {
	case ActionMoreSegments, ActionFewerSegments,
		ActionCameraUp, ActionCameraDown, ActionCameraLeft, ActionCameraRight,
		ActionRaise, ActionLower:
		return true
	default:
		return false
	}
}

// String returns a short name for logging.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionMoreSegments:
		return "more-segments"
	case ActionFewerSegments:
		return "fewer-segments"
	case ActionToggleShading:
		return "toggle-shading"
	case ActionToggleLayout:
		return "toggle-layout"
	case ActionNextSurface:
		return "next-surface"
	case ActionToggleCamera:
		return "toggle-camera"
	case ActionToggleWireframe:
		return "toggle-wireframe"
	case ActionToggleBounds:
		return "toggle-bounds"
	case ActionCameraUp:
		return "camera-up"
	case ActionCameraDown:
		return "camera-down"
	case ActionCameraLeft:
		return "camera-left"
	case ActionCameraRight:
		return "camera-right"
	case ActionRaise:
		return "raise"
	case ActionLower:
		return "lower"
	case ActionScreenshot:
		return "screenshot"
	case ActionSaveConfig:
		return "save-config"
	default:
		return "none"
	}
}
