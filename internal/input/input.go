package input

import (
	"deskscene/internal/controls"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputManager maps physical keys and mouse buttons to logical actions
// and tracks their state. Callbacks and queries all run on the main thread.
type InputManager struct {
	// One key can map to multiple actions
	keyToActions         map[glfw.Key][]controls.Action
	mouseButtonToActions map[glfw.MouseButton][]controls.Action

	currentState [controls.ActionCount]bool

	// Edge flags, reset by PostUpdate
	justPressed  [controls.ActionCount]bool
	justReleased [controls.ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]controls.Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]controls.Action),
	}

	im.BindKey(glfw.KeyEscape, controls.ActionQuit)
	im.BindKey(glfw.KeyW, controls.ActionMoveForward)
	im.BindKey(glfw.KeyS, controls.ActionMoveBackward)
	im.BindKey(glfw.KeyA, controls.ActionMoveLeft)
	im.BindKey(glfw.KeyD, controls.ActionMoveRight)
	im.BindKey(glfw.Key1, controls.ActionWrapRepeat)
	im.BindKey(glfw.Key2, controls.ActionWrapMirrored)
	im.BindKey(glfw.Key3, controls.ActionWrapClampEdge)
	im.BindKey(glfw.Key4, controls.ActionWrapClampBorder)
	im.BindKey(glfw.KeyRightBracket, controls.ActionUVScaleUp)
	im.BindKey(glfw.KeyLeftBracket, controls.ActionUVScaleDown)
	im.BindKey(glfw.KeyL, controls.ActionOrbitResume)
	im.BindKey(glfw.KeyK, controls.ActionOrbitPause)
	im.BindKey(glfw.KeyH, controls.ActionToggleHUD)

	im.BindMouseButton(glfw.MouseButtonLeft, controls.ActionMouseLeft)
	im.BindMouseButton(glfw.MouseButtonMiddle, controls.ActionMouseMiddle)
	im.BindMouseButton(glfw.MouseButtonRight, controls.ActionMouseRight)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action controls.Action) {
	if action < 0 || action >= controls.ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action controls.Action) {
	if action < 0 || action >= controls.ActionCount {
		return
	}
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state from a GLFW key event
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.update(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent updates state from a GLFW mouse button event
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.update(im.mouseButtonToActions[button], action == glfw.Press)
}

func (im *InputManager) update(actions []controls.Action, isPressed bool) {
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PostUpdate clears edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	for i := range controls.ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive reports whether the action is held down
func (im *InputManager) IsActive(action controls.Action) bool {
	if action < 0 || action >= controls.ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed reports whether the action went down this frame
func (im *InputManager) JustPressed(action controls.Action) bool {
	if action < 0 || action >= controls.ActionCount {
		return false
	}
	return im.justPressed[action]
}

// JustReleased reports whether the action went up this frame
func (im *InputManager) JustReleased(action controls.Action) bool {
	if action < 0 || action >= controls.ActionCount {
		return false
	}
	return im.justReleased[action]
}
