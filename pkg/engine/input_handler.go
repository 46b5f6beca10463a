package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler tracks per-frame keyboard and scroll state
type InputHandler struct {
	window          *glfw.Window
	currentKeys     map[glfw.Key]bool
	previousKeys    map[glfw.Key]bool
	mouseWheelDelta float64
}

// trackedKeys are the keys the engine reacts to
var trackedKeys = []glfw.Key{
	glfw.KeyW,
	glfw.KeyS,
	glfw.KeyA,
	glfw.KeyD,
	glfw.KeyUp,
	glfw.KeyDown,
	glfw.KeyLeft,
	glfw.KeyRight,
	glfw.KeyEscape,
}

// NewInputHandler creates an input handler bound to the window
func NewInputHandler(window *glfw.Window) *InputHandler {
	handler := &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool),
		previousKeys: make(map[glfw.Key]bool),
	}

	window.SetScrollCallback(func(_ *glfw.Window, _, yoffset float64) {
		handler.mouseWheelDelta += yoffset
	})

	return handler
}

// Update samples the current key state; call once per frame after polling
// events
func (ih *InputHandler) Update() {
	ih.previousKeys = make(map[glfw.Key]bool, len(ih.currentKeys))
	for k, v := range ih.currentKeys {
		ih.previousKeys[k] = v
	}

	for _, key := range trackedKeys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown reports whether the key is currently held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// WheelDelta returns the scroll movement since the last call and resets it
func (ih *InputHandler) WheelDelta() float64 {
	delta := ih.mouseWheelDelta
	ih.mouseWheelDelta = 0
	return delta
}
