package common

// Key codes delivered by the window layer. Printable keys use their ASCII
// value, everything else uses the GLFW code.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32 // Spacebar (ASCII)
	KeyMinus = 45 // - key (ASCII)
	KeyEqual = 61 // = key, shares the + glyph (ASCII)
	KeyPlus  = 43 // + when delivered as a character
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	Key1     = 49 // 1 key (ASCII)
	Key2     = 50 // 2 key (ASCII)

	KeyEsc        = 256 // Escape key (GLFW)
	KeyKPSubtract = 333 // Keypad - (GLFW)
	KeyKPAdd      = 334 // Keypad + (GLFW)
)

// Special (non-character) keys, delivered through a separate channel.
const (
	KeyRight    = 262
	KeyLeft     = 263
	KeyDown     = 264
	KeyUp       = 265
	KeyPageUp   = 266
	KeyPageDown = 267
	KeyHome     = 268
	KeyEnd      = 269
	KeyF1       = 290
	KeyF25      = 314
)

// Mouse buttons, matching GLFW numbering.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// IsSpecialKey reports whether code belongs to the special key channel
// (arrows, navigation block and function keys).
func IsSpecialKey(code uint32) bool {
	switch {
	case code >= KeyRight && code <= KeyEnd:
		return true
	case code >= KeyF1 && code <= KeyF25:
		return true
	}
	return false
}
