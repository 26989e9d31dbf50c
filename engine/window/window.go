package window

import (
	"fmt"

	"github.com/Carmen-Shannon/orrery/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// DefaultTitle is the title bar text used unless WithTitle overrides it.
const DefaultTitle = "3D Solar System with Orbits and Labels"

// Window is the event source and render surface of the viewer.
type Window interface {
	// SetKeyDownCallback sets the callback for ordinary key presses and repeats.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetSpecialKeyDownCallback sets the callback for arrow, navigation and
	// function key presses and repeats.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetSpecialKeyDownCallback(callback func(keyCode uint32))

	// SetPointerCallback sets the callback for mouse button presses and releases.
	// Coordinates are framebuffer pixels with the origin at the top left.
	//
	// Parameters:
	//   - callback: function receiving the button, whether it was pressed and the position
	SetPointerCallback(callback func(button int, pressed bool, x, y int))

	// SetResizeCallback sets the function called when the framebuffer is resized.
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor for the platform window,
	// or nil if the window is not initialized.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true until the window is closed.
	IsRunning() bool

	// Close closes the window and releases platform resources.
	Close() error

	// PollEvents dispatches pending input events to the callbacks without blocking.
	//
	// Returns:
	//   - bool: whether the window is still running
	PollEvents() bool

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title     string
	resizable bool

	// width and height are the framebuffer size in pixels.
	width  int
	height int

	// scaleX and scaleY convert cursor coordinates into framebuffer pixels.
	scaleX float64
	scaleY float64

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onKeyDown        func(keyCode uint32)
	onSpecialKeyDown func(keyCode uint32)
	onPointer        func(button int, pressed bool, x, y int)
	onResize         func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a Window. Defaults to a 1280x720 non-resizable
// window titled DefaultTitle. Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:  DefaultTitle,
		width:  1280,
		height: 720,
		scaleX: 1,
		scaleY: 1,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetSpecialKeyDownCallback(callback func(keyCode uint32)) {
	w.onSpecialKeyDown = callback
}

func (w *engineWindow) SetPointerCallback(callback func(button int, pressed bool, x, y int)) {
	w.onPointer = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

// keyDown routes a pressed key to the special or ordinary key callback.
func (w *engineWindow) keyDown(code uint32) {
	if common.IsSpecialKey(code) {
		if w.onSpecialKeyDown != nil {
			w.onSpecialKeyDown(code)
		}
		return
	}
	if w.onKeyDown != nil {
		w.onKeyDown(code)
	}
}

// pointer converts a cursor position into framebuffer pixels and forwards it.
func (w *engineWindow) pointer(button int, pressed bool, cursorX, cursorY float64) {
	if w.onPointer != nil {
		w.onPointer(button, pressed, int(cursorX*w.scaleX), int(cursorY*w.scaleY))
	}
}

// resize records the framebuffer size and the cursor-to-pixel scale.
func (w *engineWindow) resize(fbWidth, fbHeight, winWidth, winHeight int) {
	w.width, w.height = fbWidth, fbHeight
	if winWidth > 0 && winHeight > 0 {
		w.scaleX = float64(fbWidth) / float64(winWidth)
		w.scaleY = float64(fbHeight) / float64(winHeight)
	}
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
