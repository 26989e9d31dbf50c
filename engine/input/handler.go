package input

import (
	"log"

	"github.com/Carmen-Shannon/orrery/common"
	"github.com/Carmen-Shannon/orrery/engine/body"
	"github.com/Carmen-Shannon/orrery/engine/camera"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/ui"
)

// Step sizes per key press, before the camera speed factor.
const (
	AngleStep    = 0.05
	DistanceStep = 0.5

	SlowDownFactor = 0.9
	SpeedUpFactor  = 1.1

	DefaultCameraSpeed    = 1.5
	DefaultSensitivity    = 1.0
	DefaultMinSensitivity = 0.1
	DefaultMaxSensitivity = 10.0
)

// Handler translates raw window events into mutations of the clock, the
// camera controller and body visibility. Unknown events are ignored; no
// event can make it panic.
type Handler interface {
	// HandleKey processes an ordinary key press.
	//
	// Parameters:
	//   - code: key code as delivered by the window
	HandleKey(code uint32)

	// HandleSpecialKey processes a press on the special key channel.
	//
	// Parameters:
	//   - code: special key code
	HandleSpecialKey(code uint32)

	// HandlePointer processes a mouse button event in top-left-origin pixels.
	//
	// Parameters:
	//   - button: mouse button index
	//   - pressed: true on press, false on release
	//   - x, y: pointer position
	HandlePointer(button int, pressed bool, x, y int)

	// Sensitivity returns the secondary sensitivity scalar.
	Sensitivity() float64

	// CameraSpeed returns the factor applied to camera steps.
	CameraSpeed() float64

	// SetLayout replaces the HUD geometry used for pointer hit-testing. Call it
	// whenever the drawn layout changes so clicks land on what is on screen.
	//
	// Parameters:
	//   - l: the layout the HUD is now drawn with
	SetLayout(l ui.Layout)

	// Layout returns the HUD geometry pointer events are tested against.
	Layout() ui.Layout
}

type handler struct {
	clock      simulation.Clock
	controller camera.CameraController
	registry   body.Registry
	layout     ui.Layout

	cameraSpeed    float64
	sensitivity    float64
	minSensitivity float64
	maxSensitivity float64

	onExit func()

	keys        map[uint32]func()
	specialKeys map[uint32]func()
}

var _ Handler = &handler{}

// NewHandler creates a Handler bound to the given state owners.
//
// Parameters:
//   - clock: simulation clock to pause and speed up
//   - controller: camera controller to move
//   - registry: bodies whose visibility the list toggles
//   - options: functional options
//
// Returns:
//   - Handler: the configured handler
func NewHandler(clock simulation.Clock, controller camera.CameraController, registry body.Registry, options ...HandlerBuilderOption) Handler {
	h := &handler{
		clock:          clock,
		controller:     controller,
		registry:       registry,
		layout:         ui.NewLayout(1280, 720),
		cameraSpeed:    DefaultCameraSpeed,
		sensitivity:    DefaultSensitivity,
		minSensitivity: DefaultMinSensitivity,
		maxSensitivity: DefaultMaxSensitivity,
	}
	for _, option := range options {
		option(h)
	}
	if h.minSensitivity > h.maxSensitivity {
		h.minSensitivity, h.maxSensitivity = h.maxSensitivity, h.minSensitivity
	}
	h.sensitivity = common.Clamp(h.sensitivity, h.minSensitivity, h.maxSensitivity)
	h.bind()
	return h
}

// bind builds the key tables. Several codes may map to one action.
func (h *handler) bind() {
	angle := float32(AngleStep * h.cameraSpeed)
	dist := float32(DistanceStep * h.cameraSpeed)

	zoomIn := func() { h.controller.ApplyDelta(camera.AxisDistance, -dist) }
	zoomOut := func() { h.controller.ApplyDelta(camera.AxisDistance, dist) }

	h.keys = map[uint32]func(){
		common.KeySpace:      h.clock.TogglePause,
		common.KeyW:          func() { h.controller.ApplyDelta(camera.AxisPitch, angle) },
		common.KeyS:          func() { h.controller.ApplyDelta(camera.AxisPitch, -angle) },
		common.KeyA:          func() { h.controller.ApplyDelta(camera.AxisYaw, angle) },
		common.KeyD:          func() { h.controller.ApplyDelta(camera.AxisYaw, -angle) },
		common.KeyPlus:       zoomIn,
		common.KeyEqual:      zoomIn,
		common.KeyKPAdd:      zoomIn,
		common.KeyMinus:      zoomOut,
		common.KeyKPSubtract: zoomOut,
		common.Key1:          func() { h.clock.SetTimeMultiplier(SlowDownFactor) },
		common.Key2:          func() { h.clock.SetTimeMultiplier(SpeedUpFactor) },
		common.KeyEsc:        h.exit,
	}
	// Lowercase letters arrive when the window forwards characters instead of key codes.
	for _, k := range []uint32{common.KeyW, common.KeyA, common.KeyS, common.KeyD} {
		h.keys[k+('a'-'A')] = h.keys[k]
	}

	h.specialKeys = map[uint32]func(){
		common.KeyUp:   func() { h.scaleSensitivity(SpeedUpFactor) },
		common.KeyDown: func() { h.scaleSensitivity(SlowDownFactor) },
	}
}

func (h *handler) HandleKey(code uint32) {
	if action, ok := h.keys[code]; ok {
		action()
	}
}

func (h *handler) HandleSpecialKey(code uint32) {
	if action, ok := h.specialKeys[code]; ok {
		action()
	}
}

func (h *handler) HandlePointer(button int, pressed bool, x, y int) {
	if button != common.MouseButtonLeft || !pressed {
		return
	}
	if h.layout.InPauseButton(x, y) {
		h.clock.TogglePause()
	}
	if row, ok := h.layout.ListRow(x, y); ok && row < h.registry.Len() {
		h.registry.ToggleVisibility(row)
	}
}

func (h *handler) Sensitivity() float64 {
	return h.sensitivity
}

func (h *handler) CameraSpeed() float64 {
	return h.cameraSpeed
}

func (h *handler) SetLayout(l ui.Layout) {
	h.layout = l
}

func (h *handler) Layout() ui.Layout {
	return h.layout
}

func (h *handler) scaleSensitivity(factor float64) {
	h.sensitivity = common.Clamp(h.sensitivity*factor, h.minSensitivity, h.maxSensitivity)
}

func (h *handler) exit() {
	if h.onExit == nil {
		log.Println("[Input] Escape pressed with no exit hook attached")
		return
	}
	h.onExit()
}
