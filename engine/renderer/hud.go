package renderer

import (
	"image"
	"image/color"

	"github.com/Carmen-Shannon/orrery/engine/ui"
	"github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// labelLift is how far above a body's projected centre its name is drawn.
const labelLift = 20

var (
	hudColor    = colorful.Color{R: 1, G: 1, B: 1}
	hiddenColor = hudColor.BlendRgb(colorful.Color{R: 0.4, G: 0.4, B: 0.4}, 0.5)
)

// staticHUD is the fixed part of the status column: section titles and the
// placeholder readouts, keyed by baseline.
var staticHUD = []struct {
	y    int
	text string
}{
	{30, "Time / Speed"},
	{50, "0.262"},
	{70, "3.798"},
	{100, "Orbital Speed"},
	{120, "Rotation Speed"},
	{150, "Camera"},
	{170, "0.950"},
	{190, "6.888"},
	{220, "Speed"},
	{240, "House Sens"},
	{270, "Performance"},
}

// Baselines of the live performance readouts.
const (
	frameTimeY = 290
	fpsY       = 310
)

const listHeader = "- Plane: Banders"

// hudText is one line of overlay text anchored at its left baseline point.
type hudText struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

// hudLines lays out the status column, the Play/Pause label and the body list.
//
// Parameters:
//   - f: the frame being drawn
//   - layout: HUD geometry for the window
//
// Returns:
//   - []hudText: every overlay line in draw order
func hudLines(f Frame, layout ui.Layout) []hudText {
	white := toRGBA(hudColor)
	lines := make([]hudText, 0, len(staticHUD)+4+len(f.Bodies))
	for _, s := range staticHUD {
		lines = append(lines, hudText{X: layout.MarginX, Y: s.y, Text: s.text, Color: white})
	}
	lines = append(lines,
		hudText{X: layout.MarginX, Y: frameTimeY, Text: f.Metrics.FrameTimeText(), Color: white},
		hudText{X: layout.MarginX, Y: fpsY, Text: f.Metrics.FPSText(), Color: white},
	)

	pause := "Pause"
	if f.Sim.Paused {
		pause = "Play"
	}
	lines = append(lines,
		hudText{X: layout.MarginX, Y: layout.PauseY, Text: pause, Color: white},
		hudText{X: layout.ListX, Y: layout.HeaderY, Text: listHeader, Color: white},
	)

	for i, b := range f.Bodies {
		entry := hudText{X: layout.ListX, Y: layout.RowBaseline(i), Text: "- " + b.Name, Color: white}
		if !b.Visible {
			entry.Text += " (hidden)"
			entry.Color = toRGBA(hiddenColor)
		}
		lines = append(lines, entry)
	}
	return lines
}

// labelLines places each visible planet's name above its projected centre.
// Stars are unlabelled, as are bodies behind the camera or beyond the far plane.
//
// Parameters:
//   - f: the frame being drawn
//   - layout: HUD geometry for the window
//
// Returns:
//   - []hudText: one line per labelled body
func labelLines(f Frame, layout ui.Layout) []hudText {
	if f.Camera == nil {
		return nil
	}
	white := toRGBA(hudColor)
	var lines []hudText
	for _, b := range f.Bodies {
		if !b.Visible || b.IsStar() {
			continue
		}
		x, y, z := b.Position()
		sx, sy, ok := f.Camera.Project(float32(x), float32(y), float32(z), layout.Width, layout.Height)
		if !ok {
			continue
		}
		lines = append(lines, hudText{X: int(sx), Y: int(sy) - labelLift, Text: b.Name, Color: white})
	}
	return lines
}

// hudCanvas is a CPU-side RGBA overlay that tinyfont draws into. It is cleared
// and redrawn every frame, then uploaded as the overlay texture.
type hudCanvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*hudCanvas)(nil)

func newHUDCanvas(width, height int) *hudCanvas {
	return &hudCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *hudCanvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *hudCanvas) SetPixel(x, y int16, col color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}.In(c.img.Bounds())) {
		return
	}
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *hudCanvas) Display() error {
	return nil
}

// Clear makes every pixel fully transparent.
func (c *hudCanvas) Clear() {
	clear(c.img.Pix)
}

// Draw writes lines with font.
func (c *hudCanvas) Draw(font tinyfont.Fonter, lines []hudText) {
	for _, l := range lines {
		tinyfont.WriteLine(c, font, int16(l.X), int16(l.Y), l.Text, l.Color)
	}
}

// Pixels returns the canvas as tightly packed RGBA rows.
func (c *hudCanvas) Pixels() []byte {
	return c.img.Pix
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
