package window

import (
	"testing"

	"github.com/Carmen-Shannon/orrery/common"
)

func TestDefaults(t *testing.T) {
	w := newEngineWindow()
	if w.title != DefaultTitle || w.Width() != 1280 || w.Height() != 720 || w.resizable {
		t.Fatalf("defaults = %q %dx%d resizable=%v", w.title, w.Width(), w.Height(), w.resizable)
	}
	w = newEngineWindow(WithTitle("x"), WithWidth(800), WithHeight(600), WithResizable(true))
	if w.title != "x" || w.Width() != 800 || w.Height() != 600 || !w.resizable {
		t.Fatal("options not applied")
	}
}

func TestKeyRouting(t *testing.T) {
	w := newEngineWindow()
	var keys, special []uint32
	w.SetKeyDownCallback(func(c uint32) { keys = append(keys, c) })
	w.SetSpecialKeyDownCallback(func(c uint32) { special = append(special, c) })

	for _, c := range []uint32{common.KeySpace, common.KeyUp, common.KeyW, common.KeyF1, common.KeyEsc, common.KeyHome} {
		w.keyDown(c)
	}
	if len(keys) != 3 || keys[0] != common.KeySpace || keys[1] != common.KeyW || keys[2] != common.KeyEsc {
		t.Fatalf("ordinary keys = %v", keys)
	}
	if len(special) != 3 || special[0] != common.KeyUp || special[1] != common.KeyF1 || special[2] != common.KeyHome {
		t.Fatalf("special keys = %v", special)
	}
}

func TestKeyRoutingWithoutCallbacks(t *testing.T) {
	w := newEngineWindow()
	w.keyDown(common.KeyUp)
	w.keyDown(common.KeySpace)
	w.pointer(common.MouseButtonLeft, true, 1, 1)
}

func TestPointerScalesToFramebuffer(t *testing.T) {
	w := newEngineWindow()
	w.resize(2560, 1440, 1280, 720)
	if w.Width() != 2560 || w.Height() != 1440 {
		t.Fatalf("size = %dx%d", w.Width(), w.Height())
	}

	var gotX, gotY, gotButton int
	var gotPressed bool
	w.SetPointerCallback(func(button int, pressed bool, x, y int) {
		gotButton, gotPressed, gotX, gotY = button, pressed, x, y
	})
	w.pointer(common.MouseButtonRight, true, 100.5, 50.25)
	if gotButton != common.MouseButtonRight || !gotPressed || gotX != 201 || gotY != 100 {
		t.Fatalf("pointer = %d %v (%d, %d)", gotButton, gotPressed, gotX, gotY)
	}
}

func TestResizeIgnoresZeroWindow(t *testing.T) {
	w := newEngineWindow()
	w.resize(0, 0, 0, 0)
	if w.scaleX != 1 || w.scaleY != 1 {
		t.Fatalf("scale = %f, %f", w.scaleX, w.scaleY)
	}
}

func TestNotRunningBeforeInit(t *testing.T) {
	w := newEngineWindow()
	if w.IsRunning() || w.SurfaceDescriptor() != nil {
		t.Fatal("uninitialized window reports a live surface")
	}
	if err := w.Close(); err == nil {
		t.Fatal("Close on an uninitialized window should fail")
	}
}
