package simulation

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/orrery/engine/body"
)

func earth(t *testing.T, reg body.Registry) body.CelestialBody {
	t.Helper()
	i, ok := reg.Index("Earth")
	if !ok {
		t.Fatal("Earth missing from catalog")
	}
	return reg.At(i)
}

func TestTickAdvancesEarth(t *testing.T) {
	reg := body.DefaultRegistry()
	c := NewClock(reg, WithTimeMultiplier(1.0))
	c.Tick(1)

	e := earth(t, reg)
	if math.Abs(e.OrbitAngle-0.04768) > 1e-9 {
		t.Fatalf("orbit angle = %.6f, want 0.04768", e.OrbitAngle)
	}
	if math.Abs(e.RotationAngle-0.24) > 1e-9 {
		t.Fatalf("rotation angle = %.6f, want 0.24", e.RotationAngle)
	}
	if c.Ticks() != 1 {
		t.Fatalf("Ticks() = %v, want 1", c.Ticks())
	}
}

func TestAnglesStayInRange(t *testing.T) {
	reg := body.DefaultRegistry()
	c := NewClock(reg, WithTimeMultiplier(MaxTimeMultiplier))
	for i := 0; i < 20000; i++ {
		c.Tick(1)
		reg.Each(func(_ int, b *body.CelestialBody) {
			if b.OrbitAngle < 0 || b.OrbitAngle >= 360 || b.RotationAngle < 0 || b.RotationAngle >= 360 {
				t.Fatalf("tick %d: %s angles out of range: %f, %f", i, b.Name, b.OrbitAngle, b.RotationAngle)
			}
		})
	}
}

func TestLargeTickWrapsFully(t *testing.T) {
	reg := body.DefaultRegistry()
	c := NewClock(reg, WithTimeMultiplier(10))
	c.Tick(5000)
	reg.Each(func(_ int, b *body.CelestialBody) {
		if b.RotationAngle < 0 || b.RotationAngle >= 360 {
			t.Fatalf("%s rotation %f not reduced", b.Name, b.RotationAngle)
		}
	})
}

func TestPauseFreezesAndResumes(t *testing.T) {
	reg := body.DefaultRegistry()
	c := NewClock(reg)
	c.Tick(1)
	before := reg.Bodies()

	c.TogglePause()
	if !c.Paused() {
		t.Fatal("expected paused")
	}
	for i := 0; i < 100; i++ {
		c.Tick(1)
	}
	after := reg.Bodies()
	for i := range before {
		if before[i].OrbitAngle != after[i].OrbitAngle || before[i].RotationAngle != after[i].RotationAngle {
			t.Fatalf("%s moved while paused", before[i].Name)
		}
	}

	c.TogglePause()
	c.Tick(1)
	e := earth(t, reg)
	step := 2.98 * DefaultTimeMultiplier * OrbitScale
	if math.Abs(e.OrbitAngle-2*step) > 1e-9 {
		t.Fatalf("orbit after resume = %f, want %f", e.OrbitAngle, 2*step)
	}
}

func TestNonPositiveTickIsNoop(t *testing.T) {
	reg := body.DefaultRegistry()
	c := NewClock(reg)
	c.Tick(0)
	c.Tick(-3)
	if e := earth(t, reg); e.OrbitAngle != 0 {
		t.Fatalf("orbit angle = %f after non-positive ticks", e.OrbitAngle)
	}
}

func TestSetTimeMultiplierClamps(t *testing.T) {
	c := NewClock(body.DefaultRegistry())
	c.SetTimeMultiplier(0.9)
	if math.Abs(c.TimeMultiplier()-1.44) > 1e-9 {
		t.Fatalf("multiplier = %f, want 1.44", c.TimeMultiplier())
	}
	for i := 0; i < 30; i++ {
		c.SetTimeMultiplier(1.1)
	}
	if c.TimeMultiplier() != MaxTimeMultiplier {
		t.Fatalf("multiplier = %f, want saturation at 10", c.TimeMultiplier())
	}
	for i := 0; i < 200; i++ {
		c.SetTimeMultiplier(0.9)
		if m := c.TimeMultiplier(); m < MinTimeMultiplier || m > MaxTimeMultiplier {
			t.Fatalf("multiplier %f escaped bounds", m)
		}
	}
	if c.TimeMultiplier() != MinTimeMultiplier {
		t.Fatalf("multiplier = %f, want saturation at 0.1", c.TimeMultiplier())
	}
}

func TestOptionsAreClamped(t *testing.T) {
	c := NewClock(body.DefaultRegistry(), WithTimeMultiplier(50), WithPaused(true))
	s := c.State()
	if !s.Paused || s.TimeMultiplier != MaxTimeMultiplier {
		t.Fatalf("State() = %+v", s)
	}
}
