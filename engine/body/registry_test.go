package body

import (
	"math"
	"testing"
)

func TestDefaultRegistryOrder(t *testing.T) {
	r := DefaultRegistry()
	want := []string{"Sun", "Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, name := range want {
		b := r.At(i)
		if b.Name != name {
			t.Fatalf("At(%d).Name = %q, want %q", i, b.Name, name)
		}
		if !b.Visible || b.OrbitAngle != 0 || b.RotationAngle != 0 {
			t.Fatalf("%s: expected visible at angle zero, got %+v", name, b)
		}
		if idx, ok := r.Index(name); !ok || idx != i {
			t.Fatalf("Index(%q) = %d, %v", name, idx, ok)
		}
	}
}

func TestDefaultProfiles(t *testing.T) {
	r := DefaultRegistry()
	tests := map[string]RenderProfile{
		"Sun":     ProfileStar,
		"Earth":   ProfileAtmosphere,
		"Neptune": ProfileAtmosphere,
		"Saturn":  ProfileRing,
		"Mars":    0,
	}
	for name, want := range tests {
		i, _ := r.Index(name)
		if got := r.At(i).Profile; got != want {
			t.Errorf("%s profile = %b, want %b", name, got, want)
		}
	}
	if !r.At(0).IsStar() || r.At(3).IsStar() {
		t.Fatal("only the Sun should be a star")
	}
}

func TestToggleVisibilityIsInvolution(t *testing.T) {
	r := DefaultRegistry()
	r.ToggleVisibility(3)
	if r.At(3).Visible {
		t.Fatal("Earth should be hidden after one toggle")
	}
	r.ToggleVisibility(3)
	if !r.At(3).Visible {
		t.Fatal("Earth should be visible after two toggles")
	}
	for i := 0; i < r.Len(); i++ {
		if i != 3 && !r.At(i).Visible {
			t.Fatalf("body %d changed visibility", i)
		}
	}
}

func TestAtReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	b := r.At(1)
	b.Visible = false
	b.OrbitAngle = 90
	if got := r.At(1); !got.Visible || got.OrbitAngle != 0 {
		t.Fatal("mutating the snapshot leaked into the registry")
	}
	all := r.Bodies()
	all[1].Name = "Vulcan"
	if r.At(1).Name != "Mercury" {
		t.Fatal("Bodies() did not return a copy")
	}
}

func TestEachMutatesInPlace(t *testing.T) {
	r := DefaultRegistry()
	r.Each(func(i int, b *CelestialBody) {
		b.OrbitAngle = float64(i)
	})
	if r.At(4).OrbitAngle != 4 {
		t.Fatalf("Each did not mutate the registry")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	r := DefaultRegistry()
	for _, i := range []int{-1, r.Len()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ToggleVisibility(%d) did not panic", i)
				}
			}()
			r.ToggleVisibility(i)
		}()
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate name")
		}
	}()
	NewRegistry(CelestialBody{Name: "A"}, CelestialBody{Name: "A"})
}

func TestPosition(t *testing.T) {
	b := CelestialBody{Distance: 10, OrbitAngle: 90}
	x, y, z := b.Position()
	if math.Abs(x) > 1e-9 || y != 0 || math.Abs(z+10) > 1e-9 {
		t.Fatalf("Position() = (%f, %f, %f), want (0, 0, -10)", x, y, z)
	}
	sun := CelestialBody{Distance: 0, OrbitAngle: 123}
	if x, _, z := sun.Position(); x != 0 || z != 0 {
		t.Fatalf("centre body moved: (%f, %f)", x, z)
	}
}
