package body

import (
	"fmt"
)

// Registry is the ordered, fixed-size collection of bodies. Index order is the
// catalog order and is used by the on-screen list.
// Not thread-safe; it is owned by the frame loop.
type Registry interface {
	// Len returns the number of bodies.
	Len() int

	// At returns a copy of the body at index i.
	// Panics if i is out of range.
	//
	// Parameters:
	//   - i: catalog index
	//
	// Returns:
	//   - CelestialBody: a snapshot of the body
	At(i int) CelestialBody

	// Index looks up a body by name.
	//
	// Parameters:
	//   - name: the body's display name
	//
	// Returns:
	//   - int: catalog index, or -1
	//   - bool: whether the name exists
	Index(name string) (int, bool)

	// ToggleVisibility flips the Visible flag of the body at index i.
	// Panics if i is out of range.
	//
	// Parameters:
	//   - i: catalog index
	ToggleVisibility(i int)

	// Bodies returns a copy of every body in catalog order.
	Bodies() []CelestialBody

	// Each calls fn with a pointer to every body in catalog order.
	// The pointer is only valid for the duration of the call.
	//
	// Parameters:
	//   - fn: visitor receiving the index and a mutable body
	Each(fn func(i int, b *CelestialBody))
}

type registry struct {
	bodies []CelestialBody
	index  map[string]int
}

var _ Registry = &registry{}

// NewRegistry builds a Registry from the given bodies in order.
// Panics on an empty or duplicate name, since the catalog is static.
//
// Parameters:
//   - bodies: the catalog entries
//
// Returns:
//   - Registry: the populated registry
func NewRegistry(bodies ...CelestialBody) Registry {
	r := &registry{
		bodies: make([]CelestialBody, len(bodies)),
		index:  make(map[string]int, len(bodies)),
	}
	copy(r.bodies, bodies)
	for i, b := range r.bodies {
		if b.Name == "" {
			panic(fmt.Sprintf("body: catalog entry %d has no name", i))
		}
		if _, dup := r.index[b.Name]; dup {
			panic(fmt.Sprintf("body: duplicate catalog name %q", b.Name))
		}
		r.index[b.Name] = i
	}
	return r
}

func (r *registry) Len() int {
	return len(r.bodies)
}

func (r *registry) At(i int) CelestialBody {
	return r.bodies[r.mustIndex(i)]
}

func (r *registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	if !ok {
		return -1, false
	}
	return i, true
}

func (r *registry) ToggleVisibility(i int) {
	b := &r.bodies[r.mustIndex(i)]
	b.Visible = !b.Visible
}

func (r *registry) Bodies() []CelestialBody {
	out := make([]CelestialBody, len(r.bodies))
	copy(out, r.bodies)
	return out
}

func (r *registry) Each(fn func(i int, b *CelestialBody)) {
	for i := range r.bodies {
		fn(i, &r.bodies[i])
	}
}

func (r *registry) mustIndex(i int) int {
	if i < 0 || i >= len(r.bodies) {
		panic(fmt.Sprintf("body: index %d out of range [0, %d)", i, len(r.bodies)))
	}
	return i
}
