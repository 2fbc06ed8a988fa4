// Package physics is a small 2D rigid-body world used to drive the game:
// axis-aligned boxes, sub-stepped integration, reflection on impact and
// trigger volumes. It reports each impact as a Contact and knows nothing
// about balls or blocks.
package physics

import (
	"math"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// DefaultMaxStep is the largest distance a body travels in one sub-step.
// It must stay below the thinnest collider to avoid tunnelling.
const DefaultMaxStep = 0.1

// Body is a box in the world.
type Body struct {
	ID      int
	Tag     string    // Category tag, e.g. "Breakable" or "Wall"
	Box     core.AABB // Position (center) and half extents
	Vel     core.Vec2 // Velocity in units per second (dynamic bodies only)
	Dynamic bool      // Moved by the world; otherwise positioned by its owner
	Trigger bool      // Reports overlaps but never blocks motion
	Data    any       // Owner back-reference for contact dispatch

	removed bool
}

// Pos returns the body's center.
func (b *Body) Pos() core.Vec2 {
	return b.Box.Center
}

// MoveTo places the body's center at p.
func (b *Body) MoveTo(p core.Vec2) {
	b.Box.Center = p
}

// Removed reports whether the body has been taken out of the world.
func (b *Body) Removed() bool {
	return b.removed
}

// Contact describes one impact between a dynamic body A and a collider B.
type Contact struct {
	A, B   *Body
	Normal core.Vec2 // Unit axis normal pointing from B toward A; zero for triggers
	VelA   core.Vec2 // Velocity of A after the impact was resolved
}

// Other returns the participant that is not b, or nil if b is not in the contact.
func (c Contact) Other(b *Body) *Body {
	switch b {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return nil
}

// World owns the set of bodies and advances them.
type World struct {
	bodies  []*Body
	nextID  int
	MaxStep float64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{MaxStep: DefaultMaxStep}
}

// Add inserts a body, assigns its ID and returns it.
func (w *World) Add(b *Body) *Body {
	w.nextID++
	b.ID = w.nextID
	b.removed = false
	w.bodies = append(w.bodies, b)
	return b
}

// Remove takes a body out of the world. It is safe to call while contacts
// from the current step are still being dispatched.
func (w *World) Remove(b *Body) {
	if b != nil {
		b.removed = true
	}
}

// Bodies returns the live bodies.
func (w *World) Bodies() []*Body {
	w.compact()
	return w.bodies
}

// Clear removes every body.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
}

func (w *World) compact() {
	live := w.bodies[:0]
	for _, b := range w.bodies {
		if !b.removed {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = live
}

// Step advances every moving dynamic body by dt seconds and returns the
// contacts produced, in the order they happened. A body collides with a
// given collider at most once per step.
func (w *World) Step(dt float64) []Contact {
	w.compact()

	var contacts []Contact
	for _, body := range w.bodies {
		if !body.Dynamic || body.removed || body.Vel.IsZero() {
			continue
		}
		contacts = w.advance(body, dt, contacts)
	}
	return contacts
}

func (w *World) advance(body *Body, dt float64, contacts []Contact) []Contact {
	maxStep := w.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}

	dist := body.Vel.Len() * dt
	steps := int(math.Ceil(dist / maxStep))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float64(steps)
	hit := make(map[int]bool)

	for range steps {
		if body.removed {
			break
		}
		body.Box.Center = body.Box.Center.Add(body.Vel.Scale(sub))

		for _, other := range w.bodies {
			if other == body || other.removed || other.Dynamic || hit[other.ID] {
				continue
			}
			if !body.Box.Intersects(other.Box) {
				continue
			}
			hit[other.ID] = true

			if other.Trigger {
				contacts = append(contacts, Contact{A: body, B: other, VelA: body.Vel})
				continue
			}

			normal := resolve(body, other)
			contacts = append(contacts, Contact{
				A:      body,
				B:      other,
				Normal: normal,
				VelA:   body.Vel,
			})
		}
	}
	return contacts
}

// resolve pushes body out of other along the axis of least penetration and
// reflects the velocity component heading into other.
func resolve(body, other *Body) core.Vec2 {
	dx, dy := body.Box.Overlap(other.Box)

	if dx < dy {
		dir := 1.0
		if body.Box.Center.X < other.Box.Center.X {
			dir = -1.0
		}
		body.Box.Center.X += dir * dx
		if body.Vel.X*dir < 0 {
			body.Vel.X = -body.Vel.X
		}
		return core.V(dir, 0)
	}

	dir := 1.0
	if body.Box.Center.Y < other.Box.Center.Y {
		dir = -1.0
	}
	body.Box.Center.Y += dir * dy
	if body.Vel.Y*dir < 0 {
		body.Vel.Y = -body.Vel.Y
	}
	return core.V(0, dir)
}
