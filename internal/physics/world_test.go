package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

func box(cx, cy, hw, hh float64) core.AABB {
	return core.AABB{Center: core.V(cx, cy), Half: core.V(hw, hh)}
}

func TestStepIntegratesFreeBody(t *testing.T) {
	w := NewWorld()
	ball := w.Add(&Body{Box: box(0, 0, 0.1, 0.1), Vel: core.V(2, 1), Dynamic: true})

	contacts := w.Step(0.5)

	assert.Empty(t, contacts)
	assert.InDelta(t, 1.0, ball.Pos().X, 1e-9)
	assert.InDelta(t, 0.5, ball.Pos().Y, 1e-9)
}

func TestStepReflectsOffCeiling(t *testing.T) {
	w := NewWorld()
	ball := w.Add(&Body{Tag: "Ball", Box: box(5, 9.5, 0.2, 0.2), Vel: core.V(1, 10), Dynamic: true})
	ceiling := w.Add(&Body{Tag: "Wall", Box: box(5, 10.5, 10, 0.5)})

	contacts := w.Step(0.1)

	require.Len(t, contacts, 1)
	c := contacts[0]
	assert.Same(t, ball, c.A)
	assert.Same(t, ceiling, c.B)
	assert.Equal(t, core.V(0, -1), c.Normal)
	assert.Less(t, ball.Vel.Y, 0.0, "vertical velocity should flip")
	assert.InDelta(t, 1.0, ball.Vel.X, 1e-9, "horizontal velocity is untouched")
	assert.False(t, ball.Box.Intersects(ceiling.Box), "ball should be pushed out")
	assert.Equal(t, c.VelA, ball.Vel)
}

func TestStepReflectsOffSideWall(t *testing.T) {
	w := NewWorld()
	ball := w.Add(&Body{Box: box(15.5, 5, 0.2, 0.2), Vel: core.V(8, 1), Dynamic: true})
	w.Add(&Body{Tag: "Wall", Box: box(16.5, 6, 0.5, 6)})

	contacts := w.Step(0.1)

	require.Len(t, contacts, 1)
	assert.Equal(t, core.V(-1, 0), contacts[0].Normal)
	assert.Less(t, ball.Vel.X, 0.0)
}

func TestStepSubstepsPreventTunnelling(t *testing.T) {
	w := NewWorld()
	// Moves 3 units in one step through a 0.2 thick brick.
	ball := w.Add(&Body{Box: box(0, 0, 0.1, 0.1), Vel: core.V(0, 30), Dynamic: true})
	w.Add(&Body{Tag: "Breakable", Box: box(0, 1.5, 0.5, 0.1)})

	contacts := w.Step(0.1)

	require.Len(t, contacts, 1)
	assert.Less(t, ball.Vel.Y, 0.0)
	assert.Less(t, ball.Pos().Y, 1.5)
}

func TestTriggerReportsWithoutBlocking(t *testing.T) {
	w := NewWorld()
	ball := w.Add(&Body{Box: box(5, 0.3, 0.2, 0.2), Vel: core.V(0, -5), Dynamic: true})
	lose := w.Add(&Body{Tag: "LoseCollider", Box: box(8, -0.5, 10, 0.5), Trigger: true})

	contacts := w.Step(0.1)

	require.Len(t, contacts, 1)
	assert.Same(t, lose, contacts[0].B)
	assert.Equal(t, core.Vec2{}, contacts[0].Normal)
	assert.InDelta(t, -5.0, ball.Vel.Y, 1e-9, "triggers never reflect")
}

func TestRemovedBodiesStopColliding(t *testing.T) {
	w := NewWorld()
	w.Add(&Body{Box: box(0, 0, 0.1, 0.1), Vel: core.V(0, 10), Dynamic: true})
	brick := w.Add(&Body{Tag: "Breakable", Box: box(0, 0.5, 0.5, 0.25)})

	w.Remove(brick)
	contacts := w.Step(0.1)

	assert.Empty(t, contacts)
	assert.True(t, brick.Removed())
	assert.Len(t, w.Bodies(), 1)
}

func TestRestingBodiesAreNotSimulated(t *testing.T) {
	w := NewWorld()
	ball := w.Add(&Body{Box: box(0, 0, 0.2, 0.2), Dynamic: true})
	w.Add(&Body{Box: box(0, 0, 1, 0.1)}) // overlapping paddle

	assert.Empty(t, w.Step(0.1))
	assert.Equal(t, core.V(0, 0), ball.Pos())
}

func TestContactOther(t *testing.T) {
	a, b := &Body{ID: 1}, &Body{ID: 2}
	c := Contact{A: a, B: b}

	assert.Same(t, b, c.Other(a))
	assert.Same(t, a, c.Other(b))
	assert.Nil(t, c.Other(&Body{ID: 3}))
}
