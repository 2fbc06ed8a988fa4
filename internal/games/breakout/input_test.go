package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

func TestManualPointerFollowsPointerMotion(t *testing.T) {
	m := NewManualPointer(10)

	in := core.NewInputFrame()
	in.SetPointer(20)
	cmd := m.Control(PaddleContext{PaddleX: 8, Input: in, PointerX: 4, Dt: 0.1})
	assert.Equal(t, 4.0, cmd.TargetX)
	assert.False(t, cmd.Launch)

	// A stationary pointer lets the keys take over
	in.Set(core.ActionRight)
	cmd = m.Control(PaddleContext{PaddleX: 4, Input: in, PointerX: 4, Dt: 0.1})
	assert.InDelta(t, 5.0, cmd.TargetX, 1e-9)

	in.Clear()
	in.Set(core.ActionLeft)
	in.Set(core.ActionLaunch)
	cmd = m.Control(PaddleContext{PaddleX: 5, Input: in, PointerX: 4, Dt: 0.1})
	assert.InDelta(t, 4.0, cmd.TargetX, 1e-9)
	assert.True(t, cmd.Launch)
}

func TestManualPointerWithoutPointer(t *testing.T) {
	m := NewManualPointer(10)
	cmd := m.Control(PaddleContext{PaddleX: 8, Input: core.NewInputFrame(), PointerX: 0, Dt: 0.1})
	assert.Equal(t, 8.0, cmd.TargetX)
}

func TestAutoFollowBall(t *testing.T) {
	var src InputSource = AutoFollowBall{}
	assert.Equal(t, "auto", src.Name())

	cmd := src.Control(PaddleContext{PaddleX: 8, BallPos: core.V(3.5, 6)})
	assert.Equal(t, 3.5, cmd.TargetX)
	assert.True(t, cmd.Launch, "launches while the ball rests")

	cmd = src.Control(PaddleContext{PaddleX: 8, BallPos: core.V(12, 6), BallLaunched: true})
	assert.Equal(t, 12.0, cmd.TargetX)
	assert.False(t, cmd.Launch)
}

func TestEffectSinkSparklesExpire(t *testing.T) {
	fx := &EffectSink{}
	fx.BallImpact()
	fx.BlockDestroyed(BlockGreen, core.V(3, 9))

	assert.Equal(t, 1, fx.ImpactSounds)
	assert.Equal(t, 1, fx.DestroySounds)
	assert.Len(t, fx.Sparkles, 1)

	fx.Update(0.5)
	assert.Len(t, fx.Sparkles, 1)
	fx.Update(0.6)
	assert.Empty(t, fx.Sparkles)
}
