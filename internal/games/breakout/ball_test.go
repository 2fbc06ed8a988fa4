package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/physics"
)

// scriptedRNG returns fixed values in order, clamped to the requested range.
type scriptedRNG struct {
	values []float64
	calls  int
}

func (s *scriptedRNG) Range(lo, hi float64) float64 {
	if len(s.values) == 0 {
		return core.ClampF(0, lo, hi)
	}
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return core.ClampF(v, lo, hi)
}

type countingEffects struct {
	impacts   int
	destroyed []BlockColor
}

func (c *countingEffects) BallImpact() { c.impacts++ }
func (c *countingEffects) BlockDestroyed(color BlockColor, _ core.Vec2) {
	c.destroyed = append(c.destroyed, color)
}

func testBallConfig() config.BallConfig {
	return config.BallConfig{
		LaunchX:      2,
		LaunchY:      15,
		MinSpeed:     15,
		MaxSpeed:     25,
		RandomFactor: 0.5,
		ClampStep:    1.0,
	}
}

func newTestBall(cfg config.BallConfig, rng Randomizer) (*Ball, *countingEffects) {
	fx := &countingEffects{}
	body := &physics.Body{Dynamic: true}
	return NewBall(cfg, body, rng, fx, nil), fx
}

func TestBallLaunchOnce(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), &scriptedRNG{})

	assert.Equal(t, BallAtRest, ball.State())
	require.True(t, ball.LaunchDefault())
	assert.Equal(t, BallLaunched, ball.State())
	assert.Equal(t, core.V(2, 15), ball.Velocity())

	// A second launch is ignored
	assert.False(t, ball.Launch(core.V(0, 99)))
	assert.Equal(t, core.V(2, 15), ball.Velocity())
}

func TestBallLaunchBelowMinSpeedRampsOneStep(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), &scriptedRNG{})

	ball.Launch(core.V(0, 5))
	assert.InDelta(t, 6.0, ball.Speed(), 1e-9)
	assert.InDelta(t, 0.0, ball.Velocity().X, 1e-9)
}

func TestBallAtRestIgnoresCollisions(t *testing.T) {
	ball, fx := newTestBall(testBallConfig(), &scriptedRNG{values: []float64{0.5}})

	require.NoError(t, ball.OnCollision())
	assert.True(t, ball.Velocity().IsZero())
	assert.Equal(t, 0, fx.impacts)
}

func TestBallPerturbationQuadrants(t *testing.T) {
	tests := []struct {
		name     string
		vel      core.Vec2
		expected core.Vec2
	}{
		{"up-right adds symmetric", core.V(3, 4), core.V(3.5, 4.5)},
		{"down-left subtracts symmetric", core.V(-3, -4), core.V(-3.5, -4.5)},
		{"down-right", core.V(3, -4), core.V(3.2, -4.3)},
		{"up-left", core.V(-3, 4), core.V(-3.2, 4.3)},
		{"straight down", core.V(0, -4), core.V(-0.5, -4.5)},
	}

	cfg := testBallConfig()
	cfg.MinSpeed = 0.1
	cfg.MaxSpeed = 100

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Draw order: symmetric, x, y
			ball, fx := newTestBall(cfg, &scriptedRNG{values: []float64{0.5, 0.2, 0.3}})
			ball.Launch(tt.vel)

			require.NoError(t, ball.OnCollision())
			assert.InDelta(t, tt.expected.X, ball.Velocity().X, 1e-9)
			assert.InDelta(t, tt.expected.Y, ball.Velocity().Y, 1e-9)
			assert.Equal(t, 1, fx.impacts)
		})
	}
}

func TestPerturbationRanges(t *testing.T) {
	rng := NewSimpleRNG(7)
	for range 1000 {
		s := PerturbSymmetric.draw(rng, 0.5)
		assert.True(t, s >= -0.5 && s < 0.5, "symmetric draw %v out of range", s)

		b := PerturbBiased.draw(rng, 0.5)
		assert.True(t, b >= 0.1 && b < 0.5, "biased draw %v out of range", b)
	}

	assert.Equal(t, PerturbBiased, ParsePerturbation("biased"))
	assert.Equal(t, PerturbSymmetric, ParsePerturbation("symmetric"))
	assert.Equal(t, PerturbSymmetric, ParsePerturbation(""))
}

// One clamp moves at most clamp_step, so 30 becomes 29 rather than landing at max.
func TestBallOverspeedIsCorrectedGradually(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), &scriptedRNG{values: []float64{0}})
	ball.LaunchDefault()

	// A collision that leaves the ball at speed 30
	ball.Body().Vel = core.V(18, 24)
	before := ball.Speed()

	require.NoError(t, ball.OnCollision())
	after := ball.Speed()
	assert.InDelta(t, 29.0, after, 1e-9)
	assert.LessOrEqual(t, math.Abs(after-before), 1.0+1e-9)

	// Direction is preserved
	assert.InDelta(t, 0.8, ball.Velocity().Y/ball.Velocity().Len(), 1e-9)

	// Later collisions keep stepping down until the bound is reached
	for range 10 {
		require.NoError(t, ball.OnCollision())
	}
	assert.InDelta(t, 25.0, ball.Speed(), 1e-9)
}

func TestBallSpeedStaysInBoundsOnceReached(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345, 987654321} {
		ball, _ := newTestBall(testBallConfig(), NewSimpleRNG(seed))
		ball.LaunchDefault()

		for i := range 2000 {
			require.NoError(t, ball.OnCollision())
			speed := ball.Speed()
			if speed < 15-1e-9 || speed > 25+1e-9 {
				t.Fatalf("seed %d collision %d: speed %v outside [15, 25]", seed, i, speed)
			}
		}
	}
}

func TestBallSpeedConvergesMonotonically(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), NewSimpleRNG(99))
	ball.LaunchDefault()
	ball.Body().Vel = core.V(-24, 32) // speed 40

	prev := ball.Speed()
	for range 60 {
		require.NoError(t, ball.OnCollision())
		speed := ball.Speed()
		if prev > 25 {
			assert.Less(t, speed, prev, "speed should move toward max")
			assert.LessOrEqual(t, prev-speed, 1.0+0.75, "correction larger than one step plus perturbation")
		}
		prev = speed
	}
	assert.LessOrEqual(t, prev, 25+1e-9)
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name     string
		vel      core.Vec2
		target   float64
		expected float64
	}{
		{"far below steps up", core.V(0, 10), 15, 11},
		{"far above steps down", core.V(30, 0), 25, 29},
		{"within step snaps", core.V(0, 14.6), 15, 15},
		{"exactly one step", core.V(0, 14), 15, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, _ := newTestBall(testBallConfig(), &scriptedRNG{})
			ball.Body().Vel = tt.vel

			require.NoError(t, ball.ClampSpeed(tt.target))
			assert.InDelta(t, tt.expected, ball.Speed(), 1e-9)
		})
	}
}

func TestClampSpeedOnStationaryBall(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), &scriptedRNG{})

	err := ball.ClampSpeed(15)
	assert.ErrorIs(t, err, ErrZeroSpeed)
	assert.True(t, ball.Velocity().IsZero())
}

func TestChangeVelocityIsUnbounded(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), &scriptedRNG{})
	ball.LaunchDefault()

	ball.ChangeVelocity(3)
	assert.Equal(t, core.V(6, 45), ball.Velocity())
}

func TestBallFollowsPaddleUntilLaunched(t *testing.T) {
	ball, _ := newTestBall(testBallConfig(), &scriptedRNG{})
	ball.Body().MoveTo(core.V(8, 1.1))
	ball.AttachToPaddle(core.V(8, 0.75))

	ball.FollowPaddle(core.V(3, 0.75))
	assert.InDelta(t, 3.0, ball.Body().Pos().X, 1e-9)
	assert.InDelta(t, 1.1, ball.Body().Pos().Y, 1e-9)

	ball.LaunchDefault()
	ball.FollowPaddle(core.V(10, 0.75))
	assert.InDelta(t, 3.0, ball.Body().Pos().X, 1e-9)
}
