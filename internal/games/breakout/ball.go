package breakout

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/physics"
)

// DefaultClampStep is the largest speed change one clamp may apply when the
// configuration leaves it unset.
const DefaultClampStep = 1.0

// ErrZeroSpeed is returned when the speed clamp runs on a ball that is not
// moving. A launched ball always has a non-zero velocity, so this points to
// a bug upstream.
var ErrZeroSpeed = errors.New("breakout: speed clamp on a stationary ball")

// BallState is the ball's launch state.
type BallState int

const (
	BallAtRest   BallState = iota // Stuck to the paddle
	BallLaunched                  // In play until the life ends
)

func (s BallState) String() string {
	if s == BallLaunched {
		return "launched"
	}
	return "at rest"
}

// Perturbation selects the range the bounce perturbation is drawn from.
type Perturbation int

const (
	// PerturbSymmetric draws from [-f, f]. This is the default.
	PerturbSymmetric Perturbation = iota
	// PerturbBiased draws from [0.1, f]. It nudges the ball outward on
	// every bounce and is kept only as an alternative tuning.
	PerturbBiased
)

// ParsePerturbation maps a config value to a policy. Anything other than
// "biased" is symmetric.
func ParsePerturbation(name string) Perturbation {
	if name == "biased" {
		return PerturbBiased
	}
	return PerturbSymmetric
}

func (p Perturbation) draw(rng Randomizer, factor float64) float64 {
	if p == PerturbBiased {
		return rng.Range(0.1, factor)
	}
	return rng.Range(-factor, factor)
}

// VelocityChanger scales the ball's velocity.
type VelocityChanger interface {
	ChangeVelocity(multiplier float64)
}

// Ball controls the ball's velocity: launch, post-bounce perturbation and
// gradual speed correction. Position and integration belong to the body.
type Ball struct {
	cfg    config.BallConfig
	body   *physics.Body
	rng    Randomizer
	fx     Effects
	logger *log.Logger
	policy Perturbation

	state  BallState
	offset core.Vec2 // From the paddle center while at rest
}

// NewBall creates a ball at rest. A nil fx or logger is replaced by a no-op.
func NewBall(cfg config.BallConfig, body *physics.Body, rng Randomizer, fx Effects, logger *log.Logger) *Ball {
	if fx == nil {
		fx = NopEffects{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.ClampStep <= 0 {
		cfg.ClampStep = DefaultClampStep
	}
	body.Vel = core.Vec2{}
	return &Ball{
		cfg:    cfg,
		body:   body,
		rng:    rng,
		fx:     fx,
		logger: logger,
		policy: ParsePerturbation(cfg.Perturbation),
		state:  BallAtRest,
	}
}

// Body returns the ball's physics body.
func (b *Ball) Body() *physics.Body {
	return b.body
}

// State returns the launch state.
func (b *Ball) State() BallState {
	return b.state
}

// Launched reports whether the ball has left the paddle.
func (b *Ball) Launched() bool {
	return b.state == BallLaunched
}

// Velocity returns the current velocity.
func (b *Ball) Velocity() core.Vec2 {
	return b.body.Vel
}

// Speed returns the current speed magnitude.
func (b *Ball) Speed() float64 {
	return b.body.Vel.Len()
}

// MaxSpeed returns the configured upper speed bound.
func (b *Ball) MaxSpeed() float64 {
	return b.cfg.MaxSpeed
}

// AttachToPaddle records the ball's current offset from the paddle center.
func (b *Ball) AttachToPaddle(paddlePos core.Vec2) {
	b.offset = b.body.Pos().Sub(paddlePos)
}

// FollowPaddle keeps a resting ball at its offset from the paddle.
func (b *Ball) FollowPaddle(paddlePos core.Vec2) {
	if b.state == BallAtRest {
		b.body.MoveTo(paddlePos.Add(b.offset))
	}
}

// Launch sends the ball off with the given velocity. It only works once;
// later calls return false and change nothing.
func (b *Ball) Launch(initial core.Vec2) bool {
	if b.state == BallLaunched {
		return false
	}
	b.state = BallLaunched
	b.body.Vel = initial

	if b.Speed() < b.cfg.MinSpeed {
		if err := b.ClampSpeed(b.cfg.MinSpeed); err != nil {
			b.logger.Error("launch clamp failed", "velocity", initial, "err", err)
		}
	}
	return true
}

// LaunchDefault launches with the configured impulse.
func (b *Ball) LaunchDefault() bool {
	return b.Launch(core.V(b.cfg.LaunchX, b.cfg.LaunchY))
}

// OnCollision perturbs the velocity after a bounce and steers the speed
// back toward [MinSpeed, MaxSpeed]. A resting ball ignores collisions.
func (b *Ball) OnCollision() error {
	if b.state != BallLaunched {
		return nil
	}

	f := b.cfg.RandomFactor
	sym := b.policy.draw(b.rng, f)
	px := b.policy.draw(b.rng, f)
	py := b.policy.draw(b.rng, f)

	v := b.body.Vel
	switch {
	case v.X >= 0 && v.Y >= 0:
		v.X += sym
		v.Y += sym
	case v.X <= 0 && v.Y <= 0:
		v.X -= sym
		v.Y -= sym
	case v.X > 0: // moving down-right
		v.X += px
		v.Y -= py
	default: // moving up-left
		v.X -= px
		v.Y += py
	}
	b.body.Vel = v

	var err error
	switch speed := b.Speed(); {
	case speed < b.cfg.MinSpeed:
		err = b.ClampSpeed(b.cfg.MinSpeed)
	case speed > b.cfg.MaxSpeed:
		err = b.ClampSpeed(b.cfg.MaxSpeed)
	}

	b.fx.BallImpact()
	return err
}

// ClampSpeed moves the speed toward target by at most the clamp step,
// keeping the direction.
func (b *Ball) ClampSpeed(target float64) error {
	current := b.Speed()
	if current == 0 {
		return ErrZeroSpeed
	}

	step := b.cfg.ClampStep
	if math.Abs(target-current) > step {
		if target > current {
			target = current + step
		} else {
			target = current - step
		}
	}

	b.ChangeVelocity(target / current)
	return nil
}

// ChangeVelocity scales the velocity by multiplier without bounds.
func (b *Ball) ChangeVelocity(multiplier float64) {
	b.body.Vel = b.body.Vel.Scale(multiplier)
}
