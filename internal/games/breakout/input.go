package breakout

import "github.com/vovakirdan/blockbreaker/internal/core"

// PaddleContext is what an input source sees each tick.
type PaddleContext struct {
	PaddleX      float64
	BallPos      core.Vec2
	BallLaunched bool
	Input        core.InputFrame
	PointerX     float64 // World x under the pointer; valid if Input.HasPointer
	Dt           float64 // Simulated seconds this tick
}

// PaddleCommand is an input source's decision for one tick.
type PaddleCommand struct {
	TargetX float64
	Launch  bool
}

// InputSource steers the paddle and decides when to launch.
type InputSource interface {
	Name() string
	Control(ctx PaddleContext) PaddleCommand
}

// ManualPointer follows the pointer when it moves and nudges the paddle
// with the left/right actions. Launch fires on the launch action.
type ManualPointer struct {
	Speed float64 // Units per second for keyboard nudges

	lastCol    int
	hasLastCol bool
}

// NewManualPointer creates a player-controlled input source.
func NewManualPointer(speed float64) *ManualPointer {
	return &ManualPointer{Speed: speed}
}

func (m *ManualPointer) Name() string { return "manual" }

// Control implements InputSource.
func (m *ManualPointer) Control(ctx PaddleContext) PaddleCommand {
	target := ctx.PaddleX

	in := ctx.Input
	if in.HasPointer && (!m.hasLastCol || in.PointerCol != m.lastCol) {
		target = ctx.PointerX
		m.lastCol = in.PointerCol
		m.hasLastCol = true
	}

	if in.Has(core.ActionLeft) {
		target -= m.Speed * ctx.Dt
	}
	if in.Has(core.ActionRight) {
		target += m.Speed * ctx.Dt
	}

	return PaddleCommand{
		TargetX: target,
		Launch:  in.Has(core.ActionLaunch),
	}
}

// AutoFollowBall keeps the paddle under the ball and launches on its own.
type AutoFollowBall struct{}

func (AutoFollowBall) Name() string { return "auto" }

// Control implements InputSource.
func (AutoFollowBall) Control(ctx PaddleContext) PaddleCommand {
	return PaddleCommand{
		TargetX: ctx.BallPos.X,
		Launch:  !ctx.BallLaunched,
	}
}
