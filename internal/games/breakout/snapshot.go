package breakout

import "math"

// Snapshot contains the game state relevant for determinism checks.
// Floats are quantized to thousandths so the hash is stable.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	LevelIndex int
	Remaining  int

	PaddleX      int
	BallX        int
	BallY        int
	BallVX       int
	BallVY       int
	BallLaunched bool

	// Per block, in level order: 2 ints (TimesHit, Destroyed)
	BlockData []int

	ImpactSounds  int
	DestroySounds int

	RNGState uint64
}

// quantize converts a world value to fixed thousandths.
func quantize(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, len(g.blocks)*2)
	for i, b := range g.blocks {
		blockData[i*2] = b.TimesHit()
		if b.Destroyed() {
			blockData[i*2+1] = 1
		}
	}

	pos := g.ball.Body().Pos()
	vel := g.ball.Velocity()

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Score:      g.scorer.Score(),
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		Remaining:  g.tracker.Remaining(),

		PaddleX:      quantize(g.paddleX),
		BallX:        quantize(pos.X),
		BallY:        quantize(pos.Y),
		BallVX:       quantize(vel.X),
		BallVY:       quantize(vel.Y),
		BallLaunched: g.ball.Launched(),

		BlockData: blockData,

		ImpactSounds:  g.fx.ImpactSounds,
		DestroySounds: g.fx.DestroySounds,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)     //#nosec G115 -- hash computation
	if snap.BallLaunched {
		h = h*31 + 1
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.ImpactSounds)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DestroySounds) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	return h
}
