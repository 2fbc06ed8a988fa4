package breakout

import "github.com/vovakirdan/blockbreaker/internal/core"

// SparkleLifetime is how long, in simulated seconds, a destroyed block sparkles.
const SparkleLifetime = 1.0

// Effects receives audio and visual cues from the core.
type Effects interface {
	BallImpact()
	BlockDestroyed(color BlockColor, pos core.Vec2)
}

// NopEffects discards every cue.
type NopEffects struct{}

func (NopEffects) BallImpact()                          {}
func (NopEffects) BlockDestroyed(BlockColor, core.Vec2) {}

// Sparkle is a short-lived burst left where a block was destroyed.
type Sparkle struct {
	Pos   core.Vec2
	Color BlockColor
	TTL   float64 // Seconds left
}

// EffectSink is the in-game Effects implementation. Sounds are counted
// since there is no audio output; sparkles are kept for rendering.
type EffectSink struct {
	ImpactSounds  int
	DestroySounds int
	Sparkles      []Sparkle
}

// BallImpact records an impact sound cue.
func (e *EffectSink) BallImpact() {
	e.ImpactSounds++
}

// BlockDestroyed records a destroy sound cue and spawns sparkles at pos.
func (e *EffectSink) BlockDestroyed(color BlockColor, pos core.Vec2) {
	e.DestroySounds++
	e.Sparkles = append(e.Sparkles, Sparkle{Pos: pos, Color: color, TTL: SparkleLifetime})
}

// Update ages sparkles by dt seconds and drops the expired ones.
func (e *EffectSink) Update(dt float64) {
	live := e.Sparkles[:0]
	for _, s := range e.Sparkles {
		s.TTL -= dt
		if s.TTL > 0 {
			live = append(live, s)
		}
	}
	e.Sparkles = live
}

// Clear drops all sparkles.
func (e *EffectSink) Clear() {
	e.Sparkles = e.Sparkles[:0]
}
