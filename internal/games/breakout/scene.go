package breakout

// sceneChange is a transition requested during contact dispatch. It is
// applied once all contacts of the tick have been handled.
type sceneChange int

const (
	sceneNone sceneChange = iota
	sceneNextLevel
	sceneBallLost
)

// SceneLoader collects scene transitions requested by the core.
type SceneLoader struct {
	pending sceneChange
}

// LoadNextLevel requests the next level. It implements LevelAdvancer.
func (s *SceneLoader) LoadNextLevel() {
	s.pending = sceneNextLevel
}

// LoseBall requests a life to be taken. A pending level advance wins.
func (s *SceneLoader) LoseBall() {
	if s.pending == sceneNone {
		s.pending = sceneBallLost
	}
}

// take returns and clears the pending change.
func (s *SceneLoader) take() sceneChange {
	c := s.pending
	s.pending = sceneNone
	return c
}

// ballSlot forwards velocity changes to whichever ball is in play, so
// blocks created once per level keep working across lost lives.
type ballSlot struct {
	ball *Ball
}

// ChangeVelocity drops speed-ups while the ball is at or above its maximum
// speed, so boosts cannot outrun the per-collision clamp.
func (s *ballSlot) ChangeVelocity(multiplier float64) {
	if s.ball == nil {
		return
	}
	if multiplier > 1 && s.ball.Speed() >= s.ball.MaxSpeed() {
		return
	}
	s.ball.ChangeVelocity(multiplier)
}
