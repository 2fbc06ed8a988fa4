package breakout

// ScoreReporter receives a report for every destroyed block.
type ScoreReporter interface {
	AddToScore(color BlockColor)
}

// ScoreKeeper accumulates the score for a whole game. It outlives levels;
// only a new game resets it.
type ScoreKeeper struct {
	pointsPerBlock int
	score          int
}

// NewScoreKeeper creates a score keeper awarding pointsPerBlock per color tier.
func NewScoreKeeper(pointsPerBlock int) *ScoreKeeper {
	return &ScoreKeeper{pointsPerBlock: pointsPerBlock}
}

// AddToScore adds pointsPerBlock * (color + 1).
func (s *ScoreKeeper) AddToScore(color BlockColor) {
	s.score += s.pointsPerBlock * (int(color) + 1)
}

// Score returns the current score.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// Reset zeroes the score.
func (s *ScoreKeeper) Reset() {
	s.score = 0
}
