package breakout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrTrackerUnderflow reports a destruction with no breakable blocks left,
// which means a block was destroyed twice.
var ErrTrackerUnderflow = errors.New("breakout: block destroyed with none remaining")

// LevelAdvancer consumes the level-advance signal.
type LevelAdvancer interface {
	LoadNextLevel()
}

// BlockCounter is the part of the tracker blocks talk to.
type BlockCounter interface {
	RegisterBreakableBlock()
	OnBlockDestroyed() error
}

// Tracker counts the breakable blocks still alive on the current level and
// fires the level-advance signal once when the count reaches zero.
type Tracker struct {
	remaining    int
	allDestroyed bool
	fired        bool

	advancer LevelAdvancer
	logger   *log.Logger
}

// NewTracker creates a tracker that signals advancer on completion.
// A nil logger discards diagnostics.
func NewTracker(advancer LevelAdvancer, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{advancer: advancer, logger: logger}
}

// Reset clears the count for a level (re)load.
func (t *Tracker) Reset() {
	t.remaining = 0
	t.allDestroyed = false
	t.fired = false
}

// RegisterBreakableBlock counts one more breakable block.
func (t *Tracker) RegisterBreakableBlock() {
	t.remaining++
	if t.remaining == 1 {
		t.allDestroyed = false
		t.fired = false
	}
}

// OnBlockDestroyed counts one destruction. The count never goes below zero;
// an extra call returns ErrTrackerUnderflow and does not signal again.
func (t *Tracker) OnBlockDestroyed() error {
	if t.remaining <= 0 {
		err := fmt.Errorf("%w (remaining=%d, completed=%t)", ErrTrackerUnderflow, t.remaining, t.fired)
		t.logger.Error("level tracker underflow", "remaining", t.remaining, "completed", t.fired)
		return err
	}

	t.remaining--
	if t.remaining == 0 && !t.fired {
		t.allDestroyed = true
		t.fired = true
		if t.advancer != nil {
			t.advancer.LoadNextLevel()
		}
	}
	return nil
}

// Remaining returns the number of breakable blocks left.
func (t *Tracker) Remaining() int {
	return t.remaining
}

// AllDestroyed reports whether the current level has been cleared.
func (t *Tracker) AllDestroyed() bool {
	return t.allDestroyed
}
