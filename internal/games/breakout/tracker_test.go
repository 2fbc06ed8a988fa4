package breakout

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAdvancer struct {
	calls int
}

func (c *countingAdvancer) LoadNextLevel() { c.calls++ }

func TestTrackerFiresOnceAtZero(t *testing.T) {
	adv := &countingAdvancer{}
	tracker := NewTracker(adv, nil)

	for range 5 {
		tracker.RegisterBreakableBlock()
	}
	require.Equal(t, 5, tracker.Remaining())

	for i := range 5 {
		require.NoError(t, tracker.OnBlockDestroyed())
		if i < 4 {
			assert.Equal(t, 0, adv.calls, "fired early after %d destructions", i+1)
		}
	}
	assert.Equal(t, 0, tracker.Remaining())
	assert.True(t, tracker.AllDestroyed())
	assert.Equal(t, 1, adv.calls)

	// A spurious sixth destruction is reported, not ignored
	err := tracker.OnBlockDestroyed()
	assert.ErrorIs(t, err, ErrTrackerUnderflow)
	assert.Equal(t, 0, tracker.Remaining())
	assert.Equal(t, 1, adv.calls)
}

func TestTrackerUnderflowIsLogged(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(nil, log.New(&buf))

	assert.ErrorIs(t, tracker.OnBlockDestroyed(), ErrTrackerUnderflow)
	assert.Contains(t, buf.String(), "level tracker underflow")
}

func TestTrackerResetForNewLevel(t *testing.T) {
	adv := &countingAdvancer{}
	tracker := NewTracker(adv, nil)

	tracker.RegisterBreakableBlock()
	require.NoError(t, tracker.OnBlockDestroyed())
	require.True(t, tracker.AllDestroyed())

	tracker.Reset()
	assert.Equal(t, 0, tracker.Remaining())
	assert.False(t, tracker.AllDestroyed())

	tracker.RegisterBreakableBlock()
	tracker.RegisterBreakableBlock()
	require.NoError(t, tracker.OnBlockDestroyed())
	require.NoError(t, tracker.OnBlockDestroyed())
	assert.Equal(t, 2, adv.calls, "each level fires once")
}

func TestTrackerFirstRegistrationClearsCompletion(t *testing.T) {
	tracker := NewTracker(nil, nil)
	tracker.RegisterBreakableBlock()
	require.NoError(t, tracker.OnBlockDestroyed())
	require.True(t, tracker.AllDestroyed())

	// Registering again without a reset starts a new count
	tracker.RegisterBreakableBlock()
	assert.False(t, tracker.AllDestroyed())
	assert.Equal(t, 1, tracker.Remaining())
}
