package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

func TestScoreboardStatsAndModeSwitch(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore(breakout.GameID, 500, 4, true)
	require.NoError(t, err)
	_, err = store.SaveScore(breakout.GameID, 120, 1, false)
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)
	require.Len(t, m.scores, 2)
	assert.Equal(t, 500, m.stats.HighScore)
	assert.Equal(t, 4, m.stats.BestLevel)
	assert.Equal(t, 1, m.stats.Wins)

	view := m.View()
	assert.True(t, strings.Contains(view, "Best level: 4"))
	assert.True(t, strings.Contains(view, "cleared"))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(ScoreboardModel)
	assert.Empty(t, m.scores)
	assert.Equal(t, 0, m.stats.GamesCount)
	assert.True(t, strings.Contains(m.View(), "No runs recorded yet"))
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.False(t, m.wide())
	view := m.View()
	assert.True(t, strings.Contains(view, "Best: 0  Games: 0"))

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, model.(ScoreboardModel).IsGoingBack())
}
