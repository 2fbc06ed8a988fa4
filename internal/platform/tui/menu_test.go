package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

func TestMenuShowsBestScorePerMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore(breakout.GameID, 340, 2, false)
	require.NoError(t, err)
	_, err = store.SaveScore(breakout.GameID, 910, 3, true)
	require.NoError(t, err)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	require.Len(t, m.items, 3)
	assert.Equal(t, breakout.GameID, m.items[0].GameID)
	assert.Equal(t, 910, m.items[0].Best)
	assert.Equal(t, 2, m.items[0].Runs)
	assert.Equal(t, 0, m.items[1].Runs)

	view := m.View()
	assert.True(t, strings.Contains(view, "best 910"))
	assert.True(t, strings.Contains(view, "no runs yet"))
	assert.True(t, strings.Contains(view, scoresItemTitle))
}

func TestMenuScoresEntryOpensScoreboard(t *testing.T) {
	var model tea.Model = NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for range 3 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m := model.(MenuModel)
	assert.True(t, m.WantsScoreboard())
	assert.Nil(t, m.Selected())
}

func TestMenuSelectsMode(t *testing.T) {
	var model tea.Model = NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := model.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, breakout.AutoPlayGameID, m.Selected().GameID)
	assert.False(t, m.WantsScoreboard())
}

func TestCenterTextIgnoresStyling(t *testing.T) {
	styled := "\x1b[1mabcd\x1b[0m"
	assert.Equal(t, "   "+styled, centerText(styled, 10))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}
