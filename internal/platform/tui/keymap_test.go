package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionLaunch, false},
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionMotion}, &frame)
	assert.True(t, frame.HasPointer)
	assert.Equal(t, 12, frame.PointerCol)
	assert.False(t, frame.Has(core.ActionLaunch), "motion must not launch")

	km.MapMouseToFrame(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	assert.Equal(t, 20, frame.PointerCol)
	assert.True(t, frame.Has(core.ActionLaunch), "left click launches")
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyMsg("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyMsg("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyMsg(" ")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(keyMsg("esc")))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(keyMsg("tab")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyMsg("q")))
}

// stubGame ends after a fixed number of steps.
type stubGame struct {
	steps    int
	endAfter int
	last     core.InputFrame
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	over := g.steps >= g.endAfter
	return core.GameState{Score: 120, Level: 3, GameOver: over, Won: over}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &stubGame{endAfter: 2}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()

	var model tea.Model = m
	for range 5 {
		model, _ = model.Update(TickMsg{})
	}

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 120, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
	assert.True(t, scores[0].Won)
}

func TestGameModelInput(t *testing.T) {
	game := &stubGame{endAfter: 100}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(tea.MouseMsg{X: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	model, _ = model.Update(TickMsg{})

	assert.True(t, game.last.Has(core.ActionLaunch))
	assert.Equal(t, 7, game.last.PointerCol)

	// Actions are cleared between ticks but the pointer is kept
	model, _ = model.Update(TickMsg{})
	assert.False(t, game.last.Has(core.ActionLaunch))
	assert.True(t, game.last.HasPointer)

	model, cmd := model.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.True(t, model.(GameModel).IsQuitting())
}

func TestGameModelBackToMenuWhenOver(t *testing.T) {
	game := &stubGame{endAfter: 1}
	m := NewGameModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(TickMsg{})
	require.True(t, model.(GameModel).State().GameOver)

	model, _ = model.Update(keyMsg("esc"))
	assert.True(t, model.(GameModel).BackToMenu())
}
