package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

type fakeGame struct {
	id, title, desc string
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

type describedGame struct{ fakeGame }

func (g *describedGame) Description() string { return g.desc }

func TestRegisterKeepsOrderAndDescriptions(t *testing.T) {
	Register("test_zeta", func() Game { return &fakeGame{id: "test_zeta", title: "Zeta"} })
	Register("test_alpha", func() Game {
		return &describedGame{fakeGame{id: "test_alpha", title: "Alpha", desc: "first letter"}}
	})

	var got []GameInfo
	for _, g := range List() {
		if g.ID == "test_zeta" || g.ID == "test_alpha" {
			got = append(got, g)
		}
	}
	require.Len(t, got, 2)
	assert.Equal(t, "test_zeta", got[0].ID)
	assert.Empty(t, got[0].Description)
	assert.Equal(t, GameInfo{ID: "test_alpha", Title: "Alpha", Description: "first letter"}, got[1])

	g, err := Create("test_alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", g.Title())
	assert.True(t, Exists("test_zeta"))

	assert.Panics(t, func() {
		Register("test_zeta", func() Game { return &fakeGame{id: "test_zeta"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_mode")
	assert.Error(t, err)
	assert.False(t, Exists("no_such_mode"))
}
