package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/blockbreaker/internal/config"
)

func TestParseLevel(t *testing.T) {
	level := ParseLevel("test", "Test", []string{
		"rgwye",
		"X.?",
	})

	assert.Equal(t, 5, level.Width)
	assert.Equal(t, 2, level.Height)

	tests := []struct {
		row, col int
		expected LevelCell
	}{
		{0, 0, LevelCell{Present: true, Color: BlockRed, Tag: TagBreakable}},
		{0, 1, LevelCell{Present: true, Color: BlockGreen, Tag: TagBreakable}},
		{0, 2, LevelCell{Present: true, Color: BlockWhite, Tag: TagBreakable}},
		{0, 3, LevelCell{Present: true, Color: BlockYellow, Tag: TagBreakable}},
		{0, 4, LevelCell{Present: true, Color: BlockGrey, Tag: TagBreakable}},
		{1, 0, LevelCell{Present: true, Color: BlockGrey, Tag: TagUnbreakable}},
		{1, 1, LevelCell{}},
		{1, 2, LevelCell{}}, // unknown characters are empty
		{1, 4, LevelCell{}}, // short rows are padded
	}
	for _, tt := range tests {
		if got := level.Cells[tt.row][tt.col]; got != tt.expected {
			t.Errorf("Cells[%d][%d] = %+v, expected %+v", tt.row, tt.col, got, tt.expected)
		}
	}

	assert.Equal(t, 5, level.CountBreakable())
}

func TestLevelValidate(t *testing.T) {
	assert.NoError(t, ParseLevel("ok", "OK", []string{"r"}).Validate())

	err := ParseLevel("wide", "Wide", []string{"rrrrrrrrrrrrrrrrr"}).Validate()
	assert.ErrorContains(t, err, "columns wide")

	err = ParseLevel("walls", "Walls", []string{"XXXX", "...."}).Validate()
	assert.ErrorContains(t, err, "no breakable blocks")

	rows := make([]string, MaxLevelRows+1)
	for i := range rows {
		rows[i] = "r"
	}
	assert.ErrorContains(t, ParseLevel("tall", "Tall", rows).Validate(), "rows")
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	levels := BuiltinLevels()
	require.Len(t, levels, 5)

	ids := make(map[string]bool)
	for _, level := range levels {
		assert.NoError(t, level.Validate(), "level %s", level.ID)
		assert.False(t, ids[level.ID], "duplicate level id %s", level.ID)
		ids[level.ID] = true
	}
}

func TestLevelsFromConfig(t *testing.T) {
	levels, err := LevelsFromConfig(nil)
	require.NoError(t, err)
	assert.Len(t, levels, len(BuiltinLevels()))

	levels, err = LevelsFromConfig([]config.LevelDef{
		{ID: "one", Name: "One", Rows: []string{"rr", "gg"}},
		{Rows: []string{"y"}},
	})
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "one", levels[0].ID)
	assert.Equal(t, "level2", levels[1].ID)
	assert.Equal(t, 4, levels[0].CountBreakable())

	_, err = LevelsFromConfig([]config.LevelDef{{ID: "bad", Rows: []string{"XX"}}})
	assert.Error(t, err)
}
