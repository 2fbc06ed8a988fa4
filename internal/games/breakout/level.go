// Package breakout implements a Breakout brick breaker: the ball's speed
// regulation, the block damage state machine and the per-level completion
// tracker, plus the scene glue that runs them on a small physics world.
package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

// Level limits in grid cells. One cell is BlockWidth x BlockHeight world units.
const (
	MaxLevelCols = 16
	MaxLevelRows = 12
)

// LevelCell is one grid position of a level map.
type LevelCell struct {
	Present bool
	Color   BlockColor
	Tag     BlockTag
}

// Level is a playable block layout.
type Level struct {
	ID     string
	Name   string
	Width  int           // Number of block columns
	Height int           // Number of block rows
	Cells  [][]LevelCell // [row][col], row 0 at the top
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'r' = red, 'g' = green, 'w' = white, 'y' = yellow, 'e' = grey (breakable)
//	'X' = grey unbreakable block
//	'.' = empty; anything else is empty too
func ParseLevel(id, name string, lines []string) *Level {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Cells:  make([][]LevelCell, len(lines)),
	}

	for row, line := range lines {
		level.Cells[row] = make([]LevelCell, maxWidth)
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}
			level.Cells[row][col] = parseCell(ch)
		}
	}

	return level
}

func parseCell(ch byte) LevelCell {
	switch ch {
	case 'r':
		return LevelCell{Present: true, Color: BlockRed, Tag: TagBreakable}
	case 'g':
		return LevelCell{Present: true, Color: BlockGreen, Tag: TagBreakable}
	case 'w':
		return LevelCell{Present: true, Color: BlockWhite, Tag: TagBreakable}
	case 'y':
		return LevelCell{Present: true, Color: BlockYellow, Tag: TagBreakable}
	case 'e':
		return LevelCell{Present: true, Color: BlockGrey, Tag: TagBreakable}
	case 'X', 'x':
		return LevelCell{Present: true, Color: BlockGrey, Tag: TagUnbreakable}
	default:
		return LevelCell{}
	}
}

// CountBreakable returns the number of breakable blocks in the layout.
func (l *Level) CountBreakable() int {
	count := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.Present && c.Tag == TagBreakable {
				count++
			}
		}
	}
	return count
}

// Validate checks that the layout fits the playfield and can be cleared.
func (l *Level) Validate() error {
	var errs []error
	if l.Width > MaxLevelCols {
		errs = append(errs, fmt.Errorf("level %q is %d columns wide, max %d", l.ID, l.Width, MaxLevelCols))
	}
	if l.Height > MaxLevelRows {
		errs = append(errs, fmt.Errorf("level %q has %d rows, max %d", l.ID, l.Height, MaxLevelRows))
	}
	if l.CountBreakable() == 0 {
		errs = append(errs, fmt.Errorf("level %q has no breakable blocks", l.ID))
	}
	return errors.Join(errs...)
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: Rainbow
		ParseLevel("rainbow", "Rainbow", []string{
			"rrrrrrrrrrrrrrrr",
			"gggggggggggggggg",
			"wwwwwwwwwwwwwwww",
			"yyyyyyyyyyyyyyyy",
		}),

		// Level 2: Pyramid
		ParseLevel("pyramid", "Pyramid", []string{
			".......yy.......",
			"......wwww......",
			".....gggggg.....",
			"....rrrrrrrr....",
			"...rrrrrrrrrr...",
		}),

		// Level 3: Checkerboard
		ParseLevel("checker", "Checkerboard", []string{
			"g.w.g.w.g.w.g.w.",
			".r.r.r.r.r.r.r.r",
			"w.g.w.g.w.g.w.g.",
			".r.r.r.r.r.r.r.r",
			"y.e.y.e.y.e.y.e.",
		}),

		// Level 4: Bunker (with unbreakable walls)
		ParseLevel("bunker", "Bunker", []string{
			"XXXXXX....XXXXXX",
			"X.yyyy....yyyy.X",
			"X.wwww....wwww.X",
			"X.gggg....gggg.X",
			"X..............X",
			"eeeeeerrrreeeeee",
		}),

		// Level 5: Fortress
		ParseLevel("fortress", "Fortress", []string{
			"X..X..X..X..X..X",
			"yyyyyyyyyyyyyyyy",
			"wwwwwwwwwwwwwwww",
			"XXX.XXXXXXXX.XXX",
			"gggggggggggggggg",
			"rrrrrrrrrrrrrrrr",
			"eeeeeeeeeeeeeeee",
		}),
	}
}

// LevelsFromConfig parses configured level maps. An empty list yields the
// built-in campaign.
func LevelsFromConfig(defs []config.LevelDef) ([]*Level, error) {
	if len(defs) == 0 {
		return BuiltinLevels(), nil
	}

	levels := make([]*Level, 0, len(defs))
	var errs []error
	for i, def := range defs {
		id := def.ID
		if id == "" {
			id = fmt.Sprintf("level%d", i+1)
		}
		name := def.Name
		if name == "" {
			name = id
		}
		level := ParseLevel(id, name, def.Rows)
		if err := level.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		levels = append(levels, level)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return levels, nil
}
