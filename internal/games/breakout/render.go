package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	SparkleChar = '*'
	EmberChar   = '·'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(g.field.X-1, g.field.Y-1, g.field.W+2, g.field.H+2))
	g.renderBlocks(dst)
	g.renderSparkles(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.scorer.Score()))

	center := fmt.Sprintf("Lives: %d  Speed: %.1fx", g.lives, g.gameSpeed)
	dst.DrawTextCentered(0, center)

	levelText := fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.levels))
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// colOf maps a world x to a screen column.
func (g *Game) colOf(x float64) int {
	return g.field.X + int(math.Floor(x/WorldWidth*float64(g.field.W)))
}

// rowOf maps a world y to a screen row. The block area above
// blockAreaBottom gets its own scale so each block row has a text row.
func (g *Game) rowOf(y float64) int {
	split := g.blockAreaBottom()
	if y >= split {
		rel := (WorldHeight - y) / (WorldHeight - split)
		return g.field.Y + int(math.Floor(rel*float64(g.upperRows)))
	}
	lowerRows := g.field.H - g.upperRows
	rel := (split - y) / split
	return g.field.Y + g.upperRows + int(math.Floor(rel*float64(lowerRows)))
}

// colToWorldX maps a screen column to the world x at its center.
func (g *Game) colToWorldX(col int) float64 {
	if g.field.W <= 0 {
		return WorldWidth / 2
	}
	return (float64(col-g.field.X) + 0.5) / float64(g.field.W) * WorldWidth
}

// setInField draws a cell only if it lies inside the playfield.
func (g *Game) setInField(dst *core.Screen, x, y int, r rune, c core.Color) {
	if g.field.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// renderBlocks draws every block that has not been destroyed.
func (g *Game) renderBlocks(dst *core.Screen) {
	for _, b := range g.blocks {
		if b.Destroyed() {
			continue
		}
		box := b.Body().Box
		c0 := g.colOf(box.Min().X)
		c1 := g.colOf(box.Max().X)
		if c1-c0 > 2 {
			c1-- // gap between neighbours
		}
		c1 = max(c1, c0+1)
		row := g.rowOf(box.Center.Y)

		color := b.Color().ScreenColor()
		for x := c0; x < c1; x++ {
			g.setInField(dst, x, row, b.Sprite(), color)
		}
	}
}

// renderSparkles draws the bursts left by destroyed blocks.
func (g *Game) renderSparkles(dst *core.Screen) {
	for _, s := range g.fx.Sparkles {
		glyph := SparkleChar
		if s.TTL < SparkleLifetime/2 {
			glyph = EmberChar
		}
		col, row := g.colOf(s.Pos.X), g.rowOf(s.Pos.Y)
		color := s.Color.ScreenColor()
		g.setInField(dst, col-1, row, glyph, color)
		g.setInField(dst, col+1, row, glyph, core.ColorBrightYellow)
		g.setInField(dst, col, row, glyph, color)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	box := g.paddle.Box
	row := g.rowOf(PaddleY)
	for x := g.colOf(box.Min().X); x < max(g.colOf(box.Max().X), g.colOf(box.Min().X)+1); x++ {
		g.setInField(dst, x, row, PaddleChar, core.ColorCyan)
	}
}

// renderBall draws the ball, kept above the paddle when both share a row.
func (g *Game) renderBall(dst *core.Screen) {
	if g.ball == nil || g.ball.Body().Removed() {
		return
	}
	pos := g.ball.Body().Pos()
	row := g.rowOf(pos.Y)
	if paddleRow := g.rowOf(PaddleY); row == paddleRow && pos.Y > PaddleY {
		row--
	}
	g.setInField(dst, g.colOf(pos.X), row, BallChar, core.ColorBrightWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if g.ball.Launched() {
			return
		}
		hint := "Click or press SPACE to launch"
		if g.autoPlay {
			hint = "Auto-play"
		}
		dst.DrawTextCentered(dst.Height()-1, hint)

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.scorer.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.scorer.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
