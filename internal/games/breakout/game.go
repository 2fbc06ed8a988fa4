package breakout

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/physics"
	"github.com/vovakirdan/blockbreaker/internal/registry"
)

// World geometry in units. Y grows upward; the origin is the bottom left.
const (
	WorldWidth  = 16.0
	WorldHeight = 12.0

	BlockWidth  = 1.0
	BlockHeight = 0.5
	BlockTopY   = WorldHeight - 1.25 // Center of the first block row

	PaddleY          = 0.75
	PaddleHalfHeight = 0.15
	BallRadius       = 0.15
	ballRestGap      = 0.05
)

// Registry IDs for the two ways to play.
const (
	GameID         = "breakout"
	AutoPlayGameID = "breakout_autoplay"
)

// Body tags for the scene's fixed colliders.
const (
	TagWall         = "Wall"
	TagPaddle       = "Paddle"
	TagBall         = "Ball"
	TagLoseCollider = "LoseCollider"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Last level cleared
)

// UnbreakableGlyph is drawn for blocks that cannot be destroyed.
const UnbreakableGlyph = '▓'

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel is the 1-based level new games start on
var startLevel = 1

// defaultLogger is used by games created through the registry
var defaultLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the 1-based level new games start on.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// SetLogger sets the logger for games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultLogger = l
}

// CampaignLevels returns the levels new games will play, resolved from the
// configured path the same way Reset does.
func CampaignLevels() []*Level {
	g := &Game{logger: defaultLogger}
	g.cfg = g.loadConfig()
	return g.loadLevels()
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration from disk.
func WithConfig(cfg config.BreakoutConfig) Option {
	return func(g *Game) { g.cfgOverride = &cfg }
}

// WithLogger sets the game's logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithLevels replaces the campaign.
func WithLevels(levels ...*Level) Option {
	return func(g *Game) { g.levelsOverride = levels }
}

// WithStartLevel sets the 1-based starting level.
func WithStartLevel(level int) Option {
	return func(g *Game) { g.startLevel = max(level, 1) }
}

// Game implements the Breakout game: it owns the physics world and wires
// the ball, blocks and tracker to each other and to the scene loader.
type Game struct {
	autoPlay bool
	input    InputSource

	// Game objects
	world   *physics.World
	paddle  *physics.Body
	ball    *Ball
	slot    *ballSlot
	blocks  []*Block
	tracker *Tracker
	scorer  *ScoreKeeper
	scene   *SceneLoader
	fx      *EffectSink
	rng     *SimpleRNG

	// Game state
	state      string
	lives      int
	levelIndex int
	tickCount  int
	gameSpeed  float64
	paddleX    float64
	levels     []*Level

	// Configuration
	runtime        core.RuntimeConfig
	cfg            config.BreakoutConfig
	cfgOverride    *config.BreakoutConfig
	levelsOverride []*Level
	startLevel     int
	difficulty     *config.DifficultyManager
	logger         *log.Logger

	// Layout (computed from screen size)
	field          core.Rect // Playfield interior in cells
	upperRows      int       // Rows given to the block area
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a player-controlled game.
func New(opts ...Option) *Game {
	return newGame(false, opts)
}

// NewAutoPlay creates a game whose paddle follows the ball on its own.
func NewAutoPlay(opts ...Option) *Game {
	return newGame(true, opts)
}

func newGame(autoPlay bool, opts []Option) *Game {
	g := &Game{
		autoPlay:   autoPlay,
		logger:     defaultLogger,
		startLevel: startLevel,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.autoPlay {
		return AutoPlayGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.autoPlay {
		return "Breakout (Auto-play)"
	}
	return "Breakout"
}

// Description summarizes the mode for listings.
func (g *Game) Description() string {
	if g.autoPlay {
		return "the paddle tracks the ball on its own"
	}
	return "play the campaign with keyboard or mouse"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	g.cfg = g.loadConfig()
	g.levels = g.loadLevels()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	// Calculate layout
	g.minScreenW = 34
	g.minScreenH = 24
	g.calculateLayout()
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Collaborators
	g.rng = NewSimpleRNG(runtime.Seed)
	g.scorer = NewScoreKeeper(g.cfg.Blocks.PointsPerBlock)
	g.scene = &SceneLoader{}
	g.tracker = NewTracker(g.scene, g.logger)
	g.fx = &EffectSink{}
	g.slot = &ballSlot{}
	if g.autoPlay {
		g.input = AutoFollowBall{}
	} else {
		g.input = NewManualPointer(g.cfg.Paddle.Speed)
	}

	// Initialize game state
	g.state = StatePlaying
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.gameSpeed = g.cfg.Gameplay.GameSpeed
	g.paddleX = WorldWidth / 2
	g.levelIndex = min(g.startLevel, len(g.levels)) - 1

	g.loadLevel(g.levelIndex)
}

// loadConfig resolves the configuration, falling back to defaults.
func (g *Game) loadConfig() config.BreakoutConfig {
	if g.cfgOverride != nil {
		return *g.cfgOverride
	}

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// loadLevels resolves the campaign, falling back to the built-in levels.
func (g *Game) loadLevels() []*Level {
	if len(g.levelsOverride) > 0 {
		return g.levelsOverride
	}
	levels, err := LevelsFromConfig(g.cfg.Levels)
	if err != nil {
		g.logger.Error("invalid configured levels, using built-in campaign", "err", err)
		return BuiltinLevels()
	}
	return levels
}

// calculateLayout computes the playfield position based on screen size.
func (g *Game) calculateLayout() {
	// HUD on row 0, box border on row 1 and the last row
	g.field = core.NewRect(1, 2, g.runtime.ScreenW-2, g.runtime.ScreenH-3)

	// The block area gets two rows per unit so every block row is visible
	blockArea := WorldHeight - g.blockAreaBottom()
	g.upperRows = min(int(blockArea*2), g.field.H*2/3)
}

// blockAreaBottom is the lowest y the tallest level can reach.
func (g *Game) blockAreaBottom() float64 {
	return BlockTopY - (MaxLevelRows-0.5)*BlockHeight
}

// loadLevel builds the world for a level: walls, paddle, blocks and a
// fresh ball resting on the paddle.
func (g *Game) loadLevel(index int) {
	level := g.levels[index]

	g.world = physics.NewWorld()
	g.scene.take()
	g.tracker.Reset()
	g.fx.Clear()

	g.addBoundaries()
	g.paddle = g.world.Add(&physics.Body{
		Tag: TagPaddle,
		Box: core.AABB{
			Center: core.V(g.paddleX, PaddleY),
			Half:   core.V(g.cfg.Paddle.Width/2, PaddleHalfHeight),
		},
	})

	deps := BlockDeps{
		Ball:    g.slot,
		Scorer:  g.scorer,
		Tracker: g.tracker,
		Remover: g.world,
		Effects: g.fx,
		Logger:  g.logger,
	}
	offsetX := (WorldWidth - float64(level.Width)*BlockWidth) / 2

	g.blocks = nil
	for row, cells := range level.Cells {
		for col, cell := range cells {
			if !cell.Present {
				continue
			}
			body := g.world.Add(&physics.Body{
				Box: core.AABB{
					Center: core.V(offsetX+(float64(col)+0.5)*BlockWidth, BlockTopY-float64(row)*BlockHeight),
					Half:   core.V(BlockWidth/2, BlockHeight/2),
				},
			})
			g.blocks = append(g.blocks, NewBlock(g.blockDef(cell, row, col), body, deps))
		}
	}

	g.spawnBall()
	g.logger.Info("level loaded", "level", level.ID, "index", index+1, "breakable", g.tracker.Remaining())
}

// addBoundaries adds the side and top walls and the lose trigger below the paddle.
func (g *Game) addBoundaries() {
	walls := []core.AABB{
		{Center: core.V(-0.5, WorldHeight/2), Half: core.V(0.5, WorldHeight/2+1)},
		{Center: core.V(WorldWidth+0.5, WorldHeight/2), Half: core.V(0.5, WorldHeight/2+1)},
		{Center: core.V(WorldWidth/2, WorldHeight+0.5), Half: core.V(WorldWidth/2+1, 0.5)},
	}
	for _, box := range walls {
		g.world.Add(&physics.Body{Tag: TagWall, Box: box})
	}

	g.world.Add(&physics.Body{
		Tag:     TagLoseCollider,
		Trigger: true,
		Box:     core.AABB{Center: core.V(WorldWidth/2, -1), Half: core.V(WorldWidth/2+1, 0.5)},
	})
}

// blockDef builds a block definition from the configured prototype for its color.
func (g *Game) blockDef(cell LevelCell, row, col int) BlockDef {
	def := BlockDef{
		Name:            fmt.Sprintf("%s block r%dc%d", cell.Color, row, col),
		Color:           cell.Color,
		Tag:             cell.Tag,
		Glyph:           '█',
		Stickiness:      NeutralStickiness,
		StickinessDecay: g.cfg.Blocks.StickinessDecay,
	}
	if cell.Tag == TagUnbreakable {
		def.Glyph = UnbreakableGlyph
		return def
	}

	proto, ok := g.cfg.Blocks.Prototypes[cell.Color.String()]
	if !ok {
		g.logger.Warn("no block prototype for color", "color", cell.Color)
		return def
	}
	if r := firstRune(proto.Glyph); r != 0 {
		def.Glyph = r
	}
	if proto.Stickiness > 0 {
		def.Stickiness = proto.Stickiness
	}
	def.HitSprites = make([]rune, len(proto.HitSprites))
	for i, s := range proto.HitSprites {
		def.HitSprites[i] = firstRune(s)
	}
	return def
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// spawnBall places a new ball at rest on the paddle.
func (g *Game) spawnBall() {
	paddlePos := g.paddle.Pos()
	body := g.world.Add(&physics.Body{
		Tag:     TagBall,
		Dynamic: true,
		Box: core.AABB{
			Center: core.V(paddlePos.X, PaddleY+PaddleHalfHeight+BallRadius+ballRestGap),
			Half:   core.V(BallRadius, BallRadius),
		},
	})
	g.ball = NewBall(g.cfg.Ball, body, g.rng, g.fx, g.logger)
	body.Data = g.ball
	g.ball.AttachToPaddle(paddlePos)
	g.slot.ball = g.ball
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.gameSpeed = g.difficulty.GameSpeed(g.cfg.Gameplay.GameSpeed, g.scorer.Score(), g.tickCount)
	dt := g.gameSpeed / float64(g.runtime.TickRate)

	cmd := g.updatePaddle(in, dt)
	g.ball.FollowPaddle(g.paddle.Pos())
	if cmd.Launch && g.ball.LaunchDefault() {
		g.logger.Debug("ball launched", "velocity", g.ball.Velocity(), "tick", g.tickCount)
	}

	for _, c := range g.world.Step(dt) {
		g.dispatch(c)
	}
	g.fx.Update(dt)
	g.applySceneChange()

	return core.StepResult{State: g.State()}
}

// updatePaddle asks the input source for a target and moves the paddle.
func (g *Game) updatePaddle(in core.InputFrame, dt float64) PaddleCommand {
	cmd := g.input.Control(PaddleContext{
		PaddleX:      g.paddleX,
		BallPos:      g.ball.Body().Pos(),
		BallLaunched: g.ball.Launched(),
		Input:        in,
		PointerX:     g.colToWorldX(in.PointerCol),
		Dt:           dt,
	})

	half := g.cfg.Paddle.Width / 2
	g.paddleX = core.ClampF(cmd.TargetX, half, WorldWidth-half)
	g.paddle.MoveTo(core.V(g.paddleX, PaddleY))
	return cmd
}

// dispatch delivers one contact: the block reacts first, then the ball.
func (g *Game) dispatch(c physics.Contact) {
	other := c.Other(g.ball.Body())
	if other == nil {
		return
	}
	g.logger.Debug("contact", "with", other.Tag, "normal", c.Normal, "velocity", c.VelA, "tick", g.tickCount)

	if other.Tag == TagLoseCollider {
		g.scene.LoseBall()
		return
	}

	if block, ok := other.Data.(*Block); ok {
		block.OnCollision()
	}
	if err := g.ball.OnCollision(); err != nil {
		g.logger.Error("ball collision", "with", other.Tag, "velocity", c.VelA, "err", err)
	}
}

// applySceneChange performs the transition requested during dispatch.
func (g *Game) applySceneChange() {
	switch g.scene.take() {
	case sceneNextLevel:
		if g.levelIndex+1 >= len(g.levels) {
			g.state = StateWin
			g.world.Remove(g.ball.Body())
			g.logger.Info("campaign complete", "score", g.scorer.Score())
			return
		}
		g.levelIndex++
		g.loadLevel(g.levelIndex)

	case sceneBallLost:
		g.lives--
		g.world.Remove(g.ball.Body())
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			g.logger.Info("game over", "score", g.scorer.Score(), "level", g.levelIndex+1)
			return
		}
		g.logger.Debug("ball lost", "lives", g.lives)
		g.spawnBall()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Score(),
		Level:    g.levelIndex + 1,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Ball returns the ball in play.
func (g *Game) Ball() *Ball { return g.ball }

// Blocks returns the current level's blocks, destroyed ones included.
func (g *Game) Blocks() []*Block { return g.blocks }

// Tracker returns the level completion tracker.
func (g *Game) Tracker() *Tracker { return g.tracker }

// Effects returns the effect sink.
func (g *Game) Effects() *EffectSink { return g.fx }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// LevelIndex returns the 0-based index of the current level.
func (g *Game) LevelIndex() int { return g.levelIndex }

// Levels returns the campaign.
func (g *Game) Levels() []*Level { return g.levels }

// PaddleX returns the paddle center.
func (g *Game) PaddleX() float64 { return g.paddleX }

// GameSpeed returns the current simulation time scale.
func (g *Game) GameSpeed() float64 { return g.gameSpeed }

// Input returns the input source chosen at construction.
func (g *Game) Input() InputSource { return g.input }

// Register the games with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(AutoPlayGameID, func() registry.Game {
		return NewAutoPlay()
	})
}
