package breakout

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/physics"
)

// BlockColor is a block's color tier. The tier also weights its score.
type BlockColor int

const (
	BlockRed BlockColor = iota
	BlockGreen
	BlockWhite
	BlockYellow
	BlockGrey
)

var blockColorNames = [...]string{"red", "green", "white", "yellow", "grey"}

func (c BlockColor) String() string {
	if c < 0 || int(c) >= len(blockColorNames) {
		return "unknown"
	}
	return blockColorNames[c]
}

// ParseBlockColor maps a color name to its tier.
func ParseBlockColor(name string) (BlockColor, bool) {
	name = strings.ToLower(name)
	if name == "gray" {
		name = "grey"
	}
	for i, n := range blockColorNames {
		if n == name {
			return BlockColor(i), true
		}
	}
	return 0, false
}

// ScreenColor returns the terminal color used to draw the tier.
func (c BlockColor) ScreenColor() core.Color {
	switch c {
	case BlockRed:
		return core.ColorRed
	case BlockGreen:
		return core.ColorGreen
	case BlockWhite:
		return core.ColorWhite
	case BlockYellow:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}

// BlockTag decides whether a block can be broken.
type BlockTag string

const (
	TagBreakable   BlockTag = "Breakable"
	TagUnbreakable BlockTag = "Unbreakable"
)

// NeutralStickiness leaves the ball's velocity unchanged.
const NeutralStickiness = 1.0

const stickinessEpsilon = 1e-9

// BlockDef describes a block to create.
type BlockDef struct {
	Name            string
	Color           BlockColor
	Tag             BlockTag
	Glyph           rune   // Undamaged sprite
	HitSprites      []rune // Damage stages; 0 marks a missing sprite
	Stickiness      float64
	StickinessDecay float64
}

// BodyRemover takes a destroyed block's body out of the world.
type BodyRemover interface {
	Remove(b *physics.Body)
}

// BlockDeps are the collaborators a block reports to. Nil members are
// skipped, except Logger which defaults to discarding.
type BlockDeps struct {
	Ball    VelocityChanger
	Scorer  ScoreReporter
	Tracker BlockCounter
	Remover BodyRemover
	Effects Effects
	Logger  *log.Logger
}

// Block tracks one block's damage until it is destroyed.
type Block struct {
	def  BlockDef
	body *physics.Body
	deps BlockDeps

	timesHit   int
	maxHits    int
	sprite     rune
	stickiness float64
	destroyed  bool
}

// NewBlock creates a block and registers it with the tracker if breakable.
func NewBlock(def BlockDef, body *physics.Body, deps BlockDeps) *Block {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if def.Stickiness == 0 {
		def.Stickiness = NeutralStickiness
	}

	b := &Block{
		def:        def,
		body:       body,
		deps:       deps,
		maxHits:    len(def.HitSprites) + 1,
		sprite:     def.Glyph,
		stickiness: def.Stickiness,
	}
	if body != nil {
		body.Tag = string(def.Tag)
		body.Data = b
	}
	if b.Breakable() && deps.Tracker != nil {
		deps.Tracker.RegisterBreakableBlock()
	}
	return b
}

// OnCollision applies one hit. It returns true if the hit destroyed the
// block. Unbreakable and destroyed blocks ignore hits.
func (b *Block) OnCollision() bool {
	if !b.Breakable() || b.destroyed {
		return false
	}
	return b.registerHit()
}

func (b *Block) registerHit() bool {
	if math.Abs(b.stickiness-NeutralStickiness) > stickinessEpsilon {
		if b.deps.Ball != nil {
			b.deps.Ball.ChangeVelocity(b.stickiness)
		}
		if b.stickiness > NeutralStickiness {
			b.stickiness = math.Max(NeutralStickiness, b.stickiness-b.def.StickinessDecay)
		}
	}

	b.timesHit++
	if b.timesHit >= b.maxHits {
		b.destroy()
		return true
	}
	b.showHitSprite()
	return false
}

func (b *Block) destroy() {
	b.destroyed = true
	pos := b.Pos()

	if b.deps.Scorer != nil {
		b.deps.Scorer.AddToScore(b.def.Color)
	}
	if b.deps.Effects != nil {
		b.deps.Effects.BlockDestroyed(b.def.Color, pos)
	}
	if b.deps.Remover != nil && b.body != nil {
		b.deps.Remover.Remove(b.body)
	}
	if b.deps.Tracker != nil {
		if err := b.deps.Tracker.OnBlockDestroyed(); err != nil {
			b.deps.Logger.Error("block destruction rejected", "block", b.def.Name, "err", err)
		}
	}
}

func (b *Block) showHitSprite() {
	idx := b.timesHit - 1
	if s := b.def.HitSprites[idx]; s != 0 {
		b.sprite = s
		return
	}
	b.deps.Logger.Error("block sprite is missing", "block", b.def.Name, "index", idx)
}

// Name returns the block's name.
func (b *Block) Name() string { return b.def.Name }

// Color returns the block's color tier.
func (b *Block) Color() BlockColor { return b.def.Color }

// Breakable reports whether hits can damage the block.
func (b *Block) Breakable() bool { return b.def.Tag == TagBreakable }

// TimesHit returns how many hits the block has taken.
func (b *Block) TimesHit() int { return b.timesHit }

// MaxHits returns the hits needed to destroy the block.
func (b *Block) MaxHits() int { return b.maxHits }

// Sprite returns the glyph for the current damage stage.
func (b *Block) Sprite() rune { return b.sprite }

// Stickiness returns the current velocity multiplier.
func (b *Block) Stickiness() float64 { return b.stickiness }

// Destroyed reports whether the block has been destroyed.
func (b *Block) Destroyed() bool { return b.destroyed }

// Body returns the block's physics body.
func (b *Block) Body() *physics.Body { return b.body }

// Pos returns the block's center.
func (b *Block) Pos() core.Vec2 {
	if b.body == nil {
		return core.Vec2{}
	}
	return b.body.Pos()
}
