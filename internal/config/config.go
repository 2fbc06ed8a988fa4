// Package config provides YAML-based game configuration loading,
// validation and difficulty management.
package config

// BreakoutConfig contains all tunables for the game.
type BreakoutConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Levels     []LevelDef       `yaml:"levels"` // Optional; replaces the built-in campaign when set
}

// LevelDef is an ASCII level map supplied through configuration.
type LevelDef struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// BallConfig defines launch and speed-regulation parameters for the ball.
// Speeds are in world units per second.
type BallConfig struct {
	LaunchX      float64 `yaml:"launch_x"`
	LaunchY      float64 `yaml:"launch_y"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	RandomFactor float64 `yaml:"random_factor"` // Perturbation magnitude applied on every bounce
	ClampStep    float64 `yaml:"clamp_step"`    // Largest speed change a single clamp may apply
	Perturbation string  `yaml:"perturbation"`  // "symmetric" or "biased"
}

// BlocksConfig defines scoring and per-color block prototypes.
type BlocksConfig struct {
	PointsPerBlock  int                       `yaml:"points_per_block"`
	StickinessDecay float64                   `yaml:"stickiness_decay"`
	Prototypes      map[string]BlockPrototype `yaml:"prototypes"` // Keyed by color name
}

// BlockPrototype describes how blocks of one color behave.
type BlockPrototype struct {
	// HitSprites are the damage stages shown after each non-fatal hit.
	// An empty string marks a stage whose sprite is missing.
	HitSprites []string `yaml:"hit_sprites"`
	Stickiness float64  `yaml:"stickiness"` // 1.0 leaves the ball alone
	Glyph      string   `yaml:"glyph"`      // Undamaged look
}

// PaddleConfig defines paddle dimensions and keyboard nudge speed.
type PaddleConfig struct {
	Width float64 `yaml:"width"` // World units
	Speed float64 `yaml:"speed"` // Units per second when steered by keys
}

// GameplayConfig defines lives and global time scale.
type GameplayConfig struct {
	Lives     int     `yaml:"lives"`
	GameSpeed float64 `yaml:"game_speed"` // Simulation time scale, 0.1 to 3.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to game speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Game speed bounds, matching the range the time scale slider allowed.
const (
	MinGameSpeed = 0.1
	MaxGameSpeed = 3.0
)
