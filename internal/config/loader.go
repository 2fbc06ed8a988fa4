package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads the game configuration and validates it.
// Search order: customPath -> ~/.blockbreaker/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := loadBreakoutRaw(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadBreakoutRaw(customPath string) (BreakoutConfig, error) {
	var cfg BreakoutConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockbreaker", "configs", filename)
}

// Validate reports every value that would break the simulation.
func (c BreakoutConfig) Validate() error {
	var errs []error

	b := c.Ball
	if b.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ball.min_speed must be positive, got %g", b.MinSpeed))
	}
	if b.MaxSpeed < b.MinSpeed {
		errs = append(errs, fmt.Errorf("ball.max_speed %g is below ball.min_speed %g", b.MaxSpeed, b.MinSpeed))
	}
	if b.ClampStep <= 0 {
		errs = append(errs, fmt.Errorf("ball.clamp_step must be positive, got %g", b.ClampStep))
	}
	if b.RandomFactor < 0 {
		errs = append(errs, fmt.Errorf("ball.random_factor must not be negative, got %g", b.RandomFactor))
	}
	if b.LaunchX == 0 && b.LaunchY == 0 {
		errs = append(errs, errors.New("ball launch impulse must be non-zero"))
	}
	switch b.Perturbation {
	case "", "symmetric", "biased":
	default:
		errs = append(errs, fmt.Errorf("ball.perturbation %q is not symmetric or biased", b.Perturbation))
	}

	if c.Blocks.PointsPerBlock < 0 {
		errs = append(errs, fmt.Errorf("blocks.points_per_block must not be negative, got %d", c.Blocks.PointsPerBlock))
	}
	if c.Blocks.StickinessDecay < 0 {
		errs = append(errs, fmt.Errorf("blocks.stickiness_decay must not be negative, got %g", c.Blocks.StickinessDecay))
	}
	for name, proto := range c.Blocks.Prototypes {
		if proto.Stickiness <= 0 {
			errs = append(errs, fmt.Errorf("blocks.prototypes.%s.stickiness must be positive, got %g", name, proto.Stickiness))
		}
	}

	if c.Paddle.Width <= 0 {
		errs = append(errs, fmt.Errorf("paddle.width must be positive, got %g", c.Paddle.Width))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.GameSpeed < MinGameSpeed || c.Gameplay.GameSpeed > MaxGameSpeed {
		errs = append(errs, fmt.Errorf("gameplay.game_speed %g outside [%g, %g]", c.Gameplay.GameSpeed, MinGameSpeed, MaxGameSpeed))
	}

	for i, lvl := range c.Levels {
		if len(lvl.Rows) == 0 {
			errs = append(errs, fmt.Errorf("levels[%d] (%s) has no rows", i, lvl.ID))
		}
	}

	return errors.Join(errs...)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.GameSpeed = 0.8
		cfg.Paddle.Width = 2.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.GameSpeed = 1.3
		cfg.Ball.MaxSpeed += 5
	}
}
