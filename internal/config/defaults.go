package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded default configuration. It
// mirrors defaults/breakout.yaml and is used if the embedded file is broken.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Ball: BallConfig{
			LaunchX:      2,
			LaunchY:      15,
			MinSpeed:     15,
			MaxSpeed:     25,
			RandomFactor: 0.5,
			ClampStep:    1.0,
			Perturbation: "symmetric",
		},
		Blocks: BlocksConfig{
			PointsPerBlock:  10,
			StickinessDecay: 0.1,
			Prototypes: map[string]BlockPrototype{
				"red":    {Glyph: "█", Stickiness: 1.0},
				"green":  {Glyph: "█", Stickiness: 1.0, HitSprites: []string{"▓"}},
				"white":  {Glyph: "█", Stickiness: 0.9, HitSprites: []string{"▓", "▒"}},
				"yellow": {Glyph: "█", Stickiness: 1.1, HitSprites: []string{"▓", "▒", "░"}},
				"grey":   {Glyph: "▒", Stickiness: 1.0},
			},
		},
		Paddle: PaddleConfig{
			Width: 2,
			Speed: 18,
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			GameSpeed: 1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
