package config

import (
	_ "embed"
)

//go:embed defaults/cavebat.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file, byte for
// byte. Used by the CLI to print a starting point for custom configs.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration, used when no YAML file is
// found or the embedded one fails to parse.
func Default() CaveConfig {
	return CaveConfig{
		World: WorldConfig{
			Width:  1280,
			Height: 720,
		},
		Physics: PhysicsConfig{
			Gravity:      1800.0,
			FlapImpulse:  -600.0,
			MaxFallSpeed: 1200.0,
		},
		Scroll: ScrollConfig{
			BaseSpeed: 280.0,
			Thrust:    90.0,
			Drag:      0.5,
		},
		Obstacles: ObstacleConfig{
			Width:       120,
			Spacing:     360,
			MinGap:      210,
			MaxGap:      290,
			Margin:      96,
			TipMargin:   16,
			TipIntrude:  52,
			PrewarmLead: 200,
			SpawnLead:   80,
			CullMargin:  20,
			CullDist:    200,
		},
		Bat: BatConfig{
			XFrac:        0.28,
			BodyRadius:   24,
			WingSpan:     72,
			WingLength:   48,
			FlapDuration: 0.23,
			FlapAmpDeg:   45.0,
		},
	}
}
