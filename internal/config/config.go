// Package config provides the YAML-based tuning surface for the cave
// simulation. All values are fixed once loaded; components receive the
// config by reference and never mutate it at runtime.
package config

import "fmt"

// CaveConfig contains every tunable constant of the game.
type CaveConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Bat       BatConfig      `yaml:"bat"`
}

// WorldConfig defines the simulation space in world units. The world is
// independent of the terminal size; the renderer projects it onto cells.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines vertical flight physics in world units/second.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // downward acceleration
	FlapImpulse  float64 `yaml:"flap_impulse"`   // vy override on flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity
}

// ScrollConfig defines the flap-driven forward locomotion model. Each
// flap adds Thrust to the forward speed; the speed then decays by
// v -= v*Drag*dt and is clamped to [0, Thrust+BaseSpeed].
type ScrollConfig struct {
	BaseSpeed float64 `yaml:"base_speed"` // reference scroll speed for spacing math
	Thrust    float64 `yaml:"thrust"`     // forward speed added per flap
	Drag      float64 `yaml:"drag"`       // exponential decay coefficient per second
}

// ObstacleConfig defines obstacle geometry and lifecycle in world units.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`        // horizontal slot per obstacle
	Spacing     float64 `yaml:"spacing"`      // base distance between spawns
	MinGap      int     `yaml:"min_gap"`      // smallest passable window
	MaxGap      int     `yaml:"max_gap"`      // largest passable window
	Margin      int     `yaml:"margin"`       // gap keep-out from ceiling and floor
	TipMargin   int     `yaml:"tip_margin"`   // spike tip keep-out from slot edges
	TipIntrude  int     `yaml:"tip_intrude"`  // max tip intrusion into the gap
	PrewarmLead float64 `yaml:"prewarm_lead"` // x offset of the first pre-warmed obstacle
	SpawnLead   float64 `yaml:"spawn_lead"`   // x offset of obstacles spawned mid-game
	CullMargin  float64 `yaml:"cull_margin"`  // how far past the left edge before removal
	CullDist    float64 `yaml:"cull_dist"`    // collision-test distance threshold
}

// BatConfig defines the player-controlled bat.
type BatConfig struct {
	XFrac        float64 `yaml:"x_frac"`        // fixed horizontal position as a fraction of world width
	BodyRadius   float64 `yaml:"body_radius"`   // collision circle radius
	WingSpan     float64 `yaml:"wing_span"`     // cosmetic wing dimensions
	WingLength   float64 `yaml:"wing_length"`   //
	FlapDuration float64 `yaml:"flap_duration"` // seconds of wing-burst animation per flap
	FlapAmpDeg   float64 `yaml:"flap_amp_deg"`  // wing swing amplitude in degrees
}

// X returns the bat's fixed horizontal position in world units.
func (b BatConfig) X(worldW float64) float64 {
	return worldW * b.XFrac
}

// Validate rejects configurations that would let the generator build
// degenerate geometry. Violations are load-time defects, never runtime
// conditions.
func (c *CaveConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %.0fx%.0f", c.World.Width, c.World.Height)
	}
	if c.Obstacles.MinGap <= 0 || c.Obstacles.MaxGap < c.Obstacles.MinGap {
		return fmt.Errorf("config: invalid gap range [%d, %d]", c.Obstacles.MinGap, c.Obstacles.MaxGap)
	}
	if float64(2*c.Obstacles.Margin+c.Obstacles.MaxGap) > c.World.Height {
		return fmt.Errorf("config: margins plus max gap (%d) exceed world height (%.0f)",
			2*c.Obstacles.Margin+c.Obstacles.MaxGap, c.World.Height)
	}
	if float64(2*c.Obstacles.TipMargin) >= c.Obstacles.Width {
		return fmt.Errorf("config: tip margin %d leaves no room in obstacle width %.0f",
			c.Obstacles.TipMargin, c.Obstacles.Width)
	}
	if c.Bat.BodyRadius <= 0 {
		return fmt.Errorf("config: bat body radius must be positive, got %g", c.Bat.BodyRadius)
	}
	if c.Bat.XFrac <= 0 || c.Bat.XFrac >= 1 {
		return fmt.Errorf("config: bat x_frac %g must be inside (0, 1)", c.Bat.XFrac)
	}
	if c.Scroll.Drag < 0 {
		return fmt.Errorf("config: drag must be non-negative, got %g", c.Scroll.Drag)
	}
	return nil
}
