package cave

import (
	"math"

	"github.com/vovakirdan/cave-bat/internal/config"
)

// Bat is the player-controlled flyer. It owns only vertical physics;
// forward motion lives on the session as the shared scroll speed.
// Alive is a one-way latch: once a collision clears it, only an
// explicit Reset restores it.
type Bat struct {
	X, Y  float64
	VY    float64
	Alive bool

	// wingTimer drives the flap-burst animation. Cosmetic only, never
	// a physics input.
	wingTimer float64

	cfg *config.CaveConfig
}

// newBat creates a bat at the given position.
func newBat(cfg *config.CaveConfig, x, y float64) *Bat {
	b := &Bat{cfg: cfg}
	b.Reset(x, y)
	return b
}

// Reset restores the bat to its initial pose and revives it.
func (b *Bat) Reset(x, y float64) {
	b.X = x
	b.Y = y
	b.VY = 0
	b.Alive = true
	b.wingTimer = 0
}

// Flap overrides the vertical velocity with the flap impulse. It is a
// hard set, not an additive impulse, so mashing cannot stack upward
// speed. No-op when dead.
func (b *Bat) Flap() {
	if !b.Alive {
		return
	}
	b.VY = b.cfg.Physics.FlapImpulse
	b.wingTimer = b.cfg.Bat.FlapDuration
}

// Update integrates gravity over dt and advances the wing timer.
// Downward speed is clamped to MaxFallSpeed; upward speed is only ever
// what a flap sets. No-op when dead.
func (b *Bat) Update(dt float64) {
	if !b.Alive {
		return
	}
	b.VY = math.Min(b.VY+b.cfg.Physics.Gravity*dt, b.cfg.Physics.MaxFallSpeed)
	b.Y += b.VY * dt

	if b.wingTimer > 0 {
		b.wingTimer -= dt
	}
}

// WingAngle returns the current cosmetic wing swing in degrees: a
// sin-eased burst while the flap timer runs, zero otherwise. The idle
// flutter is left to the renderer, which has a wall clock.
func (b *Bat) WingAngle() float64 {
	if b.wingTimer <= 0 {
		return 0
	}
	phase := 1 - b.wingTimer/b.cfg.Bat.FlapDuration
	return b.cfg.Bat.FlapAmpDeg * math.Sin(phase*math.Pi)
}

// Tilt returns the nose pitch in degrees derived from vertical speed:
// up when climbing, down when falling.
func (b *Bat) Tilt() float64 {
	t := clampF(-b.VY/700.0, -0.8, 0.6)
	return t * 35.0
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
