// Package cave implements the full game simulation: bat flight physics,
// procedural obstacle generation, the obstacle lifecycle, collision
// detection, and scoring. It contains no rendering or input dependencies
// beyond the platform-neutral core types, so every rule is unit-testable.
package cave

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cave-bat/internal/config"
	"github.com/vovakirdan/cave-bat/internal/core"
	"github.com/vovakirdan/cave-bat/internal/geom"
)

// Game is the session controller. It owns all mutable game state; no
// component keeps references across ticks. One Update pass per frame
// mutates everything, so there is no concurrency to arbitrate.
type Game struct {
	cfg *config.CaveConfig
	rng *rand.Rand

	bat   *Bat
	field *obstacleField
	fx    *effects

	score    int
	best     int
	gameOver bool
	paused   bool

	// Flap-driven forward locomotion, shared by obstacle scroll and the
	// parallax offset. Decoupled from the bat's vertical physics.
	forwardSpeed float64
	scrollOffset float64
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg *config.CaveConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used by the CLI.
func (g *Game) ID() string { return "cavebat" }

// Title returns the display name.
func (g *Game) Title() string { return "Cave Bat" }

// Reset starts a fresh session seeded from the platform config. The
// best score survives; everything else returns to its initial state.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.restart()
}

// restart resets the session while keeping the current RNG stream, so
// in-session replays get fresh obstacle shapes.
func (g *Game) restart() {
	startX := g.cfg.Bat.X(g.cfg.World.Width)
	startY := g.cfg.World.Height / 2
	if g.bat == nil {
		g.bat = newBat(g.cfg, startX, startY)
		g.field = newObstacleField(g.cfg, g.rng)
		g.fx = newEffects(g.cfg, g.rng)
	} else {
		g.bat.Reset(startX, startY)
		g.field.Reset()
		g.fx.Reset()
	}
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.forwardSpeed = 0
	g.scrollOffset = 0
}

// Step consumes one frame of input and advances the simulation by dt
// seconds. This is the platform entry point; tests usually drive
// Update and PerformFlap directly.
func (g *Game) Step(in core.InputFrame, dt float64) {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.restart()
		return
	}
	if in.Has(core.ActionFlap) {
		if g.gameOver {
			g.restart()
			return
		}
		g.PerformFlap()
	}

	g.Update(dt)
}

// PerformFlap applies the wing impulse and adds forward thrust. The
// thrust lands on the shared forward speed, so flap frequency controls
// how fast the cave scrolls past.
func (g *Game) PerformFlap() {
	if g.gameOver {
		return
	}
	g.bat.Flap()
	g.forwardSpeed += g.cfg.Scroll.Thrust
}

// Update advances the simulation by dt seconds: bat physics, forward
// speed decay, obstacle lifecycle, scoring, then collision. Cosmetic
// fallout keeps updating after game over so the aftermath plays out.
func (g *Game) Update(dt float64) {
	if !g.gameOver {
		g.bat.Update(dt)

		// Exponential-style drag, then clamp to the reachable range.
		g.forwardSpeed -= g.forwardSpeed * g.cfg.Scroll.Drag * dt
		g.forwardSpeed = clampF(g.forwardSpeed, 0, g.cfg.Scroll.Thrust+g.cfg.Scroll.BaseSpeed)
		g.scrollOffset += g.forwardSpeed * dt

		g.score += g.field.Step(dt, g.forwardSpeed, g.bat.X)

		g.checkCollisions()
	}

	g.fx.Update(dt, g.forwardSpeed, g.field.Obstacles())
}

// checkCollisions tests the bat against the world bounds and every
// nearby obstacle polygon. The first hit ends the run; scan order does
// not matter because collision is not an accumulating quantity.
func (g *Game) checkCollisions() {
	r := g.cfg.Bat.BodyRadius

	if g.bat.Y-r <= 0 || g.bat.Y+r >= g.cfg.World.Height {
		g.triggerGameOver()
		return
	}

	center := geom.Point{X: g.bat.X, Y: g.bat.Y}
	halfW := g.cfg.Obstacles.Width / 2
	for _, o := range g.field.Obstacles() {
		// Obstacles beyond the cull distance cannot reach the bat's
		// fixed-radius body; skip the polygon tests entirely.
		if math.Abs(o.X+halfW-g.bat.X) > g.cfg.Obstacles.CullDist {
			continue
		}
		for _, poly := range o.Polys() {
			if geom.CirclePolygonCollision(center, r, poly) {
				g.spawnImpactBurst(o, center, r)
				g.triggerGameOver()
				return
			}
		}
	}
}

// spawnImpactBurst sprays blood when the bat dies close to a spike tip.
func (g *Game) spawnImpactBurst(o *Obstacle, center geom.Point, r float64) {
	tips := []geom.Point{o.TopTip(), o.BottomTip()}
	best := tips[0]
	bestD2 := math.Inf(1)
	for _, tip := range tips {
		d2 := (tip.X-center.X)*(tip.X-center.X) + (tip.Y-center.Y)*(tip.Y-center.Y)
		if d2 < bestD2 {
			bestD2 = d2
			best = tip
		}
	}
	if bestD2 <= (r+10)*(r+10) {
		g.fx.BurstAt(best.X, best.Y)
	}
}

// triggerGameOver transitions to the terminal state at most once per
// session: it kills the bat, latches the best score, and hands the
// final pose to the fallout system.
func (g *Game) triggerGameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.bat.Alive = false
	if g.score > g.best {
		g.best = g.score
	}
	g.fx.BreakApart(g.bat)
}
