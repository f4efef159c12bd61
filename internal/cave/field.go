package cave

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cave-bat/internal/config"
)

// prewarmCount is how many obstacles exist immediately after a reset,
// so the whole cave is visible instead of revealing itself one spawn at
// a time.
const prewarmCount = 6

// obstacleField owns the active obstacle sequence: spawning, scrolling,
// pass scoring, and culling. It draws gap windows and per-obstacle
// seeds from the session RNG stream.
type obstacleField struct {
	obstacles []*Obstacle
	rng       *rand.Rand
	cfg       *config.CaveConfig
}

func newObstacleField(cfg *config.CaveConfig, rng *rand.Rand) *obstacleField {
	f := &obstacleField{
		obstacles: make([]*Obstacle, 0, prewarmCount+2),
		rng:       rng,
		cfg:       cfg,
	}
	f.Reset()
	return f
}

// Reset discards all obstacles and pre-warms the field with
// prewarmCount obstacles spaced by the base spacing, starting past the
// right edge of the world.
func (f *obstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
	x := f.cfg.World.Width + f.cfg.Obstacles.PrewarmLead
	for i := 0; i < prewarmCount; i++ {
		f.spawnAt(x)
		x += f.cfg.Obstacles.Spacing
	}
}

// Step advances every obstacle by forwardSpeed*dt, counts newly passed
// obstacles (exactly once each, latched by Passed), culls obstacles
// fully off the left edge, and spawns a new one when the most recent
// obstacle has cleared the spacing threshold. Returns the number of
// passes scored this tick.
func (f *obstacleField) Step(dt, forwardSpeed, flyerX float64) int {
	// Spawn spacing tracks forward speed: a slow player is not flooded
	// with obstacles, a fast one gets at most 1.5x the base spacing.
	base := f.cfg.Obstacles.Spacing
	ratio := (forwardSpeed + 1) / (f.cfg.Scroll.BaseSpeed + 1)
	spacing := math.Max(0.8*base, base*math.Min(1.5, ratio))
	if n := len(f.obstacles); n == 0 || f.obstacles[n-1].X < f.cfg.World.Width-spacing {
		f.spawnAt(f.cfg.World.Width + f.cfg.Obstacles.SpawnLead)
	}

	passed := 0
	for _, o := range f.obstacles {
		o.Update(dt, forwardSpeed)
		if !o.Passed && o.X+f.cfg.Obstacles.Width < flyerX {
			o.Passed = true
			passed++
		}
	}

	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !o.Offscreen() {
			live = append(live, o)
		}
	}
	f.obstacles = live

	return passed
}

// spawnAt appends a new obstacle at x with a random gap window placed
// inside the vertical margins, so the gap never touches the ceiling or
// the floor.
func (f *obstacleField) spawnAt(x float64) {
	obs := f.cfg.Obstacles
	gapH := randRange(f.rng, obs.MinGap, obs.MaxGap)
	gapY := randRange(f.rng, obs.Margin, int(f.cfg.World.Height)-obs.Margin-gapH)
	f.obstacles = append(f.obstacles, newObstacle(f.cfg, f.rng.Int63(), x, gapY, gapH))
}

// Obstacles exposes the active list for collision and rendering.
func (f *obstacleField) Obstacles() []*Obstacle {
	return f.obstacles
}
