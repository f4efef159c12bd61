package cave

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cave-bat/internal/config"
	"github.com/vovakirdan/cave-bat/internal/geom"
)

// sideSegments is the number of interpolation steps along each spike
// flank. Five steps is enough waviness without inflating the collision
// polygons.
const sideSegments = 5

// Obstacle is one stalactite/stalagmite pair with a passable gap
// between them. Geometry is generated once at construction from the
// obstacle's own RNG stream and never changes afterwards; only X moves.
type Obstacle struct {
	X      float64 // left edge of the obstacle slot, world units
	GapY   int     // top of the passable gap
	GapH   int     // gap height
	Passed bool    // scoring latch, set exactly once

	// Tint is a deterministic per-obstacle color factor in [0.9, 1.1),
	// handed to the renderer as this obstacle's color seed.
	Tint float64

	top    geom.Polygon // stalactite, obstacle-local coordinates
	bottom geom.Polygon // stalagmite, obstacle-local coordinates

	cfg *config.CaveConfig
}

// newObstacle builds an obstacle at x with the given gap window. Each
// obstacle seeds an owned RNG from the session stream, so its shape is
// fixed once constructed while consecutive obstacles still differ even
// under a fixed session seed.
func newObstacle(cfg *config.CaveConfig, seed int64, x float64, gapY, gapH int) *Obstacle {
	o := &Obstacle{
		X:    x,
		GapY: gapY,
		GapH: gapH,
		cfg:  cfg,
	}
	rng := rand.New(rand.NewSource(seed))
	o.Tint = 0.9 + rng.Float64()*0.2
	o.buildSpikes(rng)
	return o
}

// Update moves the obstacle left by the current forward speed.
func (o *Obstacle) Update(dt, forwardSpeed float64) {
	o.X -= forwardSpeed * dt
}

// Offscreen reports whether the obstacle has fully left the world,
// with a small slack so it is never culled a frame early.
func (o *Obstacle) Offscreen() bool {
	return o.X+o.cfg.Obstacles.Width < -o.cfg.Obstacles.CullMargin
}

// Polys returns both spike polygons in world space, offset by the
// obstacle's current X.
func (o *Obstacle) Polys() []geom.Polygon {
	return []geom.Polygon{o.offset(o.top), o.offset(o.bottom)}
}

// TopTip returns the world-space tip of the stalactite: the vertex
// reaching deepest into the gap.
func (o *Obstacle) TopTip() geom.Point {
	tip := o.top[0]
	for _, p := range o.top {
		if p.Y > tip.Y {
			tip = p
		}
	}
	return geom.Point{X: tip.X + o.X, Y: tip.Y}
}

// BottomTip returns the world-space tip of the stalagmite.
func (o *Obstacle) BottomTip() geom.Point {
	tip := o.bottom[0]
	for _, p := range o.bottom {
		if p.Y < tip.Y {
			tip = p
		}
	}
	return geom.Point{X: tip.X + o.X, Y: tip.Y}
}

func (o *Obstacle) offset(poly geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(poly))
	for i, p := range poly {
		out[i] = geom.Point{X: p.X + o.X, Y: p.Y}
	}
	return out
}

// buildSpikes generates the stalactite hanging from the ceiling and the
// stalagmite rising from the floor. Tips stay strictly inside
// [TipMargin, Width-TipMargin] so spikes never touch the slot edges and
// consecutive obstacles keep a clean visual seam.
func (o *Obstacle) buildSpikes(rng *rand.Rand) {
	obs := o.cfg.Obstacles
	w := int(obs.Width)

	tipX := randRange(rng, obs.TipMargin, w-obs.TipMargin)
	tipY := o.GapY + randRange(rng, 8, obs.TipIntrude)
	baseW := randRange(rng, int(obs.Width*0.6), int(obs.Width*0.9))
	o.top = organicSpike(rng, tipX, tipY, 0, baseW, w)

	bottomTop := o.GapY + o.GapH
	tipX = randRange(rng, obs.TipMargin, w-obs.TipMargin)
	tipY = bottomTop - randRange(rng, 8, obs.TipIntrude)
	baseW = randRange(rng, int(obs.Width*0.6), int(obs.Width*0.9))
	o.bottom = organicSpike(rng, tipX, tipY, int(o.cfg.World.Height), baseW, w)
}

// organicSpike builds a tapered polygon with slight waviness on both
// flanks, running base -> tip on the left side and tip -> base on the
// right, so the ring is counter-clockwise and free of duplicate
// vertices. The bulge is scaled by sin(pi*t): zero at base and tip,
// maximal at mid-shaft, which keeps the loop simple by construction.
func organicSpike(rng *rand.Rand, tipX, tipY, baseY, baseWidth, slotWidth int) geom.Polygon {
	half := baseWidth / 2
	leftBaseX := maxInt(0, tipX-half)
	rightBaseX := minInt(slotWidth, tipX+half)

	left := make([]geom.Point, 0, sideSegments+1)
	right := make([]geom.Point, 0, sideSegments+1)
	for i := 0; i <= sideSegments; i++ {
		t := float64(i) / sideSegments
		y := (1-t)*float64(baseY) + t*float64(tipY)
		bulge := math.Sin(t*math.Pi) * float64(randRange(rng, 2, 6))
		leftX := (1-t)*float64(leftBaseX) + t*float64(tipX-1) - bulge
		rightX := (1-t)*float64(rightBaseX) + t*float64(tipX+1) + bulge
		left = append(left, geom.Point{X: leftX, Y: y})
		right = append(right, geom.Point{X: rightX, Y: y})
	}

	poly := make(geom.Polygon, 0, 2*(sideSegments+1))
	poly = append(poly, left...)
	for i := sideSegments; i >= 0; i-- {
		poly = append(poly, right[i])
	}
	return poly
}

// randRange returns a uniform int in the inclusive range [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
