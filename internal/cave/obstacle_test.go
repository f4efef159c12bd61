package cave

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cave-bat/internal/geom"
)

func TestObstacleDeterministicGeometry(t *testing.T) {
	cfg := testConfig()

	a := newObstacle(cfg, 42, 1000, 300, 250)
	b := newObstacle(cfg, 42, 1000, 300, 250)

	if a.Tint != b.Tint {
		t.Errorf("same seed produced tints %g and %g", a.Tint, b.Tint)
	}
	ap, bp := a.Polys(), b.Polys()
	for i := range ap {
		if len(ap[i]) != len(bp[i]) {
			t.Fatalf("polygon %d: vertex counts %d and %d", i, len(ap[i]), len(bp[i]))
		}
		for j := range ap[i] {
			if ap[i][j] != bp[i][j] {
				t.Errorf("polygon %d vertex %d: %v vs %v", i, j, ap[i][j], bp[i][j])
			}
		}
	}

	// Geometry is fixed at construction; re-querying must not mutate it.
	again := a.Polys()
	for i := range ap {
		for j := range ap[i] {
			if ap[i][j] != again[i][j] {
				t.Fatal("Polys changed between calls")
			}
		}
	}
}

func TestObstacleGeometryAcrossSeeds(t *testing.T) {
	cfg := testConfig()
	obs := cfg.Obstacles
	w := obs.Width

	for seed := int64(0); seed < 100; seed++ {
		o := newObstacle(cfg, seed, 0, 300, 250)
		polys := o.Polys()

		for i, poly := range polys {
			if len(poly) != 2*(sideSegments+1) {
				t.Fatalf("seed %d polygon %d: %d vertices", seed, i, len(poly))
			}
			if !geom.IsSimple(poly) {
				t.Errorf("seed %d polygon %d is self-intersecting", seed, i)
			}
		}

		// Spikes respect the gap window minus the allowed tip intrusion.
		for _, p := range polys[0] {
			if p.Y < 0 || p.Y > float64(o.GapY+obs.TipIntrude) {
				t.Errorf("seed %d: stalactite vertex y=%g outside [0, %d]", seed, p.Y, o.GapY+obs.TipIntrude)
			}
		}
		floor := o.GapY + o.GapH
		for _, p := range polys[1] {
			if p.Y < float64(floor-obs.TipIntrude) || p.Y > cfg.World.Height {
				t.Errorf("seed %d: stalagmite vertex y=%g outside [%d, %g]", seed, p.Y, floor-obs.TipIntrude, cfg.World.Height)
			}
		}

		// Tips stay strictly inside the slot width.
		for _, tip := range []geom.Point{o.TopTip(), o.BottomTip()} {
			local := tip.X - o.X
			if local <= 0 || local >= w {
				t.Errorf("seed %d: tip x=%g outside slot (0, %g)", seed, local, w)
			}
			if local < float64(obs.TipMargin-1) || local > w-float64(obs.TipMargin-1) {
				t.Errorf("seed %d: tip x=%g violates the tip margin", seed, local)
			}
		}
	}
}

func TestObstacleTipsIntrudeIntoGap(t *testing.T) {
	cfg := testConfig()
	for seed := int64(0); seed < 50; seed++ {
		o := newObstacle(cfg, seed, 0, 300, 250)
		top, bottom := o.TopTip(), o.BottomTip()

		if top.Y < float64(o.GapY+8) || top.Y > float64(o.GapY+cfg.Obstacles.TipIntrude) {
			t.Errorf("seed %d: stalactite tip y=%g outside intrusion band", seed, top.Y)
		}
		floor := float64(o.GapY + o.GapH)
		if bottom.Y > floor-8 || bottom.Y < floor-float64(cfg.Obstacles.TipIntrude) {
			t.Errorf("seed %d: stalagmite tip y=%g outside intrusion band", seed, bottom.Y)
		}
	}
}

func TestObstacleGapCenterIsClear(t *testing.T) {
	cfg := testConfig()
	r := cfg.Bat.BodyRadius

	for seed := int64(0); seed < 50; seed++ {
		o := newObstacle(cfg, seed, 0, 300, cfg.Obstacles.MinGap)
		center := geom.Point{
			X: o.X + cfg.Obstacles.Width/2,
			Y: float64(o.GapY) + float64(o.GapH)/2,
		}
		for i, poly := range o.Polys() {
			if geom.CirclePolygonCollision(center, r, poly) {
				t.Errorf("seed %d: bat-sized circle at gap center hits polygon %d", seed, i)
			}
		}
	}
}

func TestObstacleUpdateAndOffscreen(t *testing.T) {
	cfg := testConfig()
	o := newObstacle(cfg, 1, 500, 300, 250)

	o.Update(0.5, 280)
	if o.X != 500-140 {
		t.Errorf("update moved obstacle to %g, expected 360", o.X)
	}

	o.X = -cfg.Obstacles.Width - cfg.Obstacles.CullMargin + 1
	if o.Offscreen() {
		t.Error("obstacle within the cull margin reported offscreen")
	}
	o.X = -cfg.Obstacles.Width - cfg.Obstacles.CullMargin - 1
	if !o.Offscreen() {
		t.Error("obstacle past the cull margin not reported offscreen")
	}
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := randRange(rng, 3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("randRange(3, 9) = %d", v)
		}
	}
	if randRange(rng, 5, 5) != 5 {
		t.Error("degenerate range must return lo")
	}
	if randRange(rng, 5, 2) != 5 {
		t.Error("inverted range must return lo")
	}
}
