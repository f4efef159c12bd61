package cave

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cave-bat/internal/config"
	"github.com/vovakirdan/cave-bat/internal/geom"
)

// Cosmetic fallout: dripping water, blood bursts, and the bat breaking
// into parts on death. Nothing in here feeds back into collision or
// scoring; the session updates these even after game over so the
// aftermath keeps falling.

// ShapeKind tags the geometric payload of a Part.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeEllipse
	ShapePolygon
)

// Part is one detached piece of the bat. All variants share the same
// position/velocity physics; Kind only selects which payload fields the
// renderer reads (Radius, RX/RY, or Poly).
type Part struct {
	Kind  ShapeKind
	X, Y  float64
	VX    float64
	VY    float64
	Angle float64 // radians, for ellipse and polygon variants
	Spin  float64 // radians/s

	Radius float64      // ShapeCircle
	RX, RY float64      // ShapeEllipse
	Poly   geom.Polygon // ShapePolygon, part-local coordinates

	Alive bool
}

// Update applies shared physics to any part variant: gravity, world
// scroll drift, and rotation.
func (p *Part) Update(dt, forwardSpeed, gravity float64) {
	if !p.Alive {
		return
	}
	p.VY += gravity * dt
	p.X += (p.VX - forwardSpeed) * dt
	p.Y += p.VY * dt
	p.Angle += p.Spin * dt
}

// WaterDrop falls from a stalactite tip and dies on spike contact or
// past the floor.
type WaterDrop struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alive  bool
}

// BloodDrop is spawned in a burst at the impact point.
type BloodDrop struct {
	X, Y   float64
	VX, VY float64
	Alive  bool
}

// bloodBurstSize is how many droplets an impact spawns.
const bloodBurstSize = 22

// dripRate is the expected water drops per second per on-screen
// obstacle.
const dripRate = 0.18

type effects struct {
	Drops []WaterDrop
	Blood []BloodDrop
	Parts []Part

	rng *rand.Rand
	cfg *config.CaveConfig
}

func newEffects(cfg *config.CaveConfig, rng *rand.Rand) *effects {
	return &effects{rng: rng, cfg: cfg}
}

// Reset clears all fallout.
func (e *effects) Reset() {
	e.Drops = e.Drops[:0]
	e.Blood = e.Blood[:0]
	e.Parts = e.Parts[:0]
}

// Update advances every cosmetic entity and culls the dead ones.
// Obstacles are needed so water drops can splash against spikes.
func (e *effects) Update(dt, forwardSpeed float64, obstacles []*Obstacle) {
	gravity := e.cfg.Physics.Gravity
	worldW := e.cfg.World.Width
	worldH := e.cfg.World.Height

	// Occasionally shed a drop from a stalactite tip.
	for _, o := range obstacles {
		if o.X < -e.cfg.Obstacles.Width || o.X > worldW {
			continue
		}
		if e.rng.Float64() < dripRate*dt {
			tip := o.TopTip()
			e.Drops = append(e.Drops, WaterDrop{
				X:      tip.X + e.rng.Float64()*4 - 2,
				Y:      tip.Y + 2,
				VX:     e.rng.Float64()*50 - 25,
				VY:     40 + e.rng.Float64()*50,
				Radius: 2,
				Alive:  true,
			})
		}
	}

	liveDrops := e.Drops[:0]
	for i := range e.Drops {
		d := &e.Drops[i]
		d.VY += gravity * dt
		d.X += (d.VX - forwardSpeed) * dt
		d.Y += d.VY * dt
		if d.X < -50 || d.X > worldW+50 || d.Y > worldH+10 {
			continue
		}
		splashed := false
		for _, o := range obstacles {
			for _, poly := range o.Polys() {
				if geom.CirclePolygonCollision(geom.Point{X: d.X, Y: d.Y}, d.Radius, poly) {
					splashed = true
					break
				}
			}
			if splashed {
				break
			}
		}
		if !splashed {
			liveDrops = append(liveDrops, *d)
		}
	}
	e.Drops = liveDrops

	liveBlood := e.Blood[:0]
	for i := range e.Blood {
		b := &e.Blood[i]
		b.VY += gravity * dt
		b.X += (b.VX - forwardSpeed) * dt
		b.Y += b.VY * dt
		if b.X >= -50 && b.X <= worldW+50 && b.Y <= worldH+10 {
			liveBlood = append(liveBlood, *b)
		}
	}
	e.Blood = liveBlood

	liveParts := e.Parts[:0]
	for i := range e.Parts {
		p := &e.Parts[i]
		p.Update(dt, forwardSpeed, gravity)
		if p.X < -60 || p.X > worldW+60 || p.Y > worldH+30 {
			continue
		}
		liveParts = append(liveParts, *p)
		// Falling parts leave a thin blood trail.
		if e.rng.Float64() < 4*dt {
			e.Blood = append(e.Blood, BloodDrop{
				X:     p.X,
				Y:     p.Y,
				VX:    e.rng.Float64()*20 - 10,
				VY:    0,
				Alive: true,
			})
		}
	}
	e.Parts = liveParts
}

// BurstAt sprays a blood burst at the impact point.
func (e *effects) BurstAt(x, y float64) {
	for i := 0; i < bloodBurstSize; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := 60 + e.rng.Float64()*180
		e.Blood = append(e.Blood, BloodDrop{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle)*speed - 80,
			Alive: true,
		})
	}
}

// BreakApart converts the bat's final pose into detached parts: body
// and head circles, eye ellipses, and the two wing membranes as
// polygons. Each part inherits the bat's velocity plus scatter.
func (e *effects) BreakApart(b *Bat) {
	r := e.cfg.Bat.BodyRadius
	scatter := func(spread float64) (float64, float64) {
		return e.rng.Float64()*2*spread - spread, -120 - e.rng.Float64()*160
	}

	vx, vy := scatter(90)
	e.Parts = append(e.Parts, Part{
		Kind: ShapeCircle, X: b.X, Y: b.Y,
		VX: vx, VY: b.VY*0.4 + vy,
		Spin: e.rng.Float64()*6 - 3,
		Radius: r, Alive: true,
	})

	vx, vy = scatter(110)
	e.Parts = append(e.Parts, Part{
		Kind: ShapeCircle, X: b.X + r, Y: b.Y - r*0.3,
		VX: vx, VY: b.VY*0.4 + vy,
		Spin: e.rng.Float64()*6 - 3,
		Radius: r * 0.7, Alive: true,
	})

	for _, side := range []float64{-1, 1} {
		vx, vy = scatter(140)
		wing := geom.Polygon{
			{X: -6, Y: side * e.cfg.Bat.WingSpan * 0.25},
			{X: e.cfg.Bat.WingLength * 0.55, Y: side * e.cfg.Bat.WingSpan * 0.55},
			{X: e.cfg.Bat.WingLength, Y: 0},
		}
		e.Parts = append(e.Parts, Part{
			Kind: ShapePolygon, X: b.X, Y: b.Y + side*(r-6),
			VX: vx, VY: b.VY*0.3 + vy,
			Spin: e.rng.Float64()*10 - 5,
			Poly: wing, Alive: true,
		})
	}

	for _, side := range []float64{-1, 1} {
		vx, vy = scatter(70)
		e.Parts = append(e.Parts, Part{
			Kind: ShapeEllipse, X: b.X + r*1.4, Y: b.Y + side*4,
			VX: vx, VY: b.VY*0.5 + vy,
			Spin: e.rng.Float64()*8 - 4,
			RX: 4, RY: 3, Alive: true,
		})
	}
}
