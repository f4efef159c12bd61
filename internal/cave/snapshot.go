package cave

import "github.com/vovakirdan/cave-bat/internal/geom"

// Snapshot is the read-only render handoff: everything a display layer
// needs for one frame, copied out of the simulation so no component
// holds live references across ticks.
type Snapshot struct {
	Bat       BatSnapshot
	Obstacles []ObstacleSnapshot

	Score    int
	Best     int
	GameOver bool
	Paused   bool

	ForwardSpeed float64
	ScrollOffset float64

	Drops []WaterDrop
	Blood []BloodDrop
	Parts []Part
}

// BatSnapshot is the flyer's pose for rendering.
type BatSnapshot struct {
	X, Y      float64
	VY        float64
	Alive     bool
	WingAngle float64 // degrees, flap-burst swing
	Tilt      float64 // degrees, velocity-derived pitch
}

// ObstacleSnapshot carries one obstacle's world-space polygons plus its
// deterministic color seed.
type ObstacleSnapshot struct {
	X      float64
	GapY   int
	GapH   int
	Passed bool
	Tint   float64
	Top    geom.Polygon // world space
	Bottom geom.Polygon // world space
}

// Snapshot captures the current frame state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleSnapshot, 0, len(g.field.Obstacles()))
	for _, o := range g.field.Obstacles() {
		polys := o.Polys()
		obstacles = append(obstacles, ObstacleSnapshot{
			X:      o.X,
			GapY:   o.GapY,
			GapH:   o.GapH,
			Passed: o.Passed,
			Tint:   o.Tint,
			Top:    polys[0],
			Bottom: polys[1],
		})
	}

	return Snapshot{
		Bat: BatSnapshot{
			X:         g.bat.X,
			Y:         g.bat.Y,
			VY:        g.bat.VY,
			Alive:     g.bat.Alive,
			WingAngle: g.bat.WingAngle(),
			Tilt:      g.bat.Tilt(),
		},
		Obstacles:    obstacles,
		Score:        g.score,
		Best:         g.best,
		GameOver:     g.gameOver,
		Paused:       g.paused,
		ForwardSpeed: g.forwardSpeed,
		ScrollOffset: g.scrollOffset,
		Drops:        append([]WaterDrop(nil), g.fx.Drops...),
		Blood:        append([]BloodDrop(nil), g.fx.Blood...),
		Parts:        append([]Part(nil), g.fx.Parts...),
	}
}
