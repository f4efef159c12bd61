package cave

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cave-bat/internal/core"
	"github.com/vovakirdan/cave-bat/internal/geom"
)

// The renderer projects the float world onto the terminal cell grid and
// rasterizes spike polygons with the same point-in-polygon test the
// collision engine uses, so what the player sees is exactly what kills
// them.

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(worldW, worldH float64, screenW, screenH int) viewport {
	return viewport{
		sx: float64(screenW) / worldW,
		sy: float64(screenH) / worldH,
	}
}

// cellCenter returns the world-space center of cell (cx, cy).
func (v viewport) cellCenter(cx, cy int) geom.Point {
	return geom.Point{
		X: (float64(cx) + 0.5) / v.sx,
		Y: (float64(cy) + 0.5) / v.sy,
	}
}

// toCell converts a world point to its containing cell.
func (v viewport) toCell(p geom.Point) (int, int) {
	return int(p.X * v.sx), int(p.Y * v.sy)
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height())
	snap := g.Snapshot()

	// Cave bounds.
	dst.DrawHLine(0, 0, dst.Width(), '▀', core.ColorStoneDark)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), '▄', core.ColorStoneDark)

	for _, o := range snap.Obstacles {
		color := core.ColorStone
		switch {
		case o.Tint < 0.97:
			color = core.ColorStoneDark
		case o.Tint > 1.03:
			color = core.ColorStoneLight
		}
		fillPolygon(dst, v, o.Top, '█', color)
		fillPolygon(dst, v, o.Bottom, '█', color)
	}

	for _, d := range snap.Drops {
		cx, cy := v.toCell(geom.Point{X: d.X, Y: d.Y})
		dst.SetCell(cx, cy, '·', core.ColorWater)
	}

	if len(snap.Parts) > 0 {
		for _, p := range snap.Parts {
			renderPart(dst, v, p)
		}
	} else if snap.Bat.Alive {
		renderBat(dst, v, snap.Bat, g.cfg.Bat.BodyRadius)
	}

	for _, b := range snap.Blood {
		cx, cy := v.toCell(geom.Point{X: b.X, Y: b.Y})
		dst.SetCell(cx, cy, '∙', core.ColorBlood)
	}

	g.renderHUD(dst, snap)
}

// fillPolygon rasterizes a world-space polygon by testing each cell
// center inside its bounding box.
func fillPolygon(dst *core.Screen, v viewport, poly geom.Polygon, r rune, c core.Color) {
	if len(poly) == 0 {
		return
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	x0, y0 := v.toCell(geom.Point{X: minX, Y: minY})
	x1, y1 := v.toCell(geom.Point{X: maxX, Y: maxY})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if geom.PointInPolygon(v.cellCenter(cx, cy), poly) {
				dst.SetCell(cx, cy, r, c)
			}
		}
	}
}

// renderBat draws the body circle with a directional head cell.
func renderBat(dst *core.Screen, v viewport, b BatSnapshot, radius float64) {
	center := geom.Point{X: b.X, Y: b.Y}
	x0, y0 := v.toCell(geom.Point{X: b.X - radius, Y: b.Y - radius})
	x1, y1 := v.toCell(geom.Point{X: b.X + radius, Y: b.Y + radius})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := v.cellCenter(cx, cy)
			if math.Hypot(p.X-center.X, p.Y-center.Y) <= radius {
				dst.SetCell(cx, cy, '●', core.ColorBat)
			}
		}
	}
	hx, hy := v.toCell(geom.Point{X: b.X + radius, Y: b.Y})
	dst.SetCell(hx, hy, '▶', core.ColorBatRim)

	// Wing hint above the body while the flap burst runs.
	if b.WingAngle > 1 {
		wx, wy := v.toCell(geom.Point{X: b.X, Y: b.Y - radius})
		dst.SetCell(wx, wy-1, '^', core.ColorBatRim)
	}
}

// renderPart draws one detached piece according to its shape tag.
func renderPart(dst *core.Screen, v viewport, p Part) {
	switch p.Kind {
	case ShapeCircle:
		center := geom.Point{X: p.X, Y: p.Y}
		x0, y0 := v.toCell(geom.Point{X: p.X - p.Radius, Y: p.Y - p.Radius})
		x1, y1 := v.toCell(geom.Point{X: p.X + p.Radius, Y: p.Y + p.Radius})
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				q := v.cellCenter(cx, cy)
				if math.Hypot(q.X-center.X, q.Y-center.Y) <= p.Radius {
					dst.SetCell(cx, cy, '●', core.ColorBat)
				}
			}
		}
	case ShapeEllipse:
		cx, cy := v.toCell(geom.Point{X: p.X, Y: p.Y})
		dst.SetCell(cx, cy, '◦', core.ColorBatRim)
	case ShapePolygon:
		world := make(geom.Polygon, len(p.Poly))
		sin, cos := math.Sincos(p.Angle)
		for i, q := range p.Poly {
			world[i] = geom.Point{
				X: p.X + q.X*cos - q.Y*sin,
				Y: p.Y + q.X*sin + q.Y*cos,
			}
		}
		fillPolygon(dst, v, world, '▓', core.ColorBat)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorText)
	if snap.Best > 0 {
		dst.DrawText(2, 0, fmt.Sprintf(" Best: %d ", snap.Best), core.ColorTextDim)
	}

	if snap.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Space to retry", snap.Score, snap.Best))
	}
}

// drawCenteredMessage draws a bordered message box mid-screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorText)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorTextDim)
}
