package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/raywalk/internal/core/projector"
	"chosenoffset.com/raywalk/internal/render"
)

var (
	backgroundColor = color.RGBA{R: 0x23, G: 0x23, B: 0x23, A: 0xFF}
	ceilingColor    = color.RGBA{R: 0x1A, G: 0x1A, B: 0x22, A: 0xFF}
	floorColor      = color.RGBA{R: 0x2E, G: 0x2A, B: 0x26, A: 0xFF}
	wallLineColor   = color.RGBA{R: 0x00, G: 0xCC, B: 0x66, A: 0xFF}
	rayColor        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x28}
	emitterColor    = color.RGBA{R: 0xFF, G: 0x44, B: 0x44, A: 0xFF}
	dividerColor    = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
)

// rayDrawRange is how far a ray line is drawn on the map pane when it never
// hits a wall.
const rayDrawRange = 4000

// Draw renders one frame: a full look/project pass, then the map pane, the
// scene pane, and the optional debug overlay.
func (g *Game) Draw(screen render.Image) {
	depth := g.Emitter.Look(g.Walls)
	cols := g.Projector.Project(depth)

	screen.Fill(backgroundColor)
	g.drawMapPane(screen, depth)
	g.drawScenePane(screen, cols)

	// Divider between the panes.
	g.Renderer.FillRect(screen, float32(g.PaneWidth)-1, 0, 2, float32(g.ScreenHeight), dividerColor)

	g.Stats.Frame()
	if g.Debug {
		g.drawOverlay(screen)
	}
}

// drawMapPane draws the top-down view: walls, the ray fan, and the emitter.
func (g *Game) drawMapPane(screen render.Image, depth []float64) {
	for _, wall := range g.Walls {
		g.Renderer.StrokeLine(screen,
			float32(wall.A.X), float32(wall.A.Y),
			float32(wall.B.X), float32(wall.B.Y),
			1, wallLineColor)
	}

	pos := g.Emitter.Position()
	rays := g.Emitter.Rays()
	hits := g.Emitter.Hits()
	for i, ray := range rays {
		end := hits[i]
		if math.IsInf(depth[i], 1) {
			// No wall along this ray; draw it out to a fixed range.
			dx, dy := ray.Dir()
			end.X = pos.X + dx*rayDrawRange
			end.Y = pos.Y + dy*rayDrawRange
		}
		g.Renderer.StrokeLine(screen,
			float32(pos.X), float32(pos.Y),
			float32(end.X), float32(end.Y),
			1, rayColor)
	}

	g.Renderer.FillCircle(screen, float32(pos.X), float32(pos.Y), 4, emitterColor)
}

// drawScenePane draws the pseudo-3D view into the right pane: ceiling and
// floor halves, then one shaded rectangle per visible column. Column
// heights are unbounded for very close walls, so they are clipped to the
// pane before hitting the renderer.
func (g *Game) drawScenePane(screen render.Image, cols []projector.Column) {
	paneX := float64(g.PaneWidth)
	paneH := float64(g.ScreenHeight)

	g.Renderer.FillRect(screen, float32(paneX), 0, float32(g.ScreenWidth-g.PaneWidth), float32(paneH/2), ceilingColor)
	g.Renderer.FillRect(screen, float32(paneX), float32(paneH/2), float32(g.ScreenWidth-g.PaneWidth), float32(paneH/2), floorColor)

	for _, c := range cols {
		y, h := clipColumn(c.Y, c.H, paneH)
		g.Renderer.FillRect(screen,
			float32(paneX+c.X), float32(y),
			float32(c.W), float32(h),
			c.Color)
	}
}

// clipColumn clamps a column's vertical extent to [0, paneH], keeping it
// centered. Handles the unbounded height a near-zero distance produces.
func clipColumn(y, h, paneH float64) (float64, float64) {
	if h > paneH || math.IsInf(h, 1) {
		return 0, paneH
	}
	if y < 0 {
		h += y
		y = 0
	}
	if y+h > paneH {
		h = paneH - y
	}
	return y, h
}

// drawOverlay prints frame statistics and the current pose.
func (g *Game) drawOverlay(screen render.Image) {
	pos := g.Emitter.Position()
	mode := "corrected"
	if g.Emitter.Fisheye() {
		mode = "fisheye"
	}
	msg := fmt.Sprintf("FPS: %.1f\nPos: (%.1f, %.1f)  Heading: %.2f\nMode: %s",
		g.Stats.FPS(), pos.X, pos.Y, g.Emitter.Heading(), mode)
	g.Renderer.DebugText(screen, msg, 4, 4)
}
