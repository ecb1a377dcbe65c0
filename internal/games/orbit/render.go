package orbit

import (
	"fmt"

	"orbrun/internal/core"
	"orbrun/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '●'
	ObstacleChar = '▓'
	GroundChar   = '═'
	WallChar     = '·'
	LightChar    = '✦'
)

// Fallback colors for elements that carry no material.
const (
	playerColor = 0xffffff
	lightColor  = 0xffe9a0
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.genErr != nil {
		g.drawCenteredMessage(dst, "LEVEL ERROR", g.genErr.Error())
		return
	}

	groundY := dst.Height() - g.cfg.Render.GroundOffset
	// Keep the player a fixed margin in from the left edge.
	playerX, _ := g.view.PlayerPosition()
	viewLeft := playerX - g.cfg.Render.PlayerMargin

	p := projection{
		xScale:   g.cfg.Render.CellsPerUnitX,
		yScale:   g.cfg.Render.CellsPerUnitY,
		viewLeft: viewLeft,
		groundY:  groundY,
	}

	// Back to front: wall, lights, ground, obstacles, player.
	if !g.cfg.Render.HideWall {
		for _, o := range g.world.Level.BgObjects {
			x, y := p.cell(o.X, o.Y)
			dst.SetCell(x, y, WallChar, core.NewRGB(o.Material.Color))
		}
	}
	if !g.cfg.Render.HideLights {
		for _, l := range g.world.Level.Lights {
			x, y := p.cell(l.X, l.Y)
			dst.SetCell(x, y, LightChar, core.NewRGB(lightColor))
		}
	}

	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, o := range g.world.Level.Obstacles {
		g.drawSphere(dst, p, o.X, o.Y, ObstacleChar, core.NewRGB(o.Material.Color))
	}

	px, py := g.view.PlayerPosition()
	g.drawSphere(dst, p, px, py, PlayerChar, core.NewRGB(playerColor))

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.view.Collided() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("%s  |  Press R to restart", g.view.ScoreLabel()))
	}
}

// projection maps world coordinates to screen cells. World y grows up,
// screen y grows down, and terminal cells are roughly twice as tall as
// they are wide, hence the separate scales.
type projection struct {
	xScale   int
	yScale   int
	viewLeft float32
	groundY  int
}

func (p projection) cell(wx, wy float32) (int, int) {
	x := int((wx-p.viewLeft)*float32(p.xScale) + 0.5)
	y := p.groundY - int(wy*float32(p.yScale)+0.5)
	return x, y
}

// drawSphere renders a unit-diameter sphere centered at (wx, wy) as a
// filled block of cells.
func (g *Game) drawSphere(dst *core.Screen, p projection, wx, wy float32, r rune, fg core.RGB) {
	left, top := p.cell(wx-sim.SphereRadius, wy+sim.SphereRadius)
	right, bottom := p.cell(wx+sim.SphereRadius, wy-sim.SphereRadius)
	// Spheres rest on the floor at y=0; never draw into the ground line.
	bottom = core.Min(bottom, p.groundY-1)

	for y := top; y <= bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetCell(x, y, r, fg)
		}
	}
}

// drawHUD places the run telemetry: frame rate top-left, score
// top-right, seed bottom-left.
func (g *Game) drawHUD(dst *core.Screen) {
	fps := sim.FPSLabel(g.fpsAvg, g.fpsOK)
	dst.DrawText(1, 0, fps)

	score := g.view.ScoreLabel()
	dst.DrawText(dst.Width()-len(score)-1, 0, score)

	dst.DrawText(1, dst.Height()-1, g.view.SeedLabel())
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
