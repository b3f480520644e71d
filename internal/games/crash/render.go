package crash

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/sim"
)

const (
	laneDashLen = 2 // Rows per lane dash
	laneGapLen  = 1
	laneScroll  = 6 // Ticks per row of road scroll
	sparkBlink  = 150 * time.Millisecond
)

// layout places the field on the screen.
type layout struct {
	fieldX, fieldY int // Top-left cell of the field
	cols, rows     int
}

func (g *Game) layout() layout {
	f := g.cfg.Field
	cols := int(math.Ceil(g.params.FieldWidth / f.CellWidth))
	rows := int(math.Ceil(g.params.FieldHeight / f.CellHeight))
	return layout{
		fieldX: max((g.runtime.ScreenW-cols)/2, 0),
		fieldY: 1,
		cols:   cols,
		rows:   rows,
	}
}

// cellRect converts a world box into the screen cells it covers.
func (g *Game) cellRect(l layout, b core.Box) core.Rect {
	f := g.cfg.Field
	x0 := int(math.Floor(b.Left() / f.CellWidth))
	x1 := int(math.Ceil(b.Right() / f.CellWidth))
	y0 := int(math.Floor(b.Top() / f.CellHeight))
	y1 := int(math.Ceil(b.Bottom() / f.CellHeight))

	// Clip to the field; bricks enter from above it.
	x0, x1 = core.Clamp(x0, 0, l.cols), core.Clamp(x1, 0, l.cols)
	y0, y1 = core.Clamp(y0, 0, l.rows), core.Clamp(y1, 0, l.rows)
	return core.NewRect(l.fieldX+x0, l.fieldY+y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	l := g.layout()

	g.drawRoad(dst, l)
	g.drawBricks(dst, l)
	g.drawEffects(dst, l)
	g.drawCar(dst, l)
	g.drawHUD(dst, l)

	if g.frozen {
		g.drawGameOver(dst, l)
	} else if g.paused {
		g.drawPaused(dst)
	}
}

func (g *Game) drawRoad(dst *core.Screen, l layout) {
	dst.DrawVLine(l.fieldX-1, l.fieldY, l.rows, '│', core.ColorRoad)
	dst.DrawVLine(l.fieldX+l.cols, l.fieldY, l.rows, '│', core.ColorRoad)

	// Lane dividers scroll down; the road stops with everything else.
	offset := g.ticks / laneScroll
	period := laneDashLen + laneGapLen
	for lane := 1; lane < sim.Columns; lane++ {
		x := l.fieldX + lane*l.cols/sim.Columns
		for row := 0; row < l.rows; row++ {
			if (row-offset%period+period)%period < laneDashLen {
				dst.SetColored(x, l.fieldY+row, '┊', core.ColorLane)
			}
		}
	}
}

func (g *Game) drawBricks(dst *core.Screen, l layout) {
	now := g.motionTime()
	for _, b := range g.bricks() {
		if b.Hit {
			continue
		}
		dst.DrawRect(g.cellRect(l, brickBox(b, now)), brickGlyph(b.Angle(now)), tierColor(b.Tier))
	}
}

// brickGlyph picks a fill that hints at the brick's rotation.
func brickGlyph(angle float64) rune {
	a := math.Mod(math.Abs(angle), 90)
	if a < 22.5 || a >= 67.5 {
		return '█'
	}
	return '▓'
}

func tierColor(t sim.Tier) core.Color {
	switch t {
	case sim.TierTurbo:
		return core.ColorTurbo
	case sim.TierExtreme:
		return core.ColorExtreme
	default:
		return core.ColorBrick
	}
}

func (g *Game) drawEffects(dst *core.Screen, l layout) {
	now := g.motionTime()
	for _, e := range g.effects {
		// Effects follow the brick's path until the brick leaves the field.
		at := min(now, e.brick.ExpiresAt())
		r := g.cellRect(l, brickBox(e.brick, at))
		if r.W <= 0 || r.H <= 0 {
			continue
		}

		spark := '*'
		if (g.now/sparkBlink)%2 == 1 {
			spark = '+'
		}
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		dst.SetColored(cx, cy, '✸', core.ColorBrickHit)
		for _, d := range [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, {-2, 0}, {2, 0}} {
			dst.SetColored(cx+d[0], cy+d[1], spark, core.ColorEffect)
		}
	}
}

func (g *Game) drawCar(dst *core.Screen, l layout) {
	r := g.cellRect(l, g.car.box())
	if r.W <= 0 || r.H <= 0 {
		return
	}
	dst.DrawRect(r, '█', core.ColorCar)

	// The nose shows the lean.
	nose := '▲'
	switch {
	case g.car.angle <= -5:
		nose = '◤'
	case g.car.angle >= 5:
		nose = '◥'
	}
	dst.SetColored(r.X+r.W/2, r.Y, nose, core.ColorCar)
	if r.W >= 3 && r.H >= 2 {
		dst.SetColored(r.X, r.Bottom()-1, '▀', core.ColorRoad)
		dst.SetColored(r.Right()-1, r.Bottom()-1, '▀', core.ColorRoad)
	}
}

func (g *Game) drawHUD(dst *core.Screen, l layout) {
	s := g.engine.Session()
	dst.DrawText(l.fieldX, 0, fmt.Sprintf("Score: %d", s.Score()), core.ColorScore)
	dst.DrawText(l.fieldX, l.fieldY+l.rows, fmt.Sprintf("Lives: %d", s.Lives()), core.ColorLives)

	switch tier := g.engine.Tier(); tier {
	case sim.TierTurbo, sim.TierExtreme:
		badge := strings.ToUpper(tier.String())
		dst.DrawText(l.fieldX+l.cols-len(badge), 0, badge, tierColor(tier))
	}
}

func (g *Game) drawGameOver(dst *core.Screen, l layout) {
	// Top right of the field, one word per line.
	for i, word := range []string{"GAME.", "OVER."} {
		dst.DrawText(l.fieldX+l.cols-len(word)-1, l.fieldY+1+i, word, core.ColorGameOver)
	}
	dst.DrawTextCentered(l.fieldY+l.rows/2, "R restart  Q quit", core.ColorDefault)
}

func (g *Game) drawPaused(dst *core.Screen) {
	text := "PAUSED"
	w, h := len(text)+4, 3
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.DrawRect(core.NewRect(x, y, w, h), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, w, h), core.ColorDefault)
	dst.DrawText(x+2, y+1, text, core.ColorScore)
}
