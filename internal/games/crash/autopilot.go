package crash

import (
	"math"
	"time"

	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/sim"
)

// autopilotHorizon caps how far ahead the autopilot looks for bricks.
const autopilotHorizon = 3 * time.Second

// Autopilot drives the car for headless runs. It picks the column with the
// most time before a brick arrives and holds a touch there until the car is
// centered on it.
type Autopilot struct {
	touching bool
	target   int // Screen column being touched
}

// Next returns the input for the game's next tick.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.frozen {
		a.touching = false
		return in
	}

	l := g.layout()
	colX := g.params.ColumnX(a.bestColumn(g))
	cellW := g.cfg.Field.CellWidth

	if math.Abs(colX-g.car.x) <= cellW {
		if a.touching {
			in.Touch = core.Touch{Up: true, Col: a.target}
			a.touching = false
		}
		return in
	}

	target := l.fieldX + int(colX/cellW)
	if !a.touching || target != a.target {
		in.Touch = core.Touch{Down: true, Col: target}
	} else {
		in.Touch = core.Touch{Col: target}
	}
	a.touching = true
	a.target = target
	return in
}

// bestColumn trades time-to-impact in each column against the time it
// takes to drive there. Columns that cannot be reached in time, or only by
// driving into a brick on the way, rank last.
func (a *Autopilot) bestColumn(g *Game) int {
	speed := g.params.Difficulty.MultipliersFor(g.engine.Tier()).CarSpeed
	best, bestScore := 0, math.Inf(-1)
	for col := 0; col < sim.Columns; col++ {
		x := g.params.ColumnX(col)
		travel := math.Abs(x-g.car.x) / speed
		safe := g.timeToImpact(col).Seconds()
		score := safe - travel
		if safe < travel || !g.pathClear(x, speed) {
			score -= autopilotHorizon.Seconds()
		}
		if score > bestScore {
			best, bestScore = col, score
		}
	}
	return best
}

// timeToImpact returns how long until the first brick in col reaches the
// car's row, capped at the horizon.
func (g *Game) timeToImpact(col int) time.Duration {
	carBox := g.car.box()
	soonest := autopilotHorizon
	for _, b := range g.engine.Bricks() {
		if b.Hit || b.Column != col {
			continue
		}
		box := brickBox(b, g.now)
		if box.Top() >= carBox.Bottom() {
			continue
		}
		gap := carBox.Top() - box.Bottom()
		if gap <= 0 {
			return 0
		}
		speed := (b.Distance + b.Size) / b.Duration.Seconds()
		soonest = min(soonest, time.Duration(gap/speed*float64(time.Second)))
	}
	return soonest
}

// pathClear reports whether the car can drive from where it is to x at speed
// without meeting a brick in any lane it passes beside. The lane at x itself
// is left to timeToImpact.
func (g *Game) pathClear(x, speed float64) bool {
	carBox := g.car.box()
	lo, hi := min(g.car.x, x), max(g.car.x, x)
	for _, b := range g.engine.Bricks() {
		if b.Hit || b.X == x {
			continue
		}
		reach := (carBox.W + b.Size) / 2
		if b.X+reach <= lo || b.X-reach >= hi {
			continue
		}

		// Seconds from now the car spends beside the brick's lane.
		dist := math.Abs(b.X - g.car.x)
		besideFrom := max(dist-reach, 0) / speed
		besideTo := (dist + reach) / speed

		// Seconds from now the brick spends in the car's row.
		v := (b.Distance + b.Size) / b.Duration.Seconds()
		y := b.Y(g.now)
		rowFrom := (carBox.Top() - b.Size/2 - y) / v
		rowTo := (carBox.Bottom() + b.Size/2 - y) / v

		if rowFrom < besideTo && rowTo > besideFrom {
			return false
		}
	}
	return true
}
