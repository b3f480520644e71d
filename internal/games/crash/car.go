package crash

import (
	"time"

	"github.com/jayantbh/crash-course/internal/config"
	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/sim"
)

// tween eases a value linearly from one angle to another.
type tween struct {
	from, to float64
	start    time.Duration
	duration time.Duration
}

func (t tween) at(now time.Duration) (float64, bool) {
	if t.duration <= 0 || now >= t.start+t.duration {
		return t.to, true
	}
	p := float64(now-t.start) / float64(t.duration)
	return t.from + (t.to-t.from)*p, false
}

// car is the player's vehicle in world units.
type car struct {
	x, y          float64
	width, height float64
	velocity      float64
	angle         float64
	lean          *tween
}

func newCar(cfg config.CarConfig, params sim.Params) car {
	return car{
		x:      params.FieldWidth / 2,
		y:      params.FieldHeight * cfg.YRatio,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// apply takes the controller's intent for this tick.
func (c *car) apply(intent sim.CarIntent, now time.Duration) {
	c.velocity = intent.Velocity
	if intent.CancelLean {
		// The lean stops where it is.
		c.lean = nil
	}
	if l := intent.Lean; l != nil {
		c.lean = &tween{from: c.angle, to: l.Angle, start: l.Start, duration: l.Duration}
	}
	c.updateLean(now)
}

// move integrates velocity over dt and keeps the car inside the field.
func (c *car) move(dt, now time.Duration, fieldW float64) {
	c.x += c.velocity * dt.Seconds()
	half := c.width / 2
	if fieldW < c.width {
		c.x = fieldW / 2
	} else {
		c.x = core.Clamp(c.x, half, fieldW-half)
	}
	c.updateLean(now)
}

func (c *car) updateLean(now time.Duration) {
	if c.lean == nil {
		return
	}
	angle, done := c.lean.at(now)
	c.angle = angle
	if done {
		c.lean = nil
	}
}

func (c car) box() core.Box {
	return core.NewBox(c.x, c.y, c.width, c.height)
}
