package sim

import "time"

// Input is the resolved steering direction for one tick.
type Input int

const (
	InputNeutral Input = iota
	InputLeft
	InputRight
)

// String returns a human-readable name for the input.
func (i Input) String() string {
	switch i {
	case InputNeutral:
		return "Neutral"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFlags is the raw input state the host samples each tick.
type InputFlags struct {
	LeftDown  bool    // Left key held
	RightDown bool    // Right key held
	TouchDown bool    // A touch started this tick
	TouchUp   bool    // A touch ended this tick
	TouchX    float64 // Touch position in world units
	CarX      float64 // Car position in world units
}

// LeanRequest asks the host to animate the car's lean toward Angle.
type LeanRequest struct {
	Angle    float64 // Target lean, degrees; negative leans left
	Duration time.Duration
	Start    time.Duration
}

// CarIntent is the controller's output for one tick.
type CarIntent struct {
	Input      Input
	Velocity   float64      // Target lateral velocity, units per second
	Lean       *LeanRequest // Non-nil when a new lean animation should start
	CancelLean bool         // Stop any lean animation in flight
	Frozen     bool         // The session is over; the host must not move the car
}

// CarController turns input and the current tier into a steering intent.
// At most one lean animation is in flight at a time.
type CarController struct {
	params      Params
	session     *Session
	touchActive bool
	leanUntil   time.Duration // end of the lean animation in flight
	velocity    float64
}

// NewCarController creates a controller bound to session.
func NewCarController(params Params, session *Session) *CarController {
	return &CarController{params: params, session: session}
}

// Resolve updates touch tracking and returns the steering direction.
// Left wins when both sides are requested.
func (c *CarController) Resolve(in InputFlags) Input {
	if in.TouchDown {
		c.touchActive = true
	}
	if in.TouchUp {
		c.touchActive = false
	}

	leftTouched := c.touchActive && in.TouchX < in.CarX
	rightTouched := c.touchActive && in.TouchX >= in.CarX

	switch {
	case in.LeftDown || leftTouched:
		return InputLeft
	case in.RightDown || rightTouched:
		return InputRight
	default:
		return InputNeutral
	}
}

// Tick computes the intent for now. The tier is derived from the current
// score on every call.
func (c *CarController) Tick(in InputFlags, now time.Duration) CarIntent {
	if c.session.Over() {
		return CarIntent{Velocity: c.velocity, Frozen: true}
	}

	input := c.Resolve(in)
	diff := c.params.Difficulty
	mult := diff.MultipliersFor(diff.TierFor(c.session.Score()))

	intent := CarIntent{Input: input}
	switch input {
	case InputLeft:
		intent.Velocity = -mult.CarSpeed
		intent.Lean = c.requestLean(-c.params.LeanAngle, mult.CarTurnDuration, now)
	case InputRight:
		intent.Velocity = mult.CarSpeed
		intent.Lean = c.requestLean(c.params.LeanAngle, mult.CarTurnDuration, now)
	default:
		intent.CancelLean = true
		c.leanUntil = now
	}
	c.velocity = intent.Velocity
	return intent
}

func (c *CarController) requestLean(angle float64, d time.Duration, now time.Duration) *LeanRequest {
	if c.Leaning(now) {
		return nil
	}
	c.leanUntil = now + d
	return &LeanRequest{Angle: angle, Duration: d, Start: now}
}

// Leaning reports whether a lean animation is in flight at now.
func (c *CarController) Leaning(now time.Duration) bool {
	return now < c.leanUntil
}

// Velocity returns the last target velocity.
func (c *CarController) Velocity() float64 {
	return c.velocity
}

// TouchActive reports whether a touch is being held.
func (c *CarController) TouchActive() bool {
	return c.touchActive
}

// Reset clears touch tracking, lean and velocity.
func (c *CarController) Reset() {
	c.touchActive = false
	c.leanUntil = 0
	c.velocity = 0
}
