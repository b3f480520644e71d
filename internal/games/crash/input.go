package crash

import (
	"time"

	"github.com/jayantbh/crash-course/internal/config"
	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/sim"
)

// inputState turns terminal input into held-key flags. Terminals report key
// presses and auto-repeats but no releases, so a direction counts as held
// for a short window after its last press.
type inputState struct {
	leftUntil  time.Duration
	rightUntil time.Duration
}

func (s *inputState) flags(in core.InputFrame, now time.Duration, ctl config.ControlConfig, touchX, carX float64) sim.InputFlags {
	hold := time.Duration(ctl.KeyHoldMS) * time.Millisecond
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	if left {
		s.leftUntil = now + hold
		if !right {
			s.rightUntil = 0
		}
	}
	if right {
		s.rightUntil = now + hold
		if !left {
			s.leftUntil = 0
		}
	}

	return sim.InputFlags{
		LeftDown:  now < s.leftUntil,
		RightDown: now < s.rightUntil,
		TouchDown: in.Touch.Down,
		TouchUp:   in.Touch.Up,
		TouchX:    touchX,
		CarX:      carX,
	}
}
