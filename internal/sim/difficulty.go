package sim

import (
	"fmt"
	"time"
)

// Tier is a difficulty bracket derived from the current score.
type Tier int

const (
	TierNormal Tier = iota
	TierTurbo
	TierExtreme
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "Normal"
	case TierTurbo:
		return "Turbo"
	case TierExtreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// SpinRange is an inclusive range of spin angles in degrees.
// The zero value means bricks do not spin.
type SpinRange struct {
	Min, Max int
}

// Empty reports whether the range yields no spin.
func (r SpinRange) Empty() bool {
	return r.Min == 0 && r.Max == 0
}

// Multipliers are the per-tier adjustments applied at spawn and steering time.
type Multipliers struct {
	DurationFactor  float64       // Brick travel duration multiplier
	SizeFactor      float64       // Brick size multiplier
	Spin            SpinRange     // Brick spin over its travel, degrees
	CarTurnDuration time.Duration // Duration of a lean animation
	CarSpeed        float64       // Car lateral speed, units per second
}

// Difficulty maps scores to tiers and tiers to multipliers.
// It holds no game state: every call derives its answer from its arguments.
type Difficulty struct {
	TurboAt   int // Lowest score in the Turbo tier
	ExtremeAt int // Lowest score in the Extreme tier
	Normal    Multipliers
	Turbo     Multipliers
	Extreme   Multipliers
}

// DefaultDifficulty returns the stock tier table.
func DefaultDifficulty() Difficulty {
	return Difficulty{
		TurboAt:   250,
		ExtremeAt: 500,
		Normal: Multipliers{
			DurationFactor:  1.0,
			SizeFactor:      1.0,
			CarTurnDuration: 150 * time.Millisecond,
			CarSpeed:        200,
		},
		Turbo: Multipliers{
			DurationFactor:  0.7,
			SizeFactor:      1.0,
			Spin:            SpinRange{Min: -720, Max: 720},
			CarTurnDuration: 150 * time.Millisecond,
			CarSpeed:        200,
		},
		Extreme: Multipliers{
			DurationFactor:  0.4,
			SizeFactor:      1.25,
			Spin:            SpinRange{Min: -1440, Max: 1440},
			CarTurnDuration: 100 * time.Millisecond,
			CarSpeed:        300,
		},
	}
}

// TierFor returns the tier for a score. Extreme takes precedence over Turbo.
func (d Difficulty) TierFor(score int) Tier {
	switch {
	case score >= d.ExtremeAt:
		return TierExtreme
	case score >= d.TurboAt:
		return TierTurbo
	default:
		return TierNormal
	}
}

// MultipliersFor returns the multipliers for a tier.
// Unknown tiers indicate a programming error and panic.
func (d Difficulty) MultipliersFor(t Tier) Multipliers {
	switch t {
	case TierNormal:
		return d.Normal
	case TierTurbo:
		return d.Turbo
	case TierExtreme:
		return d.Extreme
	default:
		panic(fmt.Sprintf("sim: unknown tier %d", int(t)))
	}
}

// Validate checks that thresholds are ordered and multipliers are usable.
func (d Difficulty) Validate() error {
	if d.TurboAt < 0 || d.ExtremeAt < d.TurboAt {
		return fmt.Errorf("sim: tier thresholds out of order (turbo %d, extreme %d)", d.TurboAt, d.ExtremeAt)
	}
	for _, t := range []Tier{TierNormal, TierTurbo, TierExtreme} {
		m := d.MultipliersFor(t)
		if m.DurationFactor <= 0 || m.SizeFactor <= 0 {
			return fmt.Errorf("sim: %s tier: factors must be positive", t)
		}
		if m.Spin.Min > m.Spin.Max {
			return fmt.Errorf("sim: %s tier: spin range [%d, %d] is inverted", t, m.Spin.Min, m.Spin.Max)
		}
		if m.CarTurnDuration <= 0 || m.CarSpeed < 0 {
			return fmt.Errorf("sim: %s tier: invalid car settings", t)
		}
	}
	return nil
}
