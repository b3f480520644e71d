package config

import (
	"time"

	"github.com/jayantbh/crash-course/internal/sim"
)

// DifficultyConfig defines the score thresholds and per-tier multipliers.
type DifficultyConfig struct {
	TurboAt   int        `yaml:"turbo_at"`
	ExtremeAt int        `yaml:"extreme_at"`
	Normal    TierConfig `yaml:"normal"`
	Turbo     TierConfig `yaml:"turbo"`
	Extreme   TierConfig `yaml:"extreme"`
}

// TierConfig defines the multipliers of one tier.
type TierConfig struct {
	DurationFactor float64 `yaml:"duration_factor"`
	SizeFactor     float64 `yaml:"size_factor"`
	SpinMin        int     `yaml:"spin_min"`
	SpinMax        int     `yaml:"spin_max"`
	CarTurnMS      int     `yaml:"car_turn_ms"`
	CarSpeed       float64 `yaml:"car_speed"`
}

func (t TierConfig) multipliers() sim.Multipliers {
	return sim.Multipliers{
		DurationFactor:  t.DurationFactor,
		SizeFactor:      t.SizeFactor,
		Spin:            sim.SpinRange{Min: t.SpinMin, Max: t.SpinMax},
		CarTurnDuration: time.Duration(t.CarTurnMS) * time.Millisecond,
		CarSpeed:        t.CarSpeed,
	}
}

// Difficulty converts the config into the simulation's tier table.
func (d DifficultyConfig) Difficulty() sim.Difficulty {
	return sim.Difficulty{
		TurboAt:   d.TurboAt,
		ExtremeAt: d.ExtremeAt,
		Normal:    d.Normal.multipliers(),
		Turbo:     d.Turbo.multipliers(),
		Extreme:   d.Extreme.multipliers(),
	}
}
