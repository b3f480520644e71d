package config

import (
	_ "embed"
)

//go:embed defaults/crash.yaml
var defaultCrashYAML []byte

// Default returns the built-in configuration.
func Default() CrashConfig {
	return CrashConfig{
		Field: FieldConfig{
			MaxWidth:   400,
			MaxHeight:  700,
			CellWidth:  10,
			CellHeight: 20,
			MarginCols: 2,
			MarginRows: 2,
		},
		Bricks: BrickConfig{
			BaseSize:           50,
			DurationMultiplier: 200,
			DistanceAdjustment: 500,
			SpawnIntervalMS:    1000,
		},
		Session: SessionConfig{
			Lives:       3,
			SpawnReward: 10,
			KeepPercent: 70,
		},
		Car: CarConfig{
			Width:     36,
			Height:    60,
			YRatio:    0.8,
			LeanAngle: 15,
		},
		Effects: EffectConfig{
			ExplosionTTLMS: 3000,
		},
		Controls: ControlConfig{
			KeyHoldMS: 180,
		},
		Difficulty: DifficultyConfig{
			TurboAt:   250,
			ExtremeAt: 500,
			Normal: TierConfig{
				DurationFactor: 1.0,
				SizeFactor:     1.0,
				CarTurnMS:      150,
				CarSpeed:       200,
			},
			Turbo: TierConfig{
				DurationFactor: 0.7,
				SizeFactor:     1.0,
				SpinMin:        -720,
				SpinMax:        720,
				CarTurnMS:      150,
				CarSpeed:       200,
			},
			Extreme: TierConfig{
				DurationFactor: 0.4,
				SizeFactor:     1.25,
				SpinMin:        -1440,
				SpinMax:        1440,
				CarTurnMS:      100,
				CarSpeed:       300,
			},
		},
	}
}
