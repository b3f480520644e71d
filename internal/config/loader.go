package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jayantbh/crash-course/internal/sim"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.crashcourse/configs/crash.yaml ->
// ./configs/crash.yaml -> embedded default.
// Only an explicit customPath reports read or parse errors; the other
// locations are skipped when unusable.
func Load(customPath string) (CrashConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrashConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrashConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("crash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "crash.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultCrashYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, so a file only needs the keys it
// changes, and validates the result.
func Parse(data []byte) (CrashConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrashConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CrashConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg CrashConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crashcourse", "configs", filename)
}

// Validate checks the configuration for values the game cannot run with.
func (c CrashConfig) Validate() error {
	f := c.Field
	if f.MaxWidth <= 0 || f.MaxHeight <= 0 || f.CellWidth <= 0 || f.CellHeight <= 0 {
		return errors.New("config: field dimensions must be positive")
	}
	if f.MarginCols < 0 || f.MarginRows < 0 {
		return errors.New("config: field margins must not be negative")
	}
	if c.Car.Width <= 0 || c.Car.Height <= 0 {
		return errors.New("config: car dimensions must be positive")
	}
	if c.Car.YRatio <= 0 || c.Car.YRatio >= 1 {
		return fmt.Errorf("config: car y_ratio %v outside (0, 1)", c.Car.YRatio)
	}
	if c.Controls.KeyHoldMS < 0 {
		return fmt.Errorf("config: key_hold_ms %d is negative", c.Controls.KeyHoldMS)
	}
	if err := c.Params(f.MaxWidth, f.MaxHeight).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FieldSize returns the play field in world units for a terminal of the
// given size, capped at the configured maximum.
func (c CrashConfig) FieldSize(screenW, screenH int) (width, height float64) {
	f := c.Field
	cols := max(screenW-f.MarginCols, 1)
	rows := max(screenH-f.MarginRows, 1)
	width = min(float64(cols)*f.CellWidth, f.MaxWidth)
	height = min(float64(rows)*f.CellHeight, f.MaxHeight)
	return width, height
}

// Params converts the configuration into simulation tunables for a field of
// the given size.
func (c CrashConfig) Params(fieldW, fieldH float64) sim.Params {
	return sim.Params{
		FieldWidth:         fieldW,
		FieldHeight:        fieldH,
		BaseSize:           c.Bricks.BaseSize,
		DurationMultiplier: c.Bricks.DurationMultiplier,
		DistanceAdjustment: c.Bricks.DistanceAdjustment,
		SpawnInterval:      time.Duration(c.Bricks.SpawnIntervalMS) * time.Millisecond,
		LeanAngle:          c.Car.LeanAngle,
		EffectTTL:          time.Duration(c.Effects.ExplosionTTLMS) * time.Millisecond,
		Session: sim.SessionRules{
			Lives:       c.Session.Lives,
			SpawnReward: c.Session.SpawnReward,
			KeepPercent: c.Session.KeepPercent,
		},
		Difficulty: c.Difficulty.Difficulty(),
	}
}
