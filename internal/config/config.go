// Package config provides YAML-based configuration loading for Crash Course.
package config

// CrashConfig contains all tunables of the game.
type CrashConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Bricks     BrickConfig      `yaml:"bricks"`
	Session    SessionConfig    `yaml:"session"`
	Car        CarConfig        `yaml:"car"`
	Effects    EffectConfig     `yaml:"effects"`
	Controls   ControlConfig    `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig sizes the play field. The field is derived from the terminal
// size and capped, so small terminals get a shorter field.
type FieldConfig struct {
	MaxWidth   float64 `yaml:"max_width"`   // World units
	MaxHeight  float64 `yaml:"max_height"`  // World units
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
	MarginCols int     `yaml:"margin_cols"` // Columns reserved around the field
	MarginRows int     `yaml:"margin_rows"` // Rows reserved for the HUD
}

// BrickConfig defines obstacle sizing and cadence.
type BrickConfig struct {
	BaseSize           float64 `yaml:"base_size"`
	DurationMultiplier float64 `yaml:"duration_multiplier"` // Higher is slower
	DistanceAdjustment float64 `yaml:"distance_adjustment"`
	SpawnIntervalMS    int     `yaml:"spawn_interval_ms"`
}

// SessionConfig defines scoring and lives.
type SessionConfig struct {
	Lives       int `yaml:"lives"`
	SpawnReward int `yaml:"spawn_reward"`
	KeepPercent int `yaml:"keep_percent"` // Score kept after a collision
}

// CarConfig defines the player's car.
type CarConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	YRatio    float64 `yaml:"y_ratio"`    // Vertical position as a share of field height
	LeanAngle float64 `yaml:"lean_angle"` // Degrees
}

// EffectConfig defines visual effect lifetimes.
type EffectConfig struct {
	ExplosionTTLMS int `yaml:"explosion_ttl_ms"`
}

// ControlConfig tunes input handling. Terminals report key presses but not
// releases, so a steering key counts as held for a short window after each
// press or auto-repeat.
type ControlConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"`
}
