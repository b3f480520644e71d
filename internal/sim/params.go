package sim

import (
	"fmt"
	"math"
	"time"
)

// Columns is the number of fixed lanes bricks fall along.
const Columns = 4

// Params are the tunables of a simulation run.
type Params struct {
	FieldWidth  float64 // Play field width in world units
	FieldHeight float64 // Play field height in world units

	BaseSize           float64       // Unscaled brick edge length
	DurationMultiplier float64       // Milliseconds per BaseSize of travel; higher is slower
	DistanceAdjustment float64       // Extra travel beyond the field so bricks leave it fully
	SpawnInterval      time.Duration // Cadence of spawn attempts

	LeanAngle float64       // Lean magnitude in degrees
	EffectTTL time.Duration // Lifetime of the collision effect

	Session    SessionRules
	Difficulty Difficulty
}

// DefaultParams returns the stock tunables for a 400x700 field.
func DefaultParams() Params {
	return Params{
		FieldWidth:         400,
		FieldHeight:        700,
		BaseSize:           50,
		DurationMultiplier: 200,
		DistanceAdjustment: 500,
		SpawnInterval:      time.Second,
		LeanAngle:          15,
		EffectTTL:          3 * time.Second,
		Session:            DefaultSessionRules(),
		Difficulty:         DefaultDifficulty(),
	}
}

// DistanceToCover is how far a brick travels: the field height plus one
// brick and the adjustment margin.
func (p Params) DistanceToCover() float64 {
	return p.FieldHeight + p.BaseSize + p.DistanceAdjustment
}

// BaseDuration is the unscaled travel time. It grows with the field height so
// bricks keep the same on-screen speed regardless of viewport size.
func (p Params) BaseDuration() time.Duration {
	ms := p.DurationMultiplier * p.DistanceToCover() / p.BaseSize
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

// ColumnX returns the lateral center of a column: 1/8, 3/8, 5/8 and 7/8 of
// the field width.
func (p Params) ColumnX(column int) float64 {
	mustColumn(column)
	return float64(2*column+1) * p.FieldWidth / (2 * Columns)
}

// Validate checks the tunables before a run starts.
func (p Params) Validate() error {
	if p.FieldWidth <= 0 || p.FieldHeight <= 0 {
		return fmt.Errorf("sim: field size %vx%v must be positive", p.FieldWidth, p.FieldHeight)
	}
	if p.BaseSize <= 0 || p.DurationMultiplier <= 0 || p.DistanceAdjustment < 0 {
		return fmt.Errorf("sim: brick sizing must be positive")
	}
	if p.SpawnInterval <= 0 {
		return fmt.Errorf("sim: spawn interval %v must be positive", p.SpawnInterval)
	}
	if p.EffectTTL < 0 {
		return fmt.Errorf("sim: effect ttl %v is negative", p.EffectTTL)
	}
	if p.Session.Lives <= 0 {
		return fmt.Errorf("sim: lives must be positive, got %d", p.Session.Lives)
	}
	if p.Session.SpawnReward < 0 {
		return fmt.Errorf("sim: spawn reward must not be negative, got %d", p.Session.SpawnReward)
	}
	if p.Session.KeepPercent < 0 || p.Session.KeepPercent > 100 {
		return fmt.Errorf("sim: keep percent %d outside [0, 100]", p.Session.KeepPercent)
	}
	return p.Difficulty.Validate()
}

func mustColumn(column int) {
	if column < 0 || column >= Columns {
		panic(fmt.Sprintf("sim: column %d outside [0, %d]", column, Columns-1))
	}
}
