package sim

import (
	"testing"
	"time"
)

func TestTierFor(t *testing.T) {
	d := DefaultDifficulty()

	tests := []struct {
		score    int
		expected Tier
	}{
		{0, TierNormal},
		{240, TierNormal},
		{249, TierNormal},
		{250, TierTurbo},
		{499, TierTurbo},
		{500, TierExtreme},
		{10000, TierExtreme},
	}

	for _, tc := range tests {
		if got := d.TierFor(tc.score); got != tc.expected {
			t.Errorf("TierFor(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestTierForMonotonic(t *testing.T) {
	d := DefaultDifficulty()
	prev := d.TierFor(0)
	for s := 0; s <= 1000; s++ {
		tier := d.TierFor(s)
		if tier < prev {
			t.Fatalf("TierFor(%d) = %v dropped below %v", s, tier, prev)
		}
		if tier != d.TierFor(s) {
			t.Fatalf("TierFor(%d) is not stable", s)
		}
		prev = tier
	}
}

func TestMultipliersFor(t *testing.T) {
	d := DefaultDifficulty()

	tests := []struct {
		tier      Tier
		duration  float64
		size      float64
		spin      SpinRange
		turn      time.Duration
		speed     float64
		spinEmpty bool
	}{
		{TierNormal, 1.0, 1.0, SpinRange{}, 150 * time.Millisecond, 200, true},
		{TierTurbo, 0.7, 1.0, SpinRange{-720, 720}, 150 * time.Millisecond, 200, false},
		{TierExtreme, 0.4, 1.25, SpinRange{-1440, 1440}, 100 * time.Millisecond, 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.tier.String(), func(t *testing.T) {
			m := d.MultipliersFor(tc.tier)
			if m.DurationFactor != tc.duration {
				t.Errorf("DurationFactor = %v, expected %v", m.DurationFactor, tc.duration)
			}
			if m.SizeFactor != tc.size {
				t.Errorf("SizeFactor = %v, expected %v", m.SizeFactor, tc.size)
			}
			if m.Spin != tc.spin {
				t.Errorf("Spin = %v, expected %v", m.Spin, tc.spin)
			}
			if m.Spin.Empty() != tc.spinEmpty {
				t.Errorf("Spin.Empty() = %v, expected %v", m.Spin.Empty(), tc.spinEmpty)
			}
			if m.CarTurnDuration != tc.turn {
				t.Errorf("CarTurnDuration = %v, expected %v", m.CarTurnDuration, tc.turn)
			}
			if m.CarSpeed != tc.speed {
				t.Errorf("CarSpeed = %v, expected %v", m.CarSpeed, tc.speed)
			}
		})
	}
}

func TestMultipliersForUnknownTier(t *testing.T) {
	expectPanic(t, "MultipliersFor(42)", func() { DefaultDifficulty().MultipliersFor(Tier(42)) })
}

func TestDifficultyValidate(t *testing.T) {
	if err := DefaultDifficulty().Validate(); err != nil {
		t.Fatalf("default difficulty should be valid: %v", err)
	}

	d := DefaultDifficulty()
	d.ExtremeAt = 100
	if d.Validate() == nil {
		t.Error("extreme threshold below turbo should be rejected")
	}

	d = DefaultDifficulty()
	d.Turbo.Spin = SpinRange{Min: 10, Max: -10}
	if d.Validate() == nil {
		t.Error("inverted spin range should be rejected")
	}
}
