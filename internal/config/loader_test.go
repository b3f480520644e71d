package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jayantbh/crash-course/internal/sim"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultCrashYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultParamsMatchSimulation(t *testing.T) {
	p := Default().Params(400, 700)
	if !reflect.DeepEqual(p, sim.DefaultParams()) {
		t.Errorf("Params() = %+v\nexpected %+v", p, sim.DefaultParams())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crash.yaml")
	data := "session:\n  lives: 5\nbricks:\n  spawn_interval_ms: 750\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Session.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Session.Lives)
	}
	if cfg.Bricks.SpawnIntervalMS != 750 {
		t.Errorf("SpawnIntervalMS = %d, expected 750", cfg.Bricks.SpawnIntervalMS)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Session.KeepPercent != 70 || cfg.Difficulty.ExtremeAt != 500 {
		t.Errorf("defaults lost: keep=%d extreme=%d", cfg.Session.KeepPercent, cfg.Difficulty.ExtremeAt)
	}
	if got := cfg.Params(400, 700).SpawnInterval; got != 750*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected 750ms", got)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("session: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("zero lives should be rejected, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrashConfig)
	}{
		{"zero cell width", func(c *CrashConfig) { c.Field.CellWidth = 0 }},
		{"car below field", func(c *CrashConfig) { c.Car.YRatio = 1.2 }},
		{"keep over 100", func(c *CrashConfig) { c.Session.KeepPercent = 120 }},
		{"zero spawn interval", func(c *CrashConfig) { c.Bricks.SpawnIntervalMS = 0 }},
		{"tiers out of order", func(c *CrashConfig) { c.Difficulty.ExtremeAt = 100 }},
		{"negative key hold", func(c *CrashConfig) { c.Controls.KeyHoldMS = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should be valid: %v", err)
	}
}

func TestFieldSize(t *testing.T) {
	cfg := Default()

	tests := []struct {
		screenW, screenH int
		w, h             float64
	}{
		{80, 24, 400, 440},
		{120, 50, 400, 700},
		{30, 10, 280, 160},
		{1, 1, 10, 20},
	}

	for _, tc := range tests {
		w, h := cfg.FieldSize(tc.screenW, tc.screenH)
		if w != tc.w || h != tc.h {
			t.Errorf("FieldSize(%d, %d) = %vx%v, expected %vx%v", tc.screenW, tc.screenH, w, h, tc.w, tc.h)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "keep_percent: 70") {
		t.Errorf("marshalled config missing keep_percent:\n%s", data)
	}
}
