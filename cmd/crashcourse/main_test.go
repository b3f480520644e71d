package main

import (
	"io"
	"testing"

	"github.com/jayantbh/crash-course/internal/config"
	"github.com/jayantbh/crash-course/internal/core"
	"github.com/jayantbh/crash-course/internal/games/crash"
)

func TestNewDriver(t *testing.T) {
	tests := []struct {
		strategy string
		wantErr  bool
	}{
		{"idle", false},
		{"dodge", false},
		{"random", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := newDriver(tt.strategy)
		if (err != nil) != tt.wantErr {
			t.Errorf("newDriver(%q) error = %v, wantErr %v", tt.strategy, err, tt.wantErr)
		}
	}
}

func TestIdleDriverNeverSteers(t *testing.T) {
	drive, err := newDriver("idle")
	if err != nil {
		t.Fatalf("newDriver() error = %v", err)
	}

	g := crash.New(config.Default(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	for i := 0; i < 120; i++ {
		in := drive(g)
		if len(in.Actions) != 0 || in.Touch.Down {
			t.Fatalf("idle driver produced input %+v", in)
		}
		g.Step(in)
	}
}

func TestLogLevelFlags(t *testing.T) {
	defer func() { flagLogLevel, flagDebug = "info", false }()

	flagLogLevel = "warn"
	if got := newLogger(io.Discard).GetLevel().String(); got != "warn" {
		t.Errorf("level = %q, expected warn", got)
	}

	flagDebug = true
	if got := newLogger(io.Discard).GetLevel().String(); got != "debug" {
		t.Errorf("level = %q with --debug, expected debug", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"ada", 12, "ada"},
		{"abcdefghijklmnop", 12, "abcdefghijk."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.want)
		}
	}
}
