package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jayantbh/crash-course/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreViews(t *testing.T) {
	if got := len(scoreViews("")); got != 2 {
		t.Errorf("len(scoreViews(\"\")) = %d, expected 2", got)
	}
	views := scoreViews("ada")
	if len(views) != 3 {
		t.Fatalf("len(scoreViews(ada)) = %d, expected 3", len(views))
	}
	if views[2].Title != "Your runs" {
		t.Errorf("views[2].Title = %q, expected Your runs", views[2].Title)
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Run{
		{Player: "ada", Score: 120, PeakScore: 150, PeakTier: "Normal", Duration: 20 * time.Second},
		{Player: "bob", Score: 300, PeakScore: 310, PeakTier: "Turbo", Duration: 40 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, "ada", 120, 30)
	if len(m.runs) != 2 {
		t.Fatalf("len(runs) = %d, expected 2", len(m.runs))
	}
	if m.runs[0].Player != "bob" {
		t.Errorf("top run player = %q, expected bob", m.runs[0].Player)
	}

	// Tab cycles to recent runs, then to the player's own.
	next := tea.KeyMsg{Type: tea.KeyTab}
	updated, _ := m.Update(next)
	m = updated.(ScoreboardModel)
	updated, _ = m.Update(next)
	m = updated.(ScoreboardModel)

	if m.viewCursor != 2 {
		t.Fatalf("viewCursor = %d, expected 2", m.viewCursor)
	}
	if len(m.runs) != 1 || m.runs[0].Player != "ada" {
		t.Errorf("runs = %+v, expected only ada's run", m.runs)
	}
	if !strings.Contains(m.View(), "YOUR RUNS") {
		t.Error("View() should title the selected list")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	if !strings.Contains(m.View(), "Scoreboard unavailable") {
		t.Error("View() should explain a missing database")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
	if m.IsQuitting() {
		t.Error("esc should not quit")
	}
}
