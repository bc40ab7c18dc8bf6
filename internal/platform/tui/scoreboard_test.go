package tui

import (
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{10, 50, 30} {
		if _, err := store.SaveRun(storage.Run{GameID: "doodle", Score: score}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "doodle", "Doodle Jump", 80, 24)
	if got := scores(m.Runs()); got != "50,30,10" {
		t.Errorf("top view = %s, expected 50,30,10", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != ViewRecent {
		t.Fatalf("tab should switch to the recent view")
	}
	if got := scores(m.Runs()); got != "30,50,10" {
		t.Errorf("recent view = %s, expected 30,50,10", got)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "doodle", "Doodle Jump", 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardBackQuitsStandalone(t *testing.T) {
	m := NewScoreboardModel(nil, "doodle", "Doodle Jump", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("standalone back should quit the program")
	}
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("expected going back")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ticks    uint64
		expected string
	}{
		{0, "-"},
		{60, "0:01"},
		{3600, "1:00"},
		{5430, "1:30"},
	}
	for _, tc := range tests {
		got := formatDuration(storage.Run{Ticks: tc.ticks, CreatedAt: time.Now()})
		if got != tc.expected {
			t.Errorf("formatDuration(%d) = %q, expected %q", tc.ticks, got, tc.expected)
		}
	}
}

func scores(runs []storage.Run) string {
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = strconv.Itoa(r.Score)
	}
	return strings.Join(parts, ",")
}
