package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfall/internal/storage"
)

func TestScoreboardShowsSessionRounds(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()

	for _, score := range []int{4, 11} {
		if _, err := store.SaveRound(storage.Round{GameID: "stub", Difficulty: "hard", Score: score, Deaths: 1}); err != nil {
			t.Fatalf("SaveRound error: %v", err)
		}
	}

	m := NewScoreboardModel(store, 60, 30)
	if m.games[m.gameCursor].ID != "stub" {
		t.Fatalf("first game = %q, expected stub", m.games[m.gameCursor].ID)
	}

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if rows[0][1] != "11" || rows[0][2] != "hard" {
		t.Errorf("top row = %v, expected score 11 on hard", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "Rounds: 2") || !strings.Contains(view, "Best: 11") {
		t.Errorf("summary missing from view:\n%s", view)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "This session") {
		t.Error("wide terminals should show the stats panel")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No rounds played yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardRecentOrder(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()

	t0 := time.Unix(5000, 0)
	rounds := []storage.Round{
		{GameID: "stub", Score: 20, EndedAt: t0},
		{GameID: "stub", Score: 3, EndedAt: t0.Add(time.Minute)},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound error: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := m.table.Rows()[0][1]; got != "20" {
		t.Errorf("best-first top score = %s, expected 20", got)
	}

	next, _ := m.Update(runeKey('o'))
	m = next.(ScoreboardModel)
	if got := m.table.Rows()[0][1]; got != "3" {
		t.Errorf("recent-first top score = %s, expected 3", got)
	}
	if !strings.Contains(m.View(), "RECENT ROUNDS") {
		t.Error("title should switch to recent rounds")
	}
}
