package storage

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTemp(t)

	t.Run("defaults when absent", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if diff := cmp.Diff(DefaultPreferences(), prefs); diff != "" {
			t.Errorf("defaults mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		want := &Preferences{
			WhiteIsBottom:   false,
			ShowLegalMoves:  false,
			Animate:         true,
			AnimationMillis: 300,
			QueueMoves:      true,
		}
		if err := s.SavePreferences(want); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}
		if want.LastUsed.IsZero() {
			t.Error("LastUsed not stamped on save")
		}

		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Preferences{}, "LastUsed")); diff != "" {
			t.Errorf("preferences mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAnimationDuration(t *testing.T) {
	p := DefaultPreferences()
	if got := p.AnimationDuration(); got != 150*time.Millisecond {
		t.Errorf("AnimationDuration() = %v, want 150ms", got)
	}
	p.AnimationMillis = 0
	if got := p.AnimationDuration(); got != 0 {
		t.Errorf("AnimationDuration() = %v, want 0", got)
	}
}

func TestRecordResult(t *testing.T) {
	s := openTemp(t)

	for _, r := range []string{"1-0", "0-1", "1-0", "1/2-1/2", "*"} {
		if err := s.RecordResult(r); err != nil {
			t.Fatalf("RecordResult(%q): %v", r, err)
		}
	}

	got, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	want := &GameStats{GamesPlayed: 4, WhiteWins: 2, BlackWins: 1, Draws: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestDatabaseDir(t *testing.T) {
	dir, err := DatabaseDir()
	if err != nil {
		t.Fatalf("DatabaseDir: %v", err)
	}
	if dir == "" {
		t.Error("DatabaseDir returned empty path")
	}
}
