package habits

import (
	"context"
	"testing"
	"time"

	"github.com/sandeepkv93/habitd/internal/storage"
)

func TestStats(t *testing.T) {
	s := setupStore(t, storage.NewMemoryKV())
	ctx := context.Background()
	h, err := s.Add(ctx, "Read", "#111")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, date := range []string{
		"2023-12-01", "2023-12-02", "2023-12-03", "2023-12-04",
		"2023-12-29", "2023-12-30", "2023-12-31",
	} {
		if _, err := s.Toggle(ctx, h.ID, date); err != nil {
			t.Fatalf("toggle %s: %v", date, err)
		}
	}

	today := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	got := s.Stats(h.ID, today)
	want := Stats{CurrentStreak: 3, LongestStreak: 4, LastWeek: 3, Total: 7}
	if got != want {
		t.Fatalf("stats before today = %+v, want %+v", got, want)
	}

	if _, err := s.Toggle(ctx, h.ID, "2024-01-01"); err != nil {
		t.Fatalf("toggle today: %v", err)
	}
	got = s.Stats(h.ID, today)
	want = Stats{CurrentStreak: 4, LongestStreak: 4, LastWeek: 4, Total: 8}
	if got != want {
		t.Fatalf("stats with today = %+v, want %+v", got, want)
	}

	got = s.Stats(h.ID, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	if got.CurrentStreak != 0 {
		t.Fatalf("expected broken streak, got %+v", got)
	}
}

func TestStatsNoCompletions(t *testing.T) {
	s := setupStore(t, storage.NewMemoryKV())
	if got := s.Stats("missing", time.Now()); got != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}
