package calendar

import (
	"testing"
	"time"
)

func TestWindowEndsTodayOldestFirst(t *testing.T) {
	today := time.Date(2024, 3, 2, 18, 30, 0, 0, time.UTC)
	days := Window(today, DefaultWeeks*DaysPerWeek)
	if len(days) != 28 {
		t.Fatalf("expected 28 days, got %d", len(days))
	}
	if got := DateKey(days[0]); got != "2024-02-04" {
		t.Fatalf("first day = %s, want 2024-02-04", got)
	}
	if got := DateKey(days[27]); got != "2024-03-02" {
		t.Fatalf("last day = %s, want 2024-03-02", got)
	}
	for i := 1; i < len(days); i++ {
		if !days[i].After(days[i-1]) {
			t.Fatalf("window not chronological at %d", i)
		}
	}
}

func TestWindowEmpty(t *testing.T) {
	if got := Window(time.Now(), 0); got != nil {
		t.Fatalf("expected nil window, got %v", got)
	}
}

func TestCellDate(t *testing.T) {
	today := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if got, ok := CellDate(today, 28, 27); !ok || got != "2024-01-01" {
		t.Fatalf("last cell = %q ok=%v", got, ok)
	}
	if got, ok := CellDate(today, 28, 0); !ok || got != "2023-12-05" {
		t.Fatalf("first cell = %q ok=%v", got, ok)
	}
	if _, ok := CellDate(today, 28, 28); ok {
		t.Fatal("expected out-of-range cell to fail")
	}
	if _, ok := CellDate(today, 28, -1); ok {
		t.Fatal("expected negative cell to fail")
	}
}

func TestMonths(t *testing.T) {
	today := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	got := Months(Window(today, 28))
	if len(got) != 2 || got[0] != "Feb" || got[1] != "Mar" {
		t.Fatalf("unexpected months: %v", got)
	}
}
