package dbtime

import (
	"testing"
	"time"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestIsISODate(t *testing.T) {
	cases := map[string]bool{
		"2025-03-10": true,
		"2025-12-31": true,
		"2025-13-01": false,
		"2025-02-30": false,
		"10-03-2025": false,
		"2025/03/10": false,
		"":           false,
		"2025-3-1":   false,
	}
	for in, want := range cases {
		if got := IsISODate(in); got != want {
			t.Errorf("IsISODate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseCivilMidnightISO(t *testing.T) {
	loc := kolkata(t)
	got, err := ParseCivilMidnight("2025-03-10", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCivilMidnightDDMMYYYY(t *testing.T) {
	loc := kolkata(t)
	got, err := ParseCivilMidnight("10-03-2025", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCivilMidnightRejectsGarbage(t *testing.T) {
	loc := kolkata(t)
	for _, in := range []string{"", "not-a-date", "2025-02-30", "1-2", "10/03/2025"} {
		if _, err := ParseCivilMidnight(in, loc); err == nil {
			t.Errorf("ParseCivilMidnight(%q) should fail", in)
		}
	}
}

func TestMidnight(t *testing.T) {
	loc := kolkata(t)
	in := time.Date(2025, 3, 10, 23, 59, 59, 0, loc)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	if got := Midnight(in, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMidnightConvertsZone(t *testing.T) {
	loc := kolkata(t)
	// 2025-03-10 21:00 UTC is already 2025-03-11 in Kolkata
	in := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	if got := Midnight(in, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSameCivilDay(t *testing.T) {
	loc := kolkata(t)
	a := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, loc)
	if !SameCivilDay(a, b, loc) {
		t.Error("same local day should match")
	}
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	if SameCivilDay(a, c, loc) {
		t.Error("different days should not match")
	}
}

func TestOnOrBeforeCivilDay(t *testing.T) {
	loc := kolkata(t)
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	same := time.Date(2025, 3, 10, 23, 0, 0, 0, loc)
	later := time.Date(2025, 3, 11, 1, 0, 0, 0, loc)
	if !OnOrBeforeCivilDay(day, same, loc) {
		t.Error("same day should count")
	}
	if !OnOrBeforeCivilDay(day, later, loc) {
		t.Error("earlier day should count")
	}
	if OnOrBeforeCivilDay(later, day, loc) {
		t.Error("later day should not count")
	}
}
