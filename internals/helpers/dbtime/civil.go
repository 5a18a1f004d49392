// Civil-date helpers. Ad scheduling compares calendar dates in one
// fixed timezone, never instants.
package dbtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s matches YYYY-MM-DD.
func IsISODate(s string) bool {
	if !isoDateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseCivilMidnight accepts "YYYY-MM-DD" or "DD-MM-YYYY" and returns
// midnight of that calendar day in loc.
func ParseCivilMidnight(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or DD-MM-YYYY", s)
	}

	layout := "02-01-2006"
	if len(parts[0]) == 4 {
		layout = "2006-01-02"
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Midnight truncates t to 00:00 of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// SameCivilDay reports whether a and b fall on the same calendar day in loc.
func SameCivilDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// OnOrBeforeCivilDay reports whether a's calendar day in loc is the same
// as or earlier than b's.
func OnOrBeforeCivilDay(a, b time.Time, loc *time.Location) bool {
	return !Midnight(a, loc).After(Midnight(b, loc))
}
