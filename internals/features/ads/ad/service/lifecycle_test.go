package service

import (
	"testing"
	"time"

	"namur_backend/internals/constants"
)

var testLoc = mustLoc("Asia/Kolkata")

func mustLoc(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestResolveCreateSchedulePostNow(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, testLoc)

	sched, err := ResolveCreateSchedule(constants.PostTypeNow, nil, nil, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Status != constants.AdStatusActive {
		t.Errorf("status = %q, want active", sched.Status)
	}
	if sched.ScheduledAt != nil {
		t.Errorf("scheduled_at should be nil for postnow")
	}
	want := time.Date(2025, 3, 25, 0, 0, 0, 0, testLoc)
	if sched.ExpiryDate == nil || !sched.ExpiryDate.Equal(want) {
		t.Errorf("expiry = %v, want %v", sched.ExpiryDate, want)
	}
}

func TestResolveCreateSchedulePostNowExplicitExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, testLoc)
	exp := time.Date(2025, 4, 1, 0, 0, 0, 0, testLoc)

	sched, err := ResolveCreateSchedule(constants.PostTypeNow, nil, &exp, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.ExpiryDate == nil || !sched.ExpiryDate.Equal(exp) {
		t.Errorf("expiry = %v, want %v", sched.ExpiryDate, exp)
	}
}

func TestResolveCreateScheduleScheduled(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	schedDay := time.Date(2025, 3, 20, 0, 0, 0, 0, testLoc)

	sched, err := ResolveCreateSchedule(constants.PostTypeSchedule, &schedDay, nil, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Status != constants.AdStatusPending {
		t.Errorf("status = %q, want pending", sched.Status)
	}
	want := time.Date(2025, 4, 4, 0, 0, 0, 0, testLoc)
	if sched.ExpiryDate == nil || !sched.ExpiryDate.Equal(want) {
		t.Errorf("expiry = %v, want scheduled day + 15d = %v", sched.ExpiryDate, want)
	}
}

func TestResolveCreateScheduleSameDayAllowed(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, testLoc)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, testLoc)

	if _, err := ResolveCreateSchedule(constants.PostTypeSchedule, &today, nil, now, testLoc); err != nil {
		t.Fatalf("scheduling for today should be allowed: %v", err)
	}
}

func TestResolveCreateScheduleRejectsPast(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	yesterday := time.Date(2025, 3, 9, 0, 0, 0, 0, testLoc)

	if _, err := ResolveCreateSchedule(constants.PostTypeSchedule, &yesterday, nil, now, testLoc); err == nil {
		t.Fatal("expected error for past scheduled_at")
	}
}

func TestResolveCreateScheduleMissingScheduledAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	if _, err := ResolveCreateSchedule(constants.PostTypeSchedule, nil, nil, now, testLoc); err == nil {
		t.Fatal("expected error for missing scheduled_at")
	}
}

func TestResolveCreateScheduleBadPostType(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	if _, err := ResolveCreateSchedule("later", nil, nil, now, testLoc); err == nil {
		t.Fatal("expected error for unknown post_type")
	}
}

func TestResolveUpdateScheduleNoTypeChange(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	exp := time.Date(2025, 3, 20, 0, 0, 0, 0, testLoc)

	sched, err := ResolveUpdateSchedule(constants.AdStatusActive, constants.PostTypeNow, constants.PostTypeNow, nil, &exp, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Status != constants.AdStatusActive {
		t.Errorf("status = %q, want unchanged active", sched.Status)
	}
	if sched.ExpiryDate == nil || !sched.ExpiryDate.Equal(exp) {
		t.Errorf("expiry = %v, want unchanged %v", sched.ExpiryDate, exp)
	}
}

func TestResolveUpdateScheduleToPostNow(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	schedDay := time.Date(2025, 3, 20, 0, 0, 0, 0, testLoc)

	sched, err := ResolveUpdateSchedule(constants.AdStatusPending, constants.PostTypeSchedule, constants.PostTypeNow, &schedDay, nil, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Status != constants.AdStatusActive {
		t.Errorf("status = %q, want active", sched.Status)
	}
	if sched.ScheduledAt != nil {
		t.Errorf("scheduled_at should be cleared, got %v", sched.ScheduledAt)
	}
	want := time.Date(2025, 3, 25, 0, 0, 0, 0, testLoc)
	if sched.ExpiryDate == nil || !sched.ExpiryDate.Equal(want) {
		t.Errorf("expiry = %v, want reset to %v", sched.ExpiryDate, want)
	}
}

func TestResolveUpdateScheduleToScheduled(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)
	schedDay := time.Date(2025, 3, 20, 0, 0, 0, 0, testLoc)

	sched, err := ResolveUpdateSchedule(constants.AdStatusActive, constants.PostTypeNow, constants.PostTypeSchedule, &schedDay, nil, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.Status != constants.AdStatusPending {
		t.Errorf("status = %q, want pending", sched.Status)
	}

	if _, err := ResolveUpdateSchedule(constants.AdStatusActive, constants.PostTypeNow, constants.PostTypeSchedule, nil, nil, now, testLoc); err == nil {
		t.Fatal("expected error switching to schedule without scheduled_at")
	}
}

func TestResolveUpdateScheduleKeepsScheduledDateRequired(t *testing.T) {
	// editing a scheduled ad must not clear its date: a pending row
	// with a NULL scheduled_at would never be picked up by the sweep
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc)

	if _, err := ResolveUpdateSchedule(constants.AdStatusPending, constants.PostTypeSchedule, constants.PostTypeSchedule, nil, nil, now, testLoc); err == nil {
		t.Fatal("expected error when a scheduled ad loses its scheduled_at")
	}

	schedDay := time.Date(2025, 3, 20, 0, 0, 0, 0, testLoc)
	sched, err := ResolveUpdateSchedule(constants.AdStatusPending, constants.PostTypeSchedule, constants.PostTypeSchedule, &schedDay, nil, now, testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.ScheduledAt == nil || !sched.ScheduledAt.Equal(schedDay) {
		t.Errorf("scheduled_at = %v, want %v", sched.ScheduledAt, schedDay)
	}
	if sched.Status != constants.AdStatusPending {
		t.Errorf("status = %q, want pending", sched.Status)
	}
}

func TestDefaultExpiryUsesCivilMidnight(t *testing.T) {
	// 23:59 local still counts from that day's midnight
	late := time.Date(2025, 6, 1, 23, 59, 0, 0, testLoc)
	want := time.Date(2025, 6, 16, 0, 0, 0, 0, testLoc)
	if got := DefaultExpiry(late, testLoc); !got.Equal(want) {
		t.Errorf("DefaultExpiry = %v, want %v", got, want)
	}
}
