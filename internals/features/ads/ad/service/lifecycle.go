package service

import (
	"fmt"
	"time"

	"namur_backend/internals/constants"
	"namur_backend/internals/helpers/dbtime"
)

// DefaultAdLifetimeDays applies when an ad is activated without an
// explicit expiry_date.
const DefaultAdLifetimeDays = 15

// Schedule is the resolved lifecycle state of an ad: its status plus
// the scheduled and expiry midnights.
type Schedule struct {
	Status      string
	ScheduledAt *time.Time
	ExpiryDate  *time.Time
}

// DefaultExpiry computes local midnight of the given day plus the
// default lifetime.
func DefaultExpiry(from time.Time, loc *time.Location) time.Time {
	return dbtime.Midnight(from, loc).AddDate(0, 0, DefaultAdLifetimeDays)
}

// ResolveCreateSchedule decides the initial status and dates of a new
// ad. postnow → active immediately; schedule → pending until the sweep
// activates it on the scheduled day. Expiry is always set: explicit, or
// defaulted to 15 days after activation day midnight.
func ResolveCreateSchedule(postType string, scheduledAt, expiry *time.Time, now time.Time, loc *time.Location) (Schedule, error) {
	switch postType {
	case constants.PostTypeNow:
		exp := expiry
		if exp == nil {
			e := DefaultExpiry(now, loc)
			exp = &e
		}
		return Schedule{Status: constants.AdStatusActive, ScheduledAt: nil, ExpiryDate: exp}, nil

	case constants.PostTypeSchedule:
		if scheduledAt == nil {
			return Schedule{}, fmt.Errorf("scheduled_at is required when post_type is schedule")
		}
		if dbtime.Midnight(*scheduledAt, loc).Before(dbtime.Midnight(now, loc)) {
			return Schedule{}, fmt.Errorf("scheduled_at cannot be in the past")
		}
		exp := expiry
		if exp == nil {
			e := DefaultExpiry(*scheduledAt, loc)
			exp = &e
		}
		return Schedule{Status: constants.AdStatusPending, ScheduledAt: scheduledAt, ExpiryDate: exp}, nil

	default:
		return Schedule{}, fmt.Errorf("post_type must be postnow or schedule")
	}
}

// ResolveUpdateSchedule recomputes status and dates when an ad is
// edited. Switching to postnow clears any scheduled date, activates,
// and resets expiry to the default lifetime; switching to schedule
// drops the ad back to pending.
func ResolveUpdateSchedule(currentStatus, oldPostType, newPostType string, scheduledAt, expiry *time.Time, now time.Time, loc *time.Location) (Schedule, error) {
	if newPostType != constants.PostTypeNow && newPostType != constants.PostTypeSchedule {
		return Schedule{}, fmt.Errorf("post_type must be postnow or schedule")
	}

	// a scheduled ad must always carry its date, whether the post_type
	// changed or the edit merely cleared the field
	if newPostType == constants.PostTypeSchedule && scheduledAt == nil {
		return Schedule{}, fmt.Errorf("scheduled_at is required when post_type is schedule")
	}

	out := Schedule{Status: currentStatus, ScheduledAt: scheduledAt, ExpiryDate: expiry}
	if newPostType == oldPostType {
		return out, nil
	}

	if newPostType == constants.PostTypeNow {
		e := DefaultExpiry(now, loc)
		out.Status = constants.AdStatusActive
		out.ScheduledAt = nil
		out.ExpiryDate = &e
		return out, nil
	}

	// switching to schedule
	out.Status = constants.AdStatusPending
	return out, nil
}
