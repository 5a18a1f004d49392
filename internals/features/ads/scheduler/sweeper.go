package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"namur_backend/internals/constants"
	"namur_backend/internals/features/ads/ad/model"
	logModel "namur_backend/internals/features/ads/log/model"
	logService "namur_backend/internals/features/ads/log/service"
	"namur_backend/internals/helpers/dbtime"
)

// Clock lets tests drive the sweep to a chosen instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Sweeper runs the daily ad lifecycle pass: scheduled ads whose day has
// arrived go active, ads past their expiry are logged and removed.
type Sweeper struct {
	DB    *gorm.DB
	Clock Clock
	Loc   *time.Location

	// DeleteMedia removes uploaded images after an expired ad is gone.
	// Nil disables cleanup (tests).
	DeleteMedia func(keys []string) map[string]error
}

func NewSweeper(db *gorm.DB, loc *time.Location, deleteMedia func([]string) map[string]error) *Sweeper {
	return &Sweeper{DB: db, Clock: realClock{}, Loc: loc, DeleteMedia: deleteMedia}
}

// Start blocks until stop is closed. The first pass runs at the next
// local midnight, then every 24h.
func (s *Sweeper) Start(stop <-chan struct{}) {
	now := s.Clock.Now().In(s.Loc)
	next := dbtime.Midnight(now, s.Loc).Add(24 * time.Hour)
	log.Printf("[INFO] ad sweeper: first run at %s", next.Format(time.RFC3339))

	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.RunOnce()
			timer.Reset(24 * time.Hour)
		case <-stop:
			log.Println("[INFO] ad sweeper: stopped")
			return
		}
	}
}

// RunOnce activates due scheduled ads first, then expires, so an ad
// scheduled for today with today's expiry still gets its activation
// log before removal.
func (s *Sweeper) RunOnce() {
	now := s.Clock.Now().In(s.Loc)
	activated := s.activateScheduled(now)
	expired := s.expireDue(now)
	log.Printf("[INFO] ad sweeper: activated=%d expired=%d", activated, expired)
}

// activateScheduled flips pending schedule-type ads whose scheduled day
// is today (or earlier, if a run was missed) to active. Each ad commits
// in its own transaction so one failure cannot hold up the rest.
func (s *Sweeper) activateScheduled(now time.Time) int {
	startOfTomorrow := dbtime.Midnight(now, s.Loc).Add(24 * time.Hour)

	var due []model.AdModel
	if err := s.DB.
		Where("status = ?", constants.AdStatusPending).
		Where("post_type = ?", constants.PostTypeSchedule).
		Where("scheduled_at IS NOT NULL AND scheduled_at < ?", startOfTomorrow).
		Find(&due).Error; err != nil {
		log.Printf("[ERROR] ad sweeper: query scheduled ads: %v", err)
		return 0
	}

	count := 0
	for _, ad := range due {
		ad := ad
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.AdModel{}).
				Where("id = ?", ad.ID).
				Update("status", constants.AdStatusActive).Error; err != nil {
				return err
			}
			return logService.WriteLog(tx, ad.ID, logModel.ActionActivateScheduled,
				logService.StrPtr("system"), logService.StrPtr(constants.RoleSystem),
				map[string]any{"ad_uid": ad.AdUID, "scheduled_at": ad.ScheduledAt})
		})
		if err != nil {
			log.Printf("[ERROR] ad sweeper: activate ad %d: %v", ad.ID, err)
			continue
		}
		count++
	}
	return count
}

// expireDue removes ads whose expiry day has passed. The auto_expired
// log and the delete commit together; media cleanup runs after and only
// warns on failure.
func (s *Sweeper) expireDue(now time.Time) int {
	startOfToday := dbtime.Midnight(now, s.Loc)

	var due []model.AdModel
	if err := s.DB.
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", startOfToday).
		Find(&due).Error; err != nil {
		log.Printf("[ERROR] ad sweeper: query expiring ads: %v", err)
		return 0
	}

	count := 0
	for _, ad := range due {
		ad := ad
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			if err := logService.WriteLog(tx, ad.ID, logModel.ActionAutoExpired,
				logService.StrPtr("system"), logService.StrPtr(constants.RoleSystem), ad); err != nil {
				return err
			}
			return tx.Delete(&model.AdModel{}, ad.ID).Error
		})
		if err != nil {
			log.Printf("[ERROR] ad sweeper: expire ad %d: %v", ad.ID, err)
			continue
		}
		count++

		if s.DeleteMedia != nil {
			var keys []string
			for _, img := range ad.ImageList() {
				if img.Key != "" {
					keys = append(keys, img.Key)
				}
			}
			for key, derr := range s.DeleteMedia(keys) {
				log.Printf("[WARN] ad sweeper: delete image %s: %v", key, derr)
			}
		}
	}
	return count
}
