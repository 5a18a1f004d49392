package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"namur_backend/internals/constants"
	"namur_backend/internals/features/ads/ad/model"
	logModel "namur_backend/internals/features/ads/log/model"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// the production schema uses postgres array/jsonb columns; sqlite
	// stores them as text
	for _, ddl := range []string{
		`CREATE TABLE ads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ad_uid TEXT, title TEXT,
			category_id INTEGER, subcategory_id INTEGER, product_id INTEGER,
			product_name TEXT, unit TEXT, quantity REAL, price REAL,
			description TEXT, districts TEXT, ad_type TEXT, post_type TEXT,
			scheduled_at DATETIME, expiry_date DATETIME, images TEXT,
			created_by_role TEXT, creator_id INTEGER, extra_fields TEXT,
			status TEXT DEFAULT 'pending', video_url TEXT, created_at DATETIME
		)`,
		`CREATE TABLE ad_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ad_id INTEGER, action TEXT, actor_name TEXT, actor_role TEXT,
			payload TEXT, created_at DATETIME
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

func newTestSweeper(t *testing.T, db *gorm.DB, now time.Time, deleted *[][]string) *Sweeper {
	t.Helper()
	return &Sweeper{
		DB:    db,
		Clock: fixedClock{t: now},
		Loc:   testLoc(t),
		DeleteMedia: func(keys []string) map[string]error {
			if deleted != nil {
				*deleted = append(*deleted, keys)
			}
			return nil
		},
	}
}

func TestSweeperActivatesScheduledAds(t *testing.T) {
	loc := testLoc(t)
	db := openTestDB(t)
	now := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	future := today.AddDate(0, 0, 5)
	expiry := today.AddDate(0, 0, 15)

	due := model.AdModel{
		AdUID: "AD-TEST01", Title: "due today",
		PostType: constants.PostTypeSchedule, Status: constants.AdStatusPending,
		ScheduledAt: &today, ExpiryDate: &expiry,
		Districts: pq.StringArray{"Mysuru"},
	}
	notDue := model.AdModel{
		AdUID: "AD-TEST02", Title: "due later",
		PostType: constants.PostTypeSchedule, Status: constants.AdStatusPending,
		ScheduledAt: &future, ExpiryDate: &expiry,
		Districts: pq.StringArray{"Mysuru"},
	}
	if err := db.Create(&due).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&notDue).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	newTestSweeper(t, db, now, nil).RunOnce()

	var got model.AdModel
	if err := db.First(&got, due.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != constants.AdStatusActive {
		t.Errorf("due ad status = %q, want active", got.Status)
	}

	got = model.AdModel{}
	if err := db.First(&got, notDue.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != constants.AdStatusPending {
		t.Errorf("future ad status = %q, want still pending", got.Status)
	}

	var logs []logModel.AdLogModel
	if err := db.Where("ad_id = ? AND action = ?", due.ID, logModel.ActionActivateScheduled).
		Find(&logs).Error; err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("want 1 activate_scheduled log, got %d", len(logs))
	}
}

func TestSweeperExpiresDueAds(t *testing.T) {
	loc := testLoc(t)
	db := openTestDB(t)
	now := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	expired := model.AdModel{
		AdUID: "AD-EXP001", Title: "past expiry",
		PostType: constants.PostTypeNow, Status: constants.AdStatusActive,
		ExpiryDate: &today,
		Districts:  pq.StringArray{"Hassan"},
	}
	expired.SetImageList([]model.AdImage{
		{URL: "https://cdn.example/a.webp", Key: "namur/ads/a.webp"},
		{URL: "https://cdn.example/b.webp", Key: "namur/ads/b.webp"},
	})
	alive := model.AdModel{
		AdUID: "AD-EXP002", Title: "still valid",
		PostType: constants.PostTypeNow, Status: constants.AdStatusActive,
		ExpiryDate: &tomorrow,
		Districts:  pq.StringArray{"Hassan"},
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&alive).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	var deleted [][]string
	newTestSweeper(t, db, now, &deleted).RunOnce()

	var count int64
	db.Model(&model.AdModel{}).Where("id = ?", expired.ID).Count(&count)
	if count != 0 {
		t.Error("expired ad should be removed")
	}
	db.Model(&model.AdModel{}).Where("id = ?", alive.ID).Count(&count)
	if count != 1 {
		t.Error("unexpired ad should survive")
	}

	var logs []logModel.AdLogModel
	if err := db.Where("ad_id = ? AND action = ?", expired.ID, logModel.ActionAutoExpired).
		Find(&logs).Error; err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("want 1 auto_expired log, got %d", len(logs))
	}
	if len(logs[0].Payload) == 0 {
		t.Error("auto_expired log should carry the ad snapshot")
	}

	if len(deleted) != 1 || len(deleted[0]) != 2 {
		t.Errorf("media cleanup should get both keys, got %v", deleted)
	}
}

func TestSweeperActivatesBeforeExpiring(t *testing.T) {
	// scheduled for today with expiry already due: the ad must get its
	// activation log before removal
	loc := testLoc(t)
	db := openTestDB(t)
	now := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	ad := model.AdModel{
		AdUID: "AD-BOTH01", Title: "activate then expire",
		PostType: constants.PostTypeSchedule, Status: constants.AdStatusPending,
		ScheduledAt: &today, ExpiryDate: &today,
		Districts: pq.StringArray{"Kolar"},
	}
	if err := db.Create(&ad).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	newTestSweeper(t, db, now, nil).RunOnce()

	var count int64
	db.Model(&model.AdModel{}).Where("id = ?", ad.ID).Count(&count)
	if count != 0 {
		t.Error("ad should be gone after the sweep")
	}

	var actions []string
	if err := db.Model(&logModel.AdLogModel{}).
		Where("ad_id = ?", ad.ID).
		Order("id ASC").
		Pluck("action", &actions).Error; err != nil {
		t.Fatalf("logs: %v", err)
	}
	want := []string{logModel.ActionActivateScheduled, logModel.ActionAutoExpired}
	if len(actions) != 2 || actions[0] != want[0] || actions[1] != want[1] {
		t.Errorf("actions = %v, want %v", actions, want)
	}
}

func TestSweeperContinuesPastFailingAd(t *testing.T) {
	// one ad whose transaction cannot commit must not stop the batch
	loc := testLoc(t)
	db := openTestDB(t)
	now := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	stuck := model.AdModel{
		AdUID: "AD-STUCK1", Title: "undeletable",
		PostType: constants.PostTypeNow, Status: constants.AdStatusActive,
		ExpiryDate: &today,
		Districts:  pq.StringArray{"Ballari"},
	}
	fine := model.AdModel{
		AdUID: "AD-FINE01", Title: "expires normally",
		PostType: constants.PostTypeNow, Status: constants.AdStatusActive,
		ExpiryDate: &today,
		Districts:  pq.StringArray{"Ballari"},
	}
	if err := db.Create(&stuck).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&fine).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// the first ad in rowid order refuses to die
	ddl := fmt.Sprintf(`CREATE TRIGGER block_stuck_delete BEFORE DELETE ON ads
		WHEN OLD.id = %d BEGIN
			SELECT RAISE(ABORT, 'row is held');
		END`, stuck.ID)
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	newTestSweeper(t, db, now, nil).RunOnce()

	var count int64
	db.Model(&model.AdModel{}).Where("id = ?", stuck.ID).Count(&count)
	if count != 1 {
		t.Error("failing ad should be left untouched")
	}
	db.Model(&model.AdModel{}).Where("id = ?", fine.ID).Count(&count)
	if count != 0 {
		t.Error("healthy ad should still be expired after the earlier failure")
	}

	// the rolled-back transaction must not leave a log behind
	var logs []logModel.AdLogModel
	if err := db.Where("ad_id = ?", stuck.ID).Find(&logs).Error; err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("failing ad should have no committed logs, got %d", len(logs))
	}
	if err := db.Where("ad_id = ? AND action = ?", fine.ID, logModel.ActionAutoExpired).
		Find(&logs).Error; err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("want 1 auto_expired log for the healthy ad, got %d", len(logs))
	}
}

func TestSweeperIgnoresAdsWithoutExpiry(t *testing.T) {
	loc := testLoc(t)
	db := openTestDB(t)
	now := time.Date(2025, 3, 10, 0, 5, 0, 0, loc)

	ad := model.AdModel{
		AdUID: "AD-NOEXP1", Title: "no expiry",
		PostType: constants.PostTypeNow, Status: constants.AdStatusActive,
		Districts: pq.StringArray{"Tumakuru"},
	}
	if err := db.Create(&ad).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	newTestSweeper(t, db, now, nil).RunOnce()

	var count int64
	db.Model(&model.AdModel{}).Where("id = ?", ad.ID).Count(&count)
	if count != 1 {
		t.Error("ad without expiry_date must never be swept")
	}
}
