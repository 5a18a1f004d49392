package controller

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"namur_backend/internals/configs"
	"namur_backend/internals/features/ads/ad/model"
	categoryModel "namur_backend/internals/features/catalog/category/model"
	userModel "namur_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	configs.AppTimezone = loc
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}, &categoryModel.CategoryModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
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

	name := "ramesh"
	if err := db.Create(&userModel.UserModel{FirebaseUID: "fb-1", Email: "r@example.com", Username: &name}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&categoryModel.CategoryModel{Name: "Seeds"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return db
}

func newTestAdController(db *gorm.DB, deleted *[][]string) *AdController {
	uploads := 0
	return &AdController{
		DB: db,
		uploadImage: func(fh *multipart.FileHeader, dir string) (string, string, error) {
			uploads++
			key := fmt.Sprintf("%s/up-%d.webp", dir, uploads)
			return "https://cdn.example/" + key, key, nil
		},
		deleteMedia: func(keys []string) map[string]error {
			if deleted != nil && len(keys) > 0 {
				*deleted = append(*deleted, keys)
			}
			return nil
		},
	}
}

func postCreateAd(t *testing.T, app *fiber.App, withImage bool) int {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, value := range map[string]string{
		"title":           "Fresh paddy seed",
		"category_id":     "1",
		"product_id":      "3",
		"product_name":    "Paddy",
		"districts":       "Mysuru",
		"ad_type":         "sell",
		"post_type":       "postnow",
		"created_by_role": "user",
		"creator_id":      "1",
	} {
		if err := w.WriteField(field, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withImage {
		fw, err := w.CreateFormFile("images", "pic.jpg")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := fw.Write([]byte("jpegdata")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest("POST", "/ads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateAdCleansUpImagesWhenInsertFails(t *testing.T) {
	db := openTestDB(t)
	if err := db.Exec(`CREATE TRIGGER block_ad_insert BEFORE INSERT ON ads
		BEGIN SELECT RAISE(ABORT, 'insert refused'); END`).Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	var deleted [][]string
	app := fiber.New()
	app.Post("/ads", newTestAdController(db, &deleted).CreateAd)

	if code := postCreateAd(t, app, true); code != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", code)
	}

	if len(deleted) != 1 || len(deleted[0]) != 1 {
		t.Fatalf("uploaded image should be removed after the failed insert, got %v", deleted)
	}
	if deleted[0][0] != "namur/ads/up-1.webp" {
		t.Errorf("cleanup key = %q, want the uploaded key", deleted[0][0])
	}
}

func TestCreateAdKeepsImagesOnSuccess(t *testing.T) {
	db := openTestDB(t)

	var deleted [][]string
	app := fiber.New()
	app.Post("/ads", newTestAdController(db, &deleted).CreateAd)

	if code := postCreateAd(t, app, true); code != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", code)
	}
	if len(deleted) != 0 {
		t.Errorf("no cleanup expected on success, got %v", deleted)
	}

	var ad model.AdModel
	if err := db.First(&ad).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	imgs := ad.ImageList()
	if len(imgs) != 1 || imgs[0].Key != "namur/ads/up-1.webp" {
		t.Errorf("stored images = %v, want the uploaded key", imgs)
	}
}
