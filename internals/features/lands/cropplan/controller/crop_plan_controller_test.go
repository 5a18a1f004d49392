package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"namur_backend/internals/features/lands/cropplan/model"
	landModel "namur_backend/internals/features/lands/land/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&landModel.LandModel{}, &model.CropPlanModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&landModel.LandModel{UserID: 1, FarmSize: 5}).Error; err != nil {
		t.Fatalf("seed land: %v", err)
	}
	return db
}

func postPlan(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/crop-plans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateCropPlanRejectsDuplicatePair(t *testing.T) {
	db := openTestDB(t)
	app := fiber.New()
	app.Post("/crop-plans", NewCropPlanController(db).CreateCropPlan)

	first := `{"user_id":1,"land_id":1,"product_id":7,"area_acres":1.5,"planning_date":"2025-06-01"}`
	if code := postPlan(t, app, first); code != fiber.StatusCreated {
		t.Fatalf("first plan status = %d, want 201", code)
	}

	// same (land, product) pair again, even with different acreage
	second := `{"user_id":1,"land_id":1,"product_id":7,"area_acres":0.5,"planning_date":"2025-07-01"}`
	if code := postPlan(t, app, second); code != fiber.StatusConflict {
		t.Fatalf("duplicate pair status = %d, want 409", code)
	}

	var count int64
	if err := db.Model(&model.CropPlanModel{}).
		Where("land_id = ? AND product_id = ?", 1, 7).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("want exactly one plan for the pair, got %d", count)
	}

	// another product on the same land is fine
	other := `{"user_id":1,"land_id":1,"product_id":8,"area_acres":1,"planning_date":"2025-06-01"}`
	if code := postPlan(t, app, other); code != fiber.StatusCreated {
		t.Fatalf("different product status = %d, want 201", code)
	}
}
