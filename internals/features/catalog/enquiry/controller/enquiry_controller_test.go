package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"namur_backend/internals/features/catalog/enquiry/model"
	productModel "namur_backend/internals/features/catalog/product/model"
	userModel "namur_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&productModel.ProductModel{},
		&model.ProductEnquiryModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewEnquiryController(db)
	app.Put("/enquiries/:id", ctrl.UpdateEnquiry)
	return app
}

func putJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func seedEnquiry(t *testing.T, db *gorm.DB) model.ProductEnquiryModel {
	t.Helper()
	if err := db.Create(&productModel.ProductModel{Name: "Paddy", CategoryID: 1, SubcategoryID: 1}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	enq := model.ProductEnquiryModel{UserID: 1, ProductID: 1, EnquiryType: "buy"}
	if err := db.Create(&enq).Error; err != nil {
		t.Fatalf("seed enquiry: %v", err)
	}
	return enq
}

func TestUpdateEnquiryMergesPartialFields(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	enq := seedEnquiry(t, db)

	if code := putJSON(t, app, "/enquiries/1", `{"enquiry_type":"rent","description":"need for one season"}`); code != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	var got model.ProductEnquiryModel
	if err := db.First(&got, enq.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.EnquiryType != "rent" {
		t.Errorf("enquiry_type = %q, want rent", got.EnquiryType)
	}
	if got.Description == nil || *got.Description != "need for one season" {
		t.Errorf("description not updated: %v", got.Description)
	}
	if got.ProductID != enq.ProductID {
		t.Errorf("product_id changed without being sent: %d", got.ProductID)
	}
}

func TestUpdateEnquiryRejectsUnknownType(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	seedEnquiry(t, db)

	if code := putJSON(t, app, "/enquiries/1", `{"enquiry_type":"lease"}`); code != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestUpdateEnquiryChecksProductExists(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)
	seedEnquiry(t, db)

	if code := putJSON(t, app, "/enquiries/1", `{"product_id":99}`); code != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestUpdateEnquiryNotFound(t *testing.T) {
	db := openTestDB(t)
	app := newTestApp(db)

	if code := putJSON(t, app, "/enquiries/42", `{"enquiry_type":"buy"}`); code != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}
