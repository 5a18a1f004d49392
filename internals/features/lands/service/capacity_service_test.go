package service

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cropPlanModel "namur_backend/internals/features/lands/cropplan/model"
	landModel "namur_backend/internals/features/lands/land/model"
	landProductModel "namur_backend/internals/features/lands/landproduct/model"
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
		&landModel.LandModel{},
		&landProductModel.LandProductModel{},
		&cropPlanModel.CropPlanModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func TestCheckCapacity(t *testing.T) {
	if err := CheckCapacity(10, 4, 6); err != nil {
		t.Errorf("exact fit should pass: %v", err)
	}
	if err := CheckCapacity(10, 4, 5.5); err != nil {
		t.Errorf("under capacity should pass: %v", err)
	}

	err := CheckCapacity(10, 4, 6.5)
	if err == nil {
		t.Fatal("overrun should fail")
	}
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("want *CapacityError, got %T", err)
	}
	if capErr.Requested != 6.5 || capErr.Available != 6 || capErr.FarmSize != 10 || capErr.Used != 4 {
		t.Errorf("wrong figures in error: %+v", capErr)
	}
}

func TestFoodAcresUsed(t *testing.T) {
	db := openTestDB(t)
	land := landModel.LandModel{UserID: 1, FarmSize: 10}
	if err := db.Create(&land).Error; err != nil {
		t.Fatalf("seed land: %v", err)
	}

	rows := []landProductModel.LandProductModel{
		{UserID: 1, LandID: land.ID, ProductID: 1, Category: "Food", Acres: floatPtr(3)},
		{UserID: 1, LandID: land.ID, ProductID: 2, Category: "Food", Acres: floatPtr(2.5)},
		// machinery and animals never count against acreage
		{UserID: 1, LandID: land.ID, ProductID: 3, Category: "Machinery"},
		{UserID: 1, LandID: land.ID, ProductID: 4, Category: "Animal", Quantity: intPtr(5)},
		// another land does not count
		{UserID: 1, LandID: land.ID + 100, ProductID: 5, Category: "Food", Acres: floatPtr(9)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed row %d: %v", i, err)
		}
	}

	used, err := FoodAcresUsed(db, land.ID, 0)
	if err != nil {
		t.Fatalf("FoodAcresUsed: %v", err)
	}
	if used != 5.5 {
		t.Errorf("used = %v, want 5.5", used)
	}

	// excluding a row frees its acres for an update check
	used, err = FoodAcresUsed(db, land.ID, rows[0].ID)
	if err != nil {
		t.Fatalf("FoodAcresUsed exclude: %v", err)
	}
	if used != 2.5 {
		t.Errorf("used excluding row = %v, want 2.5", used)
	}
}

func TestFoodAcresUsedEmptyLand(t *testing.T) {
	db := openTestDB(t)
	used, err := FoodAcresUsed(db, 42, 0)
	if err != nil {
		t.Fatalf("FoodAcresUsed: %v", err)
	}
	if used != 0 {
		t.Errorf("used on empty land = %v, want 0", used)
	}
}

func TestPlannedAreaUsed(t *testing.T) {
	db := openTestDB(t)
	land := landModel.LandModel{UserID: 1, FarmSize: 12}
	if err := db.Create(&land).Error; err != nil {
		t.Fatalf("seed land: %v", err)
	}

	plans := []cropPlanModel.CropPlanModel{
		{UserID: 1, LandID: land.ID, ProductID: 1, AreaAcres: 4, PlanningDate: "2025-03-01"},
		{UserID: 1, LandID: land.ID, ProductID: 2, AreaAcres: 3.5, PlanningDate: "2025-03-02"},
		{UserID: 1, LandID: land.ID + 1, ProductID: 3, AreaAcres: 10, PlanningDate: "2025-03-03"},
	}
	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			t.Fatalf("seed plan %d: %v", i, err)
		}
	}

	used, err := PlannedAreaUsed(db, land.ID, 0)
	if err != nil {
		t.Fatalf("PlannedAreaUsed: %v", err)
	}
	if used != 7.5 {
		t.Errorf("used = %v, want 7.5", used)
	}

	used, err = PlannedAreaUsed(db, land.ID, plans[1].ID)
	if err != nil {
		t.Fatalf("PlannedAreaUsed exclude: %v", err)
	}
	if used != 4 {
		t.Errorf("used excluding plan = %v, want 4", used)
	}
}

func TestCapacityFlowRejectsOverrun(t *testing.T) {
	db := openTestDB(t)
	land := landModel.LandModel{UserID: 7, FarmSize: 5}
	if err := db.Create(&land).Error; err != nil {
		t.Fatalf("seed land: %v", err)
	}
	if err := db.Create(&landProductModel.LandProductModel{
		UserID: 7, LandID: land.ID, ProductID: 1, Category: "Food", Acres: floatPtr(4),
	}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	used, err := FoodAcresUsed(db, land.ID, 0)
	if err != nil {
		t.Fatalf("FoodAcresUsed: %v", err)
	}
	if err := CheckCapacity(land.FarmSize, used, 2); err == nil {
		t.Fatal("4 + 2 on a 5-acre land should fail")
	}
	if err := CheckCapacity(land.FarmSize, used, 1); err != nil {
		t.Fatalf("4 + 1 on a 5-acre land should pass: %v", err)
	}
}
