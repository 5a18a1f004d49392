package service

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cropPlanModel "namur_backend/internals/features/lands/cropplan/model"
	landModel "namur_backend/internals/features/lands/land/model"
	landProductModel "namur_backend/internals/features/lands/landproduct/model"
)

// CapacityError reports an allocation that would overrun the land.
// Both the request and the remaining headroom go back to the caller.
type CapacityError struct {
	Requested float64
	Available float64
	FarmSize  float64
	Used      float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("requested %.2f acres but only %.2f acres available (farm size %.2f, already used %.2f)",
		e.Requested, e.Available, e.FarmSize, e.Used)
}

// LockLand fetches the land under FOR UPDATE so concurrent allocations
// against the same parcel serialize on its row. Must run inside a
// transaction.
func LockLand(tx *gorm.DB, landID uint) (*landModel.LandModel, error) {
	var land landModel.LandModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&land, landID).Error; err != nil {
		return nil, err
	}
	return &land, nil
}

// FoodAcresUsed sums the acres of food-category products already on a
// land. excludeID skips the row being updated.
func FoodAcresUsed(tx *gorm.DB, landID uint, excludeID uint) (float64, error) {
	q := tx.Model(&landProductModel.LandProductModel{}).
		Where("land_id = ?", landID).
		Where("acres IS NOT NULL")
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var used float64
	if err := q.Select("COALESCE(SUM(acres), 0)").Scan(&used).Error; err != nil {
		return 0, err
	}
	return used, nil
}

// PlannedAreaUsed sums the crop-plan acreage already booked on a land.
func PlannedAreaUsed(tx *gorm.DB, landID uint, excludeID uint) (float64, error) {
	q := tx.Model(&cropPlanModel.CropPlanModel{}).
		Where("land_id = ?", landID)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var used float64
	if err := q.Select("COALESCE(SUM(area_acres), 0)").Scan(&used).Error; err != nil {
		return 0, err
	}
	return used, nil
}

// CheckCapacity rejects an allocation that would push used past the
// farm size.
func CheckCapacity(farmSize, used, requested float64) error {
	if used+requested > farmSize {
		return &CapacityError{
			Requested: requested,
			Available: farmSize - used,
			FarmSize:  farmSize,
			Used:      used,
		}
	}
	return nil
}
