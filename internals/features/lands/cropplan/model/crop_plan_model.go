package model

import "time"

// CropPlanModel plans acreage on a land for one product. A (land,
// product) pair appears at most once, and the sum of AreaAcres per
// land never exceeds the land's farm_size.
type CropPlanModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	LandID       uint      `gorm:"column:land_id;not null;index:idx_crop_plans_land_product" json:"land_id"`
	ProductID    uint      `gorm:"column:product_id;not null;index:idx_crop_plans_land_product" json:"product_id"`
	AreaAcres    float64   `gorm:"column:area_acres;type:numeric;not null" json:"area_acres"`
	PlanningDate string    `gorm:"column:planning_date;type:varchar(10);not null" json:"planning_date"` // YYYY-MM-DD
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CropPlanModel) TableName() string {
	return "crop_plans"
}
