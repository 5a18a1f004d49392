package model

import (
	"time"

	"gorm.io/datatypes"
)

type CropCalendarModel struct {
	ID               uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SubCategoryID    uint           `gorm:"column:sub_category_id;not null;index" json:"sub_category_id"`
	ProductID        uint           `gorm:"column:product_id;not null;index" json:"product_id"`
	CropDetails      *string        `gorm:"column:crop_details;type:text" json:"crop_details"`
	CostEstimate     datatypes.JSON `gorm:"column:cost_estimate;type:jsonb;default:'[]'" json:"cost_estimate"`
	CultivationTips  datatypes.JSON `gorm:"column:cultivation_tips;type:jsonb;default:'[]'" json:"cultivation_tips"`
	PestsAndDiseases datatypes.JSON `gorm:"column:pests_and_diseases;type:jsonb;default:'[]'" json:"pests_and_diseases"`
	StagesSelection  datatypes.JSON `gorm:"column:stages_selection;type:jsonb;default:'[]'" json:"stages_selection"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CropCalendarModel) TableName() string {
	return "crop_calendars"
}
