package model

import "time"

// LandProductModel attaches a product to a land under one of three
// category shapes: Food carries acres, Machinery carries registration
// details, Animal carries a head count. Only the columns of the row's
// category are ever set.
type LandProductModel struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	LandID    uint   `gorm:"column:land_id;not null;index" json:"land_id"`
	ProductID uint   `gorm:"column:product_id;not null;index" json:"product_id"`
	Category  string `gorm:"column:category;type:varchar(50);not null" json:"category"`

	// Food
	Acres *float64 `gorm:"column:acres;type:decimal(10,2)" json:"acres,omitempty"`

	// Machinery
	ModelNo        *string `gorm:"column:model_no;type:varchar(150)" json:"model_no,omitempty"`
	RegistrationNo *string `gorm:"column:registration_no;type:varchar(150)" json:"registration_no,omitempty"`
	ChassiNo       *string `gorm:"column:chassi_no;type:varchar(150)" json:"chassi_no,omitempty"`
	RcCopyNo       *string `gorm:"column:rc_copy_no;type:varchar(150)" json:"rc_copy_no,omitempty"`

	// Animal
	Quantity *int `gorm:"column:quantity" json:"quantity,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LandProductModel) TableName() string {
	return "land_products"
}
