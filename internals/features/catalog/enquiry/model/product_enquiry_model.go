package model

import "time"

type ProductEnquiryModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID   uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	Breed       *string   `gorm:"column:breed;type:varchar(255)" json:"breed"`
	EnquiryType string    `gorm:"column:enquiry_type;type:varchar(20);not null" json:"enquiry_type"` // buy | rent
	Description *string   `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProductEnquiryModel) TableName() string {
	return "product_enquiries"
}
