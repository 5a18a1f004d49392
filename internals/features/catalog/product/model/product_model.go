package model

import "time"

type ProductModel struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ImageURL      *string   `gorm:"column:image_url;type:text" json:"image_url"`
	ImageKey      *string   `gorm:"column:image_key;type:text" json:"-"`
	CategoryID    uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	SubcategoryID uint      `gorm:"column:subcategory_id;not null;index" json:"subcategory_id"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProductModel) TableName() string {
	return "products"
}
