package model

import "time"

type SubcategoryModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CategoryID uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	Name       string    `gorm:"column:name;type:varchar(150);not null" json:"name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubcategoryModel) TableName() string {
	return "subcategories"
}
