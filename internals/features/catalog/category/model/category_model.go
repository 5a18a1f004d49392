package model

type CategoryModel struct {
	ID       uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ImageURL *string `gorm:"column:image_url;type:text" json:"image_url"`
	ImageKey *string `gorm:"column:image_key;type:text" json:"-"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
