package model

import (
	"time"

	"github.com/lib/pq"
)

type SubadminModel struct {
	ID            uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"column:name;type:varchar(150);not null" json:"name"`
	Email         string         `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password      string         `gorm:"column:password;type:text;not null" json:"-"` // bcrypt hash
	Number        *string        `gorm:"column:number;type:varchar(20)" json:"number"`
	Qualification *string        `gorm:"column:qualification;type:varchar(255)" json:"qualification"`
	Address       *string        `gorm:"column:address;type:text" json:"address"`
	Districts     pq.StringArray `gorm:"column:districts;type:text[]" json:"districts"`
	PageAccess    pq.StringArray `gorm:"column:page_access;type:text[]" json:"page_access"`
	ImageURL      *string        `gorm:"column:image_url;type:text" json:"image_url"`
	ImageKey      *string        `gorm:"column:image_key;type:text" json:"-"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubadminModel) TableName() string {
	return "subadmins"
}
