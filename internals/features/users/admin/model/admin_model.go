package model

import "time"

type AdminModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(150);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;type:text;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
