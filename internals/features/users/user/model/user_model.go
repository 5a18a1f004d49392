package model

import "time"

type UserModel struct {
	ID                   uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirebaseUID          string    `gorm:"column:firebase_uid;type:varchar(255);uniqueIndex;not null" json:"firebase_uid"`
	Email                string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Username             *string   `gorm:"column:username;type:varchar(255)" json:"username"`
	Mobile               *string   `gorm:"column:mobile;type:varchar(15);index" json:"mobile"`
	District             *string   `gorm:"column:district;type:varchar(150);index" json:"district"`
	Profession           *string   `gorm:"column:profession;type:varchar(150)" json:"profession"`
	Age                  *int      `gorm:"column:age" json:"age"`
	Taluk                *string   `gorm:"column:taluk;type:varchar(150)" json:"taluk"`
	Village              *string   `gorm:"column:village;type:varchar(150)" json:"village"`
	Panchayat            *string   `gorm:"column:panchayat;type:varchar(150)" json:"panchayat"`
	ProfileImageURL      *string   `gorm:"column:profile_image_url;type:text" json:"profile_image_url"`
	ProfileImageKey      *string   `gorm:"column:profile_image_key;type:text" json:"-"`
	IsVerified           bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	IsBlocked            bool      `gorm:"column:is_blocked;default:false" json:"is_blocked"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
