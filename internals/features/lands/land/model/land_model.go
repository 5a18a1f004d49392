package model

import "time"

// LandModel is a parcel owned by exactly one user. FarmSize is the
// fixed acreage capacity every allocation on this land is checked
// against.
type LandModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	LandName  *string   `gorm:"column:land_name;type:varchar(200)" json:"land_name"`
	District  *string   `gorm:"column:district;type:varchar(150)" json:"district"`
	Taluk     *string   `gorm:"column:taluk;type:varchar(150)" json:"taluk"`
	Village   *string   `gorm:"column:village;type:varchar(150)" json:"village"`
	Panchayat *string   `gorm:"column:panchayat;type:varchar(150)" json:"panchayat"`
	SurveyNo  *string   `gorm:"column:survey_no;type:varchar(150)" json:"survey_no"`
	HissaNo   *string   `gorm:"column:hissa_no;type:varchar(150)" json:"hissa_no"`
	FarmSize  float64   `gorm:"column:farm_size;type:decimal(10,2)" json:"farm_size"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LandModel) TableName() string {
	return "lands"
}
