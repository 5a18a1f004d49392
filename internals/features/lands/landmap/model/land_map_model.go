package model

import (
	"time"

	"gorm.io/datatypes"
)

// LandMapModel is a surveyed parcel polygon keyed by revenue-record
// location fields.
type LandMapModel struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	District     string         `gorm:"column:district;type:varchar(150);not null;index" json:"district"`
	Taluk        string         `gorm:"column:taluk;type:varchar(150);not null" json:"taluk"`
	Hobli        *string        `gorm:"column:hobli;type:varchar(150)" json:"hobli"`
	Village      string         `gorm:"column:village;type:varchar(150);not null" json:"village"`
	SurveyNo     *string        `gorm:"column:survey_no;type:varchar(100)" json:"survey_no"`
	HissaNo      *string        `gorm:"column:hissa_no;type:varchar(100)" json:"hissa_no"`
	FidCode      *string        `gorm:"column:fid_code;type:varchar(200)" json:"fid_code"`
	AreaAcres    *float64       `gorm:"column:area_acres;type:numeric" json:"area_acres"`
	GeomType     *string        `gorm:"column:geom_type;type:varchar(50)" json:"geom_type"`
	CoordsLatLng datatypes.JSON `gorm:"column:coords_latlng;type:jsonb;not null" json:"coords_latlng"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LandMapModel) TableName() string {
	return "land_maps"
}
