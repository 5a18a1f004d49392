package model

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// AdImage is one uploaded image: public URL plus the media-host object
// key used to delete it later.
type AdImage struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type AdModel struct {
	ID            uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AdUID         string         `gorm:"column:ad_uid;type:varchar(20);uniqueIndex" json:"ad_uid"`
	Title         string         `gorm:"column:title;type:varchar(500);not null" json:"title"`
	CategoryID    uint           `gorm:"column:category_id;index" json:"category_id"`
	SubcategoryID *uint          `gorm:"column:subcategory_id" json:"subcategory_id"`
	ProductID     uint           `gorm:"column:product_id;index" json:"product_id"`
	ProductName   string         `gorm:"column:product_name;type:varchar(255)" json:"product_name"`
	Unit          *string        `gorm:"column:unit;type:varchar(50)" json:"unit"`
	Quantity      *float64       `gorm:"column:quantity;type:numeric" json:"quantity"`
	Price         *float64       `gorm:"column:price;type:numeric" json:"price"`
	Description   *string        `gorm:"column:description;type:text" json:"description"`
	Districts     pq.StringArray `gorm:"column:districts;type:text[]" json:"districts"`
	AdType        string         `gorm:"column:ad_type;type:varchar(20)" json:"ad_type"`     // sell | rent
	PostType      string         `gorm:"column:post_type;type:varchar(20)" json:"post_type"` // postnow | schedule
	ScheduledAt   *time.Time     `gorm:"column:scheduled_at" json:"scheduled_at"`
	ExpiryDate    *time.Time     `gorm:"column:expiry_date;index" json:"expiry_date"`
	Images        datatypes.JSON `gorm:"column:images;type:jsonb;default:'[]'" json:"images"`
	CreatedByRole string         `gorm:"column:created_by_role;type:varchar(50);index" json:"created_by_role"`
	CreatorID     uint           `gorm:"column:creator_id;index" json:"creator_id"`
	ExtraFields   datatypes.JSON `gorm:"column:extra_fields;type:jsonb;default:'{}'" json:"extra_fields"`
	Status        string         `gorm:"column:status;type:varchar(20);default:pending;index" json:"status"`
	VideoURL      *string        `gorm:"column:video_url;type:text" json:"video_url"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdModel) TableName() string {
	return "ads"
}

// ImageList decodes the images column; a broken column yields an empty
// list rather than an error (legacy rows may hold anything).
func (a *AdModel) ImageList() []AdImage {
	var imgs []AdImage
	if len(a.Images) == 0 {
		return imgs
	}
	_ = json.Unmarshal(a.Images, &imgs)
	return imgs
}

// SetImageList replaces the images column.
func (a *AdModel) SetImageList(imgs []AdImage) {
	if imgs == nil {
		imgs = []AdImage{}
	}
	b, _ := json.Marshal(imgs)
	a.Images = datatypes.JSON(b)
}

// ExtraMap decodes extra_fields into a generic map.
func (a *AdModel) ExtraMap() map[string]any {
	out := map[string]any{}
	if len(a.ExtraFields) > 0 {
		_ = json.Unmarshal(a.ExtraFields, &out)
	}
	return out
}
