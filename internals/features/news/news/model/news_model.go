package model

import "time"

type NewsModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	URL       string    `gorm:"column:url;type:text;not null" json:"url"`
	ImageURL  *string   `gorm:"column:image_url;type:text" json:"image_url"`
	ImageKey  *string   `gorm:"column:image_key;type:text" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NewsModel) TableName() string {
	return "news"
}

// NewsLogModel is append-only: one row per create/update/delete of a
// news item.
type NewsLogModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NewsID    uint      `gorm:"column:news_id;index" json:"news_id"`
	Title     *string   `gorm:"column:title;type:varchar(255)" json:"title"`
	URL       *string   `gorm:"column:url;type:text" json:"url"`
	Action    string    `gorm:"column:action;type:varchar(50);not null" json:"action"`
	ActorName *string   `gorm:"column:actor_name;type:varchar(255)" json:"actor_name"`
	ActorRole *string   `gorm:"column:actor_role;type:varchar(255)" json:"actor_role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NewsLogModel) TableName() string {
	return "news_logs"
}
