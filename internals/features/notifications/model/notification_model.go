package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserFcmTokenModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	FcmToken  string    `gorm:"column:fcm_token;type:text;uniqueIndex;not null" json:"fcm_token"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserFcmTokenModel) TableName() string {
	return "user_fcm_tokens"
}

type NotificationLogModel struct {
	ID              uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title           string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description     string         `gorm:"column:description;type:text;not null" json:"description"`
	CreatedBy       *string        `gorm:"column:created_by;type:varchar(150)" json:"created_by"`
	CreatedByName   *string        `gorm:"column:created_by_name;type:varchar(150)" json:"created_by_name"`
	Type            string         `gorm:"column:type;type:varchar(50);not null" json:"type"` // general | targeted
	TargetInfo      datatypes.JSON `gorm:"column:target_info;type:jsonb" json:"target_info"`
	RecipientsCount int            `gorm:"column:recipients_count;default:0" json:"recipients_count"`
	Payload         datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`
	SentAt          time.Time      `gorm:"column:sent_at;autoCreateTime" json:"sent_at"`
}

func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
