package model

import (
	"time"

	"gorm.io/datatypes"
)

// Log actions
const (
	ActionCreate            = "create"
	ActionUpdate            = "update"
	ActionDelete            = "delete"
	ActionActivateScheduled = "activate_scheduled"
	ActionAutoExpired       = "auto_expired"
)

// AdLogModel is an append-only audit row: who did what to which ad,
// with a JSON snapshot of the ad at that moment. Never updated.
type AdLogModel struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AdID      uint           `gorm:"column:ad_id;index" json:"ad_id"`
	Action    string         `gorm:"column:action;type:varchar(50);not null" json:"action"`
	ActorName *string        `gorm:"column:actor_name;type:varchar(255)" json:"actor_name"`
	ActorRole *string        `gorm:"column:actor_role;type:varchar(50)" json:"actor_role"`
	Payload   datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdLogModel) TableName() string {
	return "ad_logs"
}
