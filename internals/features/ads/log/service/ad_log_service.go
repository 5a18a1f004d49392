package service

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"namur_backend/internals/features/ads/log/model"
)

// WriteLog appends one audit row. Pass the surrounding transaction so
// the log commits (or rolls back) together with the change it records.
func WriteLog(tx *gorm.DB, adID uint, action string, actorName, actorRole *string, payload any) error {
	var snapshot datatypes.JSON
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		snapshot = datatypes.JSON(b)
	}
	return tx.Create(&model.AdLogModel{
		AdID:      adID,
		Action:    action,
		ActorName: actorName,
		ActorRole: actorRole,
		Payload:   snapshot,
	}).Error
}

func StrPtr(s string) *string { return &s }
