package controller

import (
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"namur_backend/internals/features/notifications/model"
	"namur_backend/internals/features/notifications/service"
	helper "namur_backend/internals/helpers"
)

var validateNotification = validator.New()

type NotificationController struct {
	DB   *gorm.DB
	Push *service.PushService
}

func NewNotificationController(db *gorm.DB, push *service.PushService) *NotificationController {
	return &NotificationController{DB: db, Push: push}
}

// =======================
// Token registration
// =======================

type saveTokenRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	FcmToken string `json:"fcm_token" validate:"required"`
}

// SaveToken upserts on the token value: a token moving to another
// device login re-homes to the new user.
func (ctrl *NotificationController) SaveToken(c *fiber.Ctx) error {
	var body saveTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNotification.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := model.UserFcmTokenModel{UserID: body.UserID, FcmToken: body.FcmToken}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fcm_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id"}),
	}).Create(&row).Error; err != nil {
		log.Printf("[ERROR] saveToken: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save token")
	}
	return helper.JsonOK(c, "Token saved", fiber.Map{"user_id": body.UserID})
}

// =======================
// Sending
// =======================

type sendNotificationRequest struct {
	Title         string            `json:"title" validate:"required,max=255"`
	Description   string            `json:"description" validate:"required"`
	Data          map[string]string `json:"data"`
	CreatedBy     *string           `json:"created_by"`
	CreatedByName *string           `json:"created_by_name"`
}

type sendTargetedRequest struct {
	sendNotificationRequest
	Districts []string `json:"districts" validate:"required,min=1"`
	ProductID *uint    `json:"product_id"`
}

// SendToAll pushes to every registered token.
func (ctrl *NotificationController) SendToAll(c *fiber.Ctx) error {
	var body sendNotificationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNotification.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var tokens []string
	if err := ctrl.DB.Model(&model.UserFcmTokenModel{}).
		Pluck("fcm_token", &tokens).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tokens")
	}

	return ctrl.deliver(c, body, tokens, "general", nil)
}

// SendTargeted pushes to users in the given districts; with product_id
// set, only to users who grow that product on some land.
func (ctrl *NotificationController) SendTargeted(c *fiber.Ctx) error {
	var body sendTargetedRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNotification.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Model(&model.UserFcmTokenModel{}).
		Joins("JOIN users ON users.id = user_fcm_tokens.user_id").
		Where("users.district IN ?", body.Districts)
	if body.ProductID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM land_products lp WHERE lp.user_id = users.id AND lp.product_id = ?)", *body.ProductID)
	}

	var tokens []string
	if err := q.Pluck("user_fcm_tokens.fcm_token", &tokens).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tokens")
	}

	target := map[string]any{"districts": body.Districts}
	if body.ProductID != nil {
		target["product_id"] = *body.ProductID
	}
	return ctrl.deliver(c, body.sendNotificationRequest, tokens, "targeted", target)
}

// deliver fans out, prunes dead tokens and records the send.
func (ctrl *NotificationController) deliver(c *fiber.Ctx, body sendNotificationRequest, tokens []string, notifType string, target map[string]any) error {
	result := &service.PushResult{}
	if len(tokens) > 0 {
		var err error
		result, err = ctrl.Push.SendToTokens(c.Context(), tokens, body.Title, body.Description, body.Data)
		if err != nil {
			log.Printf("[ERROR] push send: %v", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to send notification")
		}
	}

	if len(result.InvalidTokens) > 0 {
		if err := ctrl.DB.Where("fcm_token IN ?", result.InvalidTokens).
			Delete(&model.UserFcmTokenModel{}).Error; err != nil {
			log.Printf("[WARN] failed to prune %d invalid tokens: %v", len(result.InvalidTokens), err)
		} else {
			log.Printf("[INFO] pruned %d invalid fcm tokens", len(result.InvalidTokens))
		}
	}

	entry := model.NotificationLogModel{
		Title:           body.Title,
		Description:     body.Description,
		CreatedBy:       body.CreatedBy,
		CreatedByName:   body.CreatedByName,
		Type:            notifType,
		RecipientsCount: result.SuccessCount,
	}
	if target != nil {
		if raw, err := json.Marshal(target); err == nil {
			entry.TargetInfo = datatypes.JSON(raw)
		}
	}
	if body.Data != nil {
		if raw, err := json.Marshal(body.Data); err == nil {
			entry.Payload = datatypes.JSON(raw)
		}
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[WARN] failed to record notification log: %v", err)
	}

	return helper.JsonOK(c, "Notification sent", fiber.Map{
		"recipients": result.SuccessCount,
		"failed":     result.FailureCount,
		"pruned":     len(result.InvalidTokens),
	})
}

// =======================
// History
// =======================

func (ctrl *NotificationController) GetLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationLogModel{})
	if notifType := c.Query("type"); notifType != "" {
		q = q.Where("type = ?", notifType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notification logs")
	}

	var logs []model.NotificationLogModel
	if err := q.Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notification logs")
	}
	return helper.JsonList(c, "", logs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
