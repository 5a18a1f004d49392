package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/ads/log/model"
	helper "namur_backend/internals/helpers"
)

type AdLogController struct {
	DB *gorm.DB
}

func NewAdLogController(db *gorm.DB) *AdLogController {
	return &AdLogController{DB: db}
}

// GetLogs lists the audit trail, newest first. Optional ?ad_id= and
// ?action= filters.
func (ctrl *AdLogController) GetLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.AdLogModel{})
	if adID := c.QueryInt("ad_id"); adID > 0 {
		q = q.Where("ad_id = ?", adID)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count ad logs")
	}

	var logs []model.AdLogModel
	if err := q.Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ad logs")
	}

	return helper.JsonList(c, "", logs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetLogsByAd lists the trail of one ad.
func (ctrl *AdLogController) GetLogsByAd(c *fiber.Ctx) error {
	adID, err := c.ParamsInt("adId")
	if err != nil || adID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "adId is required")
	}

	var logs []model.AdLogModel
	if err := ctrl.DB.
		Where("ad_id = ?", adID).
		Order("id DESC").
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ad logs")
	}
	return helper.JsonOK(c, "", logs)
}
