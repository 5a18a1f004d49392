package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/lands/landmap/model"
	helper "namur_backend/internals/helpers"
)

type LandMapController struct {
	DB *gorm.DB
}

func NewLandMapController(db *gorm.DB) *LandMapController {
	return &LandMapController{DB: db}
}

// SearchLandMaps drills down the revenue-record hierarchy:
// district -> taluk -> village -> survey_no.
func (ctrl *LandMapController) SearchLandMaps(c *fiber.Ctx) error {
	district := c.Query("district")
	if district == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "district query parameter is required")
	}

	q := ctrl.DB.Model(&model.LandMapModel{}).Where("district = ?", district)
	if taluk := c.Query("taluk"); taluk != "" {
		q = q.Where("taluk = ?", taluk)
	}
	if village := c.Query("village"); village != "" {
		q = q.Where("village = ?", village)
	}
	if surveyNo := c.Query("survey_no"); surveyNo != "" {
		q = q.Where("survey_no = ?", surveyNo)
	}

	paging := helper.ResolvePaging(c, 100, 500)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count land maps")
	}

	var maps []model.LandMapModel
	if err := q.Order("id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&maps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch land maps")
	}
	return helper.JsonList(c, "", maps, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *LandMapController) GetLandMapByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var m model.LandMapModel
	if err := ctrl.DB.First(&m, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Land map not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch land map")
	}
	return helper.JsonOK(c, "", m)
}

// ImportLandMaps bulk-loads survey polygons in batches of 500.
func (ctrl *LandMapController) ImportLandMaps(c *fiber.Ctx) error {
	var rows []model.LandMapModel
	if err := c.BodyParser(&rows); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No land maps provided")
	}
	for i := range rows {
		rows[i].ID = 0
		if rows[i].District == "" || rows[i].Taluk == "" || rows[i].Village == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "district, taluk and village are required on every row")
		}
	}

	if err := ctrl.DB.CreateInBatches(rows, 500).Error; err != nil {
		log.Printf("[ERROR] importLandMaps: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to import land maps")
	}
	return helper.JsonCreated(c, "Land maps imported", fiber.Map{"count": len(rows)})
}
