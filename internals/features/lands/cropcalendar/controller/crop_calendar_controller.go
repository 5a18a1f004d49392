package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/lands/cropcalendar/model"
	helper "namur_backend/internals/helpers"
)

type CropCalendarController struct {
	DB *gorm.DB
}

func NewCropCalendarController(db *gorm.DB) *CropCalendarController {
	return &CropCalendarController{DB: db}
}

func (ctrl *CropCalendarController) CreateCropCalendar(c *fiber.Ctx) error {
	var body model.CropCalendarModel
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.SubCategoryID == 0 || body.ProductID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "sub_category_id and product_id are required")
	}

	var dup int64
	if err := ctrl.DB.Model(&model.CropCalendarModel{}).
		Where("product_id = ?", body.ProductID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check crop calendar")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A crop calendar for this product already exists")
	}

	body.ID = 0
	if err := ctrl.DB.Create(&body).Error; err != nil {
		log.Printf("[ERROR] createCropCalendar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create crop calendar")
	}
	return helper.JsonCreated(c, "Crop calendar created", body)
}

func (ctrl *CropCalendarController) GetCropCalendarByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "productId is required")
	}

	var cal model.CropCalendarModel
	if err := ctrl.DB.Where("product_id = ?", productID).First(&cal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Crop calendar not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch crop calendar")
	}
	return helper.JsonOK(c, "", cal)
}

func (ctrl *CropCalendarController) GetCropCalendars(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CropCalendarModel{})
	if subCategoryID := c.QueryInt("sub_category_id"); subCategoryID > 0 {
		q = q.Where("sub_category_id = ?", subCategoryID)
	}

	var cals []model.CropCalendarModel
	if err := q.Order("id ASC").Find(&cals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch crop calendars")
	}
	return helper.JsonOK(c, "", cals)
}

func (ctrl *CropCalendarController) UpdateCropCalendar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var existing model.CropCalendarModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Crop calendar not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch crop calendar")
	}

	var body model.CropCalendarModel
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.CropDetails != nil {
		existing.CropDetails = body.CropDetails
	}
	if len(body.CostEstimate) > 0 {
		existing.CostEstimate = body.CostEstimate
	}
	if len(body.CultivationTips) > 0 {
		existing.CultivationTips = body.CultivationTips
	}
	if len(body.PestsAndDiseases) > 0 {
		existing.PestsAndDiseases = body.PestsAndDiseases
	}
	if len(body.StagesSelection) > 0 {
		existing.StagesSelection = body.StagesSelection
	}

	if err := ctrl.DB.Save(&existing).Error; err != nil {
		log.Printf("[ERROR] updateCropCalendar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update crop calendar")
	}
	return helper.JsonUpdated(c, "Crop calendar updated", existing)
}

func (ctrl *CropCalendarController) DeleteCropCalendar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	res := ctrl.DB.Delete(&model.CropCalendarModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] deleteCropCalendar: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete crop calendar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Crop calendar not found")
	}
	return helper.JsonDeleted(c, "Crop calendar deleted", fiber.Map{"id": id})
}
