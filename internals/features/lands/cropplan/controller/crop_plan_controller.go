package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/lands/cropplan/dto"
	"namur_backend/internals/features/lands/cropplan/model"
	"namur_backend/internals/features/lands/service"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/dbtime"
)

var validateCropPlan = validator.New()

type CropPlanController struct {
	DB *gorm.DB
}

func NewCropPlanController(db *gorm.DB) *CropPlanController {
	return &CropPlanController{DB: db}
}

func (ctrl *CropPlanController) CreateCropPlan(c *fiber.Ctx) error {
	var body dto.CreateCropPlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCropPlan.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !dbtime.IsISODate(body.PlanningDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "planning_date must be YYYY-MM-DD")
	}

	plan := model.CropPlanModel{
		UserID:       body.UserID,
		LandID:       body.LandID,
		ProductID:    body.ProductID,
		AreaAcres:    body.AreaAcres,
		PlanningDate: body.PlanningDate,
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		land, err := service.LockLand(tx, body.LandID)
		if err != nil {
			return err
		}
		if land.UserID != body.UserID {
			return fiber.NewError(fiber.StatusForbidden, "Land does not belong to this user")
		}

		var dup int64
		if err := tx.Model(&model.CropPlanModel{}).
			Where("land_id = ? AND product_id = ?", body.LandID, body.ProductID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "A crop plan for this product already exists on this land")
		}

		used, err := service.PlannedAreaUsed(tx, body.LandID, 0)
		if err != nil {
			return err
		}
		if err := service.CheckCapacity(land.FarmSize, used, body.AreaAcres); err != nil {
			return err
		}

		return tx.Create(&plan).Error
	})
	if txErr != nil {
		return cropPlanTxError(c, txErr, "Failed to create crop plan")
	}
	return helper.JsonCreated(c, "Crop plan created", plan)
}

func (ctrl *CropPlanController) UpdateCropPlan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateCropPlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCropPlan.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.PlanningDate != nil && !dbtime.IsISODate(*body.PlanningDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "planning_date must be YYYY-MM-DD")
	}

	var updated model.CropPlanModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var plan model.CropPlanModel
		if err := tx.First(&plan, id).Error; err != nil {
			return err
		}

		if body.AreaAcres != nil && *body.AreaAcres != plan.AreaAcres {
			land, err := service.LockLand(tx, plan.LandID)
			if err != nil {
				return err
			}
			used, err := service.PlannedAreaUsed(tx, plan.LandID, plan.ID)
			if err != nil {
				return err
			}
			if err := service.CheckCapacity(land.FarmSize, used, *body.AreaAcres); err != nil {
				return err
			}
			plan.AreaAcres = *body.AreaAcres
		}
		if body.PlanningDate != nil {
			plan.PlanningDate = *body.PlanningDate
		}

		updated = plan
		return tx.Save(&plan).Error
	})
	if txErr != nil {
		return cropPlanTxError(c, txErr, "Failed to update crop plan")
	}
	return helper.JsonUpdated(c, "Crop plan updated", updated)
}

func (ctrl *CropPlanController) DeleteCropPlan(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	res := ctrl.DB.Delete(&model.CropPlanModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] deleteCropPlan: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete crop plan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Crop plan not found")
	}
	return helper.JsonDeleted(c, "Crop plan deleted", fiber.Map{"id": id})
}

func (ctrl *CropPlanController) GetCropPlansByLand(c *fiber.Ctx) error {
	landID, err := c.ParamsInt("landId")
	if err != nil || landID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "landId is required")
	}

	var plans []model.CropPlanModel
	if err := ctrl.DB.
		Where("land_id = ?", landID).
		Order("id ASC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch crop plans")
	}
	return helper.JsonOK(c, "", plans)
}

func (ctrl *CropPlanController) GetCropPlansByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId is required")
	}

	var plans []model.CropPlanModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch crop plans")
	}
	return helper.JsonOK(c, "", plans)
}

func cropPlanTxError(c *fiber.Ctx, err error, fallback string) error {
	var capErr *service.CapacityError
	if errors.As(err, &capErr) {
		return helper.JsonError(c, fiber.StatusBadRequest, capErr.Error())
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return helper.JsonError(c, fiberErr.Code, fiberErr.Message)
	}
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	log.Printf("[ERROR] %s: %v", fallback, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
