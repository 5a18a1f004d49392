package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/lands/land/dto"
	"namur_backend/internals/features/lands/land/model"
	"namur_backend/internals/features/lands/service"
	userModel "namur_backend/internals/features/users/user/model"
	helper "namur_backend/internals/helpers"
)

var validateLand = validator.New()

type LandController struct {
	DB *gorm.DB
}

func NewLandController(db *gorm.DB) *LandController {
	return &LandController{DB: db}
}

func (ctrl *LandController) CreateLand(c *fiber.Ctx) error {
	var body dto.CreateLandRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLand.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var owner userModel.UserModel
	if err := ctrl.DB.First(&owner, body.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	land := model.LandModel{
		UserID:    body.UserID,
		LandName:  body.LandName,
		District:  body.District,
		Taluk:     body.Taluk,
		Village:   body.Village,
		Panchayat: body.Panchayat,
		SurveyNo:  body.SurveyNo,
		HissaNo:   body.HissaNo,
		FarmSize:  body.FarmSize,
	}
	if err := ctrl.DB.Create(&land).Error; err != nil {
		log.Printf("[ERROR] createLand: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create land")
	}
	return helper.JsonCreated(c, "Land created", land)
}

func (ctrl *LandController) GetLandsByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId is required")
	}

	var lands []model.LandModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lands).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lands")
	}
	return helper.JsonOK(c, "", lands)
}

func (ctrl *LandController) GetLandByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var land model.LandModel
	if err := ctrl.DB.First(&land, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Land not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch land")
	}
	return helper.JsonOK(c, "", land)
}

// UpdateLand refuses a farm_size below what food products or crop
// plans already occupy on the parcel.
func (ctrl *LandController) UpdateLand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateLandRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLand.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var updated model.LandModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		land, err := service.LockLand(tx, uint(id))
		if err != nil {
			return err
		}

		if body.FarmSize != nil && *body.FarmSize != land.FarmSize {
			foodUsed, err := service.FoodAcresUsed(tx, land.ID, 0)
			if err != nil {
				return err
			}
			plannedUsed, err := service.PlannedAreaUsed(tx, land.ID, 0)
			if err != nil {
				return err
			}
			minSize := foodUsed
			if plannedUsed > minSize {
				minSize = plannedUsed
			}
			if *body.FarmSize < minSize {
				return &service.CapacityError{
					Requested: *body.FarmSize,
					Available: minSize,
					FarmSize:  land.FarmSize,
					Used:      minSize,
				}
			}
			land.FarmSize = *body.FarmSize
		}

		if body.LandName != nil {
			land.LandName = body.LandName
		}
		if body.District != nil {
			land.District = body.District
		}
		if body.Taluk != nil {
			land.Taluk = body.Taluk
		}
		if body.Village != nil {
			land.Village = body.Village
		}
		if body.Panchayat != nil {
			land.Panchayat = body.Panchayat
		}
		if body.SurveyNo != nil {
			land.SurveyNo = body.SurveyNo
		}
		if body.HissaNo != nil {
			land.HissaNo = body.HissaNo
		}

		updated = *land
		return tx.Save(land).Error
	})
	if txErr != nil {
		var capErr *service.CapacityError
		if errors.As(txErr, &capErr) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Farm size cannot shrink below current allocations: "+capErr.Error())
		}
		if txErr == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Land not found")
		}
		log.Printf("[ERROR] updateLand: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update land")
	}
	return helper.JsonUpdated(c, "Land updated", updated)
}

// DeleteLand removes the parcel along with its product links and crop
// plans.
func (ctrl *LandController) DeleteLand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var land model.LandModel
	if err := ctrl.DB.First(&land, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Land not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch land")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM land_products WHERE land_id = ?", land.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM crop_plans WHERE land_id = ?", land.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.LandModel{}, land.ID).Error
	}); err != nil {
		log.Printf("[ERROR] deleteLand: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete land")
	}
	return helper.JsonDeleted(c, "Land deleted", fiber.Map{"id": land.ID})
}
