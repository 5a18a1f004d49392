package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/constants"
	"namur_backend/internals/features/lands/landproduct/dto"
	"namur_backend/internals/features/lands/landproduct/model"
	"namur_backend/internals/features/lands/service"
	helper "namur_backend/internals/helpers"
)

var validateLandProduct = validator.New()

type LandProductController struct {
	DB *gorm.DB
}

func NewLandProductController(db *gorm.DB) *LandProductController {
	return &LandProductController{DB: db}
}

// validateShape enforces the per-category payload: Food carries acres,
// Animal a head count, Machinery its registration details.
func validateShape(category string, acres *float64, quantity *int, modelNo, registrationNo *string) error {
	switch {
	case strings.EqualFold(category, constants.CategoryFood):
		if acres == nil || *acres <= 0 {
			return errors.New("acres is required for food products and must be greater than zero")
		}
	case strings.EqualFold(category, constants.CategoryAnimal):
		if quantity == nil || *quantity < 1 {
			return errors.New("quantity is required for animal products and must be at least 1")
		}
	case strings.EqualFold(category, constants.CategoryMachinery):
		if modelNo == nil || *modelNo == "" {
			return errors.New("model_no is required for machinery products")
		}
		if registrationNo == nil || *registrationNo == "" {
			return errors.New("registration_no is required for machinery products")
		}
	default:
		return errors.New("category must be one of Food, Animal, Machinery")
	}
	return nil
}

func (ctrl *LandProductController) CreateLandProduct(c *fiber.Ctx) error {
	var body dto.CreateLandProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLandProduct.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validateShape(body.Category, body.Acres, body.Quantity, body.ModelNo, body.RegistrationNo); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := model.LandProductModel{
		UserID:    body.UserID,
		LandID:    body.LandID,
		ProductID: body.ProductID,
		Category:  body.Category,
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
		if err := tx.Model(&model.LandProductModel{}).
			Where("land_id = ? AND product_id = ?", body.LandID, body.ProductID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "This product is already added on this land")
		}

		switch {
		case strings.EqualFold(body.Category, constants.CategoryFood):
			used, err := service.FoodAcresUsed(tx, body.LandID, 0)
			if err != nil {
				return err
			}
			if err := service.CheckCapacity(land.FarmSize, used, *body.Acres); err != nil {
				return err
			}
			row.Acres = body.Acres
		case strings.EqualFold(body.Category, constants.CategoryAnimal):
			row.Quantity = body.Quantity
		case strings.EqualFold(body.Category, constants.CategoryMachinery):
			row.ModelNo = body.ModelNo
			row.RegistrationNo = body.RegistrationNo
			row.ChassiNo = body.ChassiNo
			row.RcCopyNo = body.RcCopyNo
		}

		return tx.Create(&row).Error
	})
	if txErr != nil {
		return landProductTxError(c, txErr, "Failed to add land product")
	}
	return helper.JsonCreated(c, "Land product added", row)
}

func (ctrl *LandProductController) UpdateLandProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateLandProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var updated model.LandProductModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var row model.LandProductModel
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		land, err := service.LockLand(tx, row.LandID)
		if err != nil {
			return err
		}

		switch {
		case strings.EqualFold(row.Category, constants.CategoryFood):
			if body.Acres != nil {
				if *body.Acres <= 0 {
					return fiber.NewError(fiber.StatusBadRequest, "acres must be greater than zero")
				}
				used, err := service.FoodAcresUsed(tx, row.LandID, row.ID)
				if err != nil {
					return err
				}
				if err := service.CheckCapacity(land.FarmSize, used, *body.Acres); err != nil {
					return err
				}
				row.Acres = body.Acres
			}
		case strings.EqualFold(row.Category, constants.CategoryAnimal):
			if body.Quantity != nil {
				if *body.Quantity < 1 {
					return fiber.NewError(fiber.StatusBadRequest, "quantity must be at least 1")
				}
				row.Quantity = body.Quantity
			}
		case strings.EqualFold(row.Category, constants.CategoryMachinery):
			if body.ModelNo != nil {
				row.ModelNo = body.ModelNo
			}
			if body.RegistrationNo != nil {
				row.RegistrationNo = body.RegistrationNo
			}
			if body.ChassiNo != nil {
				row.ChassiNo = body.ChassiNo
			}
			if body.RcCopyNo != nil {
				row.RcCopyNo = body.RcCopyNo
			}
		}

		updated = row
		return tx.Save(&row).Error
	})
	if txErr != nil {
		return landProductTxError(c, txErr, "Failed to update land product")
	}
	return helper.JsonUpdated(c, "Land product updated", updated)
}

func (ctrl *LandProductController) DeleteLandProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	res := ctrl.DB.Delete(&model.LandProductModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] deleteLandProduct: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete land product")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Land product not found")
	}
	return helper.JsonDeleted(c, "Land product deleted", fiber.Map{"id": id})
}

func (ctrl *LandProductController) GetLandProductsByLand(c *fiber.Ctx) error {
	landID, err := c.ParamsInt("landId")
	if err != nil || landID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "landId is required")
	}

	var rows []model.LandProductModel
	if err := ctrl.DB.
		Where("land_id = ?", landID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch land products")
	}
	return helper.JsonOK(c, "", rows)
}

func (ctrl *LandProductController) GetLandProductsByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId is required")
	}

	var rows []model.LandProductModel
	if err := ctrl.DB.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch land products")
	}
	return helper.JsonOK(c, "", rows)
}

func landProductTxError(c *fiber.Ctx, err error, fallback string) error {
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
