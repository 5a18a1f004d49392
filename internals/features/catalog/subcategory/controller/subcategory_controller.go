package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryModel "namur_backend/internals/features/catalog/category/model"
	"namur_backend/internals/features/catalog/subcategory/model"
	helper "namur_backend/internals/helpers"
)

type SubcategoryController struct {
	DB *gorm.DB
}

func NewSubcategoryController(db *gorm.DB) *SubcategoryController {
	return &SubcategoryController{DB: db}
}

type subcategoryRequest struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
}

func (ctrl *SubcategoryController) CreateSubcategory(c *fiber.Ctx) error {
	var body subcategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.CategoryID == 0 || body.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_id and name are required")
	}

	var cat categoryModel.CategoryModel
	if err := ctrl.DB.First(&cat, body.CategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}

	var dup int64
	if err := ctrl.DB.Model(&model.SubcategoryModel{}).
		Where("category_id = ? AND LOWER(name) = LOWER(?)", body.CategoryID, body.Name).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subcategory")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Subcategory already exists in this category")
	}

	sub := model.SubcategoryModel{CategoryID: body.CategoryID, Name: body.Name}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		log.Printf("[ERROR] createSubcategory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subcategory")
	}
	return helper.JsonCreated(c, "Subcategory created", sub)
}

// GetSubcategories lists all, or one category's with ?category_id=.
func (ctrl *SubcategoryController) GetSubcategories(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.SubcategoryModel{})
	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var subs []model.SubcategoryModel
	if err := q.Order("id ASC").Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subcategories")
	}
	return helper.JsonOK(c, "", subs)
}

func (ctrl *SubcategoryController) UpdateSubcategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var sub model.SubcategoryModel
	if err := ctrl.DB.First(&sub, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subcategory")
	}

	var body subcategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if name := strings.TrimSpace(body.Name); name != "" {
		sub.Name = name
	}
	if body.CategoryID != 0 {
		sub.CategoryID = body.CategoryID
	}

	if err := ctrl.DB.Save(&sub).Error; err != nil {
		log.Printf("[ERROR] updateSubcategory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subcategory")
	}
	return helper.JsonUpdated(c, "Subcategory updated", sub)
}

func (ctrl *SubcategoryController) DeleteSubcategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	res := ctrl.DB.Delete(&model.SubcategoryModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] deleteSubcategory: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subcategory")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
	}
	return helper.JsonDeleted(c, "Subcategory deleted", fiber.Map{"id": id})
}
