package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/catalog/category/model"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/oss"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "name is required")
	}

	var dup int64
	if err := ctrl.DB.Model(&model.CategoryModel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Category already exists")
	}

	cat := model.CategoryModel{Name: name}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, key, uerr := oss.UploadImageENV(fh, "namur/categories")
		if uerr != nil {
			log.Printf("[ERROR] category image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		cat.ImageURL = &url
		cat.ImageKey = &key
	}

	if err := ctrl.DB.Create(&cat).Error; err != nil {
		log.Printf("[ERROR] createCategory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", cat)
}

func (ctrl *CategoryController) GetCategories(c *fiber.Ctx) error {
	var cats []model.CategoryModel
	if err := ctrl.DB.Order("id ASC").Find(&cats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return helper.JsonOK(c, "", cats)
}

func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var cat model.CategoryModel
	if err := ctrl.DB.First(&cat, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}

	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		cat.Name = name
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, key, uerr := oss.UploadImageENV(fh, "namur/categories")
		if uerr != nil {
			log.Printf("[ERROR] category image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		if cat.ImageKey != nil {
			if derr := oss.DeleteByKeyENV(*cat.ImageKey, 0); derr != nil {
				log.Printf("[WARN] failed to delete old category image %s: %v", *cat.ImageKey, derr)
			}
		}
		cat.ImageURL = &url
		cat.ImageKey = &key
	}

	if err := ctrl.DB.Save(&cat).Error; err != nil {
		log.Printf("[ERROR] updateCategory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonUpdated(c, "Category updated", cat)
}

func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var cat model.CategoryModel
	if err := ctrl.DB.First(&cat, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}

	if err := ctrl.DB.Delete(&model.CategoryModel{}, cat.ID).Error; err != nil {
		log.Printf("[ERROR] deleteCategory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}

	if cat.ImageKey != nil {
		if derr := oss.DeleteByKeyENV(*cat.ImageKey, 0); derr != nil {
			log.Printf("[WARN] failed to delete category image %s: %v", *cat.ImageKey, derr)
		}
	}
	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"id": cat.ID})
}
