package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryModel "namur_backend/internals/features/catalog/category/model"
	"namur_backend/internals/features/catalog/product/model"
	subcategoryModel "namur_backend/internals/features/catalog/subcategory/model"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/oss"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	categoryID := formUint(c, "category_id")
	subcategoryID := formUint(c, "subcategory_id")
	if name == "" || categoryID == 0 || subcategoryID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "name, category_id and subcategory_id are required")
	}

	var cat categoryModel.CategoryModel
	if err := ctrl.DB.First(&cat, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}
	var sub subcategoryModel.SubcategoryModel
	if err := ctrl.DB.First(&sub, subcategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subcategory")
	}
	if sub.CategoryID != cat.ID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subcategory does not belong to the category")
	}

	prod := model.ProductModel{
		Name:          name,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, key, uerr := oss.UploadImageENV(fh, "namur/products")
		if uerr != nil {
			log.Printf("[ERROR] product image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		prod.ImageURL = &url
		prod.ImageKey = &key
	}

	if err := ctrl.DB.Create(&prod).Error; err != nil {
		log.Printf("[ERROR] createProduct: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create product")
	}
	return helper.JsonCreated(c, "Product created", prod)
}

// GetProducts lists all, filtered by ?category_id= and/or
// ?subcategory_id=.
func (ctrl *ProductController) GetProducts(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ProductModel{})
	if categoryID := c.QueryInt("category_id"); categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if subcategoryID := c.QueryInt("subcategory_id"); subcategoryID > 0 {
		q = q.Where("subcategory_id = ?", subcategoryID)
	}

	var prods []model.ProductModel
	if err := q.Order("id ASC").Find(&prods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}
	return helper.JsonOK(c, "", prods)
}

func (ctrl *ProductController) GetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var prod model.ProductModel
	if err := ctrl.DB.First(&prod, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}
	return helper.JsonOK(c, "", prod)
}

func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var prod model.ProductModel
	if err := ctrl.DB.First(&prod, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}

	if name := strings.TrimSpace(c.FormValue("name")); name != "" {
		prod.Name = name
	}
	if categoryID := formUint(c, "category_id"); categoryID != 0 {
		prod.CategoryID = categoryID
	}
	if subcategoryID := formUint(c, "subcategory_id"); subcategoryID != 0 {
		prod.SubcategoryID = subcategoryID
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, key, uerr := oss.UploadImageENV(fh, "namur/products")
		if uerr != nil {
			log.Printf("[ERROR] product image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		if prod.ImageKey != nil {
			if derr := oss.DeleteByKeyENV(*prod.ImageKey, 0); derr != nil {
				log.Printf("[WARN] failed to delete old product image %s: %v", *prod.ImageKey, derr)
			}
		}
		prod.ImageURL = &url
		prod.ImageKey = &key
	}

	if err := ctrl.DB.Save(&prod).Error; err != nil {
		log.Printf("[ERROR] updateProduct: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update product")
	}
	return helper.JsonUpdated(c, "Product updated", prod)
}

func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var prod model.ProductModel
	if err := ctrl.DB.First(&prod, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}

	if err := ctrl.DB.Delete(&model.ProductModel{}, prod.ID).Error; err != nil {
		log.Printf("[ERROR] deleteProduct: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}

	if prod.ImageKey != nil {
		if derr := oss.DeleteByKeyENV(*prod.ImageKey, 0); derr != nil {
			log.Printf("[WARN] failed to delete product image %s: %v", *prod.ImageKey, derr)
		}
	}
	return helper.JsonDeleted(c, "Product deleted", fiber.Map{"id": prod.ID})
}

func formUint(c *fiber.Ctx, key string) uint {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
