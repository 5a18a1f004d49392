package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/catalog/enquiry/model"
	productModel "namur_backend/internals/features/catalog/product/model"
	userModel "namur_backend/internals/features/users/user/model"
	helper "namur_backend/internals/helpers"
)

var validateEnquiry = validator.New()

type EnquiryController struct {
	DB *gorm.DB
}

func NewEnquiryController(db *gorm.DB) *EnquiryController {
	return &EnquiryController{DB: db}
}

type createEnquiryRequest struct {
	UserID      uint    `json:"user_id" validate:"required"`
	ProductID   uint    `json:"product_id" validate:"required"`
	Breed       *string `json:"breed"`
	EnquiryType string  `json:"enquiry_type" validate:"required,oneof=buy rent"`
	Description *string `json:"description"`
}

func (ctrl *EnquiryController) CreateEnquiry(c *fiber.Ctx) error {
	var body createEnquiryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEnquiry.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, body.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	var prod productModel.ProductModel
	if err := ctrl.DB.First(&prod, body.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}

	enquiry := model.ProductEnquiryModel{
		UserID:      body.UserID,
		ProductID:   body.ProductID,
		Breed:       body.Breed,
		EnquiryType: body.EnquiryType,
		Description: body.Description,
	}
	if err := ctrl.DB.Create(&enquiry).Error; err != nil {
		log.Printf("[ERROR] createEnquiry: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create enquiry")
	}
	return helper.JsonCreated(c, "Enquiry submitted", enquiry)
}

type updateEnquiryRequest struct {
	ProductID   *uint   `json:"product_id"`
	Breed       *string `json:"breed"`
	EnquiryType *string `json:"enquiry_type" validate:"omitempty,oneof=buy rent"`
	Description *string `json:"description"`
}

func (ctrl *EnquiryController) UpdateEnquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body updateEnquiryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEnquiry.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var enquiry model.ProductEnquiryModel
	if err := ctrl.DB.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Enquiry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enquiry")
	}

	if body.ProductID != nil {
		var prod productModel.ProductModel
		if err := ctrl.DB.First(&prod, *body.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
		}
		enquiry.ProductID = *body.ProductID
	}
	if body.Breed != nil {
		enquiry.Breed = body.Breed
	}
	if body.EnquiryType != nil {
		enquiry.EnquiryType = *body.EnquiryType
	}
	if body.Description != nil {
		enquiry.Description = body.Description
	}

	if err := ctrl.DB.Save(&enquiry).Error; err != nil {
		log.Printf("[ERROR] updateEnquiry: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enquiry")
	}
	return helper.JsonUpdated(c, "Enquiry updated", enquiry)
}

func (ctrl *EnquiryController) GetEnquiries(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.ProductEnquiryModel{})
	if userID := c.QueryInt("user_id"); userID > 0 {
		q = q.Where("user_id = ?", userID)
	}
	if productID := c.QueryInt("product_id"); productID > 0 {
		q = q.Where("product_id = ?", productID)
	}
	if enquiryType := c.Query("enquiry_type"); enquiryType != "" {
		q = q.Where("enquiry_type = ?", enquiryType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enquiries")
	}

	var enquiries []model.ProductEnquiryModel
	if err := q.Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&enquiries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enquiries")
	}
	return helper.JsonList(c, "", enquiries, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *EnquiryController) DeleteEnquiry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	res := ctrl.DB.Delete(&model.ProductEnquiryModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] deleteEnquiry: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete enquiry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enquiry not found")
	}
	return helper.JsonDeleted(c, "Enquiry deleted", fiber.Map{"id": id})
}
