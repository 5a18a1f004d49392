package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/constants"
	adModel "namur_backend/internals/features/ads/ad/model"
	categoryModel "namur_backend/internals/features/catalog/category/model"
	enquiryModel "namur_backend/internals/features/catalog/enquiry/model"
	productModel "namur_backend/internals/features/catalog/product/model"
	landModel "namur_backend/internals/features/lands/land/model"
	subadminModel "namur_backend/internals/features/users/subadmin/model"
	userModel "namur_backend/internals/features/users/user/model"
	helper "namur_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns the panel's headline counts.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	counts := map[string]int64{}

	type countable struct {
		key   string
		model any
	}
	for _, item := range []countable{
		{"users", &userModel.UserModel{}},
		{"subadmins", &subadminModel.SubadminModel{}},
		{"categories", &categoryModel.CategoryModel{}},
		{"products", &productModel.ProductModel{}},
		{"lands", &landModel.LandModel{}},
		{"enquiries", &enquiryModel.ProductEnquiryModel{}},
		{"ads", &adModel.AdModel{}},
	} {
		var n int64
		if err := ctrl.DB.Model(item.model).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count "+item.key)
		}
		counts[item.key] = n
	}

	for _, status := range []string{
		constants.AdStatusPending,
		constants.AdStatusActive,
		constants.AdStatusExpired,
	} {
		var n int64
		if err := ctrl.DB.Model(&adModel.AdModel{}).
			Where("status = ?", status).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count ads")
		}
		counts["ads_"+status] = n
	}

	return helper.JsonOK(c, "", counts)
}
