package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"namur_backend/internals/features/users/admin/model"
	helper "namur_backend/internals/helpers"
)

var validateAdmin = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type registerAdminRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (ctrl *AdminController) RegisterAdmin(c *fiber.Ctx) error {
	var body registerAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var dup int64
	if err := ctrl.DB.Model(&model.AdminModel{}).
		Where("email = ?", body.Email).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check admin")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := model.AdminModel{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashed),
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] registerAdmin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register admin")
	}
	return helper.JsonCreated(c, "Admin registered", admin)
}

func (ctrl *AdminController) GetAdmins(c *fiber.Ctx) error {
	var admins []model.AdminModel
	if err := ctrl.DB.Order("id ASC").Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}
	return helper.JsonOK(c, "", admins)
}

func (ctrl *AdminController) GetAdminByID(c *fiber.Ctx) error {
	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}
	return helper.JsonOK(c, "", admin)
}
