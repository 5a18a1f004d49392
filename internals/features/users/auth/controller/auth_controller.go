package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"namur_backend/internals/constants"
	adminModel "namur_backend/internals/features/users/admin/model"
	"namur_backend/internals/features/users/service"
	subadminModel "namur_backend/internals/features/users/subadmin/model"
	helper "namur_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type staffLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin subadmin"`
}

// StaffLogin authenticates admins and subadmins against the same
// endpoint; the role in the body picks the table.
func (ctrl *AuthController) StaffLogin(c *fiber.Ctx) error {
	var body staffLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))

	var (
		id     uint
		name   string
		hash   string
		detail any
	)
	switch body.Role {
	case constants.RoleAdmin:
		var admin adminModel.AdminModel
		if err := ctrl.DB.Where("email = ?", email).First(&admin).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
		}
		id, name, hash, detail = admin.ID, admin.Name, admin.Password, admin
	case constants.RoleSubadmin:
		var sub subadminModel.SubadminModel
		if err := ctrl.DB.Where("email = ?", email).First(&sub).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subadmin")
		}
		id, name, hash, detail = sub.ID, sub.Name, sub.Password, sub
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := service.IssueToken(id, email, name, body.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"role":  body.Role,
		"user":  detail,
	})
}
