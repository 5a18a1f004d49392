package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"namur_backend/internals/features/users/subadmin/model"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/oss"
)

var validateSubadmin = validator.New()

type SubadminController struct {
	DB *gorm.DB
}

func NewSubadminController(db *gorm.DB) *SubadminController {
	return &SubadminController{DB: db}
}

type createSubadminRequest struct {
	Name          string  `form:"name" json:"name" validate:"required,max=150"`
	Email         string  `form:"email" json:"email" validate:"required,email"`
	Password      string  `form:"password" json:"password" validate:"required,min=8"`
	Number        *string `form:"number" json:"number"`
	Qualification *string `form:"qualification" json:"qualification"`
	Address       *string `form:"address" json:"address"`
	Districts     string  `form:"districts" json:"districts"`
	PageAccess    string  `form:"page_access" json:"page_access"`
}

type updateSubadminRequest struct {
	Name          *string `form:"name" json:"name"`
	Password      *string `form:"password" json:"password" validate:"omitempty,min=8"`
	Number        *string `form:"number" json:"number"`
	Qualification *string `form:"qualification" json:"qualification"`
	Address       *string `form:"address" json:"address"`
	Districts     *string `form:"districts" json:"districts"`
	PageAccess    *string `form:"page_access" json:"page_access"`
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (ctrl *SubadminController) CreateSubadmin(c *fiber.Ctx) error {
	var body createSubadminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubadmin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var dup int64
	if err := ctrl.DB.Model(&model.SubadminModel{}).
		Where("email = ?", body.Email).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subadmin")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	sub := model.SubadminModel{
		Name:          body.Name,
		Email:         body.Email,
		Password:      string(hashed),
		Number:        body.Number,
		Qualification: body.Qualification,
		Address:       body.Address,
		Districts:     splitList(body.Districts),
		PageAccess:    splitList(body.PageAccess),
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, key, uerr := oss.UploadImageENV(fh, "namur/subadmins")
		if uerr != nil {
			log.Printf("[ERROR] subadmin image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		sub.ImageURL = &url
		sub.ImageKey = &key
	}

	if err := ctrl.DB.Create(&sub).Error; err != nil {
		log.Printf("[ERROR] createSubadmin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subadmin")
	}
	return helper.JsonCreated(c, "Subadmin created", sub)
}

func (ctrl *SubadminController) GetSubadmins(c *fiber.Ctx) error {
	var subs []model.SubadminModel
	if err := ctrl.DB.Order("id ASC").Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subadmins")
	}
	return helper.JsonOK(c, "", subs)
}

func (ctrl *SubadminController) GetSubadminByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var sub model.SubadminModel
	if err := ctrl.DB.First(&sub, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subadmin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subadmin")
	}
	return helper.JsonOK(c, "", sub)
}

func (ctrl *SubadminController) UpdateSubadmin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var sub model.SubadminModel
	if err := ctrl.DB.First(&sub, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subadmin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subadmin")
	}

	var body updateSubadminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubadmin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if body.Name != nil {
		sub.Name = *body.Name
	}
	if body.Password != nil && *body.Password != "" {
		hashed, herr := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		sub.Password = string(hashed)
	}
	if body.Number != nil {
		sub.Number = body.Number
	}
	if body.Qualification != nil {
		sub.Qualification = body.Qualification
	}
	if body.Address != nil {
		sub.Address = body.Address
	}
	if body.Districts != nil {
		sub.Districts = splitList(*body.Districts)
	}
	if body.PageAccess != nil {
		sub.PageAccess = splitList(*body.PageAccess)
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, key, uerr := oss.UploadImageENV(fh, "namur/subadmins")
		if uerr != nil {
			log.Printf("[ERROR] subadmin image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		if sub.ImageKey != nil {
			if derr := oss.DeleteByKeyENV(*sub.ImageKey, 0); derr != nil {
				log.Printf("[WARN] failed to delete old subadmin image %s: %v", *sub.ImageKey, derr)
			}
		}
		sub.ImageURL = &url
		sub.ImageKey = &key
	}

	if err := ctrl.DB.Save(&sub).Error; err != nil {
		log.Printf("[ERROR] updateSubadmin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subadmin")
	}
	return helper.JsonUpdated(c, "Subadmin updated", sub)
}

func (ctrl *SubadminController) DeleteSubadmin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var sub model.SubadminModel
	if err := ctrl.DB.First(&sub, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subadmin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subadmin")
	}

	if err := ctrl.DB.Delete(&model.SubadminModel{}, sub.ID).Error; err != nil {
		log.Printf("[ERROR] deleteSubadmin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subadmin")
	}

	if sub.ImageKey != nil {
		if derr := oss.DeleteByKeyENV(*sub.ImageKey, 0); derr != nil {
			log.Printf("[WARN] failed to delete subadmin image %s: %v", *sub.ImageKey, derr)
		}
	}
	return helper.JsonDeleted(c, "Subadmin deleted", fiber.Map{"id": sub.ID})
}
