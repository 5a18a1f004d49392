package controller

import (
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/configs"
	"namur_backend/internals/constants"
	"namur_backend/internals/features/users/service"
	"namur_backend/internals/features/users/user/dto"
	"namur_backend/internals/features/users/user/model"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/oss"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GoogleLogin verifies the Google ID token, then finds or creates the
// user keyed by the token subject.
func (ctrl *UserController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	var user model.UserModel
	err = ctrl.DB.Where("firebase_uid = ?", claims.Sub).First(&user).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		user = model.UserModel{
			FirebaseUID: claims.Sub,
			Email:       claims.Email,
		}
		if claims.Name != "" {
			name := claims.Name
			user.Username = &name
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			log.Printf("[ERROR] googleLogin create user: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if user.IsBlocked {
		return helper.JsonError(c, fiber.StatusForbidden, "User is blocked")
	}

	name := ""
	if user.Username != nil {
		name = *user.Username
	}
	token, err := service.IssueToken(user.ID, user.Email, name, constants.RoleUser)
	if err != nil {
		log.Printf("[ERROR] googleLogin issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// SaveBasicDetails fills in profile fields after first login. Mobile
// numbers stay unique across users.
func (ctrl *UserController) SaveBasicDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.SaveBasicDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if body.Mobile != nil {
		mobile := strings.TrimSpace(*body.Mobile)
		if mobile != "" {
			var dup int64
			if err := ctrl.DB.Model(&model.UserModel{}).
				Where("mobile = ? AND id <> ?", mobile, user.ID).
				Count(&dup).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check mobile")
			}
			if dup > 0 {
				return helper.JsonError(c, fiber.StatusConflict, "Mobile number already in use")
			}
			user.Mobile = &mobile
		}
	}
	if body.Username != nil {
		user.Username = body.Username
	}
	if body.District != nil {
		user.District = body.District
	}
	if body.Profession != nil {
		user.Profession = body.Profession
	}
	if body.Age != nil {
		user.Age = body.Age
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] saveBasicDetails: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "Details saved", user)
}

func (ctrl *UserController) SaveLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.SaveLocationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if body.District != nil {
		user.District = body.District
	}
	if body.Taluk != nil {
		user.Taluk = body.Taluk
	}
	if body.Village != nil {
		user.Village = body.Village
	}
	if body.Panchayat != nil {
		user.Panchayat = body.Panchayat
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] saveLocation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "Location saved", user)
}

// UploadProfileImage replaces the picture, deleting the previous one
// best-effort.
func (ctrl *UserController) UploadProfileImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "image file is required")
	}

	url, key, uerr := oss.UploadImageENV(fh, "namur/profiles")
	if uerr != nil {
		log.Printf("[ERROR] profile image upload failed: %v", uerr)
		return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
	}

	if user.ProfileImageKey != nil {
		if derr := oss.DeleteByKeyENV(*user.ProfileImageKey, 0); derr != nil {
			log.Printf("[WARN] failed to delete old profile image %s: %v", *user.ProfileImageKey, derr)
		}
	}
	user.ProfileImageURL = &url
	user.ProfileImageKey = &key

	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] uploadProfileImage: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonUpdated(c, "Profile image updated", user)
}

func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if district := c.Query("district"); district != "" {
		q = q.Where("district = ?", district)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ? OR mobile ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonList(c, "", users, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "", user)
}

func (ctrl *UserController) VerifyUser(c *fiber.Ctx) error {
	return ctrl.setFlag(c, "is_verified", true, "User verified")
}

func (ctrl *UserController) BlockUser(c *fiber.Ctx) error {
	return ctrl.setFlag(c, "is_blocked", true, "User blocked")
}

func (ctrl *UserController) UnblockUser(c *fiber.Ctx) error {
	return ctrl.setFlag(c, "is_blocked", false, "User unblocked")
}

func (ctrl *UserController) setFlag(c *fiber.Ctx, column string, value bool, message string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		log.Printf("[ERROR] update user %s: %v", column, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonUpdated(c, message, fiber.Map{"id": id})
}

func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if err := ctrl.DB.Delete(&model.UserModel{}, user.ID).Error; err != nil {
		log.Printf("[ERROR] deleteUser: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	if user.ProfileImageKey != nil {
		if derr := oss.DeleteByKeyENV(*user.ProfileImageKey, 0); derr != nil {
			log.Printf("[WARN] failed to delete profile image %s: %v", *user.ProfileImageKey, derr)
		}
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": user.ID})
}
