package controller

import (
	"log"
	"mime/multipart"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/configs"
	"namur_backend/internals/constants"
	"namur_backend/internals/features/ads/ad/dto"
	"namur_backend/internals/features/ads/ad/model"
	"namur_backend/internals/features/ads/ad/service"
	logModel "namur_backend/internals/features/ads/log/model"
	logService "namur_backend/internals/features/ads/log/service"
	categoryModel "namur_backend/internals/features/catalog/category/model"
	adminModel "namur_backend/internals/features/users/admin/model"
	subadminModel "namur_backend/internals/features/users/subadmin/model"
	userModel "namur_backend/internals/features/users/user/model"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/dbtime"
	"namur_backend/internals/helpers/oss"
)

var validateAd = validator.New()

const maxAdImages = 10

type AdController struct {
	DB *gorm.DB

	// media host hooks, swappable in tests
	uploadImage func(fh *multipart.FileHeader, dir string) (string, string, error)
	deleteMedia func(keys []string) map[string]error
}

func NewAdController(db *gorm.DB) *AdController {
	return &AdController{
		DB:          db,
		uploadImage: oss.UploadImageENV,
		deleteMedia: func(keys []string) map[string]error {
			return oss.DeleteManyENV(keys, 0)
		},
	}
}

// =======================
// Creator validation
// =======================

// resolveCreator checks the ad's creator exists and (for users) is not
// blocked. Returns the creator's display name.
func (ctrl *AdController) resolveCreator(role string, id uint) (string, error) {
	switch role {
	case constants.RoleUser:
		var u userModel.UserModel
		if err := ctrl.DB.First(&u, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return "", fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return "", err
		}
		if u.IsBlocked {
			return "", fiber.NewError(fiber.StatusForbidden, "User is blocked")
		}
		if u.Username != nil {
			return *u.Username, nil
		}
		return u.Email, nil
	case constants.RoleSubadmin:
		var s subadminModel.SubadminModel
		if err := ctrl.DB.First(&s, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return "", fiber.NewError(fiber.StatusNotFound, "Subadmin not found")
			}
			return "", err
		}
		return s.Name, nil
	case constants.RoleAdmin:
		var a adminModel.AdminModel
		if err := ctrl.DB.First(&a, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return "", fiber.NewError(fiber.StatusNotFound, "Admin not found")
			}
			return "", err
		}
		return a.Name, nil
	default:
		return "", fiber.NewError(fiber.StatusBadRequest, constants.ErrInvalidCreatorRole)
	}
}

func (ctrl *AdController) loadCategory(id uint) (*categoryModel.CategoryModel, error) {
	var cat categoryModel.CategoryModel
	if err := ctrl.DB.First(&cat, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid category")
		}
		return nil, err
	}
	return &cat, nil
}

func formImages(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := form.File["images"]
	if len(files) > maxAdImages {
		files = files[:maxAdImages]
	}
	return files
}

func (ctrl *AdController) uploadAdImages(files []*multipart.FileHeader) ([]model.AdImage, error) {
	var imgs []model.AdImage
	for _, fh := range files {
		url, key, err := ctrl.uploadImage(fh, "namur/ads")
		if err != nil {
			return imgs, err
		}
		imgs = append(imgs, model.AdImage{URL: url, Key: key})
	}
	return imgs, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dbtime.ParseCivilMidnight(*s, configs.AppTimezone)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// =======================
// Create Ad
// =======================
func (ctrl *AdController) CreateAd(c *fiber.Ctx) error {
	var body dto.CreateAdRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAd.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cat, err := ctrl.loadCategory(body.CategoryID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	creatorName, err := ctrl.resolveCreator(body.CreatedByRole, body.CreatorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	districts := dto.ParseDistricts(body.Districts)
	if len(districts) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "districts is required")
	}

	scheduledAt, err := parseOptionalDate(body.ScheduledAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	expiryDate, err := parseOptionalDate(body.ExpiryDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sched, err := service.ResolveCreateSchedule(body.PostType, scheduledAt, expiryDate, time.Now(), configs.AppTimezone)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var extraRaw []byte
	if body.ExtraFields != nil {
		extraRaw = []byte(*body.ExtraFields)
	}
	if err := service.ValidateExtraFields(cat.Name, extraRaw, body.Unit); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	images, err := ctrl.uploadAdImages(formImages(c))
	if err != nil {
		log.Printf("[ERROR] ad image upload failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
	}

	ad := model.AdModel{
		AdUID:         helper.GenerateAdUID(),
		Title:         body.Title,
		CategoryID:    body.CategoryID,
		SubcategoryID: body.SubcategoryID,
		ProductID:     body.ProductID,
		ProductName:   body.ProductName,
		Unit:          body.Unit,
		Quantity:      body.Quantity,
		Price:         body.Price,
		Description:   body.Description,
		Districts:     districts,
		AdType:        body.AdType,
		PostType:      body.PostType,
		ScheduledAt:   sched.ScheduledAt,
		ExpiryDate:    sched.ExpiryDate,
		CreatedByRole: body.CreatedByRole,
		CreatorID:     body.CreatorID,
		Status:        sched.Status,
		VideoURL:      body.VideoURL,
	}
	ad.SetImageList(images)
	if len(extraRaw) > 0 {
		ad.ExtraFields = extraRaw
	}

	actorName := body.ActorName
	if actorName == nil {
		actorName = &creatorName
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ad).Error; err != nil {
			return err
		}
		return logService.WriteLog(tx, ad.ID, logModel.ActionCreate, actorName, &body.CreatedByRole, ad)
	}); err != nil {
		log.Printf("[ERROR] createAd: %v", err)
		// the row never landed, so the freshly uploaded images have no
		// owner; remove them rather than orphaning them on the host
		var keys []string
		for _, img := range images {
			if img.Key != "" {
				keys = append(keys, img.Key)
			}
		}
		for key, derr := range ctrl.deleteMedia(keys) {
			log.Printf("[WARN] createAd: cleanup image %s: %v", key, derr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ad")
	}

	return helper.JsonCreated(c, "Ad created", dto.ToAdDTO(ad))
}

// =======================
// Reads
// =======================

func (ctrl *AdController) GetAds(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AdModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count ads")
	}

	var ads []model.AdModel
	if err := ctrl.DB.
		Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ads")
	}

	resp, err := ctrl.withCreators(ads)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch creators")
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *AdController) GetAdByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var ad model.AdModel
	if err := ctrl.DB.First(&ad, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ad not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ad")
	}
	return helper.JsonOK(c, "", dto.ToAdDTO(ad))
}

// FilterAds: ?productId=&status=&ad_type=&districts=&userType=&userId=
func (ctrl *AdController) FilterAds(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AdModel{})

	if userType, userID := c.Query("userType"), c.QueryInt("userId"); userType != "" && userID > 0 {
		q = q.Where("created_by_role = ? AND creator_id = ?", userType, userID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if productID := c.QueryInt("productId"); productID > 0 {
		q = q.Where("product_id = ?", productID)
	}
	if adType := c.Query("ad_type"); adType != "" {
		q = q.Where("LOWER(ad_type) = LOWER(?)", adType)
	}
	if districts := dto.ParseDistricts(c.Query("districts")); len(districts) > 0 {
		cond := ctrl.DB.Where("? = ANY(districts)", districts[0])
		for _, d := range districts[1:] {
			cond = cond.Or("? = ANY(districts)", d)
		}
		q = q.Where(cond)
	}

	var ads []model.AdModel
	if err := q.Order("id DESC").Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to filter ads")
	}

	resp, err := ctrl.withCreators(ads)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch creators")
	}
	return helper.JsonOK(c, "", resp)
}

// GetRecentAdsByDistrict returns active ads in one district created in
// the last 48 hours.
func (ctrl *AdController) GetRecentAdsByDistrict(c *fiber.Ctx) error {
	district := c.Query("district")
	if district == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "district query parameter is required")
	}

	var ads []model.AdModel
	if err := ctrl.DB.
		Where("status = ?", constants.AdStatusActive).
		Where("? = ANY(districts)", district).
		Where("created_at >= ?", time.Now().Add(-48*time.Hour)).
		Order("created_at DESC").
		Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch recent ads")
	}

	resp, err := ctrl.withCreators(ads)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch creators")
	}
	return helper.JsonOK(c, "", resp)
}

// GetFilteredAds: product listing with optional district, multi-breed
// filter on extra_fields and price sorting.
func (ctrl *AdController) GetFilteredAds(c *fiber.Ctx) error {
	productID := c.QueryInt("product_id")
	if productID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "product_id is required")
	}

	q := ctrl.DB.Model(&model.AdModel{}).
		Where("status = ?", constants.AdStatusActive).
		Where("product_id = ?", productID)

	if district := c.Query("district"); district != "" {
		q = q.Where("? = ANY(districts)", district)
	}

	if breeds := dto.ParseDistricts(c.Query("breed")); len(breeds) > 0 {
		cond := ctrl.DB.Where("extra_fields->>'breed' ILIKE ?", "%"+breeds[0]+"%")
		for _, b := range breeds[1:] {
			cond = cond.Or("extra_fields->>'breed' ILIKE ?", "%"+b+"%")
		}
		q = q.Where(cond)
	}

	switch c.Query("sort") {
	case "price_low_to_high":
		q = q.Order("price ASC")
	case "price_high_to_low":
		q = q.Order("price DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var ads []model.AdModel
	if err := q.Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to filter ads")
	}

	resp, err := ctrl.withCreators(ads)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch creators")
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// Update Ad
// =======================
func (ctrl *AdController) UpdateAd(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var existing model.AdModel
	if err := ctrl.DB.First(&existing, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ad not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ad")
	}

	if _, err := ctrl.resolveCreator(existing.CreatedByRole, existing.CreatorID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateAdRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAd.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// effective category drives the attribute validation
	categoryID := existing.CategoryID
	if body.CategoryID != nil {
		categoryID = *body.CategoryID
	}
	cat, err := ctrl.loadCategory(categoryID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// merge scalar fields
	if body.Title != nil {
		existing.Title = *body.Title
	}
	existing.CategoryID = categoryID
	if body.SubcategoryID != nil {
		existing.SubcategoryID = body.SubcategoryID
	}
	if body.ProductID != nil {
		existing.ProductID = *body.ProductID
	}
	if body.ProductName != nil {
		existing.ProductName = *body.ProductName
	}
	if body.Unit != nil {
		existing.Unit = body.Unit
	}
	if body.Quantity != nil {
		existing.Quantity = body.Quantity
	}
	if body.Price != nil {
		existing.Price = body.Price
	}
	if body.Description != nil {
		existing.Description = body.Description
	}
	if body.AdType != nil {
		existing.AdType = *body.AdType
	}
	if body.VideoURL != nil {
		existing.VideoURL = body.VideoURL
	}
	if body.Districts != nil {
		if d := dto.ParseDistricts(*body.Districts); len(d) > 0 {
			existing.Districts = d
		}
	}
	if body.ExtraFields != nil {
		existing.ExtraFields = []byte(*body.ExtraFields)
	}

	if err := service.ValidateExtraFields(cat.Name, existing.ExtraFields, existing.Unit); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// dates: keep existing unless explicitly provided
	scheduledAt := existing.ScheduledAt
	if body.ScheduledAt != nil {
		if scheduledAt, err = parseOptionalDate(body.ScheduledAt); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	expiryDate := existing.ExpiryDate
	if body.ExpiryDate != nil {
		if expiryDate, err = parseOptionalDate(body.ExpiryDate); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	newPostType := existing.PostType
	if body.PostType != nil {
		newPostType = *body.PostType
	}
	sched, err := service.ResolveUpdateSchedule(existing.Status, existing.PostType, newPostType, scheduledAt, expiryDate, time.Now(), configs.AppTimezone)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	existing.PostType = newPostType
	existing.Status = sched.Status
	existing.ScheduledAt = sched.ScheduledAt
	existing.ExpiryDate = sched.ExpiryDate

	// image replacement: delete anything not in the keep set, then
	// append new uploads
	current := existing.ImageList()
	keep := dto.ParseKeepSet(body.ExistingImages)
	var remaining []model.AdImage
	var removeKeys []string
	for _, img := range current {
		if _, ok := keep[img.Key]; ok {
			remaining = append(remaining, img)
		} else if img.Key != "" {
			removeKeys = append(removeKeys, img.Key)
		}
	}
	if body.ExistingImages == nil {
		// no keep list sent: keep everything
		remaining = current
		removeKeys = nil
	}
	for key, derr := range ctrl.deleteMedia(removeKeys) {
		log.Printf("[WARN] failed to delete ad image %s: %v", key, derr)
	}

	uploaded, err := ctrl.uploadAdImages(formImages(c))
	if err != nil {
		log.Printf("[ERROR] ad image upload failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
	}
	existing.SetImageList(append(remaining, uploaded...))

	actorRole := body.ActorRole
	if actorRole == nil {
		actorRole = &existing.CreatedByRole
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		return logService.WriteLog(tx, existing.ID, logModel.ActionUpdate, body.ActorName, actorRole, existing)
	}); err != nil {
		log.Printf("[ERROR] updateAd: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ad")
	}

	return helper.JsonUpdated(c, "Ad updated", dto.ToAdDTO(existing))
}

// =======================
// Delete Ad
// =======================
// The audit row and the row deletion commit in one transaction; media
// cleanup runs after commit and only warns on failure.
func (ctrl *AdController) DeleteAd(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var ad model.AdModel
	if err := ctrl.DB.First(&ad, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ad not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ad")
	}

	if _, err := ctrl.resolveCreator(ad.CreatedByRole, ad.CreatorID); err != nil {
		return helper.FromFiberError(c, err)
	}

	actorName, _ := c.Locals("actor_name").(string)
	actorRole, _ := c.Locals("actor_role").(string)
	var namePtr, rolePtr *string
	if actorName != "" {
		namePtr = &actorName
	}
	if actorRole != "" {
		rolePtr = &actorRole
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := logService.WriteLog(tx, ad.ID, logModel.ActionDelete, namePtr, rolePtr, ad); err != nil {
			return err
		}
		return tx.Delete(&model.AdModel{}, ad.ID).Error
	}); err != nil {
		log.Printf("[ERROR] deleteAd: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ad")
	}

	var keys []string
	for _, img := range ad.ImageList() {
		if img.Key != "" {
			keys = append(keys, img.Key)
		}
	}
	for key, derr := range ctrl.deleteMedia(keys) {
		log.Printf("[WARN] failed to delete ad image %s: %v", key, derr)
	}

	return helper.JsonDeleted(c, "Ad deleted", fiber.Map{"id": ad.ID})
}

// =======================
// Creator composition
// =======================

// withCreators batch-loads creator details for a page of ads instead of
// the role-switched SQL join the admin panel used to issue per request.
func (ctrl *AdController) withCreators(ads []model.AdModel) ([]dto.AdWithCreatorDTO, error) {
	userIDs := map[uint]struct{}{}
	subadminIDs := map[uint]struct{}{}
	adminIDs := map[uint]struct{}{}
	for _, ad := range ads {
		switch ad.CreatedByRole {
		case constants.RoleUser:
			userIDs[ad.CreatorID] = struct{}{}
		case constants.RoleSubadmin:
			subadminIDs[ad.CreatorID] = struct{}{}
		case constants.RoleAdmin:
			adminIDs[ad.CreatorID] = struct{}{}
		}
	}

	users := map[uint]userModel.UserModel{}
	if len(userIDs) > 0 {
		var rows []userModel.UserModel
		if err := ctrl.DB.Where("id IN ?", keysOf(userIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			users[r.ID] = r
		}
	}
	subadmins := map[uint]subadminModel.SubadminModel{}
	if len(subadminIDs) > 0 {
		var rows []subadminModel.SubadminModel
		if err := ctrl.DB.Where("id IN ?", keysOf(subadminIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			subadmins[r.ID] = r
		}
	}
	admins := map[uint]adminModel.AdminModel{}
	if len(adminIDs) > 0 {
		var rows []adminModel.AdminModel
		if err := ctrl.DB.Where("id IN ?", keysOf(adminIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			admins[r.ID] = r
		}
	}

	out := make([]dto.AdWithCreatorDTO, 0, len(ads))
	for _, ad := range ads {
		row := dto.AdWithCreatorDTO{AdDTO: dto.ToAdDTO(ad)}
		switch ad.CreatedByRole {
		case constants.RoleUser:
			if u, ok := users[ad.CreatorID]; ok {
				row.CreatorName = u.Username
				row.CreatorEmail = &u.Email
				row.CreatorMobile = u.Mobile
				row.CreatorDistrict = u.District
			}
		case constants.RoleSubadmin:
			if s, ok := subadmins[ad.CreatorID]; ok {
				row.CreatorName = &s.Name
				row.CreatorEmail = &s.Email
				row.CreatorMobile = s.Number
			}
		case constants.RoleAdmin:
			if a, ok := admins[ad.CreatorID]; ok {
				row.CreatorName = &a.Name
				row.CreatorEmail = &a.Email
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func keysOf(m map[uint]struct{}) []uint {
	out := make([]uint, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
