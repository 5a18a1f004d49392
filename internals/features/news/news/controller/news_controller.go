package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/features/news/news/model"
	helper "namur_backend/internals/helpers"
	"namur_backend/internals/helpers/oss"
)

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

func (ctrl *NewsController) actor(c *fiber.Ctx) (namePtr, rolePtr *string) {
	if name, _ := c.Locals("actor_name").(string); name != "" {
		namePtr = &name
	}
	if role, _ := c.Locals("actor_role").(string); role != "" {
		rolePtr = &role
	}
	return
}

func (ctrl *NewsController) writeLog(tx *gorm.DB, n model.NewsModel, action string, namePtr, rolePtr *string) error {
	return tx.Create(&model.NewsLogModel{
		NewsID:    n.ID,
		Title:     &n.Title,
		URL:       &n.URL,
		Action:    action,
		ActorName: namePtr,
		ActorRole: rolePtr,
	}).Error
}

func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	url := strings.TrimSpace(c.FormValue("url"))
	if title == "" || url == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "title and url are required")
	}

	news := model.NewsModel{Title: title, URL: url}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		imgURL, key, uerr := oss.UploadImageENV(fh, "namur/news")
		if uerr != nil {
			log.Printf("[ERROR] news image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		news.ImageURL = &imgURL
		news.ImageKey = &key
	}

	namePtr, rolePtr := ctrl.actor(c)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		return ctrl.writeLog(tx, news, "create", namePtr, rolePtr)
	}); err != nil {
		log.Printf("[ERROR] createNews: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	return helper.JsonCreated(c, "News created", news)
}

func (ctrl *NewsController) GetNews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NewsModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count news")
	}

	var items []model.NewsModel
	if err := ctrl.DB.Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}
	return helper.JsonList(c, "", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var news model.NewsModel
	if err := ctrl.DB.First(&news, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "News not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		news.Title = title
	}
	if url := strings.TrimSpace(c.FormValue("url")); url != "" {
		news.URL = url
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		imgURL, key, uerr := oss.UploadImageENV(fh, "namur/news")
		if uerr != nil {
			log.Printf("[ERROR] news image upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed")
		}
		if news.ImageKey != nil {
			if derr := oss.DeleteByKeyENV(*news.ImageKey, 0); derr != nil {
				log.Printf("[WARN] failed to delete old news image %s: %v", *news.ImageKey, derr)
			}
		}
		news.ImageURL = &imgURL
		news.ImageKey = &key
	}

	namePtr, rolePtr := ctrl.actor(c)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&news).Error; err != nil {
			return err
		}
		return ctrl.writeLog(tx, news, "update", namePtr, rolePtr)
	}); err != nil {
		log.Printf("[ERROR] updateNews: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update news")
	}
	return helper.JsonUpdated(c, "News updated", news)
}

func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var news model.NewsModel
	if err := ctrl.DB.First(&news, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "News not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news")
	}

	namePtr, rolePtr := ctrl.actor(c)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctrl.writeLog(tx, news, "delete", namePtr, rolePtr); err != nil {
			return err
		}
		return tx.Delete(&model.NewsModel{}, news.ID).Error
	}); err != nil {
		log.Printf("[ERROR] deleteNews: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete news")
	}

	if news.ImageKey != nil {
		if derr := oss.DeleteByKeyENV(*news.ImageKey, 0); derr != nil {
			log.Printf("[WARN] failed to delete news image %s: %v", *news.ImageKey, derr)
		}
	}
	return helper.JsonDeleted(c, "News deleted", fiber.Map{"id": news.ID})
}

func (ctrl *NewsController) GetNewsLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.NewsLogModel{})
	if newsID := c.QueryInt("news_id"); newsID > 0 {
		q = q.Where("news_id = ?", newsID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count news logs")
	}

	var logs []model.NewsLogModel
	if err := q.Order("id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch news logs")
	}
	return helper.JsonList(c, "", logs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
