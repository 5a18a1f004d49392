package dto

import (
	"encoding/json"
	"strings"
	"time"

	"namur_backend/internals/features/ads/ad/model"
)

// ============================
// Create Request DTO
// ============================
// Ads arrive as multipart form-data; districts and extra_fields come in
// as JSON strings (or comma-separated, for districts).

type CreateAdRequest struct {
	Title         string  `form:"title" json:"title" validate:"required,max=500"`
	CategoryID    uint    `form:"category_id" json:"category_id" validate:"required"`
	SubcategoryID *uint   `form:"subcategory_id" json:"subcategory_id"`
	ProductID     uint    `form:"product_id" json:"product_id" validate:"required"`
	ProductName   string  `form:"product_name" json:"product_name" validate:"required,max=255"`
	Unit          *string `form:"unit" json:"unit"`
	Quantity      *float64 `form:"quantity" json:"quantity"`
	Price         *float64 `form:"price" json:"price"`
	Description   *string `form:"description" json:"description"`
	Districts     string  `form:"districts" json:"districts" validate:"required"`
	AdType        string  `form:"ad_type" json:"ad_type" validate:"required,oneof=sell rent"`
	PostType      string  `form:"post_type" json:"post_type" validate:"required,oneof=postnow schedule"`
	ScheduledAt   *string `form:"scheduled_at" json:"scheduled_at"`
	ExpiryDate    *string `form:"expiry_date" json:"expiry_date"`
	ExtraFields   *string `form:"extra_fields" json:"extra_fields"`
	CreatedByRole string  `form:"created_by_role" json:"created_by_role" validate:"required,oneof=user subadmin admin"`
	CreatorID     uint    `form:"creator_id" json:"creator_id" validate:"required"`
	ActorName     *string `form:"actor_name" json:"actor_name"`
	VideoURL      *string `form:"video_url" json:"video_url"`
}

// ============================
// Update Request DTO
// ============================

type UpdateAdRequest struct {
	Title          *string  `form:"title" json:"title"`
	CategoryID     *uint    `form:"category_id" json:"category_id"`
	SubcategoryID  *uint    `form:"subcategory_id" json:"subcategory_id"`
	ProductID      *uint    `form:"product_id" json:"product_id"`
	ProductName    *string  `form:"product_name" json:"product_name"`
	Unit           *string  `form:"unit" json:"unit"`
	Quantity       *float64 `form:"quantity" json:"quantity"`
	Price          *float64 `form:"price" json:"price"`
	Description    *string  `form:"description" json:"description"`
	Districts      *string  `form:"districts" json:"districts"`
	AdType         *string  `form:"ad_type" json:"ad_type" validate:"omitempty,oneof=sell rent"`
	PostType       *string  `form:"post_type" json:"post_type" validate:"omitempty,oneof=postnow schedule"`
	ScheduledAt    *string  `form:"scheduled_at" json:"scheduled_at"`
	ExpiryDate     *string  `form:"expiry_date" json:"expiry_date"`
	ExistingImages *string  `form:"existing_images" json:"existing_images"` // JSON array of image keys to keep
	ExtraFields    *string  `form:"extra_fields" json:"extra_fields"`
	ActorName      *string  `form:"actor_name" json:"actor_name"`
	ActorRole      *string  `form:"actor_role" json:"actor_role"`
	VideoURL       *string  `form:"video_url" json:"video_url"`
}

// ParseDistricts accepts a JSON array string or a comma-separated list.
func ParseDistricts(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var arr []string
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		out := make([]string, 0, len(arr))
		for _, d := range arr {
			if d = strings.TrimSpace(d); d != "" {
				out = append(out, d)
			}
		}
		return out
	}
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// ParseKeepSet decodes the existing_images keep list; anything
// unparseable means "keep nothing".
func ParseKeepSet(s *string) map[string]struct{} {
	keep := map[string]struct{}{}
	if s == nil {
		return keep
	}
	var arr []string
	if err := json.Unmarshal([]byte(*s), &arr); err != nil {
		return keep
	}
	for _, k := range arr {
		keep[k] = struct{}{}
	}
	return keep
}

// ============================
// Response DTO
// ============================

type AdDTO struct {
	ID            uint            `json:"id"`
	AdUID         string          `json:"ad_uid"`
	Title         string          `json:"title"`
	CategoryID    uint            `json:"category_id"`
	SubcategoryID *uint           `json:"subcategory_id"`
	ProductID     uint            `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Unit          *string         `json:"unit"`
	Quantity      *float64        `json:"quantity"`
	Price         *float64        `json:"price"`
	Description   *string         `json:"description"`
	Districts     []string        `json:"districts"`
	AdType        string          `json:"ad_type"`
	PostType      string          `json:"post_type"`
	ScheduledAt   *time.Time      `json:"scheduled_at"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
	Images        []model.AdImage `json:"images"`
	CreatedByRole string          `json:"created_by_role"`
	CreatorID     uint            `json:"creator_id"`
	ExtraFields   map[string]any  `json:"extra_fields"`
	Status        string          `json:"status"`
	VideoURL      *string         `json:"video_url"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToAdDTO(m model.AdModel) AdDTO {
	return AdDTO{
		ID:            m.ID,
		AdUID:         m.AdUID,
		Title:         m.Title,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Unit:          m.Unit,
		Quantity:      m.Quantity,
		Price:         m.Price,
		Description:   m.Description,
		Districts:     append([]string(nil), m.Districts...),
		AdType:        m.AdType,
		PostType:      m.PostType,
		ScheduledAt:   m.ScheduledAt,
		ExpiryDate:    m.ExpiryDate,
		Images:        m.ImageList(),
		CreatedByRole: m.CreatedByRole,
		CreatorID:     m.CreatorID,
		ExtraFields:   m.ExtraMap(),
		Status:        m.Status,
		VideoURL:      m.VideoURL,
		CreatedAt:     m.CreatedAt,
	}
}

// AdWithCreatorDTO carries the joined creator columns used by listing
// endpoints.
type AdWithCreatorDTO struct {
	AdDTO
	CreatorName     *string `json:"creator_name"`
	CreatorEmail    *string `json:"creator_email"`
	CreatorMobile   *string `json:"creator_mobile,omitempty"`
	CreatorDistrict *string `json:"creator_district,omitempty"`
	CategoryName    *string `json:"category_name,omitempty"`
	SubcategoryName *string `json:"subcategory_name,omitempty"`
}
