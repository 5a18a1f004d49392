package dto

type CreateLandProductRequest struct {
	UserID    uint   `json:"user_id" validate:"required"`
	LandID    uint   `json:"land_id" validate:"required"`
	ProductID uint   `json:"product_id" validate:"required"`
	Category  string `json:"category" validate:"required"`

	// Food
	Acres *float64 `json:"acres"`

	// Machinery
	ModelNo        *string `json:"model_no"`
	RegistrationNo *string `json:"registration_no"`
	ChassiNo       *string `json:"chassi_no"`
	RcCopyNo       *string `json:"rc_copy_no"`

	// Animal
	Quantity *int `json:"quantity"`
}

type UpdateLandProductRequest struct {
	Acres          *float64 `json:"acres"`
	ModelNo        *string  `json:"model_no"`
	RegistrationNo *string  `json:"registration_no"`
	ChassiNo       *string  `json:"chassi_no"`
	RcCopyNo       *string  `json:"rc_copy_no"`
	Quantity       *int     `json:"quantity"`
}
