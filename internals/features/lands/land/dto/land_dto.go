package dto

type CreateLandRequest struct {
	UserID    uint    `json:"user_id" validate:"required"`
	LandName  *string `json:"land_name"`
	District  *string `json:"district"`
	Taluk     *string `json:"taluk"`
	Village   *string `json:"village"`
	Panchayat *string `json:"panchayat"`
	SurveyNo  *string `json:"survey_no"`
	HissaNo   *string `json:"hissa_no"`
	FarmSize  float64 `json:"farm_size" validate:"required,gt=0"`
}

type UpdateLandRequest struct {
	LandName  *string  `json:"land_name"`
	District  *string  `json:"district"`
	Taluk     *string  `json:"taluk"`
	Village   *string  `json:"village"`
	Panchayat *string  `json:"panchayat"`
	SurveyNo  *string  `json:"survey_no"`
	HissaNo   *string  `json:"hissa_no"`
	FarmSize  *float64 `json:"farm_size" validate:"omitempty,gt=0"`
}
