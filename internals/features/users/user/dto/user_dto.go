package dto

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type SaveBasicDetailsRequest struct {
	Username   *string `json:"username"`
	Mobile     *string `json:"mobile"`
	District   *string `json:"district"`
	Profession *string `json:"profession"`
	Age        *int    `json:"age" validate:"omitempty,gte=1,lte=120"`
}

type SaveLocationRequest struct {
	District  *string `json:"district"`
	Taluk     *string `json:"taluk"`
	Village   *string `json:"village"`
	Panchayat *string `json:"panchayat"`
}
