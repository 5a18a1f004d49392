package dto

type CreateCropPlanRequest struct {
	UserID       uint    `json:"user_id" validate:"required"`
	LandID       uint    `json:"land_id" validate:"required"`
	ProductID    uint    `json:"product_id" validate:"required"`
	AreaAcres    float64 `json:"area_acres" validate:"required,gt=0"`
	PlanningDate string  `json:"planning_date" validate:"required"`
}

type UpdateCropPlanRequest struct {
	AreaAcres    *float64 `json:"area_acres" validate:"omitempty,gt=0"`
	PlanningDate *string  `json:"planning_date"`
}
