package dto

type TaskRequestDTO struct {
	Title       string `json:"title" example:"Join the community"`
	Description string `json:"description" example:"Join the community chat"`
	Points      int64  `json:"points" example:"10000"`
	Link        string `json:"link,omitempty"`
	IsActive    bool   `json:"is_active" example:"true"`
}

type TaskResponseDTO struct {
	ID          int    `json:"id" example:"5"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int64  `json:"points" example:"10000"`
	Link        string `json:"link,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type BulkTasksRequestDTO struct {
	Tasks []TaskRequestDTO `json:"tasks"`
}

type CompleteTaskResponseDTO struct {
	Points     int64 `json:"points" example:"10000"`
	NewBalance int64 `json:"new_balance" example:"40000"`
}

type ApplyPromoRequestDTO struct {
	Code string `json:"code" example:"2377225624"`
}

type ApplyPromoResponseDTO struct {
	PointsBoost int64 `json:"points_boost" example:"50000"`
}

type CreatePromoRequestDTO struct {
	Code     string `json:"code" example:"2377225624"`
	Points   int64  `json:"points" example:"50000"`
	IsActive bool   `json:"is_active" example:"true"`
}
