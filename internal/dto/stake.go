package dto

import "time"

type CreateStakeRequestDTO struct {
	Amount     int64 `json:"amount" example:"1000"`
	PeriodDays int   `json:"period_days" example:"15"`
}

type StakeResponseDTO struct {
	ID           int       `json:"id" example:"7"`
	Amount       int64     `json:"amount" example:"1000"`
	PeriodDays   int       `json:"period_days" example:"15"`
	InterestRate float64   `json:"interest_rate" example:"0.1"`
	Status       string    `json:"status" example:"ACTIVE"`
	StartedAt    time.Time `json:"started_at"`
	MaturesAt    time.Time `json:"matures_at"`
}

type StakePayoutResponseDTO struct {
	Principal   int64 `json:"principal" example:"1000"`
	Interest    int64 `json:"interest" example:"100"`
	TotalAmount int64 `json:"total_amount" example:"1100"`
}
