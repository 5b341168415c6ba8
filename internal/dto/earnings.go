package dto

import "time"

type EarnStatusResponseDTO struct {
	IsEarning        bool       `json:"is_earning" example:"true"`
	EarningStartedAt *time.Time `json:"earning_started_at,omitempty"`
	Accrued          int64      `json:"accrued" example:"1800"`
	Role             string     `json:"role" example:"BASE"`
	RatePerHour      int64      `json:"rate_per_hour" example:"3600"`
	ClaimStreak      int        `json:"claim_streak" example:"3"`
	LastClaimAt      *time.Time `json:"last_claim_at,omitempty"`
}

type StartEarningResponseDTO struct {
	IsEarning        bool       `json:"is_earning" example:"true"`
	EarningStartedAt *time.Time `json:"earning_started_at"`
}

type ClaimResponseDTO struct {
	ClaimedAmount int64 `json:"claimed_amount" example:"3600"`
	NewBalance    int64 `json:"new_balance" example:"33600"`
	ClaimStreak   int   `json:"claim_streak" example:"4"`
}
