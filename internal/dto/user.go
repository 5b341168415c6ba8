package dto

import "time"

type RegisterRequestDTO struct {
	TelegramUserID string `json:"telegram_user_id" example:"123456789"`
	Username       string `json:"username" example:"satoshi"`
	ReferralCode   string `json:"referral_code,omitempty" example:"vitalik"`
}

type RegisterResponseDTO struct {
	Account     AccountResponseDTO   `json:"account"`
	Token       string               `json:"token"`
	BonusesPaid []ReferralBonusDTO   `json:"bonuses_paid"`
}

type LoginRequestDTO struct {
	TelegramUserID string `json:"telegram_user_id" example:"123456789"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

type AccountResponseDTO struct {
	ID                    int        `json:"id" example:"1"`
	TelegramUserID        string     `json:"telegram_user_id" example:"123456789"`
	Username              string     `json:"username" example:"satoshi"`
	Role                  string     `json:"role" example:"BASE"`
	Balance               int64      `json:"balance" example:"30000"`
	TotalEarnings         int64      `json:"total_earnings" example:"45000"`
	IsEarning             bool       `json:"is_earning" example:"false"`
	ClaimStreak           int        `json:"claim_streak" example:"3"`
	LastClaimAt           *time.Time `json:"last_claim_at,omitempty"`
	SecondsUntilNextClaim int64      `json:"seconds_until_next_claim" example:"1800"`
	CreatedAt             time.Time  `json:"created_at"`
}

type ReferralBonusDTO struct {
	AccountID int   `json:"account_id" example:"2"`
	Level     int   `json:"level" example:"1"`
	Amount    int64 `json:"amount" example:"6000"`
}

type ReferralDTO struct {
	Username  string    `json:"username" example:"hal"`
	CreatedAt time.Time `json:"created_at"`
}

type SetRoleRequestDTO struct {
	Role         string `json:"role" example:"MONTHLY_3X"`
	DurationDays int    `json:"duration_days,omitempty" example:"30"`
}

type LeaderboardEntryDTO struct {
	Rank          int    `json:"rank" example:"1"`
	Username      string `json:"username" example:"satoshi"`
	Role          string `json:"role" example:"LIFETIME_6X"`
	TotalEarnings int64  `json:"total_earnings" example:"1000000"`
}

type RankResponseDTO struct {
	Rank          int    `json:"rank" example:"42"`
	Username      string `json:"username" example:"satoshi"`
	TotalEarnings int64  `json:"total_earnings" example:"45000"`
}
