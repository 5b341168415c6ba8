package dto

import "time"

type CompleteDailyResponseDTO struct {
	StreakDay     int   `json:"streak_day" example:"3"`
	Points        int64 `json:"points" example:"15000"`
	TotalBalance  int64 `json:"total_balance" example:"60000"`
	HighestStreak int   `json:"highest_streak" example:"5"`
}

type StreakStatusResponseDTO struct {
	CurrentStreak      int        `json:"current_streak" example:"3"`
	HighestStreak      int        `json:"highest_streak" example:"5"`
	LastCheckIn        *time.Time `json:"last_check_in,omitempty"`
	IsActive           bool       `json:"is_active" example:"true"`
	NextPoints         int64      `json:"next_points" example:"20000"`
	NextMilestone      int        `json:"next_milestone" example:"7"`
	DaysUntilMilestone int        `json:"days_until_milestone" example:"4"`
	BonusLabel         string     `json:"bonus_label,omitempty" example:"7-Day Achiever"`
}

type DailyCompletionDTO struct {
	DailyTaskID int       `json:"daily_task_id" example:"12"`
	StreakDay   int       `json:"streak_day" example:"3"`
	Points      int64     `json:"points" example:"15000"`
	CompletedAt time.Time `json:"completed_at"`
}

type PaginationDTO struct {
	CurrentPage int `json:"current_page" example:"1"`
	TotalPages  int `json:"total_pages" example:"3"`
	TotalItems  int `json:"total_items" example:"27"`
}

type CompletionHistoryResponseDTO struct {
	Completions []DailyCompletionDTO `json:"completions"`
	Pagination  PaginationDTO        `json:"pagination"`
}

type DailyTaskRequestDTO struct {
	Topic       string `json:"topic" example:"Follow the channel"`
	Description string `json:"description" example:"Follow the official channel and press check"`
	ImageURL    string `json:"image_url,omitempty"`
	DayNumber   int    `json:"day_number" example:"3"`
	IsActive    bool   `json:"is_active" example:"true"`
	Link        string `json:"link,omitempty"`
}

type DailyTaskResponseDTO struct {
	ID          int    `json:"id" example:"12"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	DayNumber   int    `json:"day_number" example:"3"`
	Points      int64  `json:"points" example:"15000"`
	IsActive    bool   `json:"is_active"`
	Link        string `json:"link,omitempty"`
}
