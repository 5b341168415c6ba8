package domain

import "time"

// Role is the earnings multiplier tier applied to timed accrual.
type Role string

const (
	RoleBase          Role = "BASE"
	RoleMonthlyBoost  Role = "MONTHLY_BOOST"
	RoleLifetimeBoost Role = "LIFETIME_BOOST"
	RoleMonthly3x     Role = "MONTHLY_3X"
	RoleLifetime6x    Role = "LIFETIME_6X"
)

// Multiplier returns the accrual multiplier for the role. Unknown roles
// fall back to the base multiplier rather than failing.
func (r Role) Multiplier() int64 {
	switch r {
	case RoleMonthly3x:
		return 3
	case RoleLifetime6x:
		return 6
	default:
		return 1
	}
}

// Capped reports whether accrual under this role is limited to a single
// hour's worth of the base rate.
func (r Role) Capped() bool {
	switch r {
	case RoleMonthlyBoost, RoleLifetimeBoost, RoleMonthly3x, RoleLifetime6x:
		return false
	default:
		return true
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleBase, RoleMonthlyBoost, RoleLifetimeBoost, RoleMonthly3x, RoleLifetime6x:
		return true
	}
	return false
}

type Account struct {
	ID               int        `db:"id"`
	TelegramID       string     `db:"telegram_id"`
	Username         string     `db:"username"`
	Role             Role       `db:"role"`
	RoleExpiry       *time.Time `db:"role_expiry"`
	Balance          int64      `db:"balance"`
	TotalEarnings    int64      `db:"total_earnings"`
	IsEarning        bool       `db:"is_earning"`
	EarningStartedAt *time.Time `db:"earning_started_at"`
	LastClaimAt      *time.Time `db:"last_claim_at"`
	ClaimStreak      int        `db:"claim_streak"`
	ReferredBy       *int       `db:"referred_by"`
	CreatedAt        time.Time  `db:"created_at"`
}

// StreakRecord tracks daily-task check-ins. It is keyed by the external
// telegram identifier, not the account's internal id.
type StreakRecord struct {
	ID            int        `db:"id"`
	TelegramID    string     `db:"telegram_id"`
	CurrentStreak int        `db:"current_streak"`
	HighestStreak int        `db:"highest_streak"`
	LastCheckIn   *time.Time `db:"last_check_in"`
}

type DailyCompletion struct {
	ID          int       `db:"id"`
	AccountID   int       `db:"account_id"`
	DailyTaskID int       `db:"daily_task_id"`
	StreakDay   int       `db:"streak_day"`
	Points      int64     `db:"points"`
	CompletedAt time.Time `db:"completed_at"`
}

const (
	// StakeActive stake is running and may be claimed or withdrawn.
	StakeActive string = "ACTIVE"
	// StakeClaimed stake matured and paid out principal plus interest.
	StakeClaimed string = "CLAIMED"
	// StakeUnstaked stake was withdrawn; terminal like claimed.
	StakeUnstaked string = "UNSTAKED"
)

type Stake struct {
	ID           int       `db:"id"`
	AccountID    int       `db:"account_id"`
	Amount       int64     `db:"amount"`
	PeriodDays   int       `db:"period_days"`
	InterestRate float64   `db:"interest_rate"`
	Status       string    `db:"status"`
	StartedAt    time.Time `db:"started_at"`
	MaturesAt    time.Time `db:"matures_at"`
}

type DailyTask struct {
	ID          int       `db:"id"`
	Topic       string    `db:"topic"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	DayNumber   int       `db:"day_number"`
	Points      int64     `db:"points"`
	IsActive    bool      `db:"is_active"`
	Link        string    `db:"link"`
	CreatedAt   time.Time `db:"created_at"`
}

type Task struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Points      int64     `db:"points"`
	Link        string    `db:"link"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type TaskCompletion struct {
	ID          int       `db:"id"`
	AccountID   int       `db:"account_id"`
	TaskID      int       `db:"task_id"`
	CompletedAt time.Time `db:"completed_at"`
}

type PromoCode struct {
	ID        int       `db:"id"`
	Code      string    `db:"code"`
	Points    int64     `db:"points"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type PromoRedemption struct {
	ID          int       `db:"id"`
	AccountID   int       `db:"account_id"`
	PromoCodeID int       `db:"promo_code_id"`
	RedeemedAt  time.Time `db:"redeemed_at"`
}

// ReferralBonus is one credit paid out while walking the referrer chain
// at registration.
type ReferralBonus struct {
	AccountID int   `json:"account_id"`
	Level     int   `json:"level"`
	Amount    int64 `json:"amount"`
}
