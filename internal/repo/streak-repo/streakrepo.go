package streakrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByTelegramID(ctx context.Context, telegramID string) (*domain.StreakRecord, error) {
	query := `
        SELECT id, telegram_id, current_streak, highest_streak, last_check_in
        FROM streaks
        WHERE telegram_id = $1
    `
	row := r.db.QueryRow(ctx, query, telegramID)
	var streak domain.StreakRecord
	err := row.Scan(&streak.ID, &streak.TelegramID, &streak.CurrentStreak, &streak.HighestStreak, &streak.LastCheckIn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get streak", zap.Error(err))
		return nil, err
	}
	return &streak, nil
}

// Save upserts the streak record keyed by telegram id.
func (r *Repository) Save(ctx context.Context, streak *domain.StreakRecord) (*domain.StreakRecord, error) {
	query := `
        INSERT INTO streaks (telegram_id, current_streak, highest_streak, last_check_in)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (telegram_id) DO UPDATE
        SET current_streak = EXCLUDED.current_streak,
            highest_streak = EXCLUDED.highest_streak,
            last_check_in = EXCLUDED.last_check_in
        RETURNING id, telegram_id, current_streak, highest_streak, last_check_in
    `
	row := r.db.QueryRow(ctx, query, streak.TelegramID, streak.CurrentStreak, streak.HighestStreak, streak.LastCheckIn)
	var saved domain.StreakRecord
	err := row.Scan(&saved.ID, &saved.TelegramID, &saved.CurrentStreak, &saved.HighestStreak, &saved.LastCheckIn)
	if err != nil {
		zap.L().Error("failed to save streak", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) HasCompletionBetween(ctx context.Context, accountID int, from, to time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM daily_completions
            WHERE account_id = $1 AND completed_at BETWEEN $2 AND $3
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, accountID, from, to).Scan(&exists); err != nil {
		zap.L().Error("failed to check daily completion", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CreateCompletion(ctx context.Context, completion *domain.DailyCompletion) (*domain.DailyCompletion, error) {
	query := `
        INSERT INTO daily_completions (account_id, daily_task_id, streak_day, points, completed_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		completion.AccountID, completion.DailyTaskID, completion.StreakDay,
		completion.Points, completion.CompletedAt,
	).Scan(&completion.ID)
	if err != nil {
		zap.L().Error("failed to save daily completion", zap.Error(err))
		return nil, err
	}
	return completion, nil
}

func (r *Repository) FindCompletions(ctx context.Context, accountID, limit, offset int) ([]domain.DailyCompletion, error) {
	query := `
        SELECT id, account_id, daily_task_id, streak_day, points, completed_at
        FROM daily_completions
        WHERE account_id = $1
        ORDER BY completed_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch completion history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var completions []domain.DailyCompletion
	for rows.Next() {
		var c domain.DailyCompletion
		if err := rows.Scan(&c.ID, &c.AccountID, &c.DailyTaskID, &c.StreakDay, &c.Points, &c.CompletedAt); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (r *Repository) CountCompletions(ctx context.Context, accountID int) (int, error) {
	query := `SELECT COUNT(*) FROM daily_completions WHERE account_id = $1`
	var total int
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&total); err != nil {
		zap.L().Error("failed to count completions", zap.Error(err))
		return 0, err
	}
	return total, nil
}
