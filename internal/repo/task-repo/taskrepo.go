package taskrepo

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

func (r *Repository) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
        INSERT INTO tasks (title, description, points, link, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, task.Title, task.Description, task.Points, task.Link, task.IsActive).
		Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) UpdateTask(ctx context.Context, task *domain.Task) error {
	query := `
        UPDATE tasks
        SET title = $1, description = $2, points = $3, link = $4, is_active = $5
        WHERE id = $6
    `
	tag, err := r.db.Exec(ctx, query, task.Title, task.Description, task.Points, task.Link, task.IsActive, task.ID)
	if err != nil {
		zap.L().Error("failed to update task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) FindTaskByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `
        SELECT id, title, description, points, link, is_active, created_at
        FROM tasks
        WHERE id = $1
    `
	var task domain.Task
	err := r.db.QueryRow(ctx, query, id).
		Scan(&task.ID, &task.Title, &task.Description, &task.Points, &task.Link, &task.IsActive, &task.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get task", zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *Repository) ListActiveTasks(ctx context.Context) ([]domain.Task, error) {
	query := `
        SELECT id, title, description, points, link, is_active, created_at
        FROM tasks
        WHERE is_active
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Points, &task.Link, &task.IsActive, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *Repository) FindCompletion(ctx context.Context, accountID, taskID int) (*domain.TaskCompletion, error) {
	query := `
        SELECT id, account_id, task_id, completed_at
        FROM task_completions
        WHERE account_id = $1 AND task_id = $2
    `
	var completion domain.TaskCompletion
	err := r.db.QueryRow(ctx, query, accountID, taskID).
		Scan(&completion.ID, &completion.AccountID, &completion.TaskID, &completion.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get task completion", zap.Error(err))
		return nil, err
	}
	return &completion, nil
}

func (r *Repository) CreateCompletion(ctx context.Context, accountID, taskID int, completedAt time.Time) error {
	query := `
        INSERT INTO task_completions (account_id, task_id, completed_at)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, accountID, taskID, completedAt); err != nil {
		zap.L().Error("failed to save task completion", zap.Error(err))
		return err
	}
	return nil
}

// CountIncomplete returns how many active one-off tasks the account has
// not completed yet.
func (r *Repository) CountIncomplete(ctx context.Context, accountID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM tasks t
        WHERE t.is_active AND NOT EXISTS (
            SELECT 1 FROM task_completions c
            WHERE c.task_id = t.id AND c.account_id = $1
        )
    `
	var count int
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		zap.L().Error("failed to count incomplete tasks", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateDailyTask(ctx context.Context, task *domain.DailyTask) (*domain.DailyTask, error) {
	query := `
        INSERT INTO daily_tasks (topic, description, image_url, day_number, points, is_active, link)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		task.Topic, task.Description, task.ImageURL, task.DayNumber, task.Points, task.IsActive, task.Link,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create daily task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) UpdateDailyTask(ctx context.Context, task *domain.DailyTask) error {
	query := `
        UPDATE daily_tasks
        SET topic = $1, description = $2, image_url = $3, day_number = $4,
            points = $5, is_active = $6, link = $7
        WHERE id = $8
    `
	tag, err := r.db.Exec(ctx, query,
		task.Topic, task.Description, task.ImageURL, task.DayNumber,
		task.Points, task.IsActive, task.Link, task.ID,
	)
	if err != nil {
		zap.L().Error("failed to update daily task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteDailyTask(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM daily_tasks WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete daily task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) FindDailyTaskByID(ctx context.Context, id int) (*domain.DailyTask, error) {
	query := `
        SELECT id, topic, description, image_url, day_number, points, is_active, link, created_at
        FROM daily_tasks
        WHERE id = $1
    `
	var task domain.DailyTask
	err := r.db.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.Topic, &task.Description, &task.ImageURL,
		&task.DayNumber, &task.Points, &task.IsActive, &task.Link, &task.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get daily task", zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *Repository) ListDailyTasks(ctx context.Context, limit, offset int) ([]domain.DailyTask, error) {
	query := `
        SELECT id, topic, description, image_url, day_number, points, is_active, link, created_at
        FROM daily_tasks
        ORDER BY day_number
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to list daily tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.DailyTask
	for rows.Next() {
		var task domain.DailyTask
		if err := rows.Scan(
			&task.ID, &task.Topic, &task.Description, &task.ImageURL,
			&task.DayNumber, &task.Points, &task.IsActive, &task.Link, &task.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *Repository) FindPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	query := `
        SELECT id, code, points, is_active, created_at
        FROM promo_codes
        WHERE code = $1
    `
	var promo domain.PromoCode
	err := r.db.QueryRow(ctx, query, code).
		Scan(&promo.ID, &promo.Code, &promo.Points, &promo.IsActive, &promo.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get promo code", zap.Error(err))
		return nil, err
	}
	return &promo, nil
}

func (r *Repository) CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	query := `
        INSERT INTO promo_codes (code, points, is_active)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, promo.Code, promo.Points, promo.IsActive).
		Scan(&promo.ID, &promo.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create promo code", zap.Error(err))
		return nil, err
	}
	return promo, nil
}

func (r *Repository) FindRedemption(ctx context.Context, accountID, promoID int) (*domain.PromoRedemption, error) {
	query := `
        SELECT id, account_id, promo_code_id, redeemed_at
        FROM promo_redemptions
        WHERE account_id = $1 AND promo_code_id = $2
    `
	var redemption domain.PromoRedemption
	err := r.db.QueryRow(ctx, query, accountID, promoID).
		Scan(&redemption.ID, &redemption.AccountID, &redemption.PromoCodeID, &redemption.RedeemedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get promo redemption", zap.Error(err))
		return nil, err
	}
	return &redemption, nil
}

func (r *Repository) CreateRedemption(ctx context.Context, accountID, promoID int, redeemedAt time.Time) error {
	query := `
        INSERT INTO promo_redemptions (account_id, promo_code_id, redeemed_at)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, accountID, promoID, redeemedAt); err != nil {
		zap.L().Error("failed to save promo redemption", zap.Error(err))
		return err
	}
	return nil
}
