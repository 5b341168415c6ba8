package taskrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/tonance/tonance/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateTask(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()
	task := &domain.Task{Title: "Join the community", Points: 10000, IsActive: true}

	mock.ExpectQuery(`(?s)INSERT INTO tasks.+RETURNING id, created_at`).
		WithArgs("Join the community", "", int64(10000), "", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, createdAt))

	created, err := repo.CreateTask(context.Background(), task)
	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
}

func TestRepository_UpdateTask(t *testing.T) {
	repo, mock := NewMock(t)

	task := &domain.Task{ID: 5, Title: "Join the community", Points: 15000, IsActive: true}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Task updated",
			mockSetup: func() {
				mock.ExpectExec(`(?s)UPDATE tasks.+WHERE id = \$6`).
					WithArgs(task.Title, task.Description, task.Points, task.Link, task.IsActive, task.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Task missing",
			mockSetup: func() {
				mock.ExpectExec(`(?s)UPDATE tasks.+WHERE id = \$6`).
					WithArgs(task.Title, task.Description, task.Points, task.Link, task.IsActive, task.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: pgx.ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateTask(context.Background(), task)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_DeleteTask(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.DeleteTask(context.Background(), 5))

	mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.DeleteTask(context.Background(), 99), pgx.ErrNoRows)
}

func TestRepository_FindTaskByID(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "title", "description", "points", "link", "is_active", "created_at"}).
		AddRow(5, "Join the community", "Join the community chat", int64(10000), "", true, createdAt)
	mock.ExpectQuery(`(?s)SELECT.+FROM tasks.+WHERE id = \$1`).
		WithArgs(5).
		WillReturnRows(rows)

	task, err := repo.FindTaskByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Join the community", task.Title)

	mock.ExpectQuery(`(?s)SELECT.+FROM tasks.+WHERE id = \$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	task, err = repo.FindTaskByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, task)
}

func TestRepository_ListActiveTasks(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "title", "description", "points", "link", "is_active", "created_at"}).
		AddRow(5, "Join the community", "", int64(10000), "", true, createdAt).
		AddRow(6, "Follow on X", "", int64(20000), "https://x.com", true, createdAt)
	mock.ExpectQuery(`(?s)SELECT.+FROM tasks.+WHERE is_active`).
		WillReturnRows(rows)

	tasks, err := repo.ListActiveTasks(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "Follow on X", tasks[1].Title)
}

func TestRepository_TaskCompletions(t *testing.T) {
	repo, mock := NewMock(t)

	completedAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "task_id", "completed_at"}).
		AddRow(1, 1, 5, completedAt)
	mock.ExpectQuery(`(?s)SELECT.+FROM task_completions.+WHERE account_id = \$1 AND task_id = \$2`).
		WithArgs(1, 5).
		WillReturnRows(rows)

	completion, err := repo.FindCompletion(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, completion.TaskID)

	mock.ExpectQuery(`(?s)SELECT.+FROM task_completions.+WHERE account_id = \$1 AND task_id = \$2`).
		WithArgs(1, 6).
		WillReturnError(pgx.ErrNoRows)

	completion, err = repo.FindCompletion(context.Background(), 1, 6)
	assert.NoError(t, err)
	assert.Nil(t, completion)

	mock.ExpectExec(`INSERT INTO task_completions`).
		WithArgs(1, 6, completedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.CreateCompletion(context.Background(), 1, 6, completedAt))
}

func TestRepository_CountIncomplete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\).+FROM tasks t.+NOT EXISTS`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountIncomplete(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_DailyTasks(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()
	task := &domain.DailyTask{Topic: "Follow the channel", DayNumber: 3, Points: 15000, IsActive: true}

	mock.ExpectQuery(`(?s)INSERT INTO daily_tasks.+RETURNING id, created_at`).
		WithArgs("Follow the channel", "", "", 3, int64(15000), true, "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(12, createdAt))

	created, err := repo.CreateDailyTask(context.Background(), task)
	assert.NoError(t, err)
	assert.Equal(t, 12, created.ID)

	mock.ExpectExec(`(?s)UPDATE daily_tasks.+WHERE id = \$8`).
		WithArgs("Follow the channel", "", "", 3, int64(15000), true, "", 12).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateDailyTask(context.Background(), created))

	mock.ExpectExec(`DELETE FROM daily_tasks WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.DeleteDailyTask(context.Background(), 99), pgx.ErrNoRows)
}

func TestRepository_ListDailyTasks(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "topic", "description", "image_url", "day_number", "points", "is_active", "link", "created_at"}).
		AddRow(12, "Follow the channel", "", "", 3, int64(15000), true, "", createdAt)
	mock.ExpectQuery(`(?s)SELECT.+FROM daily_tasks.+ORDER BY day_number.+LIMIT \$1 OFFSET \$2`).
		WithArgs(30, 0).
		WillReturnRows(rows)

	tasks, err := repo.ListDailyTasks(context.Background(), 30, 0)
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, 3, tasks[0].DayNumber)
}

func TestRepository_Promos(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "code", "points", "is_active", "created_at"}).
		AddRow(1, "2377225624", int64(50000), true, createdAt)
	mock.ExpectQuery(`(?s)SELECT.+FROM promo_codes.+WHERE code = \$1`).
		WithArgs("2377225624").
		WillReturnRows(rows)

	promo, err := repo.FindPromoByCode(context.Background(), "2377225624")
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), promo.Points)

	mock.ExpectQuery(`(?s)SELECT.+FROM promo_codes.+WHERE code = \$1`).
		WithArgs("0000000000").
		WillReturnError(pgx.ErrNoRows)

	promo, err = repo.FindPromoByCode(context.Background(), "0000000000")
	assert.NoError(t, err)
	assert.Nil(t, promo)

	mock.ExpectQuery(`(?s)INSERT INTO promo_codes.+RETURNING id, created_at`).
		WithArgs("2377225624", int64(50000), true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))

	created, err := repo.CreatePromo(context.Background(), &domain.PromoCode{Code: "2377225624", Points: 50000, IsActive: true})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestRepository_Redemptions(t *testing.T) {
	repo, mock := NewMock(t)

	redeemedAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "promo_code_id", "redeemed_at"}).
		AddRow(1, 1, 1, redeemedAt)
	mock.ExpectQuery(`(?s)SELECT.+FROM promo_redemptions.+WHERE account_id = \$1 AND promo_code_id = \$2`).
		WithArgs(1, 1).
		WillReturnRows(rows)

	redemption, err := repo.FindRedemption(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, redemption.PromoCodeID)

	mock.ExpectExec(`INSERT INTO promo_redemptions`).
		WithArgs(1, 2, redeemedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.CreateRedemption(context.Background(), 1, 2, redeemedAt))

	mock.ExpectExec(`INSERT INTO promo_redemptions`).
		WithArgs(1, 2, redeemedAt).
		WillReturnError(errors.New("database error"))

	assert.Error(t, repo.CreateRedemption(context.Background(), 1, 2, redeemedAt))
}
