package streakrepo

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

func TestRepository_FindByTelegramID(t *testing.T) {
	repo, mock := NewMock(t)

	lastCheckIn := time.Now().Add(-20 * time.Hour)

	tests := []struct {
		name       string
		telegramID string
		mockSetup  func()
		expectErr  bool
		result     *domain.StreakRecord
	}{
		{
			name:       "Streak found",
			telegramID: "123456789",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "telegram_id", "current_streak", "highest_streak", "last_check_in"}).
					AddRow(1, "123456789", 3, 5, &lastCheckIn)
				mock.ExpectQuery(`(?s)SELECT.+FROM streaks.+WHERE telegram_id = \$1`).
					WithArgs("123456789").
					WillReturnRows(rows)
			},
			result: &domain.StreakRecord{
				ID:            1,
				TelegramID:    "123456789",
				CurrentStreak: 3,
				HighestStreak: 5,
				LastCheckIn:   &lastCheckIn,
			},
		},
		{
			name:       "No streak yet",
			telegramID: "404",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)SELECT.+FROM streaks.+WHERE telegram_id = \$1`).
					WithArgs("404").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:       "Database error",
			telegramID: "123456789",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)SELECT.+FROM streaks.+WHERE telegram_id = \$1`).
					WithArgs("123456789").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByTelegramID(context.Background(), tt.telegramID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	checkIn := time.Now()
	streak := &domain.StreakRecord{
		TelegramID:    "123456789",
		CurrentStreak: 4,
		HighestStreak: 5,
		LastCheckIn:   &checkIn,
	}

	rows := pgxmock.NewRows([]string{"id", "telegram_id", "current_streak", "highest_streak", "last_check_in"}).
		AddRow(1, "123456789", 4, 5, &checkIn)
	mock.ExpectQuery(`(?s)INSERT INTO streaks.+ON CONFLICT \(telegram_id\) DO UPDATE`).
		WithArgs("123456789", 4, 5, &checkIn).
		WillReturnRows(rows)

	saved, err := repo.Save(context.Background(), streak)
	assert.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, 4, saved.CurrentStreak)
}

func TestRepository_HasCompletionBetween(t *testing.T) {
	repo, mock := NewMock(t)

	from := time.Now().Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(`(?s)SELECT EXISTS.+FROM daily_completions`).
		WithArgs(1, from, to).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasCompletionBetween(context.Background(), 1, from, to)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_CreateCompletion(t *testing.T) {
	repo, mock := NewMock(t)

	completedAt := time.Now()
	completion := &domain.DailyCompletion{
		AccountID:   1,
		DailyTaskID: 12,
		StreakDay:   3,
		Points:      15000,
		CompletedAt: completedAt,
	}

	mock.ExpectQuery(`(?s)INSERT INTO daily_completions.+RETURNING id`).
		WithArgs(1, 12, 3, int64(15000), completedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

	created, err := repo.CreateCompletion(context.Background(), completion)
	assert.NoError(t, err)
	assert.Equal(t, 9, created.ID)
}

func TestRepository_FindCompletions(t *testing.T) {
	repo, mock := NewMock(t)

	completedAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "daily_task_id", "streak_day", "points", "completed_at"}).
		AddRow(2, 1, 12, 4, int64(20000), completedAt).
		AddRow(1, 1, 12, 3, int64(15000), completedAt.Add(-24*time.Hour))
	mock.ExpectQuery(`(?s)SELECT.+FROM daily_completions.+ORDER BY completed_at DESC.+LIMIT \$2 OFFSET \$3`).
		WithArgs(1, 10, 0).
		WillReturnRows(rows)

	result, err := repo.FindCompletions(context.Background(), 1, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 4, result[0].StreakDay)
}

func TestRepository_CountCompletions(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM daily_completions WHERE account_id = \$1`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(27))

	total, err := repo.CountCompletions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 27, total)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM daily_completions WHERE account_id = \$1`).
		WithArgs(1).
		WillReturnError(errors.New("database error"))

	_, err = repo.CountCompletions(context.Background(), 1)
	assert.Error(t, err)
}
