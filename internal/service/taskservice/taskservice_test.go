package taskservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/service/accountservice"
)

// validCode passes the Luhn checksum, invalidCode does not.
const (
	validCode   = "2377225624"
	invalidCode = "2377225625"
)

func NewMock(t *testing.T) (*Service, *MockTaskRepo, *accountservice.MockAccountRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockTaskRepo(ctrl)
	accountRepo := accountservice.NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(repo, accountRepo, txManager)
	defer ctrl.Finish()
	return service, repo, accountRepo
}

func TestCompleteTask(t *testing.T) {
	service, repo, accountRepo := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	task := &domain.Task{ID: 5, Points: 10000, IsActive: true}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "credits the reward once",
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1, Balance: 100, TotalEarnings: 100}, nil)
				repo.EXPECT().FindTaskByID(gomock.Any(), 5).Return(task, nil)
				repo.EXPECT().FindCompletion(gomock.Any(), 1, 5).Return(nil, nil)
				repo.EXPECT().CreateCompletion(gomock.Any(), 1, 5, now).Return(nil)
				accountRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, acc *domain.Account) error {
						assert.Equal(t, int64(10100), acc.Balance)
						assert.Equal(t, int64(10100), acc.TotalEarnings)
						return nil
					})
			},
		},
		{
			name: "rejects a repeat completion",
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().FindTaskByID(gomock.Any(), 5).Return(task, nil)
				repo.EXPECT().FindCompletion(gomock.Any(), 1, 5).Return(&domain.TaskCompletion{ID: 1}, nil)
			},
			expectedError: ErrTaskAlreadyCompleted,
		},
		{
			name: "inactive task is not found",
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().FindTaskByID(gomock.Any(), 5).Return(&domain.Task{ID: 5}, nil)
			},
			expectedError: ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			reward, account, err := service.CompleteTask(context.Background(), 1, 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(10000), reward)
			assert.Equal(t, int64(10100), account.Balance)
		})
	}
}

func TestApplyPromoCode(t *testing.T) {
	service, repo, accountRepo := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	promo := &domain.PromoCode{ID: 3, Code: validCode, Points: 50000, IsActive: true}

	tests := []struct {
		name          string
		code          string
		prepareMock   func()
		expectedBoost int64
		expectedError error
	}{
		{
			name: "redeems after all tasks are complete",
			code: validCode,
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().FindPromoByCode(gomock.Any(), validCode).Return(promo, nil)
				repo.EXPECT().FindRedemption(gomock.Any(), 1, 3).Return(nil, nil)
				repo.EXPECT().CountIncomplete(gomock.Any(), 1).Return(0, nil)
				repo.EXPECT().CreateRedemption(gomock.Any(), 1, 3, now).Return(nil)
				accountRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedBoost: 50000,
		},
		{
			name:          "rejects a code that fails the checksum",
			code:          invalidCode,
			expectedError: ErrInvalidPromoCode,
		},
		{
			name: "rejects an unknown code",
			code: validCode,
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().FindPromoByCode(gomock.Any(), validCode).Return(nil, nil)
			},
			expectedError: ErrPromoNotFound,
		},
		{
			name: "rejects a second redemption",
			code: validCode,
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().FindPromoByCode(gomock.Any(), validCode).Return(promo, nil)
				repo.EXPECT().FindRedemption(gomock.Any(), 1, 3).Return(&domain.PromoRedemption{ID: 9}, nil)
			},
			expectedError: ErrPromoUsed,
		},
		{
			name: "requires every active task to be completed",
			code: validCode,
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
				repo.EXPECT().FindPromoByCode(gomock.Any(), validCode).Return(promo, nil)
				repo.EXPECT().FindRedemption(gomock.Any(), 1, 3).Return(nil, nil)
				repo.EXPECT().CountIncomplete(gomock.Any(), 1).Return(2, nil)
			},
			expectedError: ErrTasksIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			boost, err := service.ApplyPromoCode(context.Background(), 1, tt.code)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBoost, boost)
		})
	}
}

func TestCreateTasks(t *testing.T) {
	service, repo, _ := NewMock(t)

	taskList := []domain.Task{
		{Title: "one", Points: 1000},
		{Title: "two", Points: 2000},
		{Title: "three", Points: 3000},
	}
	nextID := 0
	var mu = make(chan struct{}, 1)
	repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domain.Task) (*domain.Task, error) {
			mu <- struct{}{}
			nextID++
			task.ID = nextID
			<-mu
			return task, nil
		}).Times(3)

	created, err := service.CreateTasks(context.Background(), taskList)
	assert.NoError(t, err)
	assert.Len(t, created, 3)
	// Results keep the request order even though inserts run concurrently.
	for i, task := range created {
		assert.Equal(t, taskList[i].Title, task.Title)
		assert.NotZero(t, task.ID)
	}
}

func TestCreateTasksPropagatesError(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error")).MinTimes(1)
	repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domain.Task) (*domain.Task, error) { return task, nil }).AnyTimes()

	_, err := service.CreateTasks(context.Background(), []domain.Task{{Title: "one"}, {Title: "two"}})
	assert.Error(t, err)
}

func TestCreateDailyTask(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().CreateDailyTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task *domain.DailyTask) (*domain.DailyTask, error) {
			// The reward is derived from the schedule, never trusted from the request.
			assert.Equal(t, int64(15000), task.Points)
			task.ID = 12
			return task, nil
		})

	created, err := service.CreateDailyTask(context.Background(), &domain.DailyTask{DayNumber: 3, Points: 999})
	assert.NoError(t, err)
	assert.Equal(t, 12, created.ID)

	_, err = service.CreateDailyTask(context.Background(), &domain.DailyTask{DayNumber: 31})
	assert.ErrorIs(t, err, ErrInvalidDayNumber)

	_, err = service.CreateDailyTask(context.Background(), &domain.DailyTask{DayNumber: 0})
	assert.ErrorIs(t, err, ErrInvalidDayNumber)
}

func TestUpdateTaskNotFound(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(pgx.ErrNoRows)
	err := service.UpdateTask(context.Background(), &domain.Task{ID: 5})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	repo.EXPECT().DeleteTask(gomock.Any(), 5).Return(pgx.ErrNoRows)
	err = service.DeleteTask(context.Background(), 5)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCreatePromo(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().CreatePromo(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
			promo.ID = 3
			return promo, nil
		})

	created, err := service.CreatePromo(context.Background(), &domain.PromoCode{Code: validCode, Points: 50000})
	assert.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	_, err = service.CreatePromo(context.Background(), &domain.PromoCode{Code: invalidCode})
	assert.ErrorIs(t, err, ErrInvalidPromoCode)
}
