package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tonance/tonance/internal/config"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/repo"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/internal/service/stakeservice"
	"github.com/tonance/tonance/internal/service/streakservice"
	"github.com/tonance/tonance/internal/service/taskservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := accountservice.NewMockAccountRepo(ctrl)
	mockStreakRepo := streakservice.NewMockStreakRepo(ctrl)
	mockStakeRepo := stakeservice.NewMockStakeRepo(ctrl)
	mockTaskRepo := taskservice.NewMockTaskRepo(ctrl)
	mockDailyTaskRepo := streakservice.NewMockDailyTaskRepo(ctrl)
	mockTXManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		AccountRepo:   mockAccountRepo,
		StreakRepo:    mockStreakRepo,
		StakeRepo:     mockStakeRepo,
		TaskRepo:      mockTaskRepo,
		DailyTaskRepo: mockDailyTaskRepo,
	}

	services := New(repos, mockTXManager, &config.Config{EarnRate: 3600})

	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.EarningService)
	assert.NotNil(t, services.StreakService)
	assert.NotNil(t, services.StakeService)
	assert.NotNil(t, services.TaskService)
}
