package service

import (
	"github.com/tonance/tonance/internal/handlers/daily"
	"github.com/tonance/tonance/internal/handlers/earnings"
	"github.com/tonance/tonance/internal/handlers/stakes"
	"github.com/tonance/tonance/internal/handlers/tasks"
	"github.com/tonance/tonance/internal/handlers/users"

	pkgauth "github.com/tonance/tonance/pkg/auth"

	"github.com/tonance/tonance/internal/config"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/repo"
	accountservice "github.com/tonance/tonance/internal/service/accountservice"
	earningservice "github.com/tonance/tonance/internal/service/earningservice"
	stakeservice "github.com/tonance/tonance/internal/service/stakeservice"
	streakservice "github.com/tonance/tonance/internal/service/streakservice"
	taskservice "github.com/tonance/tonance/internal/service/taskservice"
)

type Services struct {
	AccountService users.Service
	EarningService earnings.Service
	StreakService  daily.StreakService
	StakeService   stakes.Service
	TaskService    tasks.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	accountService := accountservice.New(repo.AccountRepo, txManager, &pkgauth.JWTService{})
	earningService := earningservice.New(repo.AccountRepo, txManager, cfg.EarnRate)
	streakService := streakservice.New(repo.StreakRepo, repo.DailyTaskRepo, repo.AccountRepo, txManager)
	stakeService := stakeservice.New(repo.StakeRepo, repo.AccountRepo, txManager)
	taskService := taskservice.New(repo.TaskRepo, repo.AccountRepo, txManager)

	return &Services{
		AccountService: accountService,
		EarningService: earningService,
		StreakService:  streakService,
		StakeService:   stakeService,
		TaskService:    taskService,
	}
}
