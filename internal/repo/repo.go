package repo

import (
	"github.com/tonance/tonance/internal/pg"
	accountrepo "github.com/tonance/tonance/internal/repo/account-repo"
	stakerepo "github.com/tonance/tonance/internal/repo/stake-repo"
	streakrepo "github.com/tonance/tonance/internal/repo/streak-repo"
	taskrepo "github.com/tonance/tonance/internal/repo/task-repo"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/internal/service/stakeservice"
	"github.com/tonance/tonance/internal/service/streakservice"
	"github.com/tonance/tonance/internal/service/taskservice"
)

type Repositories struct {
	AccountRepo   accountservice.AccountRepo
	StreakRepo    streakservice.StreakRepo
	StakeRepo     stakeservice.StakeRepo
	TaskRepo      taskservice.TaskRepo
	DailyTaskRepo streakservice.DailyTaskRepo
}

func New(conn pg.Database) *Repositories {
	accountRepo := accountrepo.New(conn)
	streakRepo := streakrepo.New(conn)
	stakeRepo := stakerepo.New(conn)
	taskRepo := taskrepo.New(conn)

	return &Repositories{
		AccountRepo:   accountRepo,
		StreakRepo:    streakRepo,
		StakeRepo:     stakeRepo,
		TaskRepo:      taskRepo,
		DailyTaskRepo: taskRepo,
	}
}
