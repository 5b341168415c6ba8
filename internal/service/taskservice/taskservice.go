package taskservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/pkg/points"
	"github.com/tonance/tonance/pkg/validate"
)

//go:generate mockgen -source=taskservice.go -destination=mock_taskservice.go -package=taskservice

type TaskRepo interface {
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id int) error
	FindTaskByID(ctx context.Context, id int) (*domain.Task, error)
	ListActiveTasks(ctx context.Context) ([]domain.Task, error)
	FindCompletion(ctx context.Context, accountID, taskID int) (*domain.TaskCompletion, error)
	CreateCompletion(ctx context.Context, accountID, taskID int, completedAt time.Time) error
	CountIncomplete(ctx context.Context, accountID int) (int, error)

	CreateDailyTask(ctx context.Context, task *domain.DailyTask) (*domain.DailyTask, error)
	UpdateDailyTask(ctx context.Context, task *domain.DailyTask) error
	DeleteDailyTask(ctx context.Context, id int) error
	FindDailyTaskByID(ctx context.Context, id int) (*domain.DailyTask, error)
	ListDailyTasks(ctx context.Context, limit, offset int) ([]domain.DailyTask, error)

	FindPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error)
	FindRedemption(ctx context.Context, accountID, promoID int) (*domain.PromoRedemption, error)
	CreateRedemption(ctx context.Context, accountID, promoID int, redeemedAt time.Time) error
}

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrPromoNotFound        = errors.New("promo code not found")
	ErrPromoUsed            = errors.New("promo code already redeemed")
	ErrTasksIncomplete      = errors.New("all active tasks must be completed first")
	ErrInvalidDayNumber     = errors.New("day number must be between 1 and 30")
	ErrInvalidPromoCode     = errors.New("promo code failed checksum validation")
)

type Service struct {
	repo        TaskRepo
	accountRepo accountservice.AccountRepo
	txManager   pg.TXManager
	workerPool  WorkerPoolI

	now func() time.Time
}

func New(repo TaskRepo, accountRepo accountservice.AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		txManager:   txManager,
		workerPool:  NewWorkerPool(10),
		now:         time.Now,
	}
}

func (s *Service) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.ListActiveTasks(ctx)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

// CompleteTask records a one-off task completion and credits its reward.
// Each task pays out at most once per account.
func (s *Service) CompleteTask(ctx context.Context, accountID, taskID int) (int64, *domain.Account, error) {
	var (
		reward  int64
		account *domain.Account
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}

		task, err := s.repo.FindTaskByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil || !task.IsActive {
			return ErrTaskNotFound
		}

		existing, err := s.repo.FindCompletion(ctx, accountID, taskID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrTaskAlreadyCompleted
		}

		if err := s.repo.CreateCompletion(ctx, accountID, taskID, s.now()); err != nil {
			return err
		}

		acc.Balance += task.Points
		acc.TotalEarnings += task.Points
		if err := s.accountRepo.Update(ctx, acc); err != nil {
			return err
		}
		reward = task.Points
		account = acc
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTaskNotFound) && !errors.Is(err, ErrTaskAlreadyCompleted) &&
			!errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't complete task", zap.Error(err))
		}
		return 0, nil, err
	}
	return reward, account, nil
}

// ApplyPromoCode redeems a promo code for its points boost. Redemption
// requires every active one-off task to be completed first and is limited
// to once per account per code.
func (s *Service) ApplyPromoCode(ctx context.Context, accountID int, code string) (int64, error) {
	if !validate.IsPromoCode(code) {
		return 0, ErrInvalidPromoCode
	}
	var boost int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}

		promo, err := s.repo.FindPromoByCode(ctx, code)
		if err != nil {
			return err
		}
		if promo == nil || !promo.IsActive {
			return ErrPromoNotFound
		}

		redeemed, err := s.repo.FindRedemption(ctx, accountID, promo.ID)
		if err != nil {
			return err
		}
		if redeemed != nil {
			return ErrPromoUsed
		}

		incomplete, err := s.repo.CountIncomplete(ctx, accountID)
		if err != nil {
			return err
		}
		if incomplete > 0 {
			return ErrTasksIncomplete
		}

		if err := s.repo.CreateRedemption(ctx, accountID, promo.ID, s.now()); err != nil {
			return err
		}

		acc.Balance += promo.Points
		acc.TotalEarnings += promo.Points
		if err := s.accountRepo.Update(ctx, acc); err != nil {
			return err
		}
		boost = promo.Points
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPromoNotFound) && !errors.Is(err, ErrPromoUsed) &&
			!errors.Is(err, ErrTasksIncomplete) && !errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't apply promo code", zap.Error(err))
		}
		return 0, err
	}

	zap.L().Info("promo code applied", zap.Int("account_id", accountID), zap.Int64("boost", boost))
	return boost, nil
}

func (s *Service) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		zap.L().Error("can't create task", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// CreateTasks inserts a batch of task definitions, fanning the inserts out
// over the worker pool.
func (s *Service) CreateTasks(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	created := make([]domain.Task, len(tasks))
	var mu sync.Mutex

	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				result, err := s.repo.CreateTask(ctx, &task)
				if err == nil {
					mu.Lock()
					created[i] = *result
					mu.Unlock()
				}
				done <- err
				return err
			})
			if err != nil {
				return err
			}
			return <-done
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("bulk task creation failed", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateTask(ctx context.Context, task *domain.Task) error {
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteTask(ctx context.Context, id int) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

// CreateDailyTask adds a catalog entry for one day of the streak cycle.
// Its reward always comes from the day schedule, not from the request.
func (s *Service) CreateDailyTask(ctx context.Context, task *domain.DailyTask) (*domain.DailyTask, error) {
	if task.DayNumber < 1 || task.DayNumber > 30 {
		return nil, ErrInvalidDayNumber
	}
	task.Points = points.DailyPoints(task.DayNumber)
	created, err := s.repo.CreateDailyTask(ctx, task)
	if err != nil {
		zap.L().Error("can't create daily task", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateDailyTask(ctx context.Context, task *domain.DailyTask) error {
	if task.DayNumber < 1 || task.DayNumber > 30 {
		return ErrInvalidDayNumber
	}
	task.Points = points.DailyPoints(task.DayNumber)
	if err := s.repo.UpdateDailyTask(ctx, task); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteDailyTask(ctx context.Context, id int) error {
	if err := s.repo.DeleteDailyTask(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListDailyTasks(ctx context.Context, page, limit int) ([]domain.DailyTask, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	tasks, err := s.repo.ListDailyTasks(ctx, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to list daily tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	if !validate.IsPromoCode(promo.Code) {
		return nil, ErrInvalidPromoCode
	}
	created, err := s.repo.CreatePromo(ctx, promo)
	if err != nil {
		zap.L().Error("can't create promo code", zap.Error(err))
		return nil, err
	}
	return created, nil
}
