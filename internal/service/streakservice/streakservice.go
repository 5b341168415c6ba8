package streakservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/service/accountservice"
	"github.com/tonance/tonance/pkg/daytime"
	"github.com/tonance/tonance/pkg/points"
)

//go:generate mockgen -source=streakservice.go -destination=mock_streakservice.go -package=streakservice

type StreakRepo interface {
	FindByTelegramID(ctx context.Context, telegramID string) (*domain.StreakRecord, error)
	Save(ctx context.Context, streak *domain.StreakRecord) (*domain.StreakRecord, error)
	HasCompletionBetween(ctx context.Context, accountID int, from, to time.Time) (bool, error)
	CreateCompletion(ctx context.Context, completion *domain.DailyCompletion) (*domain.DailyCompletion, error)
	FindCompletions(ctx context.Context, accountID, limit, offset int) ([]domain.DailyCompletion, error)
	CountCompletions(ctx context.Context, accountID int) (int, error)
}

type DailyTaskRepo interface {
	FindDailyTaskByID(ctx context.Context, id int) (*domain.DailyTask, error)
}

var (
	ErrAlreadyCompletedToday = errors.New("daily task already completed today")
	ErrTaskNotFound          = errors.New("daily task not found")
)

type Service struct {
	streakRepo  StreakRepo
	taskRepo    DailyTaskRepo
	accountRepo accountservice.AccountRepo
	txManager   pg.TXManager

	now func() time.Time
}

func New(streakRepo StreakRepo, taskRepo DailyTaskRepo, accountRepo accountservice.AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		streakRepo:  streakRepo,
		taskRepo:    taskRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

type CompletionResult struct {
	StreakDay     int
	Points        int64
	TotalBalance  int64
	HighestStreak int
}

// CompleteDailyTask advances the user's streak and credits the day's
// reward. Completion record, streak update and balance credit apply in
// one transaction; the per-day uniqueness check makes a retry after a
// partial failure harmless.
func (s *Service) CompleteDailyTask(ctx context.Context, accountID, taskID int) (*CompletionResult, error) {
	var result *CompletionResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}

		task, err := s.taskRepo.FindDailyTaskByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task == nil || !task.IsActive {
			return ErrTaskNotFound
		}

		now := s.now()
		done, err := s.streakRepo.HasCompletionBetween(ctx, acc.ID, daytime.StartOfDay(now), daytime.EndOfDay(now))
		if err != nil {
			return err
		}
		if done {
			return ErrAlreadyCompletedToday
		}

		streak, err := s.streakRepo.FindByTelegramID(ctx, acc.TelegramID)
		if err != nil {
			return err
		}
		if streak == nil {
			streak = &domain.StreakRecord{TelegramID: acc.TelegramID}
		}

		switch {
		case streak.LastCheckIn == nil:
			streak.CurrentStreak = 1
		case daytime.ConsecutiveDays(*streak.LastCheckIn, now):
			streak.CurrentStreak++
		default:
			// Streak broken, restart at day one. A same-day repeat is
			// already rejected above.
			streak.CurrentStreak = 1
		}
		if streak.CurrentStreak > streak.HighestStreak {
			streak.HighestStreak = streak.CurrentStreak
		}
		streak.LastCheckIn = &now

		awarded := points.DailyPoints(streak.CurrentStreak)

		if _, err := s.streakRepo.CreateCompletion(ctx, &domain.DailyCompletion{
			AccountID:   acc.ID,
			DailyTaskID: task.ID,
			StreakDay:   streak.CurrentStreak,
			Points:      awarded,
			CompletedAt: now,
		}); err != nil {
			return err
		}
		if _, err := s.streakRepo.Save(ctx, streak); err != nil {
			return err
		}

		acc.Balance += awarded
		acc.TotalEarnings += awarded
		if err := s.accountRepo.Update(ctx, acc); err != nil {
			return err
		}

		result = &CompletionResult{
			StreakDay:     streak.CurrentStreak,
			Points:        awarded,
			TotalBalance:  acc.Balance,
			HighestStreak: streak.HighestStreak,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyCompletedToday) && !errors.Is(err, ErrTaskNotFound) &&
			!errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't complete daily task", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("daily task completed",
		zap.Int("account_id", accountID),
		zap.Int("streak_day", result.StreakDay),
		zap.Int64("points", result.Points))
	return result, nil
}

type StreakStatus struct {
	CurrentStreak  int
	HighestStreak  int
	LastCheckIn    *time.Time
	IsActive       bool
	NextPoints     int64
	NextMilestone  int
	DaysUntilBonus int
	BonusLabel     string
}

// GetStreakStatus reports the streak and what the next completion would
// pay. The streak counts as active when the last check-in was exactly one
// calendar day ago.
func (s *Service) GetStreakStatus(ctx context.Context, accountID int) (*StreakStatus, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, accountservice.ErrAccountNotFound
	}

	streak, err := s.streakRepo.FindByTelegramID(ctx, acc.TelegramID)
	if err != nil {
		zap.L().Error("failed to get streak", zap.Error(err))
		return nil, err
	}
	if streak == nil {
		streak = &domain.StreakRecord{TelegramID: acc.TelegramID}
	}

	now := s.now()
	isActive := streak.LastCheckIn != nil && daytime.ConsecutiveDays(*streak.LastCheckIn, now)

	nextDay := 1
	if isActive {
		nextDay = streak.CurrentStreak + 1
	}
	milestone, daysUntil := points.NextMilestone(streak.CurrentStreak)
	_, label := points.StreakBonus(streak.CurrentStreak)

	return &StreakStatus{
		CurrentStreak:  streak.CurrentStreak,
		HighestStreak:  streak.HighestStreak,
		LastCheckIn:    streak.LastCheckIn,
		IsActive:       isActive,
		NextPoints:     points.DailyPoints(nextDay),
		NextMilestone:  milestone,
		DaysUntilBonus: daysUntil,
		BonusLabel:     label,
	}, nil
}

type CompletionHistory struct {
	Completions []domain.DailyCompletion
	Total       int
	Page        int
	Limit       int
}

func (s *Service) GetCompletionHistory(ctx context.Context, accountID, page, limit int) (*CompletionHistory, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	completions, err := s.streakRepo.FindCompletions(ctx, accountID, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to fetch completion history", zap.Error(err))
		return nil, err
	}
	total, err := s.streakRepo.CountCompletions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &CompletionHistory{
		Completions: completions,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}, nil
}
