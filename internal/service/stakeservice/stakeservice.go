package stakeservice

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/service/accountservice"
)

//go:generate mockgen -source=stakeservice.go -destination=mock_stakeservice.go -package=stakeservice

type StakeRepo interface {
	Create(ctx context.Context, stake *domain.Stake) (*domain.Stake, error)
	FindByID(ctx context.Context, id int) (*domain.Stake, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Stake, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	FindActive(ctx context.Context, accountID int) ([]domain.Stake, error)
	FindClaimable(ctx context.Context, accountID int, now time.Time) ([]domain.Stake, error)
}

// periodRates maps a staking period in days to its flat interest rate.
var periodRates = map[int]float64{
	3:  0.03,
	15: 0.10,
	45: 0.35,
}

var (
	ErrInvalidAmount       = errors.New("stake amount must be positive")
	ErrInvalidPeriod       = errors.New("invalid staking period")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrStakeNotFound       = errors.New("stake not found")
	ErrStakeNotActive      = errors.New("stake is not active")
	ErrStakeNotMatured     = errors.New("stake has not matured yet")
)

type Service struct {
	stakeRepo   StakeRepo
	accountRepo accountservice.AccountRepo
	txManager   pg.TXManager

	now func() time.Time
}

func New(stakeRepo StakeRepo, accountRepo accountservice.AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		stakeRepo:   stakeRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

// Interest returns the flat payout a stake earns at maturity, floored.
func Interest(amount int64, rate float64) int64 {
	return int64(math.Floor(float64(amount) * rate))
}

// CreateStake escrows amount from the balance into a fixed-term stake.
// Staked funds stop counting toward role-based accrual until paid out.
func (s *Service) CreateStake(ctx context.Context, accountID int, amount int64, periodDays int) (*domain.Stake, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	rate, ok := periodRates[periodDays]
	if !ok {
		return nil, ErrInvalidPeriod
	}

	var stake *domain.Stake
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}
		if acc.Balance < amount {
			return ErrInsufficientBalance
		}

		acc.Balance -= amount
		if err := s.accountRepo.Update(ctx, acc); err != nil {
			return err
		}

		now := s.now()
		stake, err = s.stakeRepo.Create(ctx, &domain.Stake{
			AccountID:    accountID,
			Amount:       amount,
			PeriodDays:   periodDays,
			InterestRate: rate,
			Status:       domain.StakeActive,
			StartedAt:    now,
			MaturesAt:    now.Add(time.Duration(periodDays) * 24 * time.Hour),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't create stake", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("stake created",
		zap.Int("account_id", accountID),
		zap.Int64("amount", amount),
		zap.Int("period_days", periodDays))
	return stake, nil
}

type Payout struct {
	Principal int64
	Interest  int64
	Total     int64
}

// ClaimStake pays out a matured stake: principal plus flat interest. The
// stake becomes terminal and cannot be touched again.
func (s *Service) ClaimStake(ctx context.Context, accountID, stakeID int) (*Payout, error) {
	var payout *Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		stake, err := s.lockOwnedStake(ctx, accountID, stakeID)
		if err != nil {
			return err
		}
		if s.now().Before(stake.MaturesAt) {
			return ErrStakeNotMatured
		}

		payout = &Payout{
			Principal: stake.Amount,
			Interest:  Interest(stake.Amount, stake.InterestRate),
		}
		payout.Total = payout.Principal + payout.Interest

		if err := s.creditAccount(ctx, accountID, payout.Total, payout.Interest); err != nil {
			return err
		}
		return s.stakeRepo.UpdateStatus(ctx, stake.ID, domain.StakeClaimed)
	})
	if err != nil {
		if !isExpectedStakeErr(err) {
			zap.L().Error("can't claim stake", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("stake claimed", zap.Int("stake_id", stakeID), zap.Int64("total", payout.Total))
	return payout, nil
}

// Unstake withdraws early: the principal comes back but interest is
// forfeited unless the stake already matured.
func (s *Service) Unstake(ctx context.Context, accountID, stakeID int) (*Payout, error) {
	var payout *Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		stake, err := s.lockOwnedStake(ctx, accountID, stakeID)
		if err != nil {
			return err
		}

		payout = &Payout{Principal: stake.Amount}
		if !s.now().Before(stake.MaturesAt) {
			payout.Interest = Interest(stake.Amount, stake.InterestRate)
		}
		payout.Total = payout.Principal + payout.Interest

		if err := s.creditAccount(ctx, accountID, payout.Total, payout.Interest); err != nil {
			return err
		}
		return s.stakeRepo.UpdateStatus(ctx, stake.ID, domain.StakeUnstaked)
	})
	if err != nil {
		if !isExpectedStakeErr(err) {
			zap.L().Error("can't unstake", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("stake withdrawn", zap.Int("stake_id", stakeID), zap.Int64("total", payout.Total))
	return payout, nil
}

func (s *Service) GetActiveStakes(ctx context.Context, accountID int) ([]domain.Stake, error) {
	stakes, err := s.stakeRepo.FindActive(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch active stakes", zap.Error(err))
		return nil, err
	}
	return stakes, nil
}

func (s *Service) GetClaimableStakes(ctx context.Context, accountID int) ([]domain.Stake, error) {
	stakes, err := s.stakeRepo.FindClaimable(ctx, accountID, s.now())
	if err != nil {
		zap.L().Error("failed to fetch claimable stakes", zap.Error(err))
		return nil, err
	}
	return stakes, nil
}

func (s *Service) lockOwnedStake(ctx context.Context, accountID, stakeID int) (*domain.Stake, error) {
	stake, err := s.stakeRepo.GetForUpdate(ctx, stakeID)
	if err != nil {
		return nil, err
	}
	if stake == nil || stake.AccountID != accountID {
		return nil, ErrStakeNotFound
	}
	if stake.Status != domain.StakeActive {
		return nil, ErrStakeNotActive
	}
	return stake, nil
}

// creditAccount returns total to the spendable balance; only earned (the
// interest part) counts toward lifetime earnings, the principal was
// already counted when first accrued.
func (s *Service) creditAccount(ctx context.Context, accountID int, total, earned int64) error {
	acc, err := s.accountRepo.GetForUpdate(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return accountservice.ErrAccountNotFound
	}
	acc.Balance += total
	acc.TotalEarnings += earned
	return s.accountRepo.Update(ctx, acc)
}

func isExpectedStakeErr(err error) bool {
	return errors.Is(err, ErrStakeNotFound) ||
		errors.Is(err, ErrStakeNotActive) ||
		errors.Is(err, ErrStakeNotMatured) ||
		errors.Is(err, accountservice.ErrAccountNotFound)
}
