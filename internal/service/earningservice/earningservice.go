package earningservice

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

var (
	ErrAlreadyEarning = errors.New("earning already started")
	ErrNothingToClaim = errors.New("nothing to claim")
	ErrInvalidAmount  = errors.New("amount must be non-negative")
)

// claimStreakWindow keeps the claim streak alive: a claim within this
// window of the previous one advances the streak, anything later resets it.
const claimStreakWindow = 25 * time.Hour

type Service struct {
	repo        accountservice.AccountRepo
	txManager   pg.TXManager
	ratePerHour int64

	now func() time.Time
}

func New(repo accountservice.AccountRepo, txManager pg.TXManager, ratePerHour int64) *Service {
	return &Service{
		repo:        repo,
		txManager:   txManager,
		ratePerHour: ratePerHour,
		now:         time.Now,
	}
}

// ComputeAccrued returns the points owed to the account at the given
// instant. It is a pure function of the account state: nothing accrues
// while idle, the base tier is capped at one hour's worth of the rate, and
// boosted tiers multiply the uncapped base. The result is floored.
func ComputeAccrued(acc *domain.Account, now time.Time, ratePerHour int64) int64 {
	if !acc.IsEarning || acc.EarningStartedAt == nil {
		return 0
	}
	elapsed := now.Sub(*acc.EarningStartedAt)
	if elapsed <= 0 {
		return 0
	}

	base := elapsed.Hours() * float64(ratePerHour)
	if acc.Role.Capped() && base > float64(ratePerHour) {
		base = float64(ratePerHour)
	}
	return int64(math.Floor(base * float64(acc.Role.Multiplier())))
}

// CheckRoleExpiry lazily reverts an expired time-limited role to the base
// tier. It reports whether the account changed; calling it again with the
// same instant is a no-op.
func CheckRoleExpiry(acc *domain.Account, now time.Time) bool {
	if acc.RoleExpiry == nil || acc.RoleExpiry.After(now) {
		return false
	}
	acc.Role = domain.RoleBase
	acc.RoleExpiry = nil
	return true
}

// StartEarning flips the account from idle to earning and records the
// start instant accrual is later integrated from.
func (s *Service) StartEarning(ctx context.Context, accountID int) (*domain.Account, error) {
	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.repo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}
		CheckRoleExpiry(acc, s.now())
		if acc.IsEarning {
			return ErrAlreadyEarning
		}

		startedAt := s.now()
		acc.IsEarning = true
		acc.EarningStartedAt = &startedAt
		if err := s.repo.Update(ctx, acc); err != nil {
			return err
		}
		account = acc
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyEarning) && !errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't start earning", zap.Error(err))
		}
		return nil, err
	}
	return account, nil
}

// Claim settles the accrued amount into the balance and returns the
// account to idle. The account row stays locked for the whole
// read-modify-write, so concurrent claims serialize and the loser of the
// race sees nothing left to claim.
func (s *Service) Claim(ctx context.Context, accountID int) (int64, *domain.Account, error) {
	var (
		claimed int64
		account *domain.Account
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.repo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}

		now := s.now()
		CheckRoleExpiry(acc, now)

		claimed = ComputeAccrued(acc, now, s.ratePerHour)
		if claimed <= 0 {
			return ErrNothingToClaim
		}

		acc.Balance += claimed
		acc.TotalEarnings += claimed
		if acc.LastClaimAt != nil && now.Sub(*acc.LastClaimAt) <= claimStreakWindow {
			acc.ClaimStreak++
		} else {
			acc.ClaimStreak = 1
		}
		acc.LastClaimAt = &now
		acc.IsEarning = false
		acc.EarningStartedAt = nil

		if err := s.repo.Update(ctx, acc); err != nil {
			return err
		}
		account = acc
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNothingToClaim) && !errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't claim earnings", zap.Error(err))
		}
		return 0, nil, err
	}

	zap.L().Info("earnings claimed", zap.Int("account_id", accountID), zap.Int64("amount", claimed))
	return claimed, account, nil
}

type Status struct {
	IsEarning        bool
	EarningStartedAt *time.Time
	Accrued          int64
	Role             domain.Role
	RatePerHour      int64
	ClaimStreak      int
	LastClaimAt      *time.Time
}

// Status reports the accrual state without mutating it. An expired role is
// still reported as base, matching what a claim at this instant would pay.
func (s *Service) Status(ctx context.Context, accountID int) (*Status, error) {
	acc, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, accountservice.ErrAccountNotFound
	}

	now := s.now()
	CheckRoleExpiry(acc, now)

	return &Status{
		IsEarning:        acc.IsEarning,
		EarningStartedAt: acc.EarningStartedAt,
		Accrued:          ComputeAccrued(acc, now, s.ratePerHour),
		Role:             acc.Role,
		RatePerHour:      s.ratePerHour,
		ClaimStreak:      acc.ClaimStreak,
		LastClaimAt:      acc.LastClaimAt,
	}, nil
}

// AddEarnings credits a direct amount (task rewards, referral bonuses) to
// both balance and lifetime earnings.
func (s *Service) AddEarnings(ctx context.Context, accountID int, amount int64) (*domain.Account, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	var account *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.repo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return accountservice.ErrAccountNotFound
		}
		acc.Balance += amount
		acc.TotalEarnings += amount
		if err := s.repo.Update(ctx, acc); err != nil {
			return err
		}
		account = acc
		return nil
	})
	if err != nil {
		if !errors.Is(err, accountservice.ErrAccountNotFound) {
			zap.L().Error("can't add earnings", zap.Error(err))
		}
		return nil, err
	}
	return account, nil
}
