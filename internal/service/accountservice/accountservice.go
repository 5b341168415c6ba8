package accountservice

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/pkg/auth"
)

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

// AccountRepo is the canonical account storage interface; other services
// share it for balance credits inside their own transactions.
type AccountRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	FindByTelegramID(ctx context.Context, telegramID string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, acc *domain.Account) error
	FindReferrals(ctx context.Context, id int) ([]domain.Account, error)
	Top(ctx context.Context, limit int, role domain.Role) ([]domain.Account, error)
	Rank(ctx context.Context, id int) (int, error)
}

const (
	// SignupBonus is credited to every new account.
	SignupBonus int64 = 30000
	// DirectReferralBonus is the flat credit to the direct referrer.
	DirectReferralBonus int64 = 15000
	// referralBase is the amount the per-level rates are applied to.
	referralBase int64 = 30000
)

// referralLevelRates apply starting from the direct referrer and walking
// up the chain, one rate per ancestor level.
var referralLevelRates = []float64{0.20, 0.10, 0.05, 0.025, 0.0125}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrInvalidReferrer = errors.New("invalid referral code")
	ErrInvalidRole     = errors.New("invalid role")
)

type Service struct {
	repo       AccountRepo
	txManager  pg.TXManager
	jwtService auth.JWTServiceInterface

	now func() time.Time
}

func New(repo AccountRepo, txManager pg.TXManager, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:       repo,
		txManager:  txManager,
		jwtService: jwtService,
		now:        time.Now,
	}
}

// Register creates an account, pays the signup bonus and distributes
// referral bonuses up the referrer chain. The whole fan-out applies in a
// single transaction.
func (s *Service) Register(ctx context.Context, telegramID, username, referralCode string) (*domain.Account, []domain.ReferralBonus, error) {
	var (
		account *domain.Account
		bonuses []domain.ReferralBonus
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByTelegramID(ctx, telegramID)
		if err != nil {
			return err
		}
		if existing == nil {
			existing, err = s.repo.FindByUsername(ctx, username)
			if err != nil {
				return err
			}
		}
		if existing != nil {
			zap.L().Info("account already exists", zap.String("telegram_id", telegramID))
			return ErrAccountExists
		}

		var referrer *domain.Account
		if referralCode != "" {
			referrer, err = s.repo.FindByUsername(ctx, referralCode)
			if err != nil {
				return err
			}
			if referrer == nil {
				return ErrInvalidReferrer
			}
		}

		newAcc := &domain.Account{
			TelegramID: telegramID,
			Username:   username,
		}
		if referrer != nil {
			newAcc.ReferredBy = &referrer.ID
		}
		account, err = s.repo.Create(ctx, newAcc)
		if err != nil {
			return err
		}

		account.Balance += SignupBonus
		account.TotalEarnings += SignupBonus
		if err := s.repo.Update(ctx, account); err != nil {
			return err
		}

		if referrer != nil {
			bonuses, err = s.payReferralBonuses(ctx, referrer)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAccountExists) && !errors.Is(err, ErrInvalidReferrer) {
			zap.L().Error("can't register account", zap.Error(err))
		}
		return nil, nil, err
	}

	zap.L().Info("account registered", zap.String("username", username))
	return account, bonuses, nil
}

// payReferralBonuses credits the direct referrer flat bonus and then walks
// up to five ancestor levels, applying the decreasing level rates. The
// walk stops at the first account without a referrer.
func (s *Service) payReferralBonuses(ctx context.Context, referrer *domain.Account) ([]domain.ReferralBonus, error) {
	var bonuses []domain.ReferralBonus

	credit := func(acc *domain.Account, level int, amount int64) error {
		locked, err := s.repo.GetForUpdate(ctx, acc.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrAccountNotFound
		}
		locked.Balance += amount
		locked.TotalEarnings += amount
		if err := s.repo.Update(ctx, locked); err != nil {
			return err
		}
		bonuses = append(bonuses, domain.ReferralBonus{AccountID: acc.ID, Level: level, Amount: amount})
		return nil
	}

	if err := credit(referrer, 0, DirectReferralBonus); err != nil {
		return nil, err
	}

	current := referrer
	for level, rate := range referralLevelRates {
		if current == nil {
			break
		}
		amount := int64(math.Floor(float64(referralBase) * rate))
		if err := credit(current, level+1, amount); err != nil {
			return nil, err
		}
		if current.ReferredBy == nil {
			break
		}
		next, err := s.repo.FindByID(ctx, *current.ReferredBy)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return bonuses, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) GetByTelegramID(ctx context.Context, telegramID string) (*domain.Account, error) {
	acc, err := s.repo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		zap.L().Error("failed to get account by telegram id", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) GetReferrals(ctx context.Context, id int) ([]domain.Account, error) {
	referrals, err := s.repo.FindReferrals(ctx, id)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

// SetRole assigns a multiplier tier. durationDays == 0 makes the role
// permanent; otherwise it reverts to the base tier after the window.
func (s *Service) SetRole(ctx context.Context, accountID int, role domain.Role, durationDays int) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.repo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		acc.Role = role
		acc.RoleExpiry = nil
		if durationDays > 0 {
			expiry := s.now().Add(time.Duration(durationDays) * 24 * time.Hour)
			acc.RoleExpiry = &expiry
		}
		return s.repo.Update(ctx, acc)
	})
}

func (s *Service) GenerateToken(accountID int) (string, error) {
	expirationTime := s.now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(accountID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int, role domain.Role) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 10
	}
	accounts, err := s.repo.Top(ctx, limit, role)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) Rank(ctx context.Context, accountID int) (int, error) {
	acc, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if acc == nil {
		return 0, ErrAccountNotFound
	}
	rank, err := s.repo.Rank(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to compute rank", zap.Error(err))
		return 0, err
	}
	return rank, nil
}
