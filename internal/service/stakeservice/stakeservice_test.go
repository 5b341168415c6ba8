package stakeservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
	"github.com/tonance/tonance/internal/service/accountservice"
)

func NewMock(t *testing.T) (*Service, *MockStakeRepo, *accountservice.MockAccountRepo) {
	ctrl := gomock.NewController(t)
	stakeRepo := NewMockStakeRepo(ctrl)
	accountRepo := accountservice.NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(stakeRepo, accountRepo, txManager)
	defer ctrl.Finish()
	return service, stakeRepo, accountRepo
}

func TestInterest(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		rate     float64
		expected int64
	}{
		{"three day stake", 1000, 0.03, 30},
		{"fifteen day stake", 1000, 0.10, 100},
		{"forty five day stake", 1000, 0.35, 350},
		{"fractional interest floors", 99, 0.03, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Interest(tt.amount, tt.rate))
		})
	}
}

func TestCreateStake(t *testing.T) {
	service, stakeRepo, accountRepo := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	tests := []struct {
		name          string
		amount        int64
		periodDays    int
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "escrows the amount into a new stake",
			amount:     1000,
			periodDays: 15,
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1, Balance: 5000}, nil)
				accountRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, acc *domain.Account) error {
						assert.Equal(t, int64(4000), acc.Balance)
						return nil
					})
				stakeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, st *domain.Stake) (*domain.Stake, error) {
						assert.Equal(t, domain.StakeActive, st.Status)
						assert.Equal(t, 0.10, st.InterestRate)
						assert.Equal(t, now.Add(15*24*time.Hour), st.MaturesAt)
						st.ID = 7
						return st, nil
					})
			},
		},
		{
			name:          "rejects a non-positive amount",
			amount:        0,
			periodDays:    15,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "rejects an unknown period",
			amount:        1000,
			periodDays:    10,
			expectedError: ErrInvalidPeriod,
		},
		{
			name:       "rejects a stake above the balance",
			amount:     1000,
			periodDays: 3,
			prepareMock: func() {
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1, Balance: 500}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			stake, err := service.CreateStake(context.Background(), 1, tt.amount, tt.periodDays)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 7, stake.ID)
		})
	}
}

func TestClaimStake(t *testing.T) {
	service, stakeRepo, accountRepo := NewMock(t)
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	matured := func() *domain.Stake {
		return &domain.Stake{
			ID: 7, AccountID: 1, Amount: 1000, PeriodDays: 15, InterestRate: 0.10,
			Status: domain.StakeActive, MaturesAt: now.Add(-time.Hour),
		}
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedPayout *Payout
		expectedError  error
	}{
		{
			name: "pays principal plus interest at maturity",
			prepareMock: func() {
				stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(matured(), nil)
				accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1, Balance: 0, TotalEarnings: 1000}, nil)
				accountRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, acc *domain.Account) error {
						assert.Equal(t, int64(1100), acc.Balance)
						// Only the interest is newly earned, the principal
						// was counted when it was first accrued.
						assert.Equal(t, int64(1100), acc.TotalEarnings)
						return nil
					})
				stakeRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.StakeClaimed).Return(nil)
			},
			expectedPayout: &Payout{Principal: 1000, Interest: 100, Total: 1100},
		},
		{
			name: "rejects a claim before maturity",
			prepareMock: func() {
				st := matured()
				st.MaturesAt = now.Add(time.Hour)
				stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(st, nil)
			},
			expectedError: ErrStakeNotMatured,
		},
		{
			name: "rejects a second claim",
			prepareMock: func() {
				st := matured()
				st.Status = domain.StakeClaimed
				stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(st, nil)
			},
			expectedError: ErrStakeNotActive,
		},
		{
			name: "hides other accounts' stakes",
			prepareMock: func() {
				st := matured()
				st.AccountID = 99
				stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(st, nil)
			},
			expectedError: ErrStakeNotFound,
		},
		{
			name: "unknown stake",
			prepareMock: func() {
				stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrStakeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payout, err := service.ClaimStake(context.Background(), 1, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPayout, payout)
		})
	}
}

func TestUnstake(t *testing.T) {
	service, stakeRepo, accountRepo := NewMock(t)
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	stake := func(maturesAt time.Time) *domain.Stake {
		return &domain.Stake{
			ID: 7, AccountID: 1, Amount: 1000, PeriodDays: 45, InterestRate: 0.35,
			Status: domain.StakeActive, MaturesAt: maturesAt,
		}
	}

	t.Run("early exit forfeits interest", func(t *testing.T) {
		stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(stake(now.Add(time.Hour)), nil)
		accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
		accountRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, acc *domain.Account) error {
				assert.Equal(t, int64(1000), acc.Balance)
				assert.Equal(t, int64(0), acc.TotalEarnings)
				return nil
			})
		stakeRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.StakeUnstaked).Return(nil)

		payout, err := service.Unstake(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, &Payout{Principal: 1000, Interest: 0, Total: 1000}, payout)
	})

	t.Run("unstake after maturity still pays interest", func(t *testing.T) {
		stakeRepo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(stake(now.Add(-time.Hour)), nil)
		accountRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(&domain.Account{ID: 1}, nil)
		accountRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		stakeRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.StakeUnstaked).Return(nil)

		payout, err := service.Unstake(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, &Payout{Principal: 1000, Interest: 350, Total: 1350}, payout)
	})
}

func TestGetStakes(t *testing.T) {
	service, stakeRepo, _ := NewMock(t)
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	active := []domain.Stake{{ID: 1, Status: domain.StakeActive}}
	stakeRepo.EXPECT().FindActive(gomock.Any(), 1).Return(active, nil)
	stakes, err := service.GetActiveStakes(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, active, stakes)

	stakeRepo.EXPECT().FindClaimable(gomock.Any(), 1, now).Return(active, nil)
	stakes, err = service.GetClaimableStakes(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, active, stakes)
}
