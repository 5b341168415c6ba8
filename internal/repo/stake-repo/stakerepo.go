package stakerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/tonance/tonance/internal/domain"
	"github.com/tonance/tonance/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const stakeColumns = `id, account_id, amount, period_days, interest_rate, status, started_at, matures_at`

func scanStake(row pgx.Row) (*domain.Stake, error) {
	var stake domain.Stake
	err := row.Scan(
		&stake.ID, &stake.AccountID, &stake.Amount, &stake.PeriodDays,
		&stake.InterestRate, &stake.Status, &stake.StartedAt, &stake.MaturesAt,
	)
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

func (r *Repository) Create(ctx context.Context, stake *domain.Stake) (*domain.Stake, error) {
	query := `
        INSERT INTO stakes (account_id, amount, period_days, interest_rate, status, started_at, matures_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		stake.AccountID, stake.Amount, stake.PeriodDays, stake.InterestRate,
		stake.Status, stake.StartedAt, stake.MaturesAt,
	).Scan(&stake.ID)
	if err != nil {
		zap.L().Error("failed to create stake", zap.Error(err))
		return nil, err
	}
	return stake, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Stake, error) {
	query := `
        SELECT ` + stakeColumns + `
        FROM stakes
        WHERE id = $1
    `
	stake, err := scanStake(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get stake", zap.Error(err))
		return nil, err
	}
	return stake, nil
}

// GetForUpdate locks the stake row inside the surrounding transaction so a
// claim racing an unstake serializes.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Stake, error) {
	query := `
        SELECT ` + stakeColumns + `
        FROM stakes
        WHERE id = $1
        FOR UPDATE
    `
	stake, err := scanStake(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock stake", zap.Error(err))
		return nil, err
	}
	return stake, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE stakes
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update stake status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindActive(ctx context.Context, accountID int) ([]domain.Stake, error) {
	query := `
        SELECT ` + stakeColumns + `
        FROM stakes
        WHERE account_id = $1 AND status = $2
        ORDER BY matures_at
    `
	return r.findMany(ctx, query, accountID, domain.StakeActive)
}

// FindClaimable returns active stakes that have already matured.
func (r *Repository) FindClaimable(ctx context.Context, accountID int, now time.Time) ([]domain.Stake, error) {
	query := `
        SELECT ` + stakeColumns + `
        FROM stakes
        WHERE account_id = $1 AND status = $2 AND matures_at <= $3
        ORDER BY matures_at
    `
	return r.findMany(ctx, query, accountID, domain.StakeActive, now)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Stake, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch stakes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stakes []domain.Stake
	for rows.Next() {
		stake, err := scanStake(rows)
		if err != nil {
			return nil, err
		}
		stakes = append(stakes, *stake)
	}
	return stakes, rows.Err()
}
