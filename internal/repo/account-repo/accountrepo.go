package accountrepo

import (
	"context"
	"errors"

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

const accountColumns = `id, telegram_id, username, role, role_expiry, balance, total_earnings,
	       is_earning, earning_started_at, last_claim_at, claim_streak, referred_by, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.TelegramID, &acc.Username, &acc.Role, &acc.RoleExpiry,
		&acc.Balance, &acc.TotalEarnings, &acc.IsEarning, &acc.EarningStartedAt,
		&acc.LastClaimAt, &acc.ClaimStreak, &acc.ReferredBy, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByTelegramID(ctx context.Context, telegramID string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE telegram_id = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, telegramID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account by telegram id", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE username = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account by username", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// GetForUpdate locks the account row for the duration of the surrounding
// transaction so concurrent balance mutations serialize.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (telegram_id, username, role, referred_by)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + accountColumns + `
    `
	created, err := scanAccount(r.db.QueryRow(ctx, query, acc.TelegramID, acc.Username, domain.RoleBase, acc.ReferredBy))
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, acc *domain.Account) error {
	query := `
        UPDATE accounts
        SET role = $1, role_expiry = $2, balance = $3, total_earnings = $4,
            is_earning = $5, earning_started_at = $6, last_claim_at = $7, claim_streak = $8
        WHERE id = $9
    `
	_, err := r.db.Exec(ctx, query,
		acc.Role, acc.RoleExpiry, acc.Balance, acc.TotalEarnings,
		acc.IsEarning, acc.EarningStartedAt, acc.LastClaimAt, acc.ClaimStreak, acc.ID,
	)
	if err != nil {
		zap.L().Error("failed to update account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindReferrals(ctx context.Context, id int) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE referred_by = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		referrals = append(referrals, *acc)
	}
	return referrals, rows.Err()
}

// Top returns accounts ranked by lifetime earnings. An empty role matches
// every tier.
func (r *Repository) Top(ctx context.Context, limit int, role domain.Role) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE ($2 = '' OR role = $2)
        ORDER BY total_earnings DESC, id
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit, string(role))
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}

func (r *Repository) Rank(ctx context.Context, id int) (int, error) {
	query := `
        SELECT COUNT(*) + 1
        FROM accounts
        WHERE total_earnings > (SELECT total_earnings FROM accounts WHERE id = $1)
    `
	var rank int
	if err := r.db.QueryRow(ctx, query, id).Scan(&rank); err != nil {
		zap.L().Error("failed to compute rank", zap.Error(err))
		return 0, err
	}
	return rank, nil
}
