package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repository uses; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, email, password_hash, is_admin, verified,
	COALESCE(refresh_token, ''), COALESCE(session_id, ''), created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE lower(email) = lower($1) LIMIT 1;`, accountColumns)
	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1 LIMIT 1;`, accountColumns)
	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetByRefreshToken(ctx context.Context, token string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE refresh_token = $1 LIMIT 1;`, accountColumns)
	return r.scanAccount(r.db.QueryRow(ctx, query, token))
}

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.IsAdmin,
		&account.Verified, &account.RefreshToken, &account.SessionID,
		&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	return &account, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, is_admin, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, account.ID, account.Email, account.PasswordHash, account.IsAdmin,
		account.Verified, account.CreatedAt, account.UpdatedAt)

	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts ORDER BY created_at;`, accountColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsAdmin, &a.Verified,
			&a.RefreshToken, &a.SessionID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *PostgresRepository) SetSession(ctx context.Context, accountID, refreshToken, sessionID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET refresh_token = $2, session_id = $3, updated_at = now()
		WHERE id = $1
	`, accountID, refreshToken, sessionID)

	return err
}

func (r *PostgresRepository) ClearSession(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET refresh_token = NULL, session_id = NULL, updated_at = now()
		WHERE id = $1
	`, accountID)

	return err
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, accountID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts SET password_hash = $2, updated_at = now()
		WHERE id = $1
	`, accountID, passwordHash)

	return err
}

func (r *PostgresRepository) AddBlacklistEntry(ctx context.Context, token string, expiresAt int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blacklisted_tokens (token, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`, token, expiresAt)

	return err
}

func (r *PostgresRepository) DeleteExpiredBlacklistEntries(ctx context.Context, now int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM blacklisted_tokens WHERE expires_at <= $1
	`, now)

	return err
}

func (r *PostgresRepository) BlacklistContains(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM blacklisted_tokens WHERE token = $1)
	`, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) CreateRecoveryToken(ctx context.Context, rt *domain.RecoveryToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO recovery_tokens (id, email, token_hash, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rt.ID, rt.Email, rt.TokenHash, rt.ExpiresAt, rt.Used, rt.CreatedAt)

	return err
}

func (r *PostgresRepository) GetActiveRecoveryTokens(ctx context.Context, email string, now time.Time) ([]domain.RecoveryToken, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, token_hash, expires_at, used, created_at
		FROM recovery_tokens
		WHERE lower(email) = lower($1) AND used = false AND expires_at > $2
	`, email, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load recovery tokens: %w", err)
	}
	defer rows.Close()

	var tokens []domain.RecoveryToken
	for rows.Next() {
		var rt domain.RecoveryToken
		if err := rows.Scan(&rt.ID, &rt.Email, &rt.TokenHash, &rt.ExpiresAt, &rt.Used, &rt.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, rt)
	}

	return tokens, rows.Err()
}

func (r *PostgresRepository) MarkRecoveryTokensUsed(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE recovery_tokens SET used = true WHERE lower(email) = lower($1)
	`, email)

	return err
}
