package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_repository.go -package=mocks

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByRefreshToken(ctx context.Context, token string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	List(ctx context.Context) ([]Account, error)

	// SetSession overwrites the account's refresh token and session id,
	// closing whatever session was live before.
	SetSession(ctx context.Context, accountID, refreshToken, sessionID string) error
	ClearSession(ctx context.Context, accountID string) error

	UpdatePasswordHash(ctx context.Context, accountID, passwordHash string) error
}

type BlacklistRepository interface {
	AddBlacklistEntry(ctx context.Context, token string, expiresAt int64) error
	DeleteExpiredBlacklistEntries(ctx context.Context, now int64) error
	BlacklistContains(ctx context.Context, token string) (bool, error)
}

type RecoveryTokenRepository interface {
	CreateRecoveryToken(ctx context.Context, rt *RecoveryToken) error
	// GetActiveRecoveryTokens returns unused rows whose expiry is after now.
	GetActiveRecoveryTokens(ctx context.Context, email string, now time.Time) ([]RecoveryToken, error)
	MarkRecoveryTokensUsed(ctx context.Context, email string) error
}
