package domain

import "time"

type Account struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	Verified     bool
	RefreshToken string
	SessionID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BlacklistEntry shadows a revoked access token until its natural expiry.
// ExpiresAt is epoch milliseconds; keeping the entry past that point is
// pointless because the underlying token no longer verifies.
type BlacklistEntry struct {
	Token     string
	ExpiresAt int64
}

// RecoveryToken stores only the hash of an issued password-recovery token.
// Multiple rows per email may coexist until one is spent or they expire.
type RecoveryToken struct {
	ID        string
	Email     string
	TokenHash string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
