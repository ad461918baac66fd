package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RecoveryService manages single-use, hashed, time-boxed password-recovery
// tokens. Only the hash is ever persisted; the plaintext token exists solely
// in the emailed link.
type RecoveryService struct {
	repo   domain.RecoveryTokenRepository
	tokens TokenGenerator
	expiry time.Duration
}

func NewRecoveryService(repo domain.RecoveryTokenRepository, tokens TokenGenerator, recoveryMinutes int) *RecoveryService {
	return &RecoveryService{
		repo:   repo,
		tokens: tokens,
		expiry: time.Duration(recoveryMinutes) * time.Minute,
	}
}

// Issue mints a signed recovery token for the email, persists its hash and
// returns the plaintext. Outstanding tokens for the same email are left
// untouched; a reset spends them all at once via MarkUsed.
func (s *RecoveryService) Issue(ctx context.Context, email string) (string, error) {
	plaintext, err := s.tokens.IssueRecovery(email)
	if err != nil {
		return "", err
	}

	hash, err := hashRecoveryToken(plaintext)
	if err != nil {
		return "", err
	}

	rt := &domain.RecoveryToken{
		ID:        uuid.NewString(),
		Email:     email,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.expiry),
		Used:      false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateRecoveryToken(ctx, rt); err != nil {
		return "", err
	}

	return plaintext, nil
}

// Verify compares the candidate against every outstanding hash for the email
// concurrently and reports whether any matched. Comparison failures on
// individual candidates count as non-matches so the response never
// distinguishes "no matching token" from "comparison failed".
func (s *RecoveryService) Verify(ctx context.Context, email, candidate string) (bool, error) {
	rows, err := s.repo.GetActiveRecoveryTokens(ctx, email, time.Now())
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}

	digest := recoveryDigest(candidate)
	results := make(chan bool, len(rows))
	for _, row := range rows {
		go func(hash string) {
			results <- bcrypt.CompareHashAndPassword([]byte(hash), digest) == nil
		}(row.TokenHash)
	}

	matched := false
	for range rows {
		if <-results {
			matched = true
		}
	}

	return matched, nil
}

// MarkUsed spends every outstanding token for the email, so no sibling token
// survives a successful reset as a replay vector.
func (s *RecoveryService) MarkUsed(ctx context.Context, email string) error {
	return s.repo.MarkRecoveryTokensUsed(ctx, email)
}

// bcrypt only reads the first 72 bytes of its input and signed tokens share a
// long common prefix, so tokens are digested before hashing.
func recoveryDigest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(hex.EncodeToString(sum[:]))
}

func hashRecoveryToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(recoveryDigest(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
