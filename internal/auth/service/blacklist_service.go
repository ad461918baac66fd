package service

//go:generate mockgen -destination=../../mocks/mock_revoker.go -package=mocks github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service TokenRevoker

import (
	"context"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/domain"
)

type TokenRevoker interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// BlacklistService invalidates still-valid access tokens ahead of their
// natural expiry. There is no background sweep: every membership check purges
// expired rows first, so the table stays bounded by recent logout volume.
type BlacklistService struct {
	repo domain.BlacklistRepository
}

func NewBlacklistService(repo domain.BlacklistRepository) *BlacklistService {
	return &BlacklistService{repo: repo}
}

// Add stores the token until now+ttl. Adding the same token twice is harmless.
func (s *BlacklistService) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.repo.AddBlacklistEntry(ctx, token, time.Now().Add(ttl).UnixMilli())
}

func (s *BlacklistService) PurgeExpired(ctx context.Context) error {
	return s.repo.DeleteExpiredBlacklistEntries(ctx, time.Now().UnixMilli())
}

// IsRevoked purges before checking. A stale row can only produce a false
// positive for a token that is unverifiable anyway, so purging first keeps
// the answer exact without a scheduler.
func (s *BlacklistService) IsRevoked(ctx context.Context, token string) (bool, error) {
	if err := s.PurgeExpired(ctx); err != nil {
		return false, err
	}
	return s.repo.BlacklistContains(ctx, token)
}
