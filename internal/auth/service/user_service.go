package service

import (
	"context"
	"strings"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/domain"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/dto"
	autherror "github.com/JuanPUwu/RecordBlock-sub001/internal/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionChecker is the liveness predicate the auth middleware consults when
// access-token claims carry a session id.
type SessionChecker interface {
	IsSessionLive(ctx context.Context, accountID, sessionID string) bool
}

// UserService is the auth orchestrator: the only component that touches the
// account row directly. It composes the token codec, the blacklist, the
// recovery flow and the notifier into login/logout/refresh/forgot/reset.
type UserService struct {
	repo       domain.AccountRepository
	tokens     TokenGenerator
	blacklist  TokenRevoker
	recovery   *RecoveryService
	notifier   Notifier
	appBaseURL string
	log        *zap.Logger
}

func NewUserService(repo domain.AccountRepository, tokens TokenGenerator, blacklist TokenRevoker,
	recovery *RecoveryService, notifier Notifier, appBaseURL string, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{
		repo:       repo,
		tokens:     tokens,
		blacklist:  blacklist,
		recovery:   recovery,
		notifier:   notifier,
		appBaseURL: appBaseURL,
		log:        log,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	if !domain.ValidPassword(input.Password) {
		return nil, autherror.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      false,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.notify(account.Email, "Verify your account",
		"Your account was created. An administrator will verify it shortly.")

	return account, nil
}

// Login issues a fresh access+refresh pair and overwrites the stored session,
// so a login on a second device closes the first device's session.
func (s *UserService) Login(ctx context.Context, email, password string) (*dto.AuthResult, error) {
	account, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrInvalidCredentials
	}
	if !account.Verified {
		return nil, autherror.ErrAccountNotVerified
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()

	return s.issueSession(ctx, account, sessionID)
}

// Refresh rotates on use: the presented refresh token is consumed and a new
// pair is stored, so a stolen refresh token is worth at most one use. The
// session id is carried forward so access tokens issued before the rotation
// stay valid until natural expiry.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResult, error) {
	account, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	return s.issueSession(ctx, account, claims.SessionID)
}

func (s *UserService) issueSession(ctx context.Context, account *domain.Account, sessionID string) (*dto.AuthResult, error) {
	accessToken, err := s.tokens.IssueAccess(account.ID, account.IsAdmin, sessionID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefresh(account.ID, account.IsAdmin, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetSession(ctx, account.ID, refreshToken, sessionID); err != nil {
		return nil, err
	}

	return &dto.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile: dto.PublicProfile{
			ID:      account.ID,
			Email:   account.Email,
			IsAdmin: account.IsAdmin,
		},
	}, nil
}

// Logout clears the stored session matching the refresh cookie. When the
// caller also presents its access token, the token is blacklisted for the
// rest of its natural life; that step is best-effort and never blocks logout.
func (s *UserService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	account, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if account != nil {
		if err := s.repo.ClearSession(ctx, account.ID); err != nil {
			return err
		}
	}

	if accessToken != "" {
		if claims, err := s.tokens.VerifyAccess(accessToken); err == nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := s.blacklist.Add(ctx, accessToken, ttl); err != nil {
				s.log.Warn("failed to blacklist access token on logout", zap.Error(err))
			}
		}
	}

	return nil
}

// IsSessionLive reports whether the account's stored session still matches
// the given session id.
func (s *UserService) IsSessionLive(ctx context.Context, accountID, sessionID string) bool {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil || account == nil {
		return false
	}
	return account.RefreshToken != "" && account.SessionID == sessionID
}

// ForgotPassword mints a recovery token and mails the reset link. The
// plaintext token goes to the notifier only; the store sees its hash.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}
	if !account.Verified {
		return autherror.ErrAccountNotVerified
	}

	token, err := s.recovery.Issue(ctx, account.Email)
	if err != nil {
		return err
	}

	s.notify(account.Email, "Password reset",
		"Use the link below to reset your password. It expires shortly.\r\n\r\n"+
			s.appBaseURL+"/reset-password/"+token)

	return nil
}

// ResetPassword spends the recovery token: decode the signed envelope to
// recover the email, enforce the password policy, verify the candidate
// against every outstanding hash, then persist the new hash and mark all
// outstanding tokens used.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.tokens.VerifyRecovery(token)
	if err != nil {
		return autherror.ErrRecoveryTokenInvalid
	}

	if !domain.ValidPassword(newPassword) {
		return autherror.ErrWeakPassword
	}

	ok, err := s.recovery.Verify(ctx, email, token)
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrRecoveryTokenInvalid
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePasswordHash(ctx, account.ID, string(hashed)); err != nil {
		return err
	}

	if err := s.recovery.MarkUsed(ctx, email); err != nil {
		return err
	}

	s.notify(account.Email, "Password changed",
		"Your password was just changed. If this wasn't you, contact support immediately.")

	return nil
}

func (s *UserService) ListAccounts(ctx context.Context) ([]dto.PublicProfile, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]dto.PublicProfile, 0, len(accounts))
	for _, a := range accounts {
		profiles = append(profiles, dto.PublicProfile{ID: a.ID, Email: a.Email, IsAdmin: a.IsAdmin})
	}
	return profiles, nil
}

func (s *UserService) notify(to, subject, body string) {
	go func() {
		if err := s.notifier.Send(context.Background(), to, subject, body); err != nil {
			s.log.Warn("mail delivery failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		}
	}()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
