package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/domain"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/dto"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service"
	autherror "github.com/JuanPUwu/RecordBlock-sub001/internal/errors"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userServiceFixture struct {
	repo         *mocks.MockAccountRepository
	tokens       *mocks.MockTokenGenerator
	blacklist    *mocks.MockTokenRevoker
	recoveryRepo *mocks.MockRecoveryTokenRepository
	notifier     *mocks.MockNotifier
	realTokens   *service.TokenService
	svc          *service.UserService
}

func newUserServiceFixture(t *testing.T, useRealTokens bool) *userServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &userServiceFixture{
		repo:         mocks.NewMockAccountRepository(ctrl),
		tokens:       mocks.NewMockTokenGenerator(ctrl),
		blacklist:    mocks.NewMockTokenRevoker(ctrl),
		recoveryRepo: mocks.NewMockRecoveryTokenRepository(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		realTokens:   service.NewTokenService("access-secret", "refresh-secret", "recovery-secret", 15, 480, 15),
	}

	var tokens service.TokenGenerator = f.tokens
	if useRealTokens {
		tokens = f.realTokens
	}

	recovery := service.NewRecoveryService(f.recoveryRepo, tokens, 15)
	f.svc = service.NewUserService(f.repo, tokens, f.blacklist, recovery, f.notifier,
		"http://localhost:8080", nil)

	return f
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func verifiedAccount(t *testing.T, password string) *domain.Account {
	t.Helper()
	return &domain.Account{
		ID:           "account-123",
		Email:        "user@example.com",
		PasswordHash: hashPassword(t, password),
		IsAdmin:      false,
		Verified:     true,
	}
}

// expectNotify tolerates the fire-and-forget mail goroutine without racing it.
func expectNotify(f *userServiceFixture) {
	f.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		expectNotify(f)

		f.repo.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, nil)

		var created *domain.Account
		f.repo.EXPECT().Create(ctx, gomock.Any()).
			Do(func(_ context.Context, a *domain.Account) { created = a }).
			Return(nil)

		account, err := f.svc.Register(ctx, dto.RegisterInput{Email: "New@Example.com", Password: "Sup3rSecret"})
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "new@example.com", account.Email) // lowercased
		assert.False(t, account.Verified)
		assert.False(t, account.IsAdmin)
		assert.NotEmpty(t, account.ID)
		assert.NotEqual(t, "Sup3rSecret", account.PasswordHash)
		assert.Equal(t, created, account)
	})

	t.Run("email already in use", func(t *testing.T) {
		f := newUserServiceFixture(t, false)

		f.repo.EXPECT().GetByEmail(ctx, "user@example.com").
			Return(&domain.Account{ID: "existing"}, nil)

		_, err := f.svc.Register(ctx, dto.RegisterInput{Email: "user@example.com", Password: "Sup3rSecret"})
		assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	})

	t.Run("weak password", func(t *testing.T) {
		f := newUserServiceFixture(t, false)

		f.repo.EXPECT().GetByEmail(ctx, "user@example.com").Return(nil, nil)

		_, err := f.svc.Register(ctx, dto.RegisterInput{Email: "user@example.com", Password: "short"})
		assert.ErrorIs(t, err, autherror.ErrWeakPassword)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues pair and overwrites session", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		var sessionID string
		f.tokens.EXPECT().IssueAccess(account.ID, false, gomock.Any()).
			Do(func(_ string, _ bool, sid string) { sessionID = sid }).
			Return("access-token", nil)
		f.tokens.EXPECT().IssueRefresh(account.ID, false, gomock.Any()).Return("refresh-token", nil)
		f.repo.EXPECT().SetSession(ctx, account.ID, "refresh-token", gomock.Any()).Return(nil)

		result, err := f.svc.Login(ctx, "User@Example.com", "Sup3rSecret")
		require.NoError(t, err)
		assert.Equal(t, "access-token", result.AccessToken)
		assert.Equal(t, "refresh-token", result.RefreshToken)
		assert.Equal(t, account.ID, result.Profile.ID)
		assert.Equal(t, account.Email, result.Profile.Email)
		assert.NotEmpty(t, sessionID)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newUserServiceFixture(t, false)

		f.repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

		_, err := f.svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		_, err := f.svc.Login(ctx, account.Email, "WrongPassword1")
		assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)
		f.repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

		_, errWrongPass := f.svc.Login(ctx, account.Email, "WrongPassword1")
		_, errNoAccount := f.svc.Login(ctx, "ghost@example.com", "WrongPassword1")
		assert.Equal(t, errWrongPass, errNoAccount)
	})

	t.Run("unverified account", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")
		account.Verified = false

		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		_, err := f.svc.Login(ctx, account.Email, "Sup3rSecret")
		assert.ErrorIs(t, err, autherror.ErrAccountNotVerified)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		f := newUserServiceFixture(t, false)

		f.repo.EXPECT().GetByEmail(ctx, "user@example.com").Return(nil, errors.New("db down"))

		_, err := f.svc.Login(ctx, "user@example.com", "Sup3rSecret")
		assert.EqualError(t, err, "db down")
	})
}

func TestUserService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotation on use keeps the session id", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		oldRefresh, err := f.realTokens.IssueRefresh(account.ID, false, "session-1")
		require.NoError(t, err)
		account.RefreshToken = oldRefresh
		account.SessionID = "session-1"

		f.repo.EXPECT().GetByRefreshToken(ctx, oldRefresh).Return(account, nil)

		var newRefresh string
		f.repo.EXPECT().SetSession(ctx, account.ID, gomock.Any(), "session-1").
			Do(func(_ context.Context, _ string, token, _ string) { newRefresh = token }).
			Return(nil)

		result, err := f.svc.Refresh(ctx, oldRefresh)
		require.NoError(t, err)
		assert.NotEqual(t, oldRefresh, result.RefreshToken)
		assert.Equal(t, newRefresh, result.RefreshToken)

		claims, err := f.realTokens.VerifyRefresh(result.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "session-1", claims.SessionID)
	})

	t.Run("superseded token no longer matches a stored row", func(t *testing.T) {
		f := newUserServiceFixture(t, true)

		f.repo.EXPECT().GetByRefreshToken(ctx, "stale-token").Return(nil, nil)

		_, err := f.svc.Refresh(ctx, "stale-token")
		assert.ErrorIs(t, err, autherror.ErrRefreshTokenInvalid)
	})

	t.Run("stored but cryptographically invalid token is rejected", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByRefreshToken(ctx, "tampered").Return(account, nil)

		_, err := f.svc.Refresh(ctx, "tampered")
		assert.ErrorIs(t, err, autherror.ErrRefreshTokenInvalid)
	})

	t.Run("expired stored token is rejected the same way", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		expiredTokens := service.NewTokenService("access-secret", "refresh-secret", "recovery-secret", -1, -1, -1)
		expired, err := expiredTokens.IssueRefresh(account.ID, false, "session-1")
		require.NoError(t, err)

		f.repo.EXPECT().GetByRefreshToken(ctx, expired).Return(account, nil)

		_, err = f.svc.Refresh(ctx, expired)
		assert.ErrorIs(t, err, autherror.ErrRefreshTokenInvalid)
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears session and blacklists presented access token", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")
		account.RefreshToken = "stored-refresh"

		access, err := f.realTokens.IssueAccess(account.ID, false, "session-1")
		require.NoError(t, err)

		f.repo.EXPECT().GetByRefreshToken(ctx, "stored-refresh").Return(account, nil)
		f.repo.EXPECT().ClearSession(ctx, account.ID).Return(nil)

		var ttl time.Duration
		f.blacklist.EXPECT().Add(ctx, access, gomock.Any()).
			Do(func(_ context.Context, _ string, d time.Duration) { ttl = d }).
			Return(nil)

		require.NoError(t, f.svc.Logout(ctx, "stored-refresh", access))

		// TTL equals the token's remaining lifetime, not its full validity.
		assert.Greater(t, ttl, 14*time.Minute)
		assert.LessOrEqual(t, ttl, 15*time.Minute)
	})

	t.Run("no access token presented", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByRefreshToken(ctx, "stored-refresh").Return(account, nil)
		f.repo.EXPECT().ClearSession(ctx, account.ID).Return(nil)

		require.NoError(t, f.svc.Logout(ctx, "stored-refresh", ""))
	})

	t.Run("unverifiable access token is skipped", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByRefreshToken(ctx, "stored-refresh").Return(account, nil)
		f.repo.EXPECT().ClearSession(ctx, account.ID).Return(nil)

		require.NoError(t, f.svc.Logout(ctx, "stored-refresh", "garbage"))
	})

	t.Run("unknown refresh token still succeeds", func(t *testing.T) {
		f := newUserServiceFixture(t, true)

		f.repo.EXPECT().GetByRefreshToken(ctx, "unknown").Return(nil, nil)

		require.NoError(t, f.svc.Logout(ctx, "unknown", ""))
	})

	t.Run("blacklist failure does not block logout", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		access, err := f.realTokens.IssueAccess(account.ID, false, "session-1")
		require.NoError(t, err)

		f.repo.EXPECT().GetByRefreshToken(ctx, "stored-refresh").Return(account, nil)
		f.repo.EXPECT().ClearSession(ctx, account.ID).Return(nil)
		f.blacklist.EXPECT().Add(ctx, access, gomock.Any()).Return(errors.New("db down"))

		require.NoError(t, f.svc.Logout(ctx, "stored-refresh", access))
	})
}

func TestUserService_IsSessionLive(t *testing.T) {
	ctx := context.Background()

	t.Run("live", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")
		account.RefreshToken = "stored-refresh"
		account.SessionID = "session-1"

		f.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

		assert.True(t, f.svc.IsSessionLive(ctx, account.ID, "session-1"))
	})

	t.Run("session id mismatch after a newer login", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")
		account.RefreshToken = "stored-refresh"
		account.SessionID = "session-2"

		f.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

		assert.False(t, f.svc.IsSessionLive(ctx, account.ID, "session-1"))
	})

	t.Run("logged out", func(t *testing.T) {
		f := newUserServiceFixture(t, false)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByID(ctx, account.ID).Return(account, nil)

		assert.False(t, f.svc.IsSessionLive(ctx, account.ID, "session-1"))
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newUserServiceFixture(t, false)

		f.repo.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

		assert.False(t, f.svc.IsSessionLive(ctx, "ghost", "session-1"))
	})
}

func TestUserService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success mails the plaintext token", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")

		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)
		f.recoveryRepo.EXPECT().CreateRecoveryToken(ctx, gomock.Any()).Return(nil)

		sent := make(chan string, 1)
		f.notifier.EXPECT().
			Send(gomock.Any(), account.Email, "Password reset", gomock.Any()).
			Do(func(_ context.Context, _, _, body string) { sent <- body }).
			Return(nil)

		require.NoError(t, f.svc.ForgotPassword(ctx, account.Email))

		select {
		case body := <-sent:
			assert.Contains(t, body, "http://localhost:8080/reset-password/")
		case <-time.After(2 * time.Second):
			t.Fatal("notifier was never called")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newUserServiceFixture(t, true)

		f.repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

		err := f.svc.ForgotPassword(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, autherror.ErrAccountNotFound)
	})

	t.Run("unverified account", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "Sup3rSecret")
		account.Verified = false

		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		err := f.svc.ForgotPassword(ctx, account.Email)
		assert.ErrorIs(t, err, autherror.ErrAccountNotVerified)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success spends all outstanding tokens", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		expectNotify(f)
		account := verifiedAccount(t, "OldPassword1")

		token, row := issueRecoveryPair(t, f.realTokens, account.Email)

		f.recoveryRepo.EXPECT().
			GetActiveRecoveryTokens(ctx, account.Email, gomock.Any()).
			Return([]domain.RecoveryToken{row}, nil)
		f.repo.EXPECT().GetByEmail(ctx, account.Email).Return(account, nil)

		var newHash string
		f.repo.EXPECT().UpdatePasswordHash(ctx, account.ID, gomock.Any()).
			Do(func(_ context.Context, _, hash string) { newHash = hash }).
			Return(nil)
		f.recoveryRepo.EXPECT().MarkRecoveryTokensUsed(ctx, account.Email).Return(nil)

		require.NoError(t, f.svc.ResetPassword(ctx, token, "NewPassword1"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("NewPassword1")))
	})

	t.Run("spent token never verifies again", func(t *testing.T) {
		f := newUserServiceFixture(t, true)
		account := verifiedAccount(t, "OldPassword1")

		token, err := f.realTokens.IssueRecovery(account.Email)
		require.NoError(t, err)

		// After MarkUsed the row is no longer in the active set.
		f.recoveryRepo.EXPECT().
			GetActiveRecoveryTokens(ctx, account.Email, gomock.Any()).
			Return(nil, nil)

		err = f.svc.ResetPassword(ctx, token, "NewPassword1")
		assert.ErrorIs(t, err, autherror.ErrRecoveryTokenInvalid)
	})

	t.Run("undecodable token", func(t *testing.T) {
		f := newUserServiceFixture(t, true)

		err := f.svc.ResetPassword(ctx, "garbage", "NewPassword1")
		assert.ErrorIs(t, err, autherror.ErrRecoveryTokenInvalid)
	})

	t.Run("weak password fails before any store access", func(t *testing.T) {
		f := newUserServiceFixture(t, true)

		token, err := f.realTokens.IssueRecovery("user@example.com")
		require.NoError(t, err)

		err = f.svc.ResetPassword(ctx, token, "weak")
		assert.ErrorIs(t, err, autherror.ErrWeakPassword)
	})
}

// issueRecoveryPair issues a real recovery token through a throwaway
// RecoveryService so the returned plaintext and stored row actually match.
func issueRecoveryPair(t *testing.T, tokens *service.TokenService, email string) (string, domain.RecoveryToken) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mocks.NewMockRecoveryTokenRepository(ctrl)
	recovery := service.NewRecoveryService(repo, tokens, 15)

	var stored *domain.RecoveryToken
	repo.EXPECT().CreateRecoveryToken(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rt *domain.RecoveryToken) { stored = rt }).
		Return(nil)

	plaintext, err := recovery.Issue(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, stored)

	return plaintext, *stored
}
