package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	autherror "github.com/JuanPUwu/RecordBlock-sub001/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	IssueAccess(accountID string, isAdmin bool, sessionID string) (string, error)
	IssueRefresh(accountID string, isAdmin bool, sessionID string) (string, error)
	IssueRecovery(email string) (string, error)
	VerifyAccess(tokenString string) (*JWTCustomClaims, error)
	VerifyRefresh(tokenString string) (*JWTCustomClaims, error)
	VerifyRecovery(tokenString string) (string, error)
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

// TokenService signs and verifies the three token classes. Each class has
// its own secret so a leaked signing key forges nothing outside its class.
type TokenService struct {
	AccessTokenSecret   string
	RefreshTokenSecret  string
	RecoveryTokenSecret string
	AccessTokenExpiry   time.Duration
	RefreshTokenExpiry  time.Duration
	RecoveryTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	IsAdmin   bool   `json:"is_admin"`
	SessionID string `json:"session_id,omitempty"`
}

type recoveryClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func NewTokenService(accessSecret, refreshSecret, recoverySecret string,
	accessMinutes, refreshMinutes, recoveryMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:   accessSecret,
		RefreshTokenSecret:  refreshSecret,
		RecoveryTokenSecret: recoverySecret,
		AccessTokenExpiry:   time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry:  time.Duration(refreshMinutes) * time.Minute,
		RecoveryTokenExpiry: time.Duration(recoveryMinutes) * time.Minute,
	}
}

func (ts *TokenService) IssueAccess(accountID string, isAdmin bool, sessionID string) (string, error) {
	return ts.sign(accountID, isAdmin, sessionID, ts.AccessTokenExpiry, ts.AccessTokenSecret)
}

func (ts *TokenService) IssueRefresh(accountID string, isAdmin bool, sessionID string) (string, error) {
	return ts.sign(accountID, isAdmin, sessionID, ts.RefreshTokenExpiry, ts.RefreshTokenSecret)
}

func (ts *TokenService) sign(accountID string, isAdmin bool, sessionID string,
	expiry time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		AccountID: accountID,
		IsAdmin:   isAdmin,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique id keeps rotated tokens distinct even within the
			// same second, so the stored refresh token always identifies
			// the latest grant.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (ts *TokenService) IssueRecovery(email string) (string, error) {
	now := time.Now()
	claims := recoveryClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.RecoveryTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.RecoveryTokenSecret))
}

// VerifyAccess parses and validates an access token. Expiry is reported as
// autherror.ErrTokenExpired; every other failure is ErrTokenMalformed so
// callers can map the two to different HTTP semantics.
func (ts *TokenService) VerifyAccess(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) VerifyRefresh(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenMalformed
	}

	if !token.Valid {
		return nil, autherror.ErrTokenMalformed
	}

	return claims, nil
}

// VerifyRecovery validates the signed recovery envelope and returns the email
// it embeds.
func (ts *TokenService) VerifyRecovery(tokenString string) (string, error) {
	claims := &recoveryClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.RecoveryTokenSecret), nil
	})

	if err != nil || !token.Valid {
		return "", autherror.ErrRecoveryTokenInvalid
	}

	return claims.Email, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}
