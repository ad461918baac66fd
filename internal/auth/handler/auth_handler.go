package handler

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/dto"
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service"
	autherror "github.com/JuanPUwu/RecordBlock-sub001/internal/errors"
	"github.com/JuanPUwu/RecordBlock-sub001/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userService *service.UserService
	refreshTTL  time.Duration
	production  bool
	pagesDir    string
	log         *zap.Logger
}

type Options struct {
	RefreshTTL time.Duration
	Production bool
	PagesDir   string
	Logger     *zap.Logger
}

func NewAuthHandler(userService *service.UserService, opts Options) *AuthHandler {
	if opts.PagesDir == "" {
		opts.PagesDir = filepath.Join("web", "static")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &AuthHandler{
		userService: userService,
		refreshTTL:  opts.RefreshTTL,
		production:  opts.Production,
		pagesDir:    opts.PagesDir,
		log:         opts.Logger,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "email and password are required",
		})
	}

	account, err := h.userService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		case errors.Is(err, autherror.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		default:
			return h.serverError(c, "register failed", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "account created, pending verification",
		"user":    dto.PublicProfile{ID: account.ID, Email: account.Email, IsAdmin: account.IsAdmin},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "email and password are required",
		})
	}

	result, err := h.userService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidCredentials):
			// Same message whether the email exists or not.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "invalid email or password",
			})
		case errors.Is(err, autherror.ErrAccountNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   constant.CodeNotVerified,
			})
		default:
			return h.serverError(c, "login failed", err)
		}
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"message":     "logged in",
		"accessToken": result.AccessToken,
		"user":        result.Profile,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(constant.RefreshCookieName)
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "refresh token required",
		})
	}

	result, err := h.userService.Refresh(c.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, autherror.ErrRefreshTokenInvalid) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   constant.CodeInvalidOrExpired,
			})
		}
		return h.serverError(c, "refresh failed", err)
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"message":     "token refreshed",
		"accessToken": result.AccessToken,
		"user":        result.Profile,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies(constant.RefreshCookieName)
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "no active session",
		})
	}

	accessToken := extractBearer(c.Get(fiber.HeaderAuthorization))

	if err := h.userService.Logout(c.Context(), refreshToken, accessToken); err != nil {
		return h.serverError(c, "logout failed", err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "logged out",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "email is required",
		})
	}

	err := h.userService.ForgotPassword(c.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrAccountNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "account not found",
			})
		case errors.Is(err, autherror.ErrAccountNotVerified):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   constant.CodeNotVerified,
			})
		default:
			return h.serverError(c, "forgot-password failed", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "reset link sent",
	})
}

// ResetPasswordForm serves the static form; the emailed link lands here.
func (h *AuthHandler) ResetPasswordForm(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.pagesDir, "reset_form.html"))
}

// ResetPassword consumes the token from the URL path. Outcomes are static
// pages, except a weak password which stays on the form with an inline error.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "password is required",
		})
	}

	err := h.userService.ResetPassword(c.Context(), token, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "password must be at least 8 characters with upper, lower and digit",
			})
		case errors.Is(err, autherror.ErrRecoveryTokenInvalid),
			errors.Is(err, autherror.ErrAccountNotFound):
			return c.Status(fiber.StatusForbidden).SendFile(filepath.Join(h.pagesDir, "reset_failure.html"))
		default:
			h.log.Error("reset-password failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendFile(filepath.Join(h.pagesDir, "reset_failure.html"))
		}
	}

	return c.SendFile(filepath.Join(h.pagesDir, "reset_success.html"))
}

// Me echoes the verified identity the session gate attached.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.ClaimsContextKey).(*service.JWTCustomClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": constant.CodeTokenRequired,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":      claims.AccountID,
			"isAdmin": claims.IsAdmin,
		},
	})
}

func (h *AuthHandler) ListAccounts(c *fiber.Ctx) error {
	profiles, err := h.userService.ListAccounts(c.Context())
	if err != nil {
		return h.serverError(c, "list accounts failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"users":   profiles,
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     constant.RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if h.production {
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(cookie)
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	cookie := &fiber.Cookie{
		Name:     constant.RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if h.production {
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(cookie)
}

func (h *AuthHandler) serverError(c *fiber.Ctx, msg string, err error) error {
	h.log.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "internal server error",
	})
}
