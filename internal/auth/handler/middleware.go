package handler

import (
	"errors"
	"strings"

	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service"
	autherror "github.com/JuanPUwu/RecordBlock-sub001/internal/errors"
	"github.com/JuanPUwu/RecordBlock-sub001/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RequireAuth is the per-request session gate. Checks run in a fixed order:
// bearer present, not blacklisted, signature/expiry, session liveness. Each
// rejection carries a distinct code because each demands a different client
// recovery action (refresh vs re-login).
func RequireAuth(tokens service.TokenGenerator, blacklist service.TokenRevoker, sessions service.SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": constant.CodeTokenRequired,
			})
		}

		revoked, err := blacklist.IsRevoked(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
		if revoked {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": constant.CodeBlacklisted,
			})
		}

		claims, err := tokens.VerifyAccess(token)
		if err != nil {
			if errors.Is(err, autherror.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": constant.CodeExpired,
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": constant.CodeInvalid,
			})
		}

		if claims.SessionID != "" && !sessions.IsSessionLive(c.Context(), claims.AccountID, claims.SessionID) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": constant.CodeSessionClosed,
			})
		}

		c.Locals(constant.ClaimsContextKey, claims)

		return c.Next()
	}
}

// RequireAdmin runs after RequireAuth on the already-attached claims.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(constant.ClaimsContextKey).(*service.JWTCustomClaims)
		if !ok || !claims.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": constant.CodeForbidden,
			})
		}

		return c.Next()
	}
}

func extractBearer(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
