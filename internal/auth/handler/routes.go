package handler

import (
	"github.com/JuanPUwu/RecordBlock-sub001/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler,
	tokens service.TokenGenerator, blacklist service.TokenRevoker, sessions service.SessionChecker) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Delete("/api/v1/session", h.Logout)

	app.Post("/api/v1/forgot-password", h.ForgotPassword)
	app.Get("/reset-password/:token", h.ResetPasswordForm)
	app.Post("/reset-password/:token", h.ResetPassword)

	authed := app.Group("/api/v1", RequireAuth(tokens, blacklist, sessions))
	authed.Get("/me", h.Me)

	// Admin-only endpoints
	admin := authed.Group("/admin", RequireAdmin())
	admin.Get("/accounts", h.ListAccounts)
}
