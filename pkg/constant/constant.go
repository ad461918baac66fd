package constant

// RefreshCookieName is the cookie carrying the refresh token between the
// browser and the refresh/logout endpoints.
const RefreshCookieName = "refreshToken"

// ClaimsContextKey is the fiber.Ctx locals key the auth middleware uses to
// attach verified access-token claims for downstream handlers.
const ClaimsContextKey = "authClaims"

// Error codes returned by the auth middleware and handlers.
const (
	CodeTokenRequired    = "TOKEN_REQUIRED"
	CodeBlacklisted      = "BLACKLISTED"
	CodeExpired          = "EXPIRED"
	CodeInvalid          = "INVALID"
	CodeSessionClosed    = "SESSION_CLOSED"
	CodeForbidden        = "FORBIDDEN"
	CodeInvalidOrExpired = "INVALID_OR_EXPIRED"
	CodeNotVerified      = "NOT_VERIFIED"
)

// Environment names used to scope cookie attributes.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
