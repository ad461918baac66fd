package dto

type PublicProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResult is what login and refresh hand back to the transport layer.
// The refresh token travels as a cookie, never in the JSON body.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	Profile      PublicProfile
}
