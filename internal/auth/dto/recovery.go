package dto

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

type ResetPasswordInput struct {
	Password string `json:"password" form:"password"`
}
