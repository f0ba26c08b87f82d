package requests

type EmailConfirmation struct {
	ClientKey string `json:"clientKey" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}
