package service

import "errors"

// Ошибки бизнес-логики для обработки в handlers
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidToken       = errors.New("invalid or already used confirmation token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotConfirmed       = errors.New("account is not confirmed")
	ErrBanned             = errors.New("account is suspended")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartEmpty          = errors.New("cart is empty")
)
