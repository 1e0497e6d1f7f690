package auth

import "nvp-welfare-backend/internal/domain"

var (
	ErrDuplicateEmail     = domain.NewError(domain.ErrDuplicateEntry, "Email already registered")
	ErrInvalidCredentials = domain.NewError(domain.ErrUnauthorized, "Invalid credentials")
	ErrAccountBlocked     = domain.NewError(domain.ErrForbidden, "Account is blocked")
	ErrUserNotFound       = domain.NewError(domain.ErrNotFound, "User not found")
)
