package donations

import "nvp-welfare-backend/internal/domain"

var (
	ErrDonationNotFound   = domain.NewError(domain.ErrNotFound, "Donation not found")
	ErrGatewayUnavailable = domain.NewError(domain.ErrUnavailable, "Payment gateway not configured")
	ErrGatewayFailed      = domain.NewError(domain.ErrUnavailable, "Failed to create payment order")
	ErrFractionalAmount   = domain.NewError(domain.ErrInvalidInput, "Amount must be a whole number for this payment gateway")
)
