package payments

import (
	"context"

	"nvp-welfare-backend/internal/domain"
)

const (
	ProviderStripe   = "stripe"
	ProviderMidtrans = "midtrans"
)

var (
	ErrInvalidSignature = domain.NewError(domain.ErrInvalidInput, "Invalid webhook signature")
	ErrInvalidPayload   = domain.NewError(domain.ErrInvalidInput, "Invalid webhook payload")
)

// OrderRequest is what the donation flow asks a gateway for. AmountMinor is in paise.
type OrderRequest struct {
	Reference   string
	AmountMinor int64
	Currency    string
	DonorName   string
	DonorEmail  string
	DonorPhone  string
	Description string
	Metadata    map[string]string
}

// Order is the gateway's answer; OrderID keys the pending donation.
type Order struct {
	OrderID      string
	AmountMinor  int64
	Currency     string
	ClientSecret string
	Token        string
	RedirectURL  string
}

// Gateway creates payment orders with an external provider.
type Gateway interface {
	Name() string
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

// Notification is a verified, provider-neutral webhook delivery.
type Notification struct {
	Gateway     string
	EventID     string
	EventType   string
	OrderID     string
	PaymentID   string
	AmountMinor int64
	Currency    string
	Succeeded   bool
}

// New returns the configured gateway, or nil when no secret is set.
func New(provider, secret, midtransEnv string) Gateway {
	if secret == "" {
		return nil
	}
	switch provider {
	case ProviderMidtrans:
		return NewMidtrans(secret, midtransEnv == "production")
	default:
		return NewStripe(secret, nil)
	}
}
