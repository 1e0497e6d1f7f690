package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const stripeSucceeded = "payment_intent.succeeded"

// StripeGateway creates PaymentIntents; the intent id is the order id.
type StripeGateway struct {
	api *client.API
}

// NewStripe builds a client for secretKey. backends may be nil to use the live API.
func NewStripe(secretKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, backends)}
}

func (g *StripeGateway) Name() string { return ProviderStripe }

func (g *StripeGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	metadata := map[string]string{"reference": req.Reference, "donor_email": req.DonorEmail}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(req.AmountMinor),
		Currency:     stripe.String(strings.ToLower(req.Currency)),
		Description:  stripe.String(req.Description),
		ReceiptEmail: stripe.String(req.DonorEmail),
		Metadata:     metadata,
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return &Order{
		OrderID:      pi.ID,
		AmountMinor:  pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
		ClientSecret: pi.ClientSecret,
	}, nil
}

// ParseStripeEvent verifies the Stripe-Signature header and extracts the payment intent.
func ParseStripeEvent(payload []byte, sigHeader, secret string) (*Notification, error) {
	if secret == "" || sigHeader == "" {
		return nil, ErrInvalidSignature
	}
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, ErrInvalidSignature
	}
	n := &Notification{Gateway: ProviderStripe, EventID: event.ID, EventType: string(event.Type)}
	if !strings.HasPrefix(n.EventType, "payment_intent.") || event.Data == nil {
		return n, nil
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, ErrInvalidPayload
	}
	n.OrderID = pi.ID
	n.PaymentID = pi.ID
	if pi.LatestCharge != nil && pi.LatestCharge.ID != "" {
		n.PaymentID = pi.LatestCharge.ID
	}
	n.AmountMinor = pi.AmountReceived
	n.Currency = strings.ToUpper(string(pi.Currency))
	n.Succeeded = n.EventType == stripeSucceeded
	return n, nil
}
