package donations

import (
	"errors"

	donationsvc "nvp-welfare-backend/internal/application/donations"
	"nvp-welfare-backend/internal/application/payments"
	"nvp-welfare-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// WebhookHandler receives gateway notifications. Routes must not sit behind a body parser.
type WebhookHandler struct {
	Service      *donationsvc.Service
	StripeSecret string
	MidtransKey  string
}

// Stripe POST /api/donations/webhook/stripe
func (wh *WebhookHandler) Stripe(c *fiber.Ctx) error {
	raw := c.BodyRaw()
	sig := c.Get("Stripe-Signature")
	if len(raw) == 0 {
		log.Warn().Msg("Stripe webhook received empty body")
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: empty body")
	}
	n, err := payments.ParseStripeEvent(raw, sig, wh.StripeSecret)
	if err != nil {
		log.Warn().Err(err).Bool("has_sig", sig != "").Bool("has_secret", wh.StripeSecret != "").Msg("Stripe webhook signature verification failed")
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: " + err.Error())
	}
	return wh.apply(c, n, raw)
}

// Midtrans POST /api/donations/webhook/midtrans
func (wh *WebhookHandler) Midtrans(c *fiber.Ctx) error {
	raw := c.BodyRaw()
	n, err := payments.ParseMidtransNotification(raw, wh.MidtransKey)
	if err != nil {
		log.Warn().Err(err).Msg("Midtrans notification rejected")
		return c.Status(fiber.StatusBadRequest).SendString("Webhook Error: " + err.Error())
	}
	return wh.apply(c, n, raw)
}

// apply answers 200 for domain failures (unknown order) so the gateway stops
// retrying; storage failures return 500 and are redelivered.
func (wh *WebhookHandler) apply(c *fiber.Ctx, n *payments.Notification, raw []byte) error {
	err := wh.Service.HandleNotification(c.Context(), n, raw)
	if err == nil {
		return c.Status(fiber.StatusOK).SendString("ok")
	}
	log.Error().Err(err).Str("gateway", n.Gateway).Str("event_id", n.EventID).Str("order_id", n.OrderID).Msg("webhook processing failed")
	var derr *domain.Error
	if errors.As(err, &derr) {
		return c.Status(fiber.StatusOK).SendString("ok")
	}
	return c.Status(fiber.StatusInternalServerError).SendString("Webhook Error: processing failed")
}
