package donations

import (
	donationsvc "nvp-welfare-backend/internal/application/donations"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *donationsvc.Service
}

// CreateOrder POST /api/donations/create-order
func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var req donationsvc.CreateOrderInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateOrder(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	log.Info().Str("order_id", res.OrderID).Str("gateway", res.Gateway).Msg("donations: order created")
	return response.Success(c, "Order created", res, nil)
}

// VerifyPayment POST /api/donations/verify-payment
func (h *Handlers) VerifyPayment(c *fiber.Ctx) error {
	var req donationsvc.VerifyInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	d, err := h.Service.VerifyPayment(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Payment verified successfully", fiber.Map{
		"receipt_number": d.ReceiptNumber,
		"donation_id":    d.ID.String(),
		"status":         d.Status,
	}, nil)
}

// RecordOffline POST /api/donations/offline
func (h *Handlers) RecordOffline(c *fiber.Ctx) error {
	var req donationsvc.OfflineInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	d, err := h.Service.RecordOffline(c.Context(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Donation recorded", d, nil)
}

// List GET /api/donations
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context(), middleware.Actor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Donations retrieved", out, nil)
}

// Delete DELETE /api/donations/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Donation deleted successfully", nil, nil)
}
