package receipts

import (
	receiptsvc "nvp-welfare-backend/internal/application/receipts"
	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *receiptsvc.Service
}

// Create POST /api/receipts
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req receiptsvc.CreateInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.Create(c.Context(), req, middleware.Actor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Receipt created successfully", res, nil)
}

// List GET /api/receipts
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Receipts retrieved", out, nil)
}

// Delete DELETE /api/receipts/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Receipt deleted successfully", nil, nil)
}

// Verify GET /api/receipts/verify/:number; answers for admin receipts and donation receipts alike.
func (h *Handlers) Verify(c *fiber.Ctx) error {
	found, err := h.Service.VerifyByNumber(c.Context(), c.Params("number"))
	if err != nil {
		return response.FromError(c, err)
	}
	var out fiber.Map
	switch v := found.(type) {
	case *domain.Receipt:
		out = fiber.Map{"receipt_number": v.ReceiptNumber, "recipient_name": v.RecipientName, "amount": v.Amount, "type": v.ReceiptType, "date": v.CreatedAt}
	case *domain.Donation:
		out = fiber.Map{"receipt_number": v.ReceiptNumber, "recipient_name": v.DonorName, "amount": v.Amount, "type": "donation", "date": v.CompletedAt}
	}
	return response.Success(c, "Receipt is valid", out, nil)
}
