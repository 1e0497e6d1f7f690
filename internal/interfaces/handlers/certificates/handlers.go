package certificates

import (
	certsvc "nvp-welfare-backend/internal/application/certificates"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *certsvc.Service
}

// Issue POST /api/certificates
func (h *Handlers) Issue(c *fiber.Ctx) error {
	var req certsvc.IssueInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.Issue(c.Context(), req, middleware.Actor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Certificate issued successfully", res, nil)
}

// List GET /api/certificates
func (h *Handlers) List(c *fiber.Ctx) error {
	out, err := h.Service.List(c.Context(), middleware.Actor(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Certificates retrieved", out, nil)
}

// Delete DELETE /api/certificates/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Certificate deleted successfully", nil, nil)
}

// Verify GET /api/certificates/verify/:number
func (h *Handlers) Verify(c *fiber.Ctx) error {
	cert, err := h.Service.VerifyByNumber(c.Context(), c.Params("number"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Certificate is valid", fiber.Map{
		"certificate_number": cert.CertificateNumber,
		"certificate_type":   cert.CertificateType,
		"recipient_name":     cert.RecipientName,
		"issue_date":         cert.IssueDate,
	}, nil)
}
