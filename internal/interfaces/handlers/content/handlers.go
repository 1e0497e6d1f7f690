package content

import (
	contentsvc "nvp-welfare-backend/internal/application/content"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/response"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves news, activities, campaigns, events, projects, internships and designations.
type Handlers struct {
	Service *contentsvc.Service
}

func created(c *fiber.Ctx, what string, res *contentsvc.Created, err error) error {
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, what+" created successfully", res, nil)
}

func listed(c *fiber.Ctx, what string, data interface{}, err error) error {
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, what+" retrieved", data, nil)
}

func deleted(c *fiber.Ctx, what string, err error) error {
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, what+" deleted successfully", nil, nil)
}

// CreateNews POST /api/news
func (h *Handlers) CreateNews(c *fiber.Ctx) error {
	var req contentsvc.NewsInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateNews(c.Context(), req, middleware.Actor(c))
	return created(c, "News", res, err)
}

// ListNews GET /api/news
func (h *Handlers) ListNews(c *fiber.Ctx) error {
	out, err := h.Service.ListNews(c.Context())
	return listed(c, "News", out, err)
}

func (h *Handlers) DeleteNews(c *fiber.Ctx) error {
	return deleted(c, "News", h.Service.DeleteNews(c.Context(), c.Params("id")))
}

// CreateActivity POST /api/activities
func (h *Handlers) CreateActivity(c *fiber.Ctx) error {
	var req contentsvc.ActivityInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateActivity(c.Context(), req, middleware.Actor(c))
	return created(c, "Activity", res, err)
}

func (h *Handlers) ListActivities(c *fiber.Ctx) error {
	out, err := h.Service.ListActivities(c.Context())
	return listed(c, "Activities", out, err)
}

func (h *Handlers) DeleteActivity(c *fiber.Ctx) error {
	return deleted(c, "Activity", h.Service.DeleteActivity(c.Context(), c.Params("id")))
}

// CreateCampaign POST /api/campaigns
func (h *Handlers) CreateCampaign(c *fiber.Ctx) error {
	var req contentsvc.CampaignInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateCampaign(c.Context(), req)
	return created(c, "Campaign", res, err)
}

func (h *Handlers) ListCampaigns(c *fiber.Ctx) error {
	out, err := h.Service.ListCampaigns(c.Context())
	return listed(c, "Campaigns", out, err)
}

func (h *Handlers) DeleteCampaign(c *fiber.Ctx) error {
	return deleted(c, "Campaign", h.Service.DeleteCampaign(c.Context(), c.Params("id")))
}

// CreateEvent POST /api/events
func (h *Handlers) CreateEvent(c *fiber.Ctx) error {
	var req contentsvc.EventInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateEvent(c.Context(), req)
	return created(c, "Event", res, err)
}

func (h *Handlers) ListEvents(c *fiber.Ctx) error {
	out, err := h.Service.ListEvents(c.Context())
	return listed(c, "Events", out, err)
}

func (h *Handlers) DeleteEvent(c *fiber.Ctx) error {
	return deleted(c, "Event", h.Service.DeleteEvent(c.Context(), c.Params("id")))
}

// CreateProject POST /api/projects
func (h *Handlers) CreateProject(c *fiber.Ctx) error {
	var req contentsvc.ProjectInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateProject(c.Context(), req)
	return created(c, "Project", res, err)
}

func (h *Handlers) ListProjects(c *fiber.Ctx) error {
	out, err := h.Service.ListProjects(c.Context())
	return listed(c, "Projects", out, err)
}

func (h *Handlers) DeleteProject(c *fiber.Ctx) error {
	return deleted(c, "Project", h.Service.DeleteProject(c.Context(), c.Params("id")))
}

// CreateInternship POST /api/internships
func (h *Handlers) CreateInternship(c *fiber.Ctx) error {
	var req contentsvc.InternshipInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateInternship(c.Context(), req)
	return created(c, "Internship", res, err)
}

func (h *Handlers) ListInternships(c *fiber.Ctx) error {
	out, err := h.Service.ListInternships(c.Context())
	return listed(c, "Internships", out, err)
}

func (h *Handlers) DeleteInternship(c *fiber.Ctx) error {
	return deleted(c, "Internship", h.Service.DeleteInternship(c.Context(), c.Params("id")))
}

// Apply POST /api/internships/:id/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req contentsvc.ApplyInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	if err := h.Service.Apply(c.Context(), c.Params("id"), req, middleware.Actor(c)); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Application submitted successfully", nil, nil)
}

// CreateDesignation POST /api/designations
func (h *Handlers) CreateDesignation(c *fiber.Ctx) error {
	var req contentsvc.DesignationInput
	if err := validation.ParseBody(c, &req); err != nil {
		return response.FromError(c, err)
	}
	res, err := h.Service.CreateDesignation(c.Context(), req)
	return created(c, "Designation", res, err)
}

func (h *Handlers) ListDesignations(c *fiber.Ctx) error {
	out, err := h.Service.ListDesignations(c.Context())
	return listed(c, "Designations", out, err)
}

func (h *Handlers) DeleteDesignation(c *fiber.Ctx) error {
	return deleted(c, "Designation", h.Service.DeleteDesignation(c.Context(), c.Params("id")))
}
