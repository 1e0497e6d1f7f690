package content

import (
	"context"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"
)

type ProjectInput struct {
	Title       string  `json:"title" validate:"required,max=300"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Spent       float64 `json:"spent" validate:"gte=0"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status" validate:"omitempty,oneof=active completed on_hold"`
}

func (s *Service) CreateProject(ctx context.Context, in ProjectInput) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	start, err := validation.ParseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := validation.ParseOptionalDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	p := domain.Project{
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		Spent:       in.Spent,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
	}
	return s.create(ctx, &p, func() string { return p.ID.String() }, "project")
}

func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return list[domain.Project](ctx, s.DB.Order("created_at DESC"), "projects")
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return deleteOne[domain.Project](ctx, s.DB, id, ErrProjectNotFound)
}
