package content

import (
	"context"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"

	"gorm.io/datatypes"
)

type DesignationInput struct {
	Name     string   `json:"name" validate:"required,max=120"`
	Fee      float64  `json:"fee" validate:"gte=0"`
	Benefits []string `json:"benefits" validate:"omitempty,dive,max=500"`
}

func (s *Service) CreateDesignation(ctx context.Context, in DesignationInput) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	benefits := in.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	d := domain.Designation{Name: in.Name, Fee: in.Fee, Benefits: datatypes.JSONSlice[string](benefits)}
	return s.create(ctx, &d, func() string { return d.ID.String() }, "designation")
}

func (s *Service) ListDesignations(ctx context.Context) ([]domain.Designation, error) {
	return list[domain.Designation](ctx, s.DB.Order("fee ASC"), "designations")
}

func (s *Service) DeleteDesignation(ctx context.Context, id string) error {
	return deleteOne[domain.Designation](ctx, s.DB, id, ErrDesignationNotFound)
}
