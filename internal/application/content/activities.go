package content

import (
	"context"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"

	"gorm.io/datatypes"
)

type ActivityInput struct {
	Title       string   `json:"title" validate:"required,max=300"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,max=50,dive,max=1024"`
}

func (s *Service) CreateActivity(ctx context.Context, in ActivityInput, actor domain.Actor) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}
	a := domain.Activity{
		Title:       in.Title,
		Description: in.Description,
		Images:      datatypes.JSONSlice[string](images),
		AuthorID:    actor.UserID,
	}
	return s.create(ctx, &a, func() string { return a.ID.String() }, "activity")
}

func (s *Service) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return list[domain.Activity](ctx, s.DB.Order("created_at DESC"), "activities")
}

func (s *Service) DeleteActivity(ctx context.Context, id string) error {
	return deleteOne[domain.Activity](ctx, s.DB, id, ErrActivityNotFound)
}
