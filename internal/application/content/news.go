package content

import (
	"context"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"
)

// NewsInput has no author field; the author is always the caller.
type NewsInput struct {
	Title     string  `json:"title" validate:"required,max=300"`
	Content   string  `json:"content" validate:"required"`
	ImageURL  *string `json:"image_url" validate:"omitempty,max=1024"`
	Published *bool   `json:"published"`
}

func (s *Service) CreateNews(ctx context.Context, in NewsInput, actor domain.Actor) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	n := domain.News{
		Title:     in.Title,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		AuthorID:  actor.UserID,
		Published: in.Published == nil || *in.Published,
	}
	return s.create(ctx, &n, func() string { return n.ID.String() }, "news")
}

// ListNews returns published news, newest first.
func (s *Service) ListNews(ctx context.Context) ([]domain.News, error) {
	return list[domain.News](ctx, s.DB.Where("published = ?", true).Order("created_at DESC"), "news")
}

func (s *Service) DeleteNews(ctx context.Context, id string) error {
	return deleteOne[domain.News](ctx, s.DB, id, ErrNewsNotFound)
}
