package enquiries

import (
	"context"
	"fmt"

	"nvp-welfare-backend/internal/application/emails"
	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"

	"gorm.io/gorm"
)

type Service struct {
	DB     *gorm.DB
	Notify emails.Notifier
}

type CreateInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Create records a public enquiry and sends the auto-reply.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if err := validation.Validate(in); err != nil {
		return "", err
	}
	e := domain.Enquiry{
		Name:    in.Name,
		Email:   validation.NormalizeEmail(in.Email),
		Phone:   in.Phone,
		Message: in.Message,
		Status:  domain.EnquiryPending,
	}
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return "", fmt.Errorf("create enquiry: %w", err)
	}
	if s.Notify != nil {
		s.Notify.Notify(emails.EnquiryReceived{Name: e.Name, Email: e.Email, Content: e.Message}.Message())
	}
	return e.ID.String(), nil
}

func (s *Service) List(ctx context.Context) ([]domain.Enquiry, error) {
	out := []domain.Enquiry{}
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	return out, nil
}
