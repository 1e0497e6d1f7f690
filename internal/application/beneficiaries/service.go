package beneficiaries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"
	"nvp-welfare-backend/internal/pkg/validation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrBeneficiaryNotFound = domain.NewError(domain.ErrNotFound, "Beneficiary not found")

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Age         *int            `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender      *string         `json:"gender" validate:"omitempty,max=20"`
	Address     string          `json:"address" validate:"required,max=500"`
	Phone       *string         `json:"phone" validate:"omitempty,phone"`
	Category    string          `json:"category" validate:"required,max=100"`
	Description *string         `json:"description" validate:"omitempty,max=5000"`
	HelpHistory json.RawMessage `json:"help_history"`
}

var ErrInvalidHelpHistory = domain.NewError(domain.ErrInvalidInput, "help_history must be a JSON list")

func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if err := validation.Validate(in); err != nil {
		return "", err
	}
	history := datatypes.JSON("[]")
	if len(in.HelpHistory) > 0 && string(in.HelpHistory) != "null" {
		var items []interface{}
		if err := json.Unmarshal(in.HelpHistory, &items); err != nil {
			return "", ErrInvalidHelpHistory
		}
		history = datatypes.JSON(in.HelpHistory)
	}
	b := domain.Beneficiary{
		Name:        in.Name,
		Age:         in.Age,
		Gender:      in.Gender,
		Address:     in.Address,
		Phone:       in.Phone,
		Category:    in.Category,
		Description: in.Description,
		HelpHistory: history,
	}
	if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
		return "", fmt.Errorf("create beneficiary: %w", err)
	}
	return b.ID.String(), nil
}

func (s *Service) List(ctx context.Context) ([]domain.Beneficiary, error) {
	out := []domain.Beneficiary{}
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list beneficiaries: %w", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Beneficiary, error) {
	b, err := database.FindByID[domain.Beneficiary](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBeneficiaryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get beneficiary: %w", err)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := database.DeleteByID[domain.Beneficiary](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBeneficiaryNotFound
	}
	return err
}
