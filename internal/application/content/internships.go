package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InternshipInput struct {
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"required"`
	Duration    string `json:"duration" validate:"required,max=100"`
	Positions   int    `json:"positions" validate:"gt=0"`
}

// ApplyInput is the application form; Email falls back to the caller's token email.
type ApplyInput struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func (s *Service) CreateInternship(ctx context.Context, in InternshipInput) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	i := domain.Internship{
		Title:        in.Title,
		Description:  in.Description,
		Duration:     in.Duration,
		Positions:    in.Positions,
		Applications: datatypes.JSONSlice[domain.InternshipApplication]{},
	}
	return s.create(ctx, &i, func() string { return i.ID.String() }, "internship")
}

func (s *Service) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	return list[domain.Internship](ctx, s.DB.Order("created_at DESC"), "internships")
}

func (s *Service) DeleteInternship(ctx context.Context, id string) error {
	return deleteOne[domain.Internship](ctx, s.DB, id, ErrInternshipNotFound)
}

// Apply appends a pending application while holding the internship row lock.
// Positions are informational; applications beyond them are still accepted.
func (s *Service) Apply(ctx context.Context, id string, in ApplyInput, actor domain.Actor) error {
	if in.Email == "" {
		in.Email = actor.Email
	}
	if err := validation.Validate(in); err != nil {
		return err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrInternshipNotFound
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var i domain.Internship
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", uid).First(&i).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInternshipNotFound
		}
		if err != nil {
			return fmt.Errorf("load internship: %w", err)
		}
		apps := append(i.Applications, domain.InternshipApplication{
			ApplicantID:    actor.UserID,
			ApplicantName:  in.Name,
			ApplicantEmail: validation.NormalizeEmail(in.Email),
			ApplicantPhone: in.Phone,
			AppliedAt:      time.Now().UTC(),
			Status:         domain.ApplicationPending,
		})
		if err := tx.Model(&i).Update("applications", apps).Error; err != nil {
			return fmt.Errorf("append application: %w", err)
		}
		return nil
	})
}
