package members

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"
	"nvp-welfare-backend/internal/pkg/numbering"
	"nvp-welfare-backend/internal/pkg/validation"

	"gorm.io/gorm"
)

const memberCounter = "member_number"

var (
	ErrMemberNotFound = domain.NewError(domain.ErrNotFound, "Member not found")
	ErrInvalidStatus  = domain.NewError(domain.ErrInvalidInput, "Status must be approved or blocked")
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Designation    string  `json:"designation" validate:"required,max=120"`
	DesignationFee float64 `json:"designation_fee" validate:"gte=0"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,max=32"`
	Address        *string `json:"address" validate:"omitempty,max=500"`
	City           *string `json:"city" validate:"omitempty,max=120"`
	State          *string `json:"state" validate:"omitempty,max=120"`
	Pincode        *string `json:"pincode" validate:"omitempty,max=12"`
	PhotoURL       *string `json:"photo_url" validate:"omitempty,max=1024"`
	ReferrerID     *string `json:"referrer_id" validate:"omitempty,max=64"`
}

type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

type CreateResult struct {
	ID           string `json:"id"`
	MemberNumber string `json:"member_number"`
}

// Create registers a membership for the caller. The member number comes from an atomic counter.
func (s *Service) Create(ctx context.Context, in CreateInput, actor domain.Actor) (*CreateResult, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	m := domain.Member{
		UserID:         actor.UserID,
		Designation:    in.Designation,
		DesignationFee: in.DesignationFee,
		DateOfBirth:    in.DateOfBirth,
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		Pincode:        in.Pincode,
		PhotoURL:       in.PhotoURL,
		ReferrerID:     in.ReferrerID,
		Status:         domain.MemberPending,
		JoinedAt:       time.Now().UTC(),
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := database.NextValue(tx, memberCounter)
		if err != nil {
			return err
		}
		m.MemberNumber = numbering.MemberNumber(seq)
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	return &CreateResult{ID: m.ID.String(), MemberNumber: m.MemberNumber}, nil
}

// List returns every member for admins, otherwise only the caller's own memberships.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Member, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if !actor.IsAdmin() {
		q = q.Where("user_id = ?", actor.UserID)
	}
	out := []domain.Member{}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return out, nil
}

// UpdateStatus moves a member to approved or blocked.
func (s *Service) UpdateStatus(ctx context.Context, id string, in StatusInput) error {
	if in.Status != domain.MemberApproved && in.Status != domain.MemberBlocked {
		return ErrInvalidStatus
	}
	m, err := database.FindByID[domain.Member](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return fmt.Errorf("load member: %w", err)
	}
	if err := s.DB.WithContext(ctx).Model(m).Update("status", in.Status).Error; err != nil {
		return fmt.Errorf("update member status: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := database.DeleteByID[domain.Member](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	return err
}
