package users

import (
	"context"
	"errors"
	"fmt"

	authsvc "nvp-welfare-backend/internal/application/auth"
	"nvp-welfare-backend/internal/application/emails"
	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"
	"nvp-welfare-backend/internal/pkg/constants"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrUserNotFound = domain.NewError(domain.ErrNotFound, "User not found")

type Service struct {
	DB     *gorm.DB
	Notify emails.Notifier
}

// ListMembers returns all accounts with role member, newest first, without credentials.
func (s *Service) ListMembers(ctx context.Context) ([]authsvc.PublicUser, error) {
	var rows []domain.User
	if err := s.DB.WithContext(ctx).
		Where("role = ?", constants.Member).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list member users: %w", err)
	}
	out := make([]authsvc.PublicUser, 0, len(rows))
	for _, u := range rows {
		out = append(out, authsvc.PublicUser{ID: u.ID.String(), Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role, IsActive: u.IsActive})
	}
	return out, nil
}

// Approve activates the account as a member and notifies the user.
func (s *Service) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, true)
}

// Reject demotes the account to public, inactive, and notifies the user.
func (s *Service) Reject(ctx context.Context, id string) error {
	return s.decide(ctx, id, false)
}

func (s *Service) decide(ctx context.Context, id string, approve bool) error {
	u, err := database.FindByID[domain.User](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if err := validateDecision(u); err != nil {
		return err
	}
	role, active := constants.Public, false
	if approve {
		role, active = constants.Member, true
	}
	if err := s.DB.WithContext(ctx).Model(u).Updates(map[string]interface{}{
		"role":      role,
		"is_active": active,
	}).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	log.Info().Str("user_id", id).Bool("approved", approve).Msg("users: membership decision recorded")
	if s.Notify != nil {
		s.Notify.Notify(emails.MembershipDecision{Name: u.Name, Email: u.Email, Approved: approve}.Message())
	}
	return nil
}
