package auth

import (
	"context"
	"errors"
	"fmt"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"
	"nvp-welfare-backend/internal/pkg/constants"
	"nvp-welfare-backend/internal/pkg/password"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TokenIssuer is satisfied by *token.Issuer.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

type Service struct {
	DB     *gorm.DB
	Tokens TokenIssuer
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Phone    string `json:"phone" validate:"required,phone"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the user shape returned to clients (no credential).
type PublicUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

func toPublic(u *domain.User) PublicUser {
	return PublicUser{ID: u.ID.String(), Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role, IsActive: u.IsActive}
}

// Register creates an inactive member account awaiting admin approval.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	email := validation.NormalizeEmail(in.Email)

	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("register: lookup: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash: %w", err)
	}
	u := domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         constants.Member,
		IsActive:     false,
	}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register: create: %w", err)
	}
	return s.issue(&u)
}

// Login checks the password first, so a wrong password on a blocked account still reports InvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	var u domain.User
	err := s.DB.WithContext(ctx).Where("email = ?", validation.NormalizeEmail(in.Email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: lookup: %w", err)
	}
	if !password.Verify(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountBlocked
	}
	return s.issue(&u)
}

// Me returns the caller's account.
func (s *Service) Me(ctx context.Context, userID string) (*PublicUser, error) {
	u, err := database.FindByID[domain.User](ctx, s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	p := toPublic(u)
	return &p, nil
}

// SeedAdmin creates an active admin with the given credentials if the email is unused.
func (s *Service) SeedAdmin(ctx context.Context, email, plain, name string) error {
	email = validation.NormalizeEmail(email)
	if email == "" || plain == "" {
		return nil
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin: lookup: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return fmt.Errorf("seed admin: hash: %w", err)
	}
	if name == "" {
		name = "Administrator"
	}
	u := domain.User{Email: email, PasswordHash: hash, Name: name, Role: constants.Admin, IsActive: true}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return fmt.Errorf("seed admin: create: %w", err)
	}
	log.Info().Str("email", email).Msg("seeded admin account")
	return nil
}

func (s *Service) issue(u *domain.User) (*AuthResult, error) {
	tok, err := s.Tokens.Issue(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: tok, User: toPublic(u)}, nil
}
