// Package content manages the public site entities: news, activities,
// campaigns, events, projects, internships and designations.
package content

import (
	"context"
	"errors"
	"fmt"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"

	"gorm.io/gorm"
)

var (
	ErrNewsNotFound        = domain.NewError(domain.ErrNotFound, "News not found")
	ErrActivityNotFound    = domain.NewError(domain.ErrNotFound, "Activity not found")
	ErrCampaignNotFound    = domain.NewError(domain.ErrNotFound, "Campaign not found")
	ErrEventNotFound       = domain.NewError(domain.ErrNotFound, "Event not found")
	ErrProjectNotFound     = domain.NewError(domain.ErrNotFound, "Project not found")
	ErrInternshipNotFound  = domain.NewError(domain.ErrNotFound, "Internship not found")
	ErrDesignationNotFound = domain.NewError(domain.ErrNotFound, "Designation not found")
)

type Service struct {
	DB *gorm.DB
}

// Created is returned by every create operation.
type Created struct {
	ID string `json:"id"`
}

func (s *Service) create(ctx context.Context, row interface{}, id func() string, what string) (*Created, error) {
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create %s: %w", what, err)
	}
	return &Created{ID: id()}, nil
}

func deleteOne[T any](ctx context.Context, db *gorm.DB, id string, notFound error) error {
	err := database.DeleteByID[T](ctx, db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

func list[T any](ctx context.Context, q *gorm.DB, what string) ([]T, error) {
	out := []T{}
	if err := q.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", what, err)
	}
	return out, nil
}
