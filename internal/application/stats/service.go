package stats

import (
	"context"
	"fmt"

	"nvp-welfare-backend/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type Stats struct {
	TotalMembers       int64   `json:"total_members"`
	TotalDonations     int64   `json:"total_donations"`
	TotalAmount        float64 `json:"total_amount"`
	TotalBeneficiaries int64   `json:"total_beneficiaries"`
	TotalCampaigns     int64   `json:"total_campaigns"`
}

// Collect computes the public dashboard numbers on every call.
func (s *Service) Collect(ctx context.Context) (*Stats, error) {
	db := s.DB.WithContext(ctx)
	var out Stats
	if err := db.Model(&domain.Member{}).Where("status = ?", domain.MemberApproved).Count(&out.TotalMembers).Error; err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	if err := db.Model(&domain.Donation{}).Where("status = ?", domain.DonationCompleted).Count(&out.TotalDonations).Error; err != nil {
		return nil, fmt.Errorf("count donations: %w", err)
	}
	if err := db.Model(&domain.Donation{}).
		Where("status = ?", domain.DonationCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.TotalAmount).Error; err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}
	if err := db.Model(&domain.Beneficiary{}).Count(&out.TotalBeneficiaries).Error; err != nil {
		return nil, fmt.Errorf("count beneficiaries: %w", err)
	}
	if err := db.Model(&domain.Campaign{}).Where("status = ?", domain.StatusActive).Count(&out.TotalCampaigns).Error; err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}
	return &out, nil
}
