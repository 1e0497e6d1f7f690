package content

import (
	"context"
	"fmt"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"
)

type CampaignInput struct {
	Title       string  `json:"title" validate:"required,max=300"`
	Description string  `json:"description" validate:"required"`
	GoalAmount  float64 `json:"goal_amount" validate:"gt=0"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=1024"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

func (s *Service) CreateCampaign(ctx context.Context, in CampaignInput) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	start, err := validation.ParseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := validation.ParseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	c := domain.Campaign{
		Title:       in.Title,
		Description: in.Description,
		GoalAmount:  in.GoalAmount,
		StartDate:   start,
		EndDate:     end,
		ImageURL:    in.ImageURL,
		Status:      status,
	}
	return s.create(ctx, &c, func() string { return c.ID.String() }, "campaign")
}

type campaignTotal struct {
	CampaignID string
	Total      float64
}

// ListCampaigns returns active campaigns with current_amount summed from completed donations.
func (s *Service) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := list[domain.Campaign](ctx, s.DB.Where("status = ?", domain.StatusActive).Order("created_at DESC"), "campaigns")
	if err != nil || len(rows) == 0 {
		return rows, err
	}
	ids := make([]string, 0, len(rows))
	for _, c := range rows {
		ids = append(ids, c.ID.String())
	}
	var totals []campaignTotal
	if err := s.DB.WithContext(ctx).Model(&domain.Donation{}).
		Select("campaign_id, COALESCE(SUM(amount), 0) AS total").
		Where("status = ? AND campaign_id IN ?", domain.DonationCompleted, ids).
		Group("campaign_id").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("sum campaign donations: %w", err)
	}
	byID := make(map[string]float64, len(totals))
	for _, t := range totals {
		byID[t.CampaignID] = t.Total
	}
	for i := range rows {
		rows[i].CurrentAmount = byID[rows[i].ID.String()]
	}
	return rows, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	return deleteOne[domain.Campaign](ctx, s.DB, id, ErrCampaignNotFound)
}
