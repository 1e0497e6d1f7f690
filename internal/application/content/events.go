package content

import (
	"context"

	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/pkg/validation"
)

type EventInput struct {
	Title           string  `json:"title" validate:"required,max=300"`
	Description     string  `json:"description" validate:"required"`
	EventDate       string  `json:"event_date" validate:"required"`
	Location        string  `json:"location" validate:"required,max=300"`
	RegistrationFee float64 `json:"registration_fee" validate:"gte=0"`
	IsPaid          bool    `json:"is_paid"`
	MaxParticipants *int    `json:"max_participants" validate:"omitempty,gt=0"`
	ImageURL        *string `json:"image_url" validate:"omitempty,max=1024"`
}

func (s *Service) CreateEvent(ctx context.Context, in EventInput) (*Created, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	when, err := validation.ParseDate("event_date", in.EventDate)
	if err != nil {
		return nil, err
	}
	e := domain.Event{
		Title:           in.Title,
		Description:     in.Description,
		EventDate:       when,
		Location:        in.Location,
		RegistrationFee: in.RegistrationFee,
		IsPaid:          in.IsPaid,
		MaxParticipants: in.MaxParticipants,
		ImageURL:        in.ImageURL,
	}
	return s.create(ctx, &e, func() string { return e.ID.String() }, "event")
}

// ListEvents returns events by date, soonest first.
func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return list[domain.Event](ctx, s.DB.Order("event_date ASC"), "events")
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	return deleteOne[domain.Event](ctx, s.DB, id, ErrEventNotFound)
}
