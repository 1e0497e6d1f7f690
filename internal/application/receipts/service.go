package receipts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nvp-welfare-backend/internal/application/emails"
	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"
	"nvp-welfare-backend/internal/pkg/numbering"
	"nvp-welfare-backend/internal/pkg/qrcode"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrReceiptNotFound = domain.NewError(domain.ErrNotFound, "Receipt not found")

type Service struct {
	DB            *gorm.DB
	Notify        emails.Notifier
	VerifyBaseURL string
}

type CreateInput struct {
	ReceiptType    string  `json:"receipt_type" validate:"required,max=60"`
	RecipientName  string  `json:"recipient_name" validate:"required,max=200"`
	RecipientEmail string  `json:"recipient_email" validate:"required,email"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	Description    *string `json:"description" validate:"omitempty,max=2000"`
}

type CreateResult struct {
	ID            string `json:"id"`
	ReceiptNumber string `json:"receipt_number"`
	QRData        string `json:"qr_data"`
}

func (s *Service) Create(ctx context.Context, in CreateInput, actor domain.Actor) (*CreateResult, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	number := numbering.ReceiptNumber(time.Now())
	r := domain.Receipt{
		ReceiptNumber:  number,
		ReceiptType:    in.ReceiptType,
		RecipientName:  in.RecipientName,
		RecipientEmail: validation.NormalizeEmail(in.RecipientEmail),
		Amount:         in.Amount,
		Description:    in.Description,
		QRData:         qrcode.VerifyURL(s.VerifyBaseURL, "receipt", number),
		CreatedBy:      actor.UserID,
	}
	if err := s.DB.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("create receipt: %w", err)
	}
	if s.Notify != nil {
		qr, err := qrcode.DataURI(r.QRData)
		if err != nil {
			log.Warn().Err(err).Str("receipt", number).Msg("receipts: qr generation failed")
		}
		desc := ""
		if r.Description != nil {
			desc = *r.Description
		}
		s.Notify.Notify(emails.ReceiptIssued{
			RecipientName:  r.RecipientName,
			RecipientEmail: r.RecipientEmail,
			ReceiptNumber:  number,
			ReceiptType:    r.ReceiptType,
			Amount:         r.Amount,
			Description:    desc,
			QRDataURI:      qr,
		}.Message())
	}
	return &CreateResult{ID: r.ID.String(), ReceiptNumber: number, QRData: r.QRData}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Receipt, error) {
	out := []domain.Receipt{}
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := database.DeleteByID[domain.Receipt](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReceiptNotFound
	}
	return err
}

// VerifyByNumber checks admin-issued receipts first, then completed donations.
func (s *Service) VerifyByNumber(ctx context.Context, number string) (interface{}, error) {
	var r domain.Receipt
	err := s.DB.WithContext(ctx).Where("receipt_number = ?", number).First(&r).Error
	if err == nil {
		return &r, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("verify receipt: %w", err)
	}
	var d domain.Donation
	err = s.DB.WithContext(ctx).
		Where("receipt_number = ? AND status = ?", number, domain.DonationCompleted).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("verify donation receipt: %w", err)
	}
	return &d, nil
}
