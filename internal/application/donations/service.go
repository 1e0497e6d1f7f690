package donations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"nvp-welfare-backend/internal/application/emails"
	"nvp-welfare-backend/internal/application/payments"
	"nvp-welfare-backend/internal/domain"
	"nvp-welfare-backend/internal/infrastructure/database"
	"nvp-welfare-backend/internal/pkg/numbering"
	"nvp-welfare-backend/internal/pkg/qrcode"
	"nvp-welfare-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	DB            *gorm.DB
	Gateway       payments.Gateway
	Notify        emails.Notifier
	KeyID         string
	Currency      string
	VerifyBaseURL string
}

type CreateOrderInput struct {
	Amount           float64 `json:"amount" validate:"gt=0"`
	DonorName        string  `json:"donor_name" validate:"required,max=200"`
	DonorEmail       string  `json:"donor_email" validate:"required,email"`
	DonorPhone       string  `json:"donor_phone" validate:"required,phone"`
	Purpose          *string `json:"purpose" validate:"omitempty,max=500"`
	CampaignID       *string `json:"campaign_id" validate:"omitempty,uuid"`
	ReferrerMemberID *string `json:"referrer_member_id" validate:"omitempty,max=64"`
	Is80GEligible    *bool   `json:"is_80g_eligible"`
}

type OrderResult struct {
	OrderID      string `json:"order_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	DonationID   string `json:"donation_id"`
	KeyID        string `json:"key_id"`
	Gateway      string `json:"gateway"`
	ClientSecret string `json:"client_secret,omitempty"`
	Token        string `json:"token,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
}

type VerifyInput struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature"`
}

type OfflineInput struct {
	Amount           float64 `json:"amount" validate:"gt=0"`
	DonorName        string  `json:"donor_name" validate:"required,max=200"`
	DonorEmail       string  `json:"donor_email" validate:"required,email"`
	DonorPhone       string  `json:"donor_phone" validate:"omitempty,phone"`
	PaymentMethod    string  `json:"payment_method" validate:"required,oneof=cash bank_transfer"`
	Purpose          *string `json:"purpose" validate:"omitempty,max=500"`
	CampaignID       *string `json:"campaign_id" validate:"omitempty,uuid"`
	ReferrerMemberID *string `json:"referrer_member_id" validate:"omitempty,max=64"`
	Is80GEligible    *bool   `json:"is_80g_eligible"`
}

// ToMinor converts rupees to paise, rounding to the nearest unit.
func ToMinor(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func eligible(v *bool) bool {
	return v == nil || *v
}

// CreateOrder opens a gateway order and records a pending donation keyed by its id.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderResult, error) {
	if s.Gateway == nil {
		return nil, ErrGatewayUnavailable
	}
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	minor := ToMinor(in.Amount)
	if s.Gateway.Name() == payments.ProviderMidtrans && minor%100 != 0 {
		return nil, ErrFractionalAmount
	}
	now := time.Now().UTC()
	receipt := numbering.ReceiptNumber(now)
	description := "Donation to NVP Welfare Foundation"
	if in.Purpose != nil && *in.Purpose != "" {
		description = *in.Purpose
	}
	meta := map[string]string{"receipt_number": receipt}
	if in.CampaignID != nil {
		meta["campaign_id"] = *in.CampaignID
	}
	order, err := s.Gateway.CreateOrder(ctx, payments.OrderRequest{
		Reference:   "NVP-" + uuid.NewString(),
		AmountMinor: minor,
		Currency:    s.Currency,
		DonorName:   in.DonorName,
		DonorEmail:  in.DonorEmail,
		DonorPhone:  in.DonorPhone,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		log.Error().Err(err).Str("gateway", s.Gateway.Name()).Msg("donations: gateway order failed")
		return nil, ErrGatewayFailed
	}

	orderID := order.OrderID
	d := domain.Donation{
		DonorName:        in.DonorName,
		DonorEmail:       validation.NormalizeEmail(in.DonorEmail),
		DonorPhone:       in.DonorPhone,
		Amount:           in.Amount,
		PaymentMethod:    domain.PaymentOnline,
		Gateway:          s.Gateway.Name(),
		OrderID:          &orderID,
		Status:           domain.DonationPending,
		ReceiptNumber:    receipt,
		Purpose:          in.Purpose,
		ReferrerMemberID: in.ReferrerMemberID,
		CampaignID:       in.CampaignID,
		Is80GEligible:    eligible(in.Is80GEligible),
	}
	if err := s.DB.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	currency := order.Currency
	if currency == "" {
		currency = s.Currency
	}
	return &OrderResult{
		OrderID:      orderID,
		Amount:       order.AmountMinor,
		Currency:     currency,
		DonationID:   d.ID.String(),
		KeyID:        s.KeyID,
		Gateway:      s.Gateway.Name(),
		ClientSecret: order.ClientSecret,
		Token:        order.Token,
		RedirectURL:  order.RedirectURL,
	}, nil
}

// VerifyPayment marks the donation for order_id completed. Repeated calls succeed without a second email.
func (s *Service) VerifyPayment(ctx context.Context, in VerifyInput) (*domain.Donation, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	log.Warn().Str("order_id", in.OrderID).Msg("donations: verify-payment trusts caller supplied ids; signed webhooks are authoritative")
	var d *domain.Donation
	var completed bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		d, completed, err = completeTx(tx, in.OrderID, in.PaymentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if completed {
		s.sendReceipt(d)
	}
	return d, nil
}

// HandleNotification applies a verified webhook once per (gateway, event id).
func (s *Service) HandleNotification(ctx context.Context, n *payments.Notification, raw []byte) error {
	var d *domain.Donation
	var completed bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ev := domain.PaymentEvent{
			Gateway:     n.Gateway,
			EventID:     n.EventID,
			EventType:   n.EventType,
			OrderID:     n.OrderID,
			AmountMinor: n.AmountMinor,
			Currency:    n.Currency,
			RawPayload:  datatypes.JSON(raw),
		}
		if !json.Valid(raw) {
			ev.RawPayload = datatypes.JSON("{}")
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ev)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Info().Str("gateway", n.Gateway).Str("event_id", n.EventID).Msg("donations: duplicate webhook ignored")
			return nil
		}
		if !n.Succeeded || n.OrderID == "" {
			return nil
		}
		var err error
		d, completed, err = completeTx(tx, n.OrderID, n.PaymentID)
		return err
	})
	if err != nil {
		return err
	}
	if completed {
		log.Info().Str("order_id", n.OrderID).Str("gateway", n.Gateway).Msg("donations: completed by webhook")
		s.sendReceipt(d)
	}
	return nil
}

// completeTx locks the donation row and moves it to completed. The bool reports a state change.
func completeTx(tx *gorm.DB, orderID, paymentID string) (*domain.Donation, bool, error) {
	var d domain.Donation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("order_id = ?", orderID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, ErrDonationNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("load donation: %w", err)
	}
	if d.Status == domain.DonationCompleted {
		return &d, false, nil
	}
	now := time.Now().UTC()
	d.Status = domain.DonationCompleted
	d.PaymentID = &paymentID
	d.CompletedAt = &now
	if err := tx.Model(&d).Updates(map[string]interface{}{
		"status":       d.Status,
		"payment_id":   paymentID,
		"completed_at": now,
	}).Error; err != nil {
		return nil, false, fmt.Errorf("complete donation: %w", err)
	}
	return &d, true, nil
}

// RecordOffline stores a cash or bank transfer donation as completed and emails the receipt.
func (s *Service) RecordOffline(ctx context.Context, in OfflineInput) (*domain.Donation, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	d := domain.Donation{
		DonorName:        in.DonorName,
		DonorEmail:       validation.NormalizeEmail(in.DonorEmail),
		DonorPhone:       in.DonorPhone,
		Amount:           in.Amount,
		PaymentMethod:    in.PaymentMethod,
		Status:           domain.DonationCompleted,
		ReceiptNumber:    numbering.ReceiptNumber(now),
		Purpose:          in.Purpose,
		ReferrerMemberID: in.ReferrerMemberID,
		CampaignID:       in.CampaignID,
		Is80GEligible:    eligible(in.Is80GEligible),
		CompletedAt:      &now,
	}
	if err := s.DB.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, fmt.Errorf("record offline donation: %w", err)
	}
	s.sendReceipt(&d)
	return &d, nil
}

// List returns all donations for admins, otherwise those made with the caller's email.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Donation, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if !actor.IsAdmin() {
		q = q.Where("donor_email = ?", validation.NormalizeEmail(actor.Email))
	}
	out := []domain.Donation{}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := database.DeleteByID[domain.Donation](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDonationNotFound
	}
	return err
}

func (s *Service) sendReceipt(d *domain.Donation) {
	if s.Notify == nil || d == nil {
		return
	}
	qr, err := qrcode.DataURI(qrcode.VerifyURL(s.VerifyBaseURL, "receipt", d.ReceiptNumber))
	if err != nil {
		log.Warn().Err(err).Str("receipt", d.ReceiptNumber).Msg("donations: qr generation failed")
	}
	paymentID := ""
	if d.PaymentID != nil {
		paymentID = *d.PaymentID
	}
	date := d.CreatedAt
	if d.CompletedAt != nil {
		date = *d.CompletedAt
	}
	s.Notify.Notify(emails.DonationReceipt{
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		Amount:        d.Amount,
		ReceiptNumber: d.ReceiptNumber,
		PaymentID:     paymentID,
		Date:          date,
		Is80GEligible: d.Is80GEligible,
		QRDataURI:     qr,
	}.Message())
}
