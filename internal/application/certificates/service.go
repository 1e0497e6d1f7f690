package certificates

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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultTemplate = "default"

var ErrCertificateNotFound = domain.NewError(domain.ErrNotFound, "Certificate not found")

type Service struct {
	DB            *gorm.DB
	Notify        emails.Notifier
	VerifyBaseURL string
}

type IssueInput struct {
	CertificateType string                 `json:"certificate_type" validate:"required,max=60"`
	RecipientName   string                 `json:"recipient_name" validate:"required,max=200"`
	RecipientEmail  string                 `json:"recipient_email" validate:"required,email"`
	TemplateID      string                 `json:"template_id" validate:"omitempty,max=60"`
	Content         map[string]interface{} `json:"content"`
}

type IssueResult struct {
	ID                string `json:"id"`
	CertificateNumber string `json:"certificate_number"`
	QRData            string `json:"qr_data"`
}

// Issue stores a numbered certificate with its verification link and emails the recipient.
func (s *Service) Issue(ctx context.Context, in IssueInput, actor domain.Actor) (*IssueResult, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	number := numbering.CertificateNumber(now)
	template := in.TemplateID
	if template == "" {
		template = defaultTemplate
	}
	content := datatypes.JSONMap{}
	for k, v := range in.Content {
		content[k] = v
	}
	cert := domain.Certificate{
		CertificateType:   in.CertificateType,
		RecipientName:     in.RecipientName,
		RecipientEmail:    validation.NormalizeEmail(in.RecipientEmail),
		TemplateID:        template,
		CertificateNumber: number,
		IssueDate:         now,
		Content:           content,
		QRData:            qrcode.VerifyURL(s.VerifyBaseURL, "certificate", number),
		IssuedBy:          actor.UserID,
	}
	if err := s.DB.WithContext(ctx).Create(&cert).Error; err != nil {
		return nil, fmt.Errorf("issue certificate: %w", err)
	}
	s.notify(&cert)
	return &IssueResult{ID: cert.ID.String(), CertificateNumber: number, QRData: cert.QRData}, nil
}

func (s *Service) notify(cert *domain.Certificate) {
	if s.Notify == nil {
		return
	}
	qr, err := qrcode.DataURI(cert.QRData)
	if err != nil {
		log.Warn().Err(err).Str("certificate", cert.CertificateNumber).Msg("certificates: qr generation failed")
	}
	s.Notify.Notify(emails.CertificateIssued{
		RecipientName:     cert.RecipientName,
		RecipientEmail:    cert.RecipientEmail,
		CertificateNumber: cert.CertificateNumber,
		CertificateType:   cert.CertificateType,
		QRDataURI:         qr,
	}.Message())
}

// List returns all certificates for admins, otherwise those issued to the caller's email.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Certificate, error) {
	q := s.DB.WithContext(ctx).Order("issue_date DESC")
	if !actor.IsAdmin() {
		q = q.Where("recipient_email = ?", validation.NormalizeEmail(actor.Email))
	}
	out := []domain.Certificate{}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := database.DeleteByID[domain.Certificate](ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCertificateNotFound
	}
	return err
}

// VerifyByNumber is the public lookup behind the QR link.
func (s *Service) VerifyByNumber(ctx context.Context, number string) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := s.DB.WithContext(ctx).Where("certificate_number = ?", number).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCertificateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("verify certificate: %w", err)
	}
	return &cert, nil
}
