package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Certificate struct {
	Base
	CertificateType   string            `gorm:"column:certificate_type;not null" json:"certificate_type"`
	RecipientName     string            `gorm:"column:recipient_name;not null" json:"recipient_name"`
	RecipientEmail    string            `gorm:"column:recipient_email;not null;index" json:"recipient_email"`
	TemplateID        string            `gorm:"column:template_id;not null" json:"template_id"`
	CertificateNumber string            `gorm:"column:certificate_number;uniqueIndex;not null" json:"certificate_number"`
	IssueDate         time.Time         `gorm:"column:issue_date;not null" json:"issue_date"`
	Content           datatypes.JSONMap `gorm:"column:content" json:"content"`
	QRData            string            `gorm:"column:qr_data;not null" json:"qr_data"`
	IssuedBy          string            `gorm:"column:issued_by;not null" json:"issued_by"`
}

func (Certificate) TableName() string {
	return "certificates"
}

type Receipt struct {
	Base
	ReceiptNumber  string  `gorm:"column:receipt_number;uniqueIndex;not null" json:"receipt_number"`
	ReceiptType    string  `gorm:"column:receipt_type;not null" json:"receipt_type"`
	RecipientName  string  `gorm:"column:recipient_name;not null" json:"recipient_name"`
	RecipientEmail string  `gorm:"column:recipient_email;not null" json:"recipient_email"`
	Amount         float64 `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	Description    *string `gorm:"column:description" json:"description"`
	QRData         string  `gorm:"column:qr_data;not null" json:"qr_data"`
	CreatedBy      string  `gorm:"column:created_by;not null" json:"created_by"`
}

func (Receipt) TableName() string {
	return "receipts"
}
