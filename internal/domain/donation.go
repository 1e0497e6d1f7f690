package domain

import "time"

const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
	DonationFailed    = "failed"

	PaymentOnline       = "online"
	PaymentCash         = "cash"
	PaymentBankTransfer = "bank_transfer"
)

type Donation struct {
	Base
	DonorName        string     `gorm:"column:donor_name;not null" json:"donor_name"`
	DonorEmail       string     `gorm:"column:donor_email;not null;index" json:"donor_email"`
	DonorPhone       string     `gorm:"column:donor_phone" json:"donor_phone"`
	Amount           float64    `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	PaymentMethod    string     `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	Gateway          string     `gorm:"column:gateway;type:varchar(20)" json:"gateway,omitempty"`
	OrderID          *string    `gorm:"column:order_id;uniqueIndex" json:"order_id"`
	PaymentID        *string    `gorm:"column:payment_id" json:"payment_id"`
	Status           string     `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	ReceiptNumber    string     `gorm:"column:receipt_number;uniqueIndex;not null" json:"receipt_number"`
	Purpose          *string    `gorm:"column:purpose" json:"purpose"`
	ReferrerMemberID *string    `gorm:"column:referrer_member_id" json:"referrer_member_id"`
	CampaignID       *string    `gorm:"column:campaign_id;index" json:"campaign_id"`
	Is80GEligible    bool       `gorm:"column:is_80g_eligible;not null" json:"is_80g_eligible"`
	CompletedAt      *time.Time `gorm:"column:completed_at" json:"completed_at"`
}

func (Donation) TableName() string {
	return "donations"
}
