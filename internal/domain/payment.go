package domain

import (
	"gorm.io/datatypes"
)

// PaymentEvent records each verified gateway notification so redeliveries are processed once.
type PaymentEvent struct {
	Base
	Gateway     string         `gorm:"column:gateway;type:varchar(20);not null;uniqueIndex:idx_payment_event" json:"gateway"`
	EventID     string         `gorm:"column:event_id;not null;uniqueIndex:idx_payment_event" json:"event_id"`
	EventType   string         `gorm:"column:event_type;not null" json:"event_type"`
	OrderID     string         `gorm:"column:order_id;index" json:"order_id"`
	AmountMinor int64          `gorm:"column:amount_minor" json:"amount_minor"`
	Currency    string         `gorm:"column:currency" json:"currency"`
	RawPayload  datatypes.JSON `gorm:"column:raw_payload;not null" json:"raw_payload"`
}

func (PaymentEvent) TableName() string {
	return "payment_events"
}
