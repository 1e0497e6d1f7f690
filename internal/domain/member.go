package domain

import "time"

const (
	MemberPending  = "pending"
	MemberApproved = "approved"
	MemberBlocked  = "blocked"
)

type Member struct {
	Base
	UserID         string    `gorm:"column:user_id;not null;index" json:"user_id"`
	MemberNumber   string    `gorm:"column:member_number;uniqueIndex;not null" json:"member_number"`
	Designation    string    `gorm:"column:designation;not null" json:"designation"`
	DesignationFee float64   `gorm:"column:designation_fee;type:decimal(12,2);not null" json:"designation_fee"`
	DateOfBirth    *string   `gorm:"column:date_of_birth" json:"date_of_birth"`
	Address        *string   `gorm:"column:address" json:"address"`
	City           *string   `gorm:"column:city" json:"city"`
	State          *string   `gorm:"column:state" json:"state"`
	Pincode        *string   `gorm:"column:pincode" json:"pincode"`
	PhotoURL       *string   `gorm:"column:photo_url" json:"photo_url"`
	ReferrerID     *string   `gorm:"column:referrer_id" json:"referrer_id"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	JoinedAt       time.Time `gorm:"column:joined_at" json:"joined_at"`
}

func (Member) TableName() string {
	return "members"
}

// Counter backs atomic sequences such as member numbers.
type Counter struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value int64  `gorm:"column:value;not null"`
}

func (Counter) TableName() string {
	return "counters"
}
