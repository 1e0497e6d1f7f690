package domain

import "gorm.io/datatypes"

const (
	EnquiryPending = "pending"
	EnquiryReplied = "replied"
)

type Enquiry struct {
	Base
	Name    string `gorm:"column:name;not null" json:"name"`
	Email   string `gorm:"column:email;not null" json:"email"`
	Phone   string `gorm:"column:phone;not null" json:"phone"`
	Message string `gorm:"column:message;type:text;not null" json:"message"`
	Status  string `gorm:"column:status;type:varchar(20);not null" json:"status"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}

type Beneficiary struct {
	Base
	Name        string         `gorm:"column:name;not null" json:"name"`
	Age         *int           `gorm:"column:age" json:"age"`
	Gender      *string        `gorm:"column:gender" json:"gender"`
	Address     string         `gorm:"column:address;not null" json:"address"`
	Phone       *string        `gorm:"column:phone" json:"phone"`
	Category    string         `gorm:"column:category;not null;index" json:"category"`
	Description *string        `gorm:"column:description;type:text" json:"description"`
	HelpHistory datatypes.JSON `gorm:"column:help_history" json:"help_history"`
}

func (Beneficiary) TableName() string {
	return "beneficiaries"
}
