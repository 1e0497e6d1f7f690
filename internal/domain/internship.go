package domain

import (
	"time"

	"gorm.io/datatypes"
)

const ApplicationPending = "pending"

type InternshipApplication struct {
	ApplicantID    string    `json:"applicant_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	ApplicantPhone string    `json:"applicant_phone"`
	AppliedAt      time.Time `json:"applied_at"`
	Status         string    `json:"status"`
}

type Internship struct {
	Base
	Title        string                                     `gorm:"column:title;not null" json:"title"`
	Description  string                                     `gorm:"column:description;type:text;not null" json:"description"`
	Duration     string                                     `gorm:"column:duration;not null" json:"duration"`
	Positions    int                                        `gorm:"column:positions;not null" json:"positions"`
	Applications datatypes.JSONSlice[InternshipApplication] `gorm:"column:applications" json:"applications"`
}

func (Internship) TableName() string {
	return "internships"
}
