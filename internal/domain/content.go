package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusActive = "active"
)

type News struct {
	Base
	Title     string  `gorm:"column:title;not null" json:"title"`
	Content   string  `gorm:"column:content;type:text;not null" json:"content"`
	ImageURL  *string `gorm:"column:image_url" json:"image_url"`
	AuthorID  string  `gorm:"column:author_id;not null" json:"author_id"`
	Published bool    `gorm:"column:published;not null;index" json:"published"`
}

func (News) TableName() string {
	return "news"
}

type Activity struct {
	Base
	Title       string                      `gorm:"column:title;not null" json:"title"`
	Description string                      `gorm:"column:description;type:text;not null" json:"description"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	AuthorID    string                      `gorm:"column:author_id;not null" json:"author_id"`
}

func (Activity) TableName() string {
	return "activities"
}

// Campaign.CurrentAmount is not persisted; it is recomputed from completed donations on read.
type Campaign struct {
	Base
	Title         string    `gorm:"column:title;not null" json:"title"`
	Description   string    `gorm:"column:description;type:text;not null" json:"description"`
	GoalAmount    float64   `gorm:"column:goal_amount;type:decimal(12,2);not null" json:"goal_amount"`
	CurrentAmount float64   `gorm:"-" json:"current_amount"`
	StartDate     time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"column:end_date;not null" json:"end_date"`
	ImageURL      *string   `gorm:"column:image_url" json:"image_url"`
	Status        string    `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

type Event struct {
	Base
	Title           string    `gorm:"column:title;not null" json:"title"`
	Description     string    `gorm:"column:description;type:text;not null" json:"description"`
	EventDate       time.Time `gorm:"column:event_date;not null;index" json:"event_date"`
	Location        string    `gorm:"column:location;not null" json:"location"`
	RegistrationFee float64   `gorm:"column:registration_fee;type:decimal(12,2)" json:"registration_fee"`
	IsPaid          bool      `gorm:"column:is_paid" json:"is_paid"`
	MaxParticipants *int      `gorm:"column:max_participants" json:"max_participants"`
	RegisteredCount int       `gorm:"column:registered_count" json:"registered_count"`
	ImageURL        *string   `gorm:"column:image_url" json:"image_url"`
}

func (Event) TableName() string {
	return "events"
}

type Project struct {
	Base
	Title       string     `gorm:"column:title;not null" json:"title"`
	Description string     `gorm:"column:description;type:text;not null" json:"description"`
	Budget      float64    `gorm:"column:budget;type:decimal(12,2);not null" json:"budget"`
	Spent       float64    `gorm:"column:spent;type:decimal(12,2)" json:"spent"`
	StartDate   time.Time  `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`
	Status      string     `gorm:"column:status;type:varchar(20);not null" json:"status"`
}

func (Project) TableName() string {
	return "projects"
}

type Designation struct {
	Base
	Name     string                      `gorm:"column:name;not null" json:"name"`
	Fee      float64                     `gorm:"column:fee;type:decimal(12,2);not null" json:"fee"`
	Benefits datatypes.JSONSlice[string] `gorm:"column:benefits" json:"benefits"`
}

func (Designation) TableName() string {
	return "designations"
}
