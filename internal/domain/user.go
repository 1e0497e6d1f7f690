package domain

type User struct {
	Base
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Name         string `gorm:"column:name;not null" json:"name"`
	Phone        string `gorm:"column:phone" json:"phone"`
	Role         string `gorm:"column:role;type:varchar(20);not null;index" json:"role"`
	IsActive     bool   `gorm:"column:is_active;not null" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
