package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                string     `gorm:"primaryKey;type:uuid" json:"id"`
	FirstName         string     `gorm:"not null" json:"first_name"`
	LastName          string     `gorm:"not null" json:"last_name"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	Password          string     `gorm:"column:password_hash;not null" json:"-"` // Not shown in JSON
	CPF               string     `gorm:"column:cpf;uniqueIndex;not null" json:"cpf"`
	Avatar            *string    `json:"avatar,omitempty"`
	Biography         *string    `gorm:"type:text" json:"biography,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	AddressStreet     *string    `json:"address_street,omitempty"`
	AddressCity       *string    `json:"address_city,omitempty"`
	AddressState      *string    `json:"address_state,omitempty"`
	AddressZip        *string    `json:"address_zip,omitempty"`
	AnnualReadingGoal *int       `json:"annual_reading_goal,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
