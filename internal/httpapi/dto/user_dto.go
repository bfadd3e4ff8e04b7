package dto

import (
	"time"

	"shelfmate/internal/httpapi/models"
)

// UpdateUserRequest: partial profile update, nil fields are left unchanged
type UpdateUserRequest struct {
	FirstName         *string    `json:"first_name,omitempty" binding:"omitempty,min=2"`
	LastName          *string    `json:"last_name,omitempty" binding:"omitempty,min=2"`
	Email             *string    `json:"email,omitempty" binding:"omitempty,email"`
	Password          *string    `json:"password,omitempty" binding:"omitempty,min=8"`
	CPF               *string    `json:"cpf,omitempty" binding:"omitempty,len=11,numeric"`
	Avatar            *string    `json:"avatar,omitempty"`
	Biography         *string    `json:"biography,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	AddressStreet     *string    `json:"address_street,omitempty"`
	AddressCity       *string    `json:"address_city,omitempty"`
	AddressState      *string    `json:"address_state,omitempty"`
	AddressZip        *string    `json:"address_zip,omitempty"`
	AnnualReadingGoal *int       `json:"annual_reading_goal,omitempty"`
}

// UserResponse: public view of a user, never carries the password hash
type UserResponse struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Avatar            *string    `json:"avatar,omitempty"`
	Biography         *string    `json:"biography,omitempty"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	AddressCity       *string    `json:"address_city,omitempty"`
	AddressState      *string    `json:"address_state,omitempty"`
	AnnualReadingGoal *int       `json:"annual_reading_goal,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		Avatar:            user.Avatar,
		Biography:         user.Biography,
		DateOfBirth:       user.DateOfBirth,
		AddressCity:       user.AddressCity,
		AddressState:      user.AddressState,
		AnnualReadingGoal: user.AnnualReadingGoal,
		CreatedAt:         user.CreatedAt,
	}
}
