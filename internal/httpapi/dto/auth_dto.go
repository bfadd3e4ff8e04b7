package dto

import "time"

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	FirstName         string     `json:"first_name" binding:"required,min=2"`
	LastName          string     `json:"last_name" binding:"required,min=2"`
	Email             string     `json:"email" binding:"required,email"`
	Password          string     `json:"password" binding:"required,min=8"`
	CPF               string     `json:"cpf" binding:"required,len=11,numeric"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Biography         *string    `json:"biography,omitempty"`
	Avatar            *string    `json:"avatar,omitempty"`
	AnnualReadingGoal *int       `json:"annual_reading_goal,omitempty"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// RefreshTokenRequest: payload for refreshing an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshResponse: response payload after refreshing an access token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}
