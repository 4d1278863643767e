package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	UserName       string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail      string `json:"user_email" validate:"required,email"`
	UserPassword   string `json:"user_password" validate:"required,min=8"`
	UserPhone      string `json:"user_phone" validate:"omitempty,min=8,max=20"`
	UserStateID    uint   `json:"user_state_id"`
	UserRangeID    uint   `json:"user_range_id"`
	UserDistrictID uint   `json:"user_district_id"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	UserPhone      string    `json:"user_phone"`
	UserRole       string    `json:"user_role"`
	UserStateID    uint      `json:"user_state_id"`
	UserRangeID    uint      `json:"user_range_id"`
	UserDistrictID uint      `json:"user_district_id"`
}
