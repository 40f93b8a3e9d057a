package dto

import (
	"time"

	"coursehub_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserFirstName string `json:"user_first_name" validate:"required,min=1,max=100"`
	UserLastName  string `json:"user_last_name" validate:"omitempty,max=100"`
	UserEmail     string `json:"user_email" validate:"required,email"`
	UserPassword  string `json:"user_password" validate:"required,min=8,max=72"`
	UserPhone     string `json:"user_phone" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UpdateProfileRequest struct {
	UserFirstName *string `json:"user_first_name" validate:"omitempty,min=1,max=100"`
	UserLastName  *string `json:"user_last_name" validate:"omitempty,max=100"`
	UserPhone     *string `json:"user_phone" validate:"omitempty,max=30"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type UserDTO struct {
	UserID        string    `json:"user_id"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserPhone     string    `json:"user_phone"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:        m.UserID,
		UserFirstName: m.UserFirstName,
		UserLastName:  m.UserLastName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserPhone:     m.UserPhone,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
