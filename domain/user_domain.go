package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessSendVerifyMail = "verification email sent"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedSendVerifyMail = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrHashPassword           = errors.New("failed to hash password")
	ErrInvalidBirthDate       = errors.New("invalid birth date")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		HeightCm    float64 `json:"height_cm" validate:"omitempty,gt=0"`
		WeightKg    float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		BirthDate   string  `json:"birth_date" validate:"omitempty"`
		DailyKcal   int     `json:"daily_kcal_goal" validate:"omitempty,gt=0"`
		ProteinGoal float64 `json:"protein_goal_g" validate:"omitempty,gt=0"`
	}

	ProfileResponse struct {
		ID          string     `json:"id"`
		Name        string     `json:"name"`
		Email       string     `json:"email"`
		IsVerified  bool       `json:"is_verified"`
		HeightCm    float64    `json:"height_cm,omitempty"`
		WeightKg    float64    `json:"weight_kg,omitempty"`
		BirthDate   *time.Time `json:"birth_date,omitempty"`
		DailyKcal   int        `json:"daily_kcal_goal,omitempty"`
		ProteinGoal float64    `json:"protein_goal_g,omitempty"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
