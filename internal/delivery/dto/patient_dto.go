package dto

import (
	"time"

	"go-clinic-management/pkg/dateparse"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FullName    string              `json:"full_name" validate:"required,min=2,max=255"`
	Email       string              `json:"email" validate:"omitempty,email"`
	PhoneNumber string              `json:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth *dateparse.FlexDate `json:"date_of_birth" validate:"omitempty"`
	Gender      string              `json:"gender" validate:"omitempty,oneof=M F"`
	Address     string              `json:"address" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	FullName    string              `json:"full_name" validate:"omitempty,min=2,max=255"`
	Email       string              `json:"email" validate:"omitempty,email"`
	PhoneNumber string              `json:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth *dateparse.FlexDate `json:"date_of_birth" validate:"omitempty"`
	Gender      string              `json:"gender" validate:"omitempty,oneof=M F"`
	Address     *string             `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	DateOfBirth string     `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Address     string     `json:"address,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
