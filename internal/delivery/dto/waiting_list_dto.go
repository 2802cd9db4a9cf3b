package dto

import (
	"time"

	"go-clinic-management/pkg/dateparse"

	"github.com/google/uuid"
)

// Request DTOs

type CreateWaitingListRequest struct {
	PatientID     uuid.UUID           `json:"patient_id" validate:"required"`
	DoctorID      uuid.UUID           `json:"doctor_id" validate:"required"`
	ServiceType   string              `json:"service_type" validate:"omitempty,max=100"`
	PreferredDate *dateparse.FlexDate `json:"preferred_date" validate:"required"`
	Priority      *int                `json:"priority" validate:"omitempty,gte=0"`
	Notes         string              `json:"notes" validate:"omitempty"`
}

type UpdateWaitingListRequest struct {
	ServiceType   *string             `json:"service_type" validate:"omitempty,max=100"`
	PreferredDate *dateparse.FlexDate `json:"preferred_date" validate:"omitempty"`
	Status        *string             `json:"status" validate:"omitempty,oneof=waiting booked cancelled"`
	Priority      *int                `json:"priority" validate:"omitempty,gte=0"`
	Notes         *string             `json:"notes" validate:"omitempty"`
}

type BookWaitingListRequest struct {
	AppointmentDate *dateparse.FlexDate `json:"appointment_date" validate:"required"`
	AppointmentTime string              `json:"appointment_time" validate:"required,hhmm"`
}

// Response DTOs

type WaitingListEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	PatientID     uuid.UUID `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	ServiceType   string    `json:"service_type,omitempty"`
	PreferredDate string    `json:"preferred_date"`
	Status        string    `json:"status"`
	Priority      int       `json:"priority"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type WaitingListResponse struct {
	Entries []WaitingListEntryResponse `json:"entries"`
	Total   int                        `json:"total"`
}
