package dto

import (
	"time"

	"go-clinic-management/pkg/dateparse"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID           `json:"patient_id" validate:"required"`
	DoctorID        uuid.UUID           `json:"doctor_id" validate:"required"`
	AppointmentDate *dateparse.FlexDate `json:"appointment_date" validate:"required"`
	AppointmentTime string              `json:"appointment_time" validate:"omitempty,hhmm"`
	ServiceType     string              `json:"service_type" validate:"omitempty,max=100"`
	Duration        int                 `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Notes           string              `json:"notes" validate:"omitempty"`
}

// BookAppointmentRequest is the self-service variant: the patient record is
// resolved (or provisioned) from the caller's identity.
type BookAppointmentRequest struct {
	DoctorID        uuid.UUID           `json:"doctor_id" validate:"required"`
	AppointmentDate *dateparse.FlexDate `json:"appointment_date" validate:"required"`
	AppointmentTime string              `json:"appointment_time" validate:"omitempty,hhmm"`
	ServiceType     string              `json:"service_type" validate:"omitempty,max=100"`
	Duration        int                 `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Notes           string              `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *dateparse.FlexDate `json:"appointment_date" validate:"omitempty"`
	AppointmentTime *string             `json:"appointment_time" validate:"omitempty,hhmm"`
	ServiceType     *string             `json:"service_type" validate:"omitempty,max=100"`
	Duration        *int                `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Status          *string             `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes           *string             `json:"notes" validate:"omitempty"`
}

type ListAppointmentsQuery struct {
	Status    string
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time,omitempty"`
	ServiceType     string    `json:"service_type,omitempty"`
	Duration        int       `json:"duration"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
