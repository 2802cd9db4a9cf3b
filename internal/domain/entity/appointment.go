package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// DefaultAppointmentDuration is the booking duration in minutes when the
// caller does not supply one.
const DefaultAppointmentDuration = 15

// Appointment is one bookable unit on a doctor's calendar. PatientName and
// DoctorName are snapshots taken at creation time; they are not kept in sync
// with later renames.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName     string            `gorm:"type:varchar(255)" json:"patient_name"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName      string            `gorm:"type:varchar(255)" json:"doctor_name"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(10)" json:"appointment_time"`
	ServiceType     string            `gorm:"type:varchar(100)" json:"service_type,omitempty"`
	Duration        int               `gorm:"not null;default:15" json:"duration"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       uuid.UUID         `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// BlocksSlot reports whether the appointment still occupies its slot.
// Cancelled and no-show records free the slot for rebooking.
func (a *Appointment) BlocksSlot() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusCompleted
}
