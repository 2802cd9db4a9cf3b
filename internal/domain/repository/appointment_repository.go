package repository

import (
	"time"

	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindByDoctorID returns every appointment for the doctor with no date
	// predicate; slot conflict checks filter the result in memory.
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	// FindInRange returns appointments in the half-open interval
	// [start, end), optionally narrowed to one doctor.
	FindInRange(db *gorm.DB, start, end time.Time, doctorID *uuid.UUID) ([]entity.Appointment, error)
	FindFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
