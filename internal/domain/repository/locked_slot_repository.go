package repository

import (
	"time"

	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LockedSlotRepository interface {
	Create(db *gorm.DB, slot *entity.LockedSlot) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.LockedSlot, error)
	// FindByDetails matches the (doctor, calendar day, time) triple using an
	// inclusive [dayStart, dayEnd] range over the stored date.
	FindByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error)
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.LockedSlot, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.LockedSlot, error)
	DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error)
	// DeleteByDetails removes every lock matching the triple as one batch.
	DeleteByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (int64, error)
}
