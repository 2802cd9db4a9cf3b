package repository

import (
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaitingListRepository interface {
	Create(db *gorm.DB, entry *entity.WaitingListEntry) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.WaitingListEntry, error)
	// FindAll returns every entry; aging, filtering and ordering happen in
	// memory at the usecase layer.
	FindAll(db *gorm.DB) ([]entity.WaitingListEntry, error)
	FindWaitingByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WaitingListEntry, error)
	Update(db *gorm.DB, entry *entity.WaitingListEntry) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
