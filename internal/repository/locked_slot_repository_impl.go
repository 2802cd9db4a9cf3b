package repository

import (
	"errors"
	"time"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type lockedSlotRepository struct{}

func NewLockedSlotRepository() domainRepo.LockedSlotRepository {
	return &lockedSlotRepository{}
}

func (r *lockedSlotRepository) Create(db *gorm.DB, slot *entity.LockedSlot) error {
	return db.Create(slot).Error
}

func (r *lockedSlotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.LockedSlot, error) {
	var slot entity.LockedSlot
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *lockedSlotRepository) FindByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (*entity.LockedSlot, error) {
	var slot entity.LockedSlot
	err := db.Where("doctor_id = ? AND date >= ? AND date <= ? AND time = ?", doctorID, dayStart, dayEnd, timeToken).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *lockedSlotRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.LockedSlot, error) {
	var slots []entity.LockedSlot
	err := db.Where("doctor_id = ? AND date >= ? AND date <= ?", doctorID, dayStart, dayEnd).
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *lockedSlotRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.LockedSlot, error) {
	var slots []entity.LockedSlot
	err := db.Where("doctor_id = ?", doctorID).Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *lockedSlotRepository) DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.LockedSlot{})
	return result.RowsAffected, result.Error
}

// DeleteByDetails removes every lock for the triple inside one transaction so
// the batch applies all-or-nothing.
func (r *lockedSlotRepository) DeleteByDetails(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time, timeToken string) (int64, error) {
	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("doctor_id = ? AND date >= ? AND date <= ? AND time = ?", doctorID, dayStart, dayEnd, timeToken).
			Delete(&entity.LockedSlot{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
