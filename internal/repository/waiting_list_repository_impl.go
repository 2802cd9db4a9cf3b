package repository

import (
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type waitingListRepository struct{}

func NewWaitingListRepository() domainRepo.WaitingListRepository {
	return &waitingListRepository{}
}

func (r *waitingListRepository) Create(db *gorm.DB, entry *entity.WaitingListEntry) error {
	return db.Create(entry).Error
}

func (r *waitingListRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.WaitingListEntry, error) {
	var entry entity.WaitingListEntry
	err := db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *waitingListRepository) FindAll(db *gorm.DB) ([]entity.WaitingListEntry, error) {
	var entries []entity.WaitingListEntry
	err := db.Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *waitingListRepository) FindWaitingByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.WaitingListEntry, error) {
	var entries []entity.WaitingListEntry
	err := db.Where("doctor_id = ? AND status = ?", doctorID, entity.WaitingListStatusWaiting).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *waitingListRepository) Update(db *gorm.DB, entry *entity.WaitingListEntry) error {
	return db.Save(entry).Error
}

func (r *waitingListRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.WaitingListEntry{})
	return result.RowsAffected, result.Error
}
