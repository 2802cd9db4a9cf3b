package repository

import (
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fileRepository struct{}

func NewFileRepository() domainRepo.FileRepository {
	return &fileRepository{}
}

func (r *fileRepository) Create(db *gorm.DB, file *entity.FileRecord) error {
	return db.Create(file).Error
}

func (r *fileRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FileRecord, error) {
	var file entity.FileRecord
	err := db.Where("id = ?", id).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) FindAll(db *gorm.DB) ([]entity.FileRecord, error) {
	var files []entity.FileRecord
	err := db.Order("created_at DESC").Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.FileRecord{})
	return result.RowsAffected, result.Error
}
