package repository

import (
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileRepository interface {
	Create(db *gorm.DB, file *entity.FileRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FileRecord, error)
	FindAll(db *gorm.DB) ([]entity.FileRecord, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
