package repository

import (
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type newsRepository struct{}

func NewNewsRepository() domainRepo.NewsRepository {
	return &newsRepository{}
}

func (r *newsRepository) Create(db *gorm.DB, news *entity.News) error {
	return db.Create(news).Error
}

func (r *newsRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error) {
	var news entity.News
	err := db.Where("id = ?", id).First(&news).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) FindAll(db *gorm.DB, publishedOnly bool) ([]entity.News, error) {
	query := db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var news []entity.News
	err := query.Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (r *newsRepository) Update(db *gorm.DB, news *entity.News) error {
	return db.Save(news).Error
}

func (r *newsRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.News{})
	return result.RowsAffected, result.Error
}
