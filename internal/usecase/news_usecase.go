package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news article not found")

type NewsUsecase interface {
	Create(ctx context.Context, req *dto.CreateNewsRequest, actorID uuid.UUID) (*dto.NewsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	// List returns all articles for staff, published ones only otherwise.
	List(ctx context.Context, publishedOnly bool) (*dto.NewsListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	newsRepo repository.NewsRepository
}

func NewNewsUsecase(db *gorm.DB, log *logrus.Logger, newsRepo repository.NewsRepository) NewsUsecase {
	return &newsUsecase{
		db:       db,
		log:      log,
		newsRepo: newsRepo,
	}
}

func (u *newsUsecase) Create(ctx context.Context, req *dto.CreateNewsRequest, actorID uuid.UUID) (*dto.NewsResponse, error) {
	news := &entity.News{
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		Published: req.Published,
		CreatedBy: actorID,
	}

	if err := u.newsRepo.Create(u.db.WithContext(ctx), news); err != nil {
		u.log.Warnf("Failed to create news article: %+v", err)
		return nil, fmt.Errorf("failed to create news article: %w", err)
	}

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	news, err := u.newsRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find news article %s: %+v", id, err)
		return nil, fmt.Errorf("failed to get news article: %w", err)
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}
	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) List(ctx context.Context, publishedOnly bool) (*dto.NewsListResponse, error) {
	news, err := u.newsRepo.FindAll(u.db.WithContext(ctx), publishedOnly)
	if err != nil {
		u.log.Warnf("Failed to list news articles: %+v", err)
		return nil, fmt.Errorf("failed to list news articles: %w", err)
	}
	return &dto.NewsListResponse{
		News:  converter.NewsListToResponses(news),
		Total: len(news),
	}, nil
}

func (u *newsUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	db := u.db.WithContext(ctx)

	news, err := u.newsRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find news article %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.ImageURL != nil {
		news.ImageURL = *req.ImageURL
	}
	if req.Published != nil {
		news.Published = *req.Published
	}

	if err := u.newsRepo.Update(db, news); err != nil {
		u.log.Warnf("Failed to update news article %s: %+v", id, err)
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.newsRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete news article %s: %+v", id, err)
		return fmt.Errorf("failed to delete news article: %w", err)
	}
	if affected == 0 {
		return ErrNewsNotFound
	}
	return nil
}
