package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

// NewsToResponse converts a News entity to its DTO
func NewsToResponse(news *entity.News) *dto.NewsResponse {
	if news == nil {
		return nil
	}

	return &dto.NewsResponse{
		ID:        news.ID,
		Title:     news.Title,
		Content:   news.Content,
		ImageURL:  news.ImageURL,
		Published: news.Published,
		CreatedBy: news.CreatedBy,
		CreatedAt: news.CreatedAt,
		UpdatedAt: news.UpdatedAt,
	}
}

// NewsListToResponses converts a slice of News entities to DTOs
func NewsListToResponses(news []entity.News) []dto.NewsResponse {
	responses := make([]dto.NewsResponse, len(news))
	for i := range news {
		responses[i] = *NewsToResponse(&news[i])
	}
	return responses
}
