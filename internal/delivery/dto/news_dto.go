package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateNewsRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=255"`
	Content   string `json:"content" validate:"required"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Published bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=2,max=255"`
	Content   *string `json:"content" validate:"omitempty"`
	ImageURL  *string `json:"image_url" validate:"omitempty,url"`
	Published *bool   `json:"published" validate:"omitempty"`
}

// Response DTOs

type NewsResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Published bool      `json:"published"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewsListResponse struct {
	News  []NewsResponse `json:"news"`
	Total int            `json:"total"`
}
