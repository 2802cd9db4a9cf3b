package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFileRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	URL         string `json:"url" validate:"required,url"`
	ContentType string `json:"content_type" validate:"omitempty,max=100"`
	Size        int64  `json:"size" validate:"omitempty,gte=0"`
}

// Response DTOs

type FileResponse struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type FileListResponse struct {
	Files []FileResponse `json:"files"`
	Total int            `json:"total"`
}
