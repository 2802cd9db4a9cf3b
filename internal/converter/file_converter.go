package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

// FileToResponse converts a FileRecord entity to its DTO
func FileToResponse(file *entity.FileRecord) *dto.FileResponse {
	if file == nil {
		return nil
	}

	return &dto.FileResponse{
		ID:          file.ID,
		FileName:    file.FileName,
		URL:         file.URL,
		ContentType: file.ContentType,
		Size:        file.Size,
		UploadedBy:  file.UploadedBy,
		CreatedAt:   file.CreatedAt,
	}
}

// FilesToResponses converts a slice of FileRecord entities to DTOs
func FilesToResponses(files []entity.FileRecord) []dto.FileResponse {
	responses := make([]dto.FileResponse, len(files))
	for i := range files {
		responses[i] = *FileToResponse(&files[i])
	}
	return responses
}
