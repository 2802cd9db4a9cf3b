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

var ErrFileNotFound = errors.New("file not found")

type FileUsecase interface {
	Create(ctx context.Context, req *dto.CreateFileRequest, actorID uuid.UUID) (*dto.FileResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.FileResponse, error)
	List(ctx context.Context) (*dto.FileListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	fileRepo repository.FileRepository
}

func NewFileUsecase(db *gorm.DB, log *logrus.Logger, fileRepo repository.FileRepository) FileUsecase {
	return &fileUsecase{
		db:       db,
		log:      log,
		fileRepo: fileRepo,
	}
}

func (u *fileUsecase) Create(ctx context.Context, req *dto.CreateFileRequest, actorID uuid.UUID) (*dto.FileResponse, error) {
	file := &entity.FileRecord{
		FileName:    req.FileName,
		URL:         req.URL,
		ContentType: req.ContentType,
		Size:        req.Size,
		UploadedBy:  actorID,
	}

	if err := u.fileRepo.Create(u.db.WithContext(ctx), file); err != nil {
		u.log.Warnf("Failed to create file record: %+v", err)
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return converter.FileToResponse(file), nil
}

func (u *fileUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.FileResponse, error) {
	file, err := u.fileRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find file %s: %+v", id, err)
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	return converter.FileToResponse(file), nil
}

func (u *fileUsecase) List(ctx context.Context) (*dto.FileListResponse, error) {
	files, err := u.fileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list files: %+v", err)
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return &dto.FileListResponse{
		Files: converter.FilesToResponses(files),
		Total: len(files),
	}, nil
}

func (u *fileUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.fileRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete file %s: %+v", id, err)
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}
	return nil
}
