package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FileHandler struct {
	fileUsecase usecase.FileUsecase
	validator   *validator.CustomValidator
}

func NewFileHandler(fileUsecase usecase.FileUsecase, validator *validator.CustomValidator) *FileHandler {
	return &FileHandler{
		fileUsecase: fileUsecase,
		validator:   validator,
	}
}

// Create records the metadata of an already-uploaded file
func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	file, err := h.fileUsecase.Create(r.Context(), &req, actorID)
	if err != nil {
		response.InternalServerError(w, "Failed to create file record")
		return
	}

	response.Success(w, http.StatusCreated, "File record created successfully", file)
}

func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid file ID", nil)
		return
	}

	file, err := h.fileUsecase.Get(r.Context(), fileID)
	if err != nil {
		switch err {
		case usecase.ErrFileNotFound:
			response.NotFound(w, "File not found")
		default:
			response.InternalServerError(w, "Failed to get file")
		}
		return
	}

	response.Success(w, http.StatusOK, "File retrieved successfully", file)
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.fileUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list files")
		return
	}

	response.Success(w, http.StatusOK, "Files retrieved successfully", files)
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid file ID", nil)
		return
	}

	err = h.fileUsecase.Delete(r.Context(), fileID)
	if err != nil {
		switch err {
		case usecase.ErrFileNotFound:
			response.NotFound(w, "File not found")
		default:
			response.InternalServerError(w, "Failed to delete file")
		}
		return
	}

	response.Success(w, http.StatusOK, "File deleted successfully", nil)
}
