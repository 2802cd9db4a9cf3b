package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NewsHandler struct {
	newsUsecase usecase.NewsUsecase
	validator   *validator.CustomValidator
}

func NewNewsHandler(newsUsecase usecase.NewsUsecase, validator *validator.CustomValidator) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
		validator:   validator,
	}
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNewsRequest
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

	news, err := h.newsUsecase.Create(r.Context(), &req, actorID)
	if err != nil {
		response.InternalServerError(w, "Failed to create news article")
		return
	}

	response.Success(w, http.StatusCreated, "News article created successfully", news)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	news, err := h.newsUsecase.Get(r.Context(), newsID)
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "News article not found")
		default:
			response.InternalServerError(w, "Failed to get news article")
		}
		return
	}

	response.Success(w, http.StatusOK, "News article retrieved successfully", news)
}

// List returns every article to staff callers and published ones to others.
// Unauthenticated callers on the public route see published articles only.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	publishedOnly := true
	if roleID, ok := middleware.GetRoleIDFromContext(r.Context()); ok {
		if roleID == entity.RoleIDAdmin || roleID == entity.RoleIDDoctor {
			publishedOnly = false
		}
	}

	news, err := h.newsUsecase.List(r.Context(), publishedOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list news articles")
		return
	}

	response.Success(w, http.StatusOK, "News articles retrieved successfully", news)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	var req dto.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	news, err := h.newsUsecase.Update(r.Context(), newsID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "News article not found")
		default:
			response.InternalServerError(w, "Failed to update news article")
		}
		return
	}

	response.Success(w, http.StatusOK, "News article updated successfully", news)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	err = h.newsUsecase.Delete(r.Context(), newsID)
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "News article not found")
		default:
			response.InternalServerError(w, "Failed to delete news article")
		}
		return
	}

	response.Success(w, http.StatusOK, "News article deleted successfully", nil)
}
