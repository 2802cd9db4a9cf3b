package handler

import (
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/dateparse"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LockedSlotHandler struct {
	lockedSlotUsecase usecase.LockedSlotUsecase
	validator         *validator.CustomValidator
}

func NewLockedSlotHandler(lockedSlotUsecase usecase.LockedSlotUsecase, validator *validator.CustomValidator) *LockedSlotHandler {
	return &LockedSlotHandler{
		lockedSlotUsecase: lockedSlotUsecase,
		validator:         validator,
	}
}

// Create locks a slot so it can no longer be booked
func (h *LockedSlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLockedSlotRequest
	if !decodeBody(w, r, &req) {
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

	slot, err := h.lockedSlotUsecase.Create(r.Context(), &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrSlotAlreadyLocked:
			response.Error(w, http.StatusConflict, "Slot is already locked", nil)
		case usecase.ErrInvalidLockDate:
			response.Error(w, http.StatusBadRequest, "Invalid lock date", nil)
		default:
			response.InternalServerError(w, "Failed to lock slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot locked successfully", slot)
}

// Check reports whether a specific (doctor, date, time) slot is locked
func (h *LockedSlotHandler) Check(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	doctorID, err := uuid.Parse(query.Get("doctor_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date, err := dateparse.ParseString(query.Get("date"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		return
	}

	timeToken := query.Get("time")
	if timeToken == "" {
		response.Error(w, http.StatusBadRequest, "Time is required", nil)
		return
	}

	result, err := h.lockedSlotUsecase.Check(r.Context(), doctorID, date, timeToken)
	if err != nil {
		response.InternalServerError(w, "Failed to check slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot checked successfully", result)
}

// ListByDoctor returns a doctor's locks, optionally narrowed to one day
func (h *LockedSlotHandler) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	// Date narrows the listing; it arrives as a path segment or query param.
	raw := vars["date"]
	if raw == "" {
		raw = r.URL.Query().Get("date")
	}
	if raw != "" {
		date, err := dateparse.ParseString(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
			return
		}
		slots, err := h.lockedSlotUsecase.ListByDoctorAndDate(r.Context(), doctorID, date)
		if err != nil {
			response.InternalServerError(w, "Failed to list locked slots")
			return
		}
		response.Success(w, http.StatusOK, "Locked slots retrieved successfully", slots)
		return
	}

	slots, err := h.lockedSlotUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list locked slots")
		return
	}

	response.Success(w, http.StatusOK, "Locked slots retrieved successfully", slots)
}

func (h *LockedSlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid locked slot ID", nil)
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	err = h.lockedSlotUsecase.DeleteByID(r.Context(), slotID, actorID)
	if err != nil {
		switch err {
		case usecase.ErrLockedSlotNotFound:
			response.NotFound(w, "Locked slot not found")
		default:
			response.InternalServerError(w, "Failed to unlock slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot unlocked successfully", nil)
}

// DeleteByDetails unlocks by (doctor, date, time) instead of database ID
func (h *LockedSlotHandler) DeleteByDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date, err := dateparse.ParseString(vars["date"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		return
	}

	timeToken := vars["time"]

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	matched, err := h.lockedSlotUsecase.DeleteByDetails(r.Context(), doctorID, date, timeToken, actorID)
	if err != nil {
		response.InternalServerError(w, "Failed to unlock slot")
		return
	}
	if !matched {
		response.NotFound(w, "Locked slot not found")
		return
	}

	response.Success(w, http.StatusOK, "Slot unlocked successfully", nil)
}
