package handler

import (
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/delivery/http/middleware"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/dateparse"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WaitingListHandler struct {
	waitingListUsecase usecase.WaitingListUsecase
	validator          *validator.CustomValidator
}

func NewWaitingListHandler(waitingListUsecase usecase.WaitingListUsecase, validator *validator.CustomValidator) *WaitingListHandler {
	return &WaitingListHandler{
		waitingListUsecase: waitingListUsecase,
		validator:          validator,
	}
}

func (h *WaitingListHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWaitingListRequest
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

	entry, err := h.waitingListUsecase.Add(r.Context(), &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidPreferredDate:
			response.Error(w, http.StatusBadRequest, "Invalid preferred date", nil)
		default:
			response.InternalServerError(w, "Failed to add waiting list entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Waiting list entry created successfully", entry)
}

func (h *WaitingListHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.WaitingListFilter{}
	query := r.URL.Query()

	filter.Status = query.Get("status")

	if raw := query.Get("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
			return
		}
		filter.DoctorID = &id
	}
	if raw := query.Get("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		filter.PatientID = &id
	}
	if raw := query.Get("date"); raw != "" {
		date, err := dateparse.ParseString(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
			return
		}
		filter.Date = &date
	}

	entries, err := h.waitingListUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list waiting list entries")
		return
	}

	response.Success(w, http.StatusOK, "Waiting list retrieved successfully", entries)
}

func (h *WaitingListHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid waiting list entry ID", nil)
		return
	}

	entry, err := h.waitingListUsecase.Get(r.Context(), entryID)
	if err != nil {
		switch err {
		case usecase.ErrWaitingEntryNotFound:
			response.NotFound(w, "Waiting list entry not found")
		default:
			response.InternalServerError(w, "Failed to get waiting list entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Waiting list entry retrieved successfully", entry)
}

func (h *WaitingListHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid waiting list entry ID", nil)
		return
	}

	var req dto.UpdateWaitingListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.waitingListUsecase.Update(r.Context(), entryID, &req)
	if err != nil {
		switch err {
		case usecase.ErrWaitingEntryNotFound:
			response.NotFound(w, "Waiting list entry not found")
		case usecase.ErrInvalidPreferredDate:
			response.Error(w, http.StatusBadRequest, "Invalid preferred date", nil)
		default:
			response.InternalServerError(w, "Failed to update waiting list entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Waiting list entry updated successfully", entry)
}

func (h *WaitingListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid waiting list entry ID", nil)
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	err = h.waitingListUsecase.Remove(r.Context(), entryID, actorID)
	if err != nil {
		switch err {
		case usecase.ErrWaitingEntryNotFound:
			response.NotFound(w, "Waiting list entry not found")
		default:
			response.InternalServerError(w, "Failed to remove waiting list entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Waiting list entry removed successfully", nil)
}

// Book promotes a waiting entry into a confirmed appointment. The entry is
// removed only after the booking succeeds.
func (h *WaitingListHandler) Book(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid waiting list entry ID", nil)
		return
	}

	var req dto.BookWaitingListRequest
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

	appointment, err := h.waitingListUsecase.BookFromWaitingList(r.Context(), entryID, &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrWaitingEntryNotFound:
			response.NotFound(w, "Waiting list entry not found")
		case usecase.ErrWaitingEntryNotActive:
			response.Error(w, http.StatusConflict, "Waiting list entry is no longer active", nil)
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSlotUnavailable:
			response.Error(w, http.StatusConflict, "Slot no longer available", nil)
		case usecase.ErrInvalidAppointmentDate:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format", nil)
		default:
			response.InternalServerError(w, "Failed to book from waiting list")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Waiting list entry booked successfully", appointment)
}
