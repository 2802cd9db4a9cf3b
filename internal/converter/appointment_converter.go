package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/pkg/dateparse"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		AppointmentDate: dateparse.DayString(appointment.AppointmentDate),
		AppointmentTime: appointment.AppointmentTime,
		ServiceType:     appointment.ServiceType,
		Duration:        appointment.Duration,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedBy:       appointment.CreatedBy,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
