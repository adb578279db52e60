package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/pkg/format"
)

// AppointmentDetailToResponse converts a joined appointment row to its DTO.
// Drivers hand date columns back as timestamps, so the date is normalized
// again on the way out.
func AppointmentDetailToResponse(detail *entity.AppointmentDetail) *dto.AppointmentResponse {
	if detail == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          detail.ID,
		PatientName: detail.PatientName,
		Date:        format.NormalizeDate(detail.Date),
		Time:        format.NormalizeTime(detail.Time),
		DoctorID:    detail.DoctorID,
	}
	if detail.DoctorName != nil {
		response.DoctorName = *detail.DoctorName
	}
	if detail.DoctorRole != nil {
		response.DoctorRole = *detail.DoctorRole
	}
	return response
}

func AppointmentDetailsToResponses(details []entity.AppointmentDetail) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(details))
	for i := range details {
		responses = append(responses, *AppointmentDetailToResponse(&details[i]))
	}
	return responses
}
