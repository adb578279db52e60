package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:   doctor.ID,
		Name: doctor.Name,
		Role: string(doctor.Role),
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}
