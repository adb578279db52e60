package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name string `json:"name" validate:"notblank,max=255"`
	Role string `json:"role" validate:"required,specialty"`
}

// UpdateDoctorRequest serves both PUT /doctors, which carries the id in the
// body, and PUT /doctors/{id}.
type UpdateDoctorRequest struct {
	DoctorID ID     `json:"doctorId"`
	Name     string `json:"name" validate:"notblank,max=255"`
	Role     string `json:"role" validate:"required,specialty"`
}

type DoctorFilterRequest struct {
	Role string `validate:"omitempty,specialty"`
}

// Response DTOs

type DoctorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
