package dto

// Request DTOs

type AppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"notblank,max=255"`
	Date        string `json:"date" validate:"required,date"`
	Time        string `json:"time" validate:"required,clock"`
	DoctorID    ID     `json:"doctor_id" validate:"required,gt=0"`
}

type AppointmentFilterRequest struct {
	DoctorID int64  `validate:"gte=0"`
	Date     string `validate:"omitempty,date"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DoctorID    int64  `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	DoctorRole  string `json:"doctor_role"`
}

type UpdateAppointmentResponse struct {
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}
