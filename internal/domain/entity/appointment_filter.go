package entity

// AppointmentFilter is a domain-level filter for listing appointments.
type AppointmentFilter struct {
	DoctorID int64  // 0 means any doctor
	Date     string // Format: YYYY-MM-DD
}

// DoctorFilter narrows the doctor list.
type DoctorFilter struct {
	Role Specialty
}
