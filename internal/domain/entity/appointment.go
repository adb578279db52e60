package entity

import "time"

// Appointment books one slot (doctor, date, time) for a patient.
// The slot is unique: idx_appointments_slot backs the availability check.
type Appointment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID    int64     `gorm:"not null;uniqueIndex:idx_appointments_slot,priority:1" json:"doctor_id"`
	Date        string    `gorm:"type:date;not null;uniqueIndex:idx_appointments_slot,priority:2;index" json:"date"`
	Time        string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_slot,priority:3" json:"time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentDetail is an appointment joined with its doctor's display data.
// DoctorName and DoctorRole are nil when the doctor row is missing.
type AppointmentDetail struct {
	ID          int64
	PatientName string
	DoctorID    int64
	Date        string
	Time        string
	DoctorName  *string
	DoctorRole  *string
}

// IsOrphaned reports whether the referenced doctor no longer exists
func (d *AppointmentDetail) IsOrphaned() bool {
	return d.DoctorName == nil || d.DoctorRole == nil
}
