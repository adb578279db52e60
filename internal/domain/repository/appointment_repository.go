package repository

import (
	"clinic-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindDetailByID(db *gorm.DB, id int64) (*entity.AppointmentDetail, error)
	FindAllDetails(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int64) (int64, error)

	// FindBySlot returns the appointment holding (doctorID, date, time),
	// ignoring excludeID when it is non-zero. Nil means the slot is free.
	FindBySlot(db *gorm.DB, doctorID int64, date, time string, excludeID int64) (*entity.Appointment, error)
	CountByDoctorID(db *gorm.DB, doctorID int64) (int64, error)
}
