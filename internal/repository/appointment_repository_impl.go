package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const appointmentDetailColumns = "appointments.id, appointments.patient_name, appointments.doctor_id, " +
	"appointments.date, appointments.time, doctors.name AS doctor_name, doctors.role AS doctor_role"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// detailQuery left-joins doctors so appointments whose doctor vanished still
// come back, with nil doctor fields, instead of silently disappearing.
func (r *appointmentRepository) detailQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&entity.Appointment{}).
		Select(appointmentDetailColumns).
		Joins("LEFT JOIN doctors ON doctors.id = appointments.doctor_id")
}

func (r *appointmentRepository) FindDetailByID(db *gorm.DB, id int64) (*entity.AppointmentDetail, error) {
	var details []entity.AppointmentDetail
	err := r.detailQuery(db).
		Where("appointments.id = ?", id).
		Limit(1).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *appointmentRepository) FindAllDetails(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error) {
	var details []entity.AppointmentDetail
	query := r.detailQuery(db)

	if filter != nil {
		if filter.DoctorID != 0 {
			query = query.Where("appointments.doctor_id = ?", filter.DoctorID)
		}
		if filter.Date != "" {
			query = query.Where("appointments.date = ?", filter.Date)
		}
	}

	err := query.
		Order("appointments.date ASC, appointments.time ASC, appointments.id ASC").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Model(appointment).
		Select("patient_name", "doctor_id", "date", "time").
		Updates(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindBySlot(db *gorm.DB, doctorID int64, date, time string, excludeID int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	query := db.Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, time)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CountByDoctorID(db *gorm.DB, doctorID int64) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}
