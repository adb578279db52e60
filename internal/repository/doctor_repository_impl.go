package repository

import (
	"errors"

	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db
	if filter != nil && filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	err := query.Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Model(doctor).Select("name", "role").Updates(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
