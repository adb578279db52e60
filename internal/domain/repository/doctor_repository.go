package repository

import (
	"clinic-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindAll(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
