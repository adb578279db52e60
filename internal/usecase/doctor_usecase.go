package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/service"
	"clinic-admin/pkg/format"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrDoctorNameRequired = errors.New("doctor name is required")
	ErrInvalidSpecialty   = errors.New("invalid doctor role")
	ErrDoctorInUse        = service.ErrDoctorInUse
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int64) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	bookingRules service.BookingRules
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	bookingRules service.BookingRules,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		bookingRules: bookingRules,
	}
}

func validateDoctor(name, role string) (string, entity.Specialty, error) {
	if strings.TrimSpace(name) == "" {
		return "", "", ErrDoctorNameRequired
	}
	specialty := entity.Specialty(role)
	if !specialty.IsValid() {
		return "", "", ErrInvalidSpecialty
	}
	return format.CanonicalDoctorName(name), specialty, nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	name, role, err := validateDoctor(req.Name, req.Role)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{Name: name, Role: role}
	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"doctor_id": doctor.ID, "role": doctor.Role}).Info("Doctor created")
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	name, role, err := validateDoctor(req.Name, req.Role)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	doctor.Name = name
	doctor.Role = role
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if err := u.bookingRules.AssertDoctorDeletable(ctx, tx, id); err != nil {
		return err
	}

	if _, err := u.doctorRepo.Delete(tx, id); err != nil {
		// an appointment slipped in after the check
		if isForeignKeyError(err, "doctor") {
			return ErrDoctorInUse
		}
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isForeignKeyError(err, "doctor") {
			return ErrDoctorInUse
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.WithField("doctor_id", id).Info("Doctor deleted")
	return nil
}
