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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNameRequired = errors.New("patient name is required")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime         = errors.New("invalid time format, use HH:MM")
	ErrDoctorReference     = errors.New("doctor does not exist")
	ErrSlotAlreadyBooked   = service.ErrSlotAlreadyBooked
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	bookingRules    service.BookingRules
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	bookingRules service.BookingRules,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		bookingRules:    bookingRules,
	}
}

// slot is a validated appointment request with date and time in their
// stored form.
type slot struct {
	patientName string
	date        string
	time        string
	doctorID    int64
}

func parseSlot(req *dto.AppointmentRequest) (*slot, error) {
	s := &slot{
		patientName: strings.TrimSpace(req.PatientName),
		date:        format.NormalizeDate(req.Date),
		time:        format.NormalizeTime(req.Time),
		doctorID:    req.DoctorID.Int64(),
	}

	if s.patientName == "" {
		return nil, ErrPatientNameRequired
	}
	if !format.IsValidDate(s.date) {
		return nil, ErrInvalidDate
	}
	if !format.IsValidTime(s.time) {
		return nil, ErrInvalidTime
	}
	if s.doctorID <= 0 {
		return nil, ErrDoctorReference
	}
	return s, nil
}

// reserve checks the doctor and the slot inside tx. excludeID is the
// appointment being moved, nil on create.
func (u *appointmentUsecase) reserve(ctx context.Context, tx *gorm.DB, s *slot, excludeID *int64) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(tx, s.doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", s.doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorReference
	}

	available, err := u.bookingRules.CheckSlotAvailable(ctx, tx, s.doctorID, s.date, s.time, excludeID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrSlotAlreadyBooked
	}
	return doctor, nil
}

// translateWriteError maps constraint violations that beat the pre-checks
// to the same outcomes the pre-checks produce.
func translateWriteError(err error) error {
	switch {
	case isDuplicateKeyError(err, "slot"):
		return ErrSlotAlreadyBooked
	case isForeignKeyError(err, "doctor"):
		return ErrDoctorReference
	default:
		return err
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	s, err := parseSlot(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.reserve(ctx, tx, s, nil)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientName: s.patientName,
		Date:        s.date,
		Time:        s.time,
		DoctorID:    s.doctorID,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if mapped := translateWriteError(err); mapped != err {
			return nil, mapped
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if mapped := translateWriteError(err); mapped != err {
			return nil, mapped
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"appointment_id": appointment.ID,
		"doctor_id":      appointment.DoctorID,
		"date":           appointment.Date,
		"time":           appointment.Time,
	}).Info("Appointment booked")

	return enrich(appointment, doctor), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	detail, err := u.appointmentRepo.FindDetailByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if detail == nil {
		return nil, ErrAppointmentNotFound
	}
	if detail.IsOrphaned() {
		u.warnOrphan(detail)
	}
	return converter.AppointmentDetailToResponse(detail), nil
}

// ListAppointments returns enriched appointments ordered by date and time.
// Rows whose doctor is missing are left out and reported.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	details, err := u.appointmentRepo.FindAllDetails(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	kept := details[:0]
	for _, detail := range details {
		if detail.IsOrphaned() {
			u.warnOrphan(&detail)
			continue
		}
		kept = append(kept, detail)
	}

	return converter.AppointmentDetailsToResponses(kept), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	s, err := parseSlot(req)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	doctor, err := u.reserve(ctx, tx, s, &appointment.ID)
	if err != nil {
		return nil, err
	}

	appointment.PatientName = s.patientName
	appointment.Date = s.date
	appointment.Time = s.time
	appointment.DoctorID = s.doctorID
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if mapped := translateWriteError(err); mapped != err {
			return nil, mapped
		}
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if mapped := translateWriteError(err); mapped != err {
			return nil, mapped
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return enrich(appointment, doctor), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int64) error {
	deleted, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if deleted == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (u *appointmentUsecase) warnOrphan(detail *entity.AppointmentDetail) {
	u.log.WithFields(logrus.Fields{
		"appointment_id": detail.ID,
		"doctor_id":      detail.DoctorID,
	}).Warn("Appointment references a missing doctor")
}

func enrich(appointment *entity.Appointment, doctor *entity.Doctor) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientName: appointment.PatientName,
		Date:        format.NormalizeDate(appointment.Date),
		Time:        format.NormalizeTime(appointment.Time),
		DoctorID:    appointment.DoctorID,
		DoctorName:  doctor.Name,
		DoctorRole:  string(doctor.Role),
	}
}
