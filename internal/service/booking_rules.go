package service

import (
	"context"
	"errors"

	"clinic-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotAlreadyBooked = errors.New("time slot already booked for this doctor")
	ErrDoctorInUse       = errors.New("cannot delete doctor with existing appointments")
)

// BookingRules answers the two questions every appointment or doctor mutation
// has to ask first. Both run on the caller's db handle so they see the
// caller's transaction.
type BookingRules interface {
	// CheckSlotAvailable reports whether no appointment other than excludeID
	// holds (doctorID, date, time).
	CheckSlotAvailable(ctx context.Context, db *gorm.DB, doctorID int64, date, time string, excludeID *int64) (bool, error)
	// AssertDoctorDeletable returns ErrDoctorInUse while any appointment
	// references the doctor.
	AssertDoctorDeletable(ctx context.Context, db *gorm.DB, doctorID int64) error
}

type bookingRules struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewBookingRules(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) BookingRules {
	return &bookingRules{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (s *bookingRules) CheckSlotAvailable(ctx context.Context, db *gorm.DB, doctorID int64, date, time string, excludeID *int64) (bool, error) {
	var exclude int64
	if excludeID != nil {
		exclude = *excludeID
	}

	existing, err := s.appointmentRepo.FindBySlot(db.WithContext(ctx), doctorID, date, time, exclude)
	if err != nil {
		s.log.Warnf("Failed to check slot for doctor %d at %s %s: %+v", doctorID, date, time, err)
		return false, err
	}

	return existing == nil, nil
}

func (s *bookingRules) AssertDoctorDeletable(ctx context.Context, db *gorm.DB, doctorID int64) error {
	count, err := s.appointmentRepo.CountByDoctorID(db.WithContext(ctx), doctorID)
	if err != nil {
		s.log.Warnf("Failed to count appointments for doctor %d: %+v", doctorID, err)
		return err
	}
	if count > 0 {
		return ErrDoctorInUse
	}
	return nil
}
