package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-admin/internal/repository"
	"clinic-admin/internal/service"
	"clinic-admin/internal/testutil"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/gorm"
)

type fixture struct {
	db           *gorm.DB
	logs         *test.Hook
	doctors      DoctorUsecase
	appointments AppointmentUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithRules(t, nil)
}

// newFixtureWithRules wires the usecases with rules in place of the real
// booking rules. A nil rules value uses the real ones.
func newFixtureWithRules(t *testing.T, rules service.BookingRules) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	hook := test.NewLocal(log)

	db := testutil.NewTestDB(t)
	appointmentRepo := repository.NewAppointmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	if rules == nil {
		rules = service.NewBookingRules(log, appointmentRepo)
	}

	return &fixture{
		db:           db,
		logs:         hook,
		doctors:      NewDoctorUsecase(db, log, doctorRepo, rules),
		appointments: NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, rules),
	}
}

type mockBookingRules struct {
	CheckSlotAvailableFn    func(ctx context.Context, db *gorm.DB, doctorID int64, date, time string, excludeID *int64) (bool, error)
	AssertDoctorDeletableFn func(ctx context.Context, db *gorm.DB, doctorID int64) error
}

func (m *mockBookingRules) CheckSlotAvailable(ctx context.Context, db *gorm.DB, doctorID int64, date, time string, excludeID *int64) (bool, error) {
	if m.CheckSlotAvailableFn != nil {
		return m.CheckSlotAvailableFn(ctx, db, doctorID, date, time, excludeID)
	}
	return true, nil
}

func (m *mockBookingRules) AssertDoctorDeletable(ctx context.Context, db *gorm.DB, doctorID int64) error {
	if m.AssertDoctorDeletableFn != nil {
		return m.AssertDoctorDeletableFn(ctx, db, doctorID)
	}
	return nil
}
