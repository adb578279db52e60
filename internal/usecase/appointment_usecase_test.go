package usecase

import (
	"context"
	"testing"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/testutil"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func appointmentReq(patient, date, time string, doctorID int64) *dto.AppointmentRequest {
	return &dto.AppointmentRequest{PatientName: patient, Date: date, Time: time, DoctorID: dto.ID(doctorID)}
}

func countAppointments(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Appointment{}).Count(&count).Error)
	return count
}

func TestCreateAppointment_DoubleBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)

	first, err := f.appointments.CreateAppointment(ctx, appointmentReq("Jane Roe", "2024-05-01", "09:00", doctor.ID))
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ann Lee", first.DoctorName)
	assert.Equal(t, "Dentist", first.DoctorRole)
	assert.Equal(t, "2024-05-01", first.Date)

	_, err = f.appointments.CreateAppointment(ctx, appointmentReq("John Doe", "2024-05-01", "09:00", doctor.ID))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Equal(t, int64(1), countAppointments(t, f.db))

	_, err = f.appointments.CreateAppointment(ctx, appointmentReq("John Doe", "2024-05-01", "09:30", doctor.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), countAppointments(t, f.db))
}

func TestCreateAppointment_NormalizesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)

	got, err := f.appointments.CreateAppointment(ctx, appointmentReq("Jane Roe", "2024-05-01T00:00:00.000Z", "09:00:00", doctor.ID))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.Date)
	assert.Equal(t, "09:00", got.Time)

	// the same slot written differently still collides
	_, err = f.appointments.CreateAppointment(ctx, appointmentReq("John Doe", "2024-05-01", "09:00", doctor.ID))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestCreateAppointment_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)

	tests := []struct {
		name string
		req  *dto.AppointmentRequest
		want error
	}{
		{"missing patient", appointmentReq(" ", "2024-05-01", "09:00", doctor.ID), ErrPatientNameRequired},
		{"bad date", appointmentReq("Jane", "01/05/2024", "09:00", doctor.ID), ErrInvalidDate},
		{"missing date", appointmentReq("Jane", "", "09:00", doctor.ID), ErrInvalidDate},
		{"bad time", appointmentReq("Jane", "2024-05-01", "nine", doctor.ID), ErrInvalidTime},
		{"missing doctor", appointmentReq("Jane", "2024-05-01", "09:00", 0), ErrDoctorReference},
		{"unknown doctor", appointmentReq("Jane", "2024-05-01", "09:00", 9999), ErrDoctorReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.appointments.CreateAppointment(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, countAppointments(t, f.db))
}

func TestUpdateAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)
	bob := testutil.SeedDoctor(t, f.db, "Dr. Bob Ray", entity.SpecialtyGeneral)
	mine := testutil.SeedAppointment(t, f.db, "Jane Roe", ann.ID, "2024-05-01", "09:00")
	testutil.SeedAppointment(t, f.db, "John Doe", ann.ID, "2024-05-01", "10:00")

	t.Run("keeping its own slot is not a conflict", func(t *testing.T) {
		got, err := f.appointments.UpdateAppointment(ctx, mine.ID, appointmentReq("Jane Roe-Smith", "2024-05-01", "09:00", ann.ID))
		require.NoError(t, err)
		assert.Equal(t, "Jane Roe-Smith", got.PatientName)
	})

	t.Run("moving onto a taken slot conflicts", func(t *testing.T) {
		_, err := f.appointments.UpdateAppointment(ctx, mine.ID, appointmentReq("Jane Roe", "2024-05-01", "10:00", ann.ID))
		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

		got, err := f.appointments.GetAppointment(ctx, mine.ID)
		require.NoError(t, err)
		assert.Equal(t, "09:00", got.Time)
	})

	t.Run("moving to another doctor", func(t *testing.T) {
		got, err := f.appointments.UpdateAppointment(ctx, mine.ID, appointmentReq("Jane Roe", "2024-05-01", "10:00", bob.ID))
		require.NoError(t, err)
		assert.Equal(t, bob.ID, got.DoctorID)
		assert.Equal(t, "Dr. Bob Ray", got.DoctorName)
		assert.Equal(t, "General", got.DoctorRole)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.appointments.UpdateAppointment(ctx, 9999, appointmentReq("Jane", "2024-05-02", "09:00", ann.ID))
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, err := f.appointments.UpdateAppointment(ctx, mine.ID, appointmentReq("Jane", "2024-05-02", "09:00", 9999))
		assert.ErrorIs(t, err, ErrDoctorReference)
	})
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)
	appointment := testutil.SeedAppointment(t, f.db, "Jane Roe", doctor.ID, "2024-05-01", "09:00")

	require.NoError(t, f.appointments.DeleteAppointment(ctx, appointment.ID))
	assert.ErrorIs(t, f.appointments.DeleteAppointment(ctx, appointment.ID), ErrAppointmentNotFound)

	// the doctor is free to go once the last appointment is gone
	require.NoError(t, f.doctors.DeleteDoctor(ctx, doctor.ID))
}

func TestListAppointments_Enriched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)
	bob := testutil.SeedDoctor(t, f.db, "Dr. Bob Ray", entity.SpecialtyGeneral)
	testutil.SeedAppointment(t, f.db, "Late", ann.ID, "2024-05-02", "08:00")
	testutil.SeedAppointment(t, f.db, "Early", bob.ID, "2024-05-01", "11:00")
	testutil.SeedAppointment(t, f.db, "Earliest", ann.ID, "2024-05-01", "09:00")

	all, err := f.appointments.ListAppointments(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "Earliest", all[0].PatientName)
	assert.Equal(t, "2024-05-01", all[0].Date)
	assert.Equal(t, "Dr. Ann Lee", all[0].DoctorName)
	assert.Equal(t, "Dentist", all[0].DoctorRole)
	assert.Equal(t, "Early", all[1].PatientName)
	assert.Equal(t, "Dr. Bob Ray", all[1].DoctorName)
	assert.Equal(t, "Late", all[2].PatientName)

	byDoctor, err := f.appointments.ListAppointments(ctx, &entity.AppointmentFilter{DoctorID: ann.ID})
	require.NoError(t, err)
	assert.Len(t, byDoctor, 2)

	byDate, err := f.appointments.ListAppointments(ctx, &entity.AppointmentFilter{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}

func TestListAppointments_SkipsOrphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)
	gone := testutil.SeedDoctor(t, f.db, "Dr. Gone", entity.SpecialtyGeneral)
	testutil.SeedAppointment(t, f.db, "Kept", ann.ID, "2024-05-01", "09:00")
	orphan := testutil.SeedAppointment(t, f.db, "Orphan", gone.ID, "2024-05-01", "09:00")

	// simulate legacy data written without the foreign key
	require.NoError(t, f.db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
			return err
		}
		if err := conn.Exec("DELETE FROM doctors WHERE id = ?", gone.ID).Error; err != nil {
			return err
		}
		return conn.Exec("PRAGMA foreign_keys = ON").Error
	}))

	all, err := f.appointments.ListAppointments(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Kept", all[0].PatientName)

	entry := f.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, orphan.ID, entry.Data["appointment_id"])
}
