package usecase

import (
	"context"
	"testing"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rules below always allow the write, as they would if a concurrent
// request committed between the check and the write. The store constraints
// must still produce the same errors.

func TestCreateAppointment_SlotIndexBacksCheck(t *testing.T) {
	f := newFixtureWithRules(t, &mockBookingRules{})
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)

	_, err := f.appointments.CreateAppointment(ctx, appointmentReq("Jane Roe", "2024-05-01", "09:00", doctor.ID))
	require.NoError(t, err)

	_, err = f.appointments.CreateAppointment(ctx, appointmentReq("John Doe", "2024-05-01", "09:00", doctor.ID))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Equal(t, int64(1), countAppointments(t, f.db))
}

func TestUpdateAppointment_SlotIndexBacksCheck(t *testing.T) {
	f := newFixtureWithRules(t, &mockBookingRules{})
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)
	testutil.SeedAppointment(t, f.db, "Jane Roe", doctor.ID, "2024-05-01", "09:00")
	moving := testutil.SeedAppointment(t, f.db, "John Doe", doctor.ID, "2024-05-01", "10:00")

	_, err := f.appointments.UpdateAppointment(ctx, moving.ID, appointmentReq("John Doe", "2024-05-01", "09:00", doctor.ID))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	got, err := f.appointments.GetAppointment(ctx, moving.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.Time)
}

func TestDeleteDoctor_ForeignKeyBacksCheck(t *testing.T) {
	f := newFixtureWithRules(t, &mockBookingRules{})
	ctx := context.Background()
	doctor := testutil.SeedDoctor(t, f.db, "Dr. Ann Lee", entity.SpecialtyDentist)
	testutil.SeedAppointment(t, f.db, "Jane Roe", doctor.ID, "2024-05-01", "09:00")

	err := f.doctors.DeleteDoctor(ctx, doctor.ID)
	assert.ErrorIs(t, err, ErrDoctorInUse)

	got, err := f.doctors.GetDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ann Lee", got.Name)
}
